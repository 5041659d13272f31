// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// SchemaService imports and exports schema documents.
type SchemaService struct {
	backend wiki.Store
	state   *state.Manager
	writer  *sync.Mutex
	logger  *slog.Logger
}

// NewSchemaService creates a new SchemaService. The writer mutex is shared
// with every other service that mutates the wiki.
func NewSchemaService(backend wiki.Store, stateMgr *state.Manager, writer *sync.Mutex, logger *slog.Logger) *SchemaService {
	return &SchemaService{
		backend: backend,
		state:   stateMgr,
		writer:  writer,
		logger:  logger,
	}
}

// ImportOptions carry the import modifiers.
type ImportOptions struct {
	DryRun bool
	Bypass bool
}

// Import parses and compiles a schema document into the wiki. Validation
// failures return ErrValidationFailed alongside a response carrying the
// findings; no pages are written in that case.
func (s *SchemaService) Import(ctx context.Context, data []byte, opts ImportOptions) (*models.ImportResponse, error) {
	doc, err := schemafile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	c := compiler.New(s.backend, s.state, s.logger)
	report, err := c.Import(ctx, doc, compiler.ImportOptions{DryRun: opts.DryRun, Bypass: opts.Bypass})
	if err != nil {
		if errors.Is(err, compiler.ErrValidationFailed) {
			return importResponse(report), ErrValidationFailed
		}
		return nil, err
	}
	s.logger.Debug("Schema import finished",
		"dry_run", opts.DryRun,
		"entities", len(report.Entities),
		"failed", report.Failed())
	return importResponse(report), nil
}

// Export rebuilds the schema document from the wiki and serializes it in
// the requested format. An empty format defaults to YAML.
func (s *SchemaService) Export(ctx context.Context, format string) ([]byte, error) {
	f, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	c := compiler.New(s.backend, s.state, s.logger)
	return c.Export(ctx, f)
}

func parseFormat(format string) (schemafile.Format, error) {
	switch format {
	case "", string(schemafile.FormatYAML):
		return schemafile.FormatYAML, nil
	case string(schemafile.FormatJSON):
		return schemafile.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}
