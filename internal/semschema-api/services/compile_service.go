// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
	"github.com/semanticschemas/semanticschemas/internal/installer"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// CompileService regenerates artifacts, reports drift, and installs the
// base ontology.
type CompileService struct {
	backend wiki.Store
	state   *state.Manager
	writer  *sync.Mutex
	logger  *slog.Logger
}

// NewCompileService creates a new CompileService. The writer mutex is
// shared with every other service that mutates the wiki.
func NewCompileService(backend wiki.Store, stateMgr *state.Manager, writer *sync.Mutex, logger *slog.Logger) *CompileService {
	return &CompileService{
		backend: backend,
		state:   stateMgr,
		writer:  writer,
		logger:  logger,
	}
}

// Regenerate rebuilds the generated artifacts of the named categories;
// empty means every managed category. Per-category failures are reported
// per artifact, not as a request failure.
func (cs *CompileService) Regenerate(ctx context.Context, raw []string) (*models.RegenerateResponse, error) {
	names := NormalizeCategoryNames(raw)

	cs.writer.Lock()
	defer cs.writer.Unlock()

	c := compiler.New(cs.backend, cs.state, cs.logger)
	report, err := c.Regenerate(ctx, names)
	if err != nil {
		return nil, err
	}
	return regenerateResponse(report), nil
}

// Status reports the recorded compiler state and any drift between the
// wiki and that record.
func (cs *CompileService) Status(ctx context.Context) (*models.StatusResponse, error) {
	c := compiler.New(cs.backend, cs.state, cs.logger)
	report, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	return statusResponse(report), nil
}

// Install writes the base ontology layers. Re-running against an installed
// wiki is a no-op.
func (cs *CompileService) Install(ctx context.Context) (*models.InstallResponse, error) {
	cs.writer.Lock()
	defer cs.writer.Unlock()

	creator := store.NewPageCreator(cs.backend, cs.logger)
	inst := installer.New(cs.backend, creator, cs.logger)
	report, err := inst.Install(ctx)
	if err != nil {
		return nil, err
	}
	return installResponse(report), nil
}
