// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package services implements the business logic behind the resolution API
// handlers. Writing operations (import, regenerate, install) serialize on a
// shared writer mutex; reads run concurrently.
package services

import (
	"log/slog"
	"sync"

	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

type Services struct {
	ResolutionService *ResolutionService
	SchemaService     *SchemaService
	CompileService    *CompileService
}

// NewServices creates and initializes all services over one wiki backend.
// The schema and compile services share a writer mutex so only one compile
// mutates the wiki at a time.
func NewServices(backend wiki.Store, stateMgr *state.Manager, logger *slog.Logger) *Services {
	writer := &sync.Mutex{}

	resolutionService := NewResolutionService(backend, logger.With("service", "resolution"))
	schemaService := NewSchemaService(backend, stateMgr, writer, logger.With("service", "schema"))
	compileService := NewCompileService(backend, stateMgr, writer, logger.With("service", "compile"))

	return &Services{
		ResolutionService: resolutionService,
		SchemaService:     schemaService,
		CompileService:    compileService,
	}
}
