// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package compiler orchestrates schema compilation: importing schema
// documents, regenerating wiki artifacts, exporting the live schema, and
// reporting drift. One compilation runs to completion per invocation;
// durable state lives in the wiki, so two invocations writing the same
// artifact converge on identical bytes.
package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// DefaultRenderConcurrency bounds the artifact render fan-out. Generators
// are pure, so rendering parallelizes freely; writes stay serialized.
const DefaultRenderConcurrency = 4

// DefaultFlushTimeout bounds each semantic backend flush during import.
const DefaultFlushTimeout = 30 * time.Second

// Compiler drives compilations against one wiki backend. Construct one per
// invocation next to its state manager.
type Compiler struct {
	backend      wiki.Store
	state        *state.Manager
	logger       *slog.Logger
	renderLimit  int
	flushTimeout time.Duration
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithRenderConcurrency bounds the render fan-out.
func WithRenderConcurrency(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.renderLimit = n
		}
	}
}

// WithFlushTimeout bounds each semantic backend flush.
func WithFlushTimeout(d time.Duration) Option {
	return func(c *Compiler) { c.flushTimeout = d }
}

// New constructs a compiler over backend, recording into stateMgr.
func New(backend wiki.Store, stateMgr *state.Manager, logger *slog.Logger, opts ...Option) *Compiler {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Compiler{
		backend:      backend,
		state:        stateMgr,
		logger:       logger.With("component", "compiler"),
		renderLimit:  DefaultRenderConcurrency,
		flushTimeout: DefaultFlushTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImportOptions modify one import run.
type ImportOptions struct {
	// DryRun validates and plans every write without touching the wiki or
	// the state document.
	DryRun bool
	// Bypass is the host's rate-limit bypass flag. It is never enforced
	// here; it is carried into edit summaries and logs for the audit trail.
	Bypass bool
}

// stores builds the per-invocation store set honoring opts.
func (c *Compiler) stores(opts ImportOptions) *store.Stores {
	var creatorOpts []store.CreatorOption
	if opts.DryRun {
		creatorOpts = append(creatorOpts, store.WithDryRun())
	}
	if opts.Bypass {
		creatorOpts = append(creatorOpts, store.WithSummaryNote("bypass"))
	}
	return store.NewStores(c.backend, c.logger, creatorOpts...)
}

// flush waits for the semantic backend's pending annotation work.
func (c *Compiler) flush(ctx context.Context) error {
	fctx, cancel := context.WithTimeout(ctx, c.flushTimeout)
	defer cancel()
	if err := c.backend.FlushPending(fctx); err != nil {
		return fmt.Errorf("semantic backend flush: %w", err)
	}
	return nil
}

// ArtifactResult records the outcome of one page write.
type ArtifactResult struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	Outcome store.Outcome `json:"outcome,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// RegenerateReport is the per-artifact outcome of one regeneration.
type RegenerateReport struct {
	Artifacts []ArtifactResult `json:"artifacts"`
}

// Written counts artifacts written (or planned, in a dry run).
func (r *RegenerateReport) Written() int {
	return r.countOutcomes(store.OutcomeWritten) + r.countOutcomes(store.OutcomePlanned)
}

// Skipped counts artifacts whose content was already current.
func (r *RegenerateReport) Skipped() int { return r.countOutcomes(store.OutcomeSkipped) }

// Failed counts artifacts whose write failed.
func (r *RegenerateReport) Failed() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Error != "" {
			n++
		}
	}
	return n
}

func (r *RegenerateReport) countOutcomes(o store.Outcome) int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Outcome == o {
			n++
		}
	}
	return n
}

// ImportReport is the outcome of one import run.
type ImportReport struct {
	Validation *schemafile.Result `json:"validation,omitempty"`
	Entities   []ArtifactResult   `json:"entities,omitempty"`
	Artifacts  *RegenerateReport  `json:"artifacts,omitempty"`
	DryRun     bool               `json:"dryRun,omitempty"`
}

// Failed counts failed entity and artifact writes.
func (r *ImportReport) Failed() int {
	n := 0
	for _, e := range r.Entities {
		if e.Error != "" {
			n++
		}
	}
	if r.Artifacts != nil {
		n += r.Artifacts.Failed()
	}
	return n
}
