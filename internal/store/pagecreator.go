// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package store persists schema entities and generated artifacts onto wiki
// pages. Entity stores own the marker-delimited schema region of their
// pages; the page creator owns fully generated pages and the
// content-addressed write discipline every writer shares.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/pkg/hash"
)

// summarySignature prefixes every edit summary so the host's audit trail
// attributes writes to the compiler's system identity, and so the state
// manager's own writes are recognizable when detecting lost updates.
const summarySignature = "[SemanticSchemas]"

// Outcome classifies what a write did.
type Outcome string

const (
	// OutcomeWritten means the page content changed.
	OutcomeWritten Outcome = "written"
	// OutcomeSkipped means the page already carried identical content (or,
	// for create-once pages, already existed).
	OutcomeSkipped Outcome = "skipped"
	// OutcomePlanned means a dry run would have written the page.
	OutcomePlanned Outcome = "planned"
)

// PageCreator performs all page writes. Writes are content-addressed: a
// page whose canonical fingerprint already matches the new content is not
// touched, which makes every operation idempotent and lets concurrent
// writers converge.
type PageCreator struct {
	store       wiki.PageStore
	logger      *slog.Logger
	dryRun      bool
	summaryNote string
}

// CreatorOption configures a PageCreator.
type CreatorOption func(*PageCreator)

// WithDryRun makes the creator report would-be writes without performing
// them.
func WithDryRun() CreatorOption {
	return func(c *PageCreator) { c.dryRun = true }
}

// WithSummaryNote appends a bracketed note to every edit summary, e.g. the
// caller's rate-limit bypass marker. The note is audit-trail information
// only.
func WithSummaryNote(note string) CreatorOption {
	return func(c *PageCreator) { c.summaryNote = note }
}

// NewPageCreator wraps store with the compiler's write discipline.
func NewPageCreator(store wiki.PageStore, logger *slog.Logger, opts ...CreatorOption) *PageCreator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &PageCreator{store: store, logger: logger.With("component", "pagecreator")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DryRun reports whether the creator is in dry-run mode.
func (c *PageCreator) DryRun() bool { return c.dryRun }

// Summary builds the signed edit summary for an action.
func Summary(action string) string {
	return summarySignature + " " + action
}

func (c *PageCreator) summary(action string) string {
	s := Summary(action)
	if c.summaryNote != "" {
		s += " [" + c.summaryNote + "]"
	}
	return s
}

// Write stores content at title unless the page already carries it.
func (c *PageCreator) Write(ctx context.Context, title wiki.Title, content, action string) (Outcome, error) {
	existing, err := c.store.Read(ctx, title)
	switch {
	case errors.Is(err, wiki.ErrPageNotFound):
		existing = ""
	case err != nil:
		return "", fmt.Errorf("failed to read %s: %w", title, err)
	default:
		if hash.Equal(existing, content) {
			c.logger.Debug("content unchanged, skipping write", "title", title.String())
			return OutcomeSkipped, nil
		}
	}

	if c.dryRun {
		c.logger.Info("dry run: would write page", "title", title.String())
		return OutcomePlanned, nil
	}
	if err := c.store.CreateOrUpdate(ctx, title, content, c.summary(action)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", title, err)
	}
	c.logger.Debug("page written", "title", title.String(), "action", action)
	return OutcomeWritten, nil
}

// WriteOnce stores content at title only when the page does not exist yet.
// Display stubs use this: existence is detected by testing for the page,
// never by inspecting its content.
func (c *PageCreator) WriteOnce(ctx context.Context, title wiki.Title, content, action string) (Outcome, error) {
	exists, err := c.store.Exists(ctx, title)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", title, err)
	}
	if exists {
		return OutcomeSkipped, nil
	}
	if c.dryRun {
		c.logger.Info("dry run: would create page", "title", title.String())
		return OutcomePlanned, nil
	}
	if err := c.store.CreateOrUpdate(ctx, title, content, c.summary(action)); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", title, err)
	}
	c.logger.Debug("page created", "title", title.String(), "action", action)
	return OutcomeWritten, nil
}

// UpdateRegion rewrites only the marker-delimited schema region of title,
// preserving everything outside the markers byte-for-byte.
func (c *PageCreator) UpdateRegion(ctx context.Context, title wiki.Title, region, action string) (Outcome, error) {
	return c.UpdateMarkedRegion(ctx, title, region, wiki.SchemaRegionStart, wiki.SchemaRegionEnd, action)
}

// UpdateMarkedRegion rewrites the region delimited by an arbitrary marker
// pair. The installer uses this with its own markers so base-ontology
// regions stay distinct from entity schema regions on the same page.
func (c *PageCreator) UpdateMarkedRegion(ctx context.Context, title wiki.Title, region, start, end, action string) (Outcome, error) {
	existing, err := c.store.Read(ctx, title)
	if errors.Is(err, wiki.ErrPageNotFound) {
		existing = ""
	} else if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", title, err)
	}

	updated, err := wiki.UpdateWithinMarkers(existing, region, start, end)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", title, err)
	}
	return c.Write(ctx, title, updated, action)
}

// Delete removes the page at title.
func (c *PageCreator) Delete(ctx context.Context, title wiki.Title, reason string) error {
	if c.dryRun {
		c.logger.Info("dry run: would delete page", "title", title.String())
		return nil
	}
	return c.store.Delete(ctx, title, c.summary(reason))
}

// Purge invalidates cached renderings of title.
func (c *PageCreator) Purge(ctx context.Context, title wiki.Title) error {
	if c.dryRun {
		return nil
	}
	return c.store.Purge(ctx, title)
}
