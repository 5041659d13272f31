// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/pkg/hash"
)

// Import validates doc and writes it into the wiki: property pages first,
// then subobject and category pages, then the generated artifacts, then
// the state record. Validation errors stop the run before any write. With
// opts.DryRun the same plan runs against a non-writing creator and the
// state document is left untouched.
func (c *Compiler) Import(ctx context.Context, doc *schemafile.Document, opts ImportOptions) (*ImportReport, error) {
	schema, result := schemafile.Build(doc)
	report := &ImportReport{Validation: result, DryRun: opts.DryRun}
	if !result.OK() {
		return report, ErrValidationFailed
	}
	if opts.Bypass {
		c.logger.Info("import running with host rate-limit bypass")
	}

	st := c.stores(opts)
	var written []wiki.Title

	for _, p := range schema.Properties() {
		outcome, err := st.Properties.Save(ctx, p)
		report.Entities = append(report.Entities,
			entityResult(p.Name(), st.Properties.Title(p.Name()), outcome, err))
		if err == nil {
			written = append(written, st.Properties.Title(p.Name()))
		}
	}
	if err := c.flush(ctx); err != nil {
		return report, fmt.Errorf("after property pages: %w", err)
	}

	for _, sub := range schema.Subobjects() {
		outcome, err := st.Subobjects.Save(ctx, sub)
		report.Entities = append(report.Entities,
			entityResult(sub.Name(), st.Subobjects.Title(sub.Name()), outcome, err))
		if err == nil {
			written = append(written, st.Subobjects.Title(sub.Name()))
		}
	}
	for _, cat := range schema.Categories() {
		outcome, err := st.Categories.Save(ctx, cat)
		report.Entities = append(report.Entities,
			entityResult(cat.Name(), st.Categories.Title(cat.Name()), outcome, err))
		if err == nil {
			written = append(written, st.Categories.Title(cat.Name()))
		}
	}
	if err := c.flush(ctx); err != nil {
		return report, fmt.Errorf("after definition pages: %w", err)
	}

	artifacts, err := c.regenerateSchema(ctx, st, schema, schema.CategoryNames(), opts.DryRun)
	report.Artifacts = artifacts
	if err != nil {
		return report, err
	}

	if opts.DryRun {
		return report, nil
	}
	if err := c.recordPageState(ctx, written); err != nil {
		return report, err
	}
	return report, nil
}

// recordPageState fingerprints the entity pages that were just written and
// merges them into the state document.
func (c *Compiler) recordPageState(ctx context.Context, titles []wiki.Title) error {
	hashes := make(map[string]string, len(titles))
	for _, title := range titles {
		content, err := c.backend.Read(ctx, title)
		if err != nil {
			return fmt.Errorf("failed to fingerprint %s: %w", title, err)
		}
		hashes[title.String()] = hash.Content(content)
	}
	return c.state.RecordPages(ctx, hashes)
}

func entityResult(name string, title wiki.Title, outcome store.Outcome, err error) ArtifactResult {
	r := ArtifactResult{Name: name, Title: title.String(), Outcome: outcome}
	if err != nil {
		r.Error = err.Error()
		artifactsFailed.Inc()
	} else {
		countOutcome(outcome)
	}
	return r
}
