// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"

	"github.com/semanticschemas/semanticschemas/internal/resolver"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/pkg/hash"
)

// StatusReport is the state document plus the drift computed against the
// live wiki: templates whose regenerated content would differ, and managed
// pages edited, added, or removed since their fingerprints were recorded.
type StatusReport struct {
	State          *state.Document `json:"state"`
	StaleTemplates []string        `json:"staleTemplates,omitempty"`
	PageDrift      state.PageDiff  `json:"pageDrift"`
}

// Status reports drift without writing anything.
func (c *Compiler) Status(ctx context.Context) (*StatusReport, error) {
	doc, err := c.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	st := c.stores(ImportOptions{})
	schema, err := st.LoadUniverse(ctx)
	if err != nil {
		return nil, err
	}

	currentPages := make(map[string]string)
	collect := func(names []string, title func(string) wiki.Title) error {
		for _, name := range names {
			t := title(name)
			content, err := c.backend.Read(ctx, t)
			if err != nil {
				return fmt.Errorf("failed to fingerprint %s: %w", t, err)
			}
			currentPages[t.String()] = hash.Content(content)
		}
		return nil
	}

	propNames, err := st.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	subNames, err := st.Subobjects.List(ctx)
	if err != nil {
		return nil, err
	}
	catNames, err := st.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := collect(propNames, st.Properties.Title); err != nil {
		return nil, err
	}
	if err := collect(subNames, st.Subobjects.Title); err != nil {
		return nil, err
	}
	if err := collect(catNames, st.Categories.Title); err != nil {
		return nil, err
	}

	// Render what regeneration would produce and compare fingerprints.
	// Display stubs are create-once and excluded: divergence there is
	// editor content, not staleness.
	res := resolver.New(schema)
	plan, _ := planArtifacts(schema, res, schema.CategoryNames(), doc)
	if err := c.renderAll(ctx, plan); err != nil {
		return nil, err
	}
	currentTemplates := make(map[string]string, len(plan))
	for _, a := range plan {
		if a.once {
			continue
		}
		currentTemplates[a.name] = hash.Content(a.content)
	}

	return &StatusReport{
		State:          doc,
		StaleTemplates: doc.StaleTemplates(currentTemplates),
		PageDrift:      doc.ComparePages(currentPages),
	}, nil
}
