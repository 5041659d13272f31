// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/semanticschemas/semanticschemas/internal/generator"
	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/resolver"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/pkg/hash"
)

// artifact is one planned page write. render is pure, so rendering fans
// out; writes happen afterwards, serialized, in plan order.
type artifact struct {
	name       string
	title      wiki.Title
	action     string
	once       bool
	category   string
	categories []string
	render     func() string
	content    string
}

// Regenerate rebuilds the wiki artifacts of the named categories from the
// definitions stored in the wiki. Empty names means every managed
// category. Composite forms recorded in the state document regenerate
// whenever one of their categories is selected.
func (c *Compiler) Regenerate(ctx context.Context, names []string) (*RegenerateReport, error) {
	st := c.stores(ImportOptions{})
	schema, err := st.LoadUniverse(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = schema.CategoryNames()
	}
	return c.regenerateSchema(ctx, st, schema, names, false)
}

// regenerateSchema plans, renders, and writes the artifacts for names over
// schema. Per-artifact failures land in the report and do not stop other
// artifacts; failed artifacts keep their previously recorded fingerprints.
func (c *Compiler) regenerateSchema(ctx context.Context, st *store.Stores, schema *model.Schema, names []string, dryRun bool) (*RegenerateReport, error) {
	doc, err := c.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	res := resolver.New(schema)
	plan, failures := planArtifacts(schema, res, names, doc)
	report := &RegenerateReport{Artifacts: failures}

	if err := c.renderAll(ctx, plan); err != nil {
		return report, err
	}

	recorded := make(map[string]state.TemplateState)
	for _, a := range plan {
		var outcome store.Outcome
		var werr error
		if a.once {
			outcome, werr = st.Creator.WriteOnce(ctx, a.title, a.content, a.action)
		} else {
			outcome, werr = st.Creator.Write(ctx, a.title, a.content, a.action)
		}

		result := ArtifactResult{Name: a.name, Title: a.title.String(), Outcome: outcome}
		if werr != nil {
			result.Error = werr.Error()
			report.Artifacts = append(report.Artifacts, result)
			artifactsFailed.Inc()
			c.logger.Error("artifact write failed", "artifact", a.name, "error", werr)
			continue
		}
		report.Artifacts = append(report.Artifacts, result)
		countOutcome(outcome)

		if a.once && outcome == store.OutcomeSkipped {
			// The stub exists and belongs to wiki editors now; its recorded
			// fingerprint stays whatever creation wrote.
			continue
		}
		ts := state.TemplateState{Generated: hash.Content(a.content)}
		if len(a.categories) >= 2 {
			ts.Categories = a.categories
		} else {
			ts.Category = a.category
		}
		recorded[a.name] = ts
	}

	if dryRun {
		return report, nil
	}
	if err := c.state.RecordTemplates(ctx, recorded); err != nil {
		return report, err
	}
	c.logger.Info("regeneration complete",
		"written", report.Written(), "skipped", report.Skipped(), "failed", report.Failed())
	return report, nil
}

// renderAll fans the pure renders out over a bounded errgroup. Each
// goroutine writes only its own artifact's content slot.
func (c *Compiler) renderAll(ctx context.Context, plan []*artifact) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(c.renderLimit)
	for _, a := range plan {
		g.Go(func() error {
			a.content = a.render()
			return nil
		})
	}
	return g.Wait()
}

// planArtifacts lays out the writes in dependency order: subobject
// templates, then per category dispatcher, semantic template, display stub,
// form, then recorded composite forms. Categories that cannot be resolved
// become failure entries; the rest of the plan is unaffected.
func planArtifacts(schema *model.Schema, res *resolver.Resolver, names []string, doc *state.Document) ([]*artifact, []ArtifactResult) {
	var plan []*artifact
	var failures []ArtifactResult

	for _, subName := range schema.SubobjectNames() {
		sub, _ := schema.SubobjectByName(subName)
		plan = append(plan, &artifact{
			name:   subName + "/subobject",
			title:  generator.SubobjectTemplateTitle(subName),
			action: fmt.Sprintf("Regenerate subobject template %s", subName),
			render: func() string { return generator.SubobjectTemplate(sub, schema) },
		})
	}

	requested := make(map[string]bool, len(names))
	for _, name := range sortedUnique(names) {
		requested[name] = true
		eff, err := res.EffectiveCategory(name)
		if err != nil {
			failures = append(failures, ArtifactResult{Name: name, Error: err.Error()})
			continue
		}
		resolved, err := res.ResolveMany([]string{name})
		if err != nil {
			failures = append(failures, ArtifactResult{Name: name, Error: err.Error()})
			continue
		}
		plan = append(plan,
			&artifact{
				name:     name,
				title:    generator.DispatcherTitle(name),
				action:   fmt.Sprintf("Regenerate dispatcher for %s", name),
				category: name,
				render:   func() string { return generator.DispatcherTemplate(eff) },
			},
			&artifact{
				name:     name + "/semantic",
				title:    generator.SemanticTemplateTitle(name),
				action:   fmt.Sprintf("Regenerate semantic template for %s", name),
				category: name,
				render:   func() string { return generator.SemanticTemplate(eff, schema) },
			},
			&artifact{
				name:     name + "/display",
				title:    generator.DisplayTemplateTitle(name),
				action:   fmt.Sprintf("Create display stub for %s", name),
				once:     true,
				category: name,
				render:   func() string { return generator.DisplayStub(eff, schema) },
			},
			&artifact{
				name:     "Form:" + name,
				title:    generator.FormTitle([]string{name}),
				action:   fmt.Sprintf("Regenerate form for %s", name),
				category: name,
				render:   func() string { return generator.Form(resolved, schema) },
			},
		)
	}

	for _, key := range sortedStateKeys(doc) {
		ts := doc.TemplateHashes[key]
		if len(ts.Categories) < 2 {
			continue
		}
		cats := generator.SortedCategories(ts.Categories)
		if !allKnown(schema, cats) || !anyRequested(requested, cats) {
			continue
		}
		resolved, err := res.ResolveMany(cats)
		if err != nil {
			failures = append(failures, ArtifactResult{Name: key, Error: err.Error()})
			continue
		}
		plan = append(plan, &artifact{
			name:       "Form:" + generator.FormName(cats),
			title:      generator.FormTitle(cats),
			action:     fmt.Sprintf("Regenerate composite form %s", generator.FormName(cats)),
			categories: cats,
			render:     func() string { return generator.Form(resolved, schema) },
		})
	}

	return plan, failures
}

func sortedUnique(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}

func sortedStateKeys(doc *state.Document) []string {
	keys := make([]string, 0, len(doc.TemplateHashes))
	for k := range doc.TemplateHashes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func allKnown(schema *model.Schema, names []string) bool {
	for _, n := range names {
		if _, ok := schema.CategoryByName(n); !ok {
			return false
		}
	}
	return true
}

func anyRequested(requested map[string]bool, names []string) bool {
	for _, n := range names {
		if requested[n] {
			return true
		}
	}
	return false
}

// RegenerateForm writes the (possibly composite) entry form for a set of
// categories and records the combination, so later regenerations keep it
// current. The resolution service calls this when a new combination is
// first requested.
func (c *Compiler) RegenerateForm(ctx context.Context, names []string) (*RegenerateReport, error) {
	st := c.stores(ImportOptions{})
	schema, err := st.LoadUniverse(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve over the sorted combination so the recorded hash matches
	// what a later full regeneration computes for the same form.
	cats := sortedUnique(names)
	res := resolver.New(schema)
	resolved, err := res.ResolveMany(cats)
	if err != nil {
		return nil, err
	}

	content := generator.Form(resolved, schema)
	formName := generator.FormName(cats)

	outcome, err := st.Creator.Write(ctx, generator.FormTitle(cats), content,
		fmt.Sprintf("Regenerate form %s", formName))
	if err != nil {
		artifactsFailed.Inc()
		return nil, err
	}
	countOutcome(outcome)

	ts := state.TemplateState{Generated: hash.Content(content)}
	if len(cats) >= 2 {
		ts.Categories = cats
	} else {
		ts.Category = cats[0]
	}
	if err := c.state.RecordTemplates(ctx, map[string]state.TemplateState{"Form:" + formName: ts}); err != nil {
		return nil, err
	}

	return &RegenerateReport{Artifacts: []ArtifactResult{{
		Name:    "Form:" + formName,
		Title:   generator.FormTitle(cats).String(),
		Outcome: outcome,
	}}}, nil
}
