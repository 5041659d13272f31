// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// entryAccumulator builds the deduplicated, attributed entry list for one
// kind (properties or subobjects).
type entryAccumulator struct {
	order   []string
	entries map[string]*pendingEntry
}

type pendingEntry struct {
	required bool
	sources  []string
}

func newEntryAccumulator() *entryAccumulator {
	return &entryAccumulator{entries: make(map[string]*pendingEntry)}
}

// add records name contributed by category. Required wins: once any input
// category requires the name it stays required. Each category appears in
// sources once, in input order.
func (a *entryAccumulator) add(name, category string, required bool) {
	e, ok := a.entries[name]
	if !ok {
		e = &pendingEntry{}
		a.entries[name] = e
		a.order = append(a.order, name)
	}
	e.required = e.required || required
	if len(e.sources) == 0 || e.sources[len(e.sources)-1] != category {
		e.sources = append(e.sources, category)
	}
}

// split returns the required and optional entry lists, required first, each
// in first-appearance order.
func (a *entryAccumulator) split() (required, optional []model.ResolvedEntry) {
	for _, name := range a.order {
		e := a.entries[name]
		entry := model.NewResolvedEntry(name, e.sources)
		if e.required {
			required = append(required, entry)
		} else {
			optional = append(optional, entry)
		}
	}
	return required, optional
}

// ResolveMany resolves one or more categories into a single deduplicated
// property set with source attribution. Any unknown name fails the whole
// call, naming every missing category; an empty input is an argument error.
// Duplicate input names collapse to their first occurrence. Equal inputs
// always produce deeply equal results.
func (r *Resolver) ResolveMany(names []string) (model.ResolvedPropertySet, error) {
	if len(names) == 0 {
		return model.ResolvedPropertySet{}, ErrNoCategories
	}

	var input []string
	for _, name := range names {
		if !slices.Contains(input, name) {
			input = append(input, name)
		}
	}

	var missing []string
	for _, name := range input {
		if _, ok := r.provider.CategoryByName(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return model.ResolvedPropertySet{}, fmt.Errorf("%w: %s", ErrUnknownCategory, strings.Join(missing, ", "))
	}

	props := newEntryAccumulator()
	subs := newEntryAccumulator()
	for _, name := range input {
		eff, err := r.EffectiveCategory(name)
		if err != nil {
			return model.ResolvedPropertySet{}, err
		}
		for _, p := range eff.RequiredProperties() {
			props.add(p, name, true)
		}
		for _, p := range eff.OptionalProperties() {
			props.add(p, name, false)
		}
		for _, s := range eff.RequiredSubobjects() {
			subs.add(s, name, true)
		}
		for _, s := range eff.OptionalSubobjects() {
			subs.add(s, name, false)
		}
	}

	requiredProps, optionalProps := props.split()
	requiredSubs, optionalSubs := subs.split()
	return model.NewResolvedPropertySet(input, requiredProps, optionalProps, requiredSubs, optionalSubs), nil
}
