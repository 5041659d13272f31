// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"slices"
)

// ResolvedEntry is one property or subobject in a resolution result, with
// attribution to the input categories whose effective definition contributed
// it. Sources preserve input category order and are never empty.
type ResolvedEntry struct {
	name    string
	sources []string
}

// NewResolvedEntry constructs an attributed entry. An empty source list is a
// resolver bug and panics.
func NewResolvedEntry(name string, sources []string) ResolvedEntry {
	if len(sources) == 0 {
		panic(fmt.Sprintf("model: resolved entry %q has no sources", name))
	}
	return ResolvedEntry{name: name, sources: slices.Clone(sources)}
}

func (e ResolvedEntry) Name() string { return e.name }

// Sources returns the contributing category names in input order.
func (e ResolvedEntry) Sources() []string { return slices.Clone(e.sources) }

// Shared reports whether two or more categories contributed this entry.
func (e ResolvedEntry) Shared() bool { return len(e.sources) >= 2 }

// ResolvedPropertySet is the transient result of resolving one or more
// categories: deduplicated, required-first property and subobject lists with
// per-entry source attribution. It is produced on demand and never
// persisted.
type ResolvedPropertySet struct {
	categoryNames      []string
	requiredProperties []ResolvedEntry
	optionalProperties []ResolvedEntry
	requiredSubobjects []ResolvedEntry
	optionalSubobjects []ResolvedEntry
}

// NewResolvedPropertySet assembles a resolution result and enforces its
// invariants: across required and optional, a name appears at most once, and
// every entry carries at least one source. Violations indicate a resolver
// bug and panic.
func NewResolvedPropertySet(categoryNames []string, requiredProps, optionalProps, requiredSubs, optionalSubs []ResolvedEntry) ResolvedPropertySet {
	assertUniqueEntries("property", requiredProps, optionalProps)
	assertUniqueEntries("subobject", requiredSubs, optionalSubs)
	return ResolvedPropertySet{
		categoryNames:      slices.Clone(categoryNames),
		requiredProperties: slices.Clone(requiredProps),
		optionalProperties: slices.Clone(optionalProps),
		requiredSubobjects: slices.Clone(requiredSubs),
		optionalSubobjects: slices.Clone(optionalSubs),
	}
}

func assertUniqueEntries(kind string, required, optional []ResolvedEntry) {
	seen := make(map[string]struct{}, len(required)+len(optional))
	for _, e := range required {
		if _, dup := seen[e.name]; dup {
			panic(fmt.Sprintf("model: resolved %s %q appears more than once", kind, e.name))
		}
		seen[e.name] = struct{}{}
	}
	for _, e := range optional {
		if _, dup := seen[e.name]; dup {
			panic(fmt.Sprintf("model: resolved %s %q appears more than once", kind, e.name))
		}
		seen[e.name] = struct{}{}
	}
}

// CategoryNames returns the input category names in input order.
func (r ResolvedPropertySet) CategoryNames() []string { return slices.Clone(r.categoryNames) }

func (r ResolvedPropertySet) RequiredProperties() []ResolvedEntry {
	return slices.Clone(r.requiredProperties)
}

func (r ResolvedPropertySet) OptionalProperties() []ResolvedEntry {
	return slices.Clone(r.optionalProperties)
}

func (r ResolvedPropertySet) RequiredSubobjects() []ResolvedEntry {
	return slices.Clone(r.requiredSubobjects)
}

func (r ResolvedPropertySet) OptionalSubobjects() []ResolvedEntry {
	return slices.Clone(r.optionalSubobjects)
}

// Properties returns required entries followed by optional entries.
func (r ResolvedPropertySet) Properties() []ResolvedEntry {
	out := make([]ResolvedEntry, 0, len(r.requiredProperties)+len(r.optionalProperties))
	out = append(out, r.requiredProperties...)
	out = append(out, r.optionalProperties...)
	return out
}

// Subobjects returns required entries followed by optional entries.
func (r ResolvedPropertySet) Subobjects() []ResolvedEntry {
	out := make([]ResolvedEntry, 0, len(r.requiredSubobjects)+len(r.optionalSubobjects))
	out = append(out, r.requiredSubobjects...)
	out = append(out, r.optionalSubobjects...)
	return out
}

// PropertyRequired reports whether name is in the required property list.
func (r ResolvedPropertySet) PropertyRequired(name string) bool {
	return slices.ContainsFunc(r.requiredProperties, func(e ResolvedEntry) bool { return e.name == name })
}

// SubobjectRequired reports whether name is in the required subobject list.
func (r ResolvedPropertySet) SubobjectRequired(name string) bool {
	return slices.ContainsFunc(r.requiredSubobjects, func(e ResolvedEntry) bool { return e.name == name })
}
