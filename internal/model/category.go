// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"slices"
)

// Section groups property names under a heading for display or form layout.
type Section struct {
	Name       string
	Properties []string
}

func cloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section{Name: s.Name, Properties: slices.Clone(s.Properties)}
	}
	return out
}

// CategorySpec carries the raw attributes for constructing a Category.
type CategorySpec struct {
	Name                    string
	Label                   string
	Description             string
	Parents                 []string
	RequiredProperties      []string
	OptionalProperties      []string
	RequiredSubobjects      []string
	OptionalSubobjects      []string
	DisplayHeaderProperties []string
	DisplaySections         []Section
	FormSections            []Section
	TargetNamespace         string
}

// Category is an immutable category definition. Parents are held as names
// and resolved through an enclosing schema; a category never holds a pointer
// to another category. Required and optional lists are disjoint after
// construction: a name present in both is promoted to required, and the
// promotion is recorded so validators can surface it as a warning.
type Category struct {
	name                    string
	label                   string
	description             string
	parents                 []string
	requiredProperties      []string
	optionalProperties      []string
	requiredSubobjects      []string
	optionalSubobjects      []string
	displayHeaderProperties []string
	displaySections         []Section
	formSections            []Section
	targetNamespace         string

	promotedProperties []string
	promotedSubobjects []string
}

// NewCategory validates spec, applies required/optional normalization, and
// constructs an immutable Category.
func NewCategory(spec CategorySpec) (Category, error) {
	if err := validateName(spec.Name); err != nil {
		return Category{}, fmt.Errorf("category: %w", err)
	}
	seenParents := make(map[string]struct{}, len(spec.Parents))
	for _, parent := range spec.Parents {
		if parent == spec.Name {
			return Category{}, fmt.Errorf("category %q: %w", spec.Name, ErrSelfParent)
		}
		if _, dup := seenParents[parent]; dup {
			return Category{}, fmt.Errorf("category %q: %w: %q", spec.Name, ErrDuplicateParent, parent)
		}
		seenParents[parent] = struct{}{}
	}

	reqProps, optProps, promotedProps := normalizeRequiredOptional(spec.RequiredProperties, spec.OptionalProperties)
	reqSubs, optSubs, promotedSubs := normalizeRequiredOptional(spec.RequiredSubobjects, spec.OptionalSubobjects)

	return Category{
		name:                    spec.Name,
		label:                   spec.Label,
		description:             spec.Description,
		parents:                 slices.Clone(spec.Parents),
		requiredProperties:      reqProps,
		optionalProperties:      optProps,
		requiredSubobjects:      reqSubs,
		optionalSubobjects:      optSubs,
		displayHeaderProperties: slices.Clone(spec.DisplayHeaderProperties),
		displaySections:         cloneSections(spec.DisplaySections),
		formSections:            cloneSections(spec.FormSections),
		targetNamespace:         spec.TargetNamespace,
		promotedProperties:      promotedProps,
		promotedSubobjects:      promotedSubs,
	}, nil
}

// normalizeRequiredOptional deduplicates both lists preserving first
// occurrence, then promotes any name appearing in both to required. The
// promoted names are returned so callers can report the conflict.
func normalizeRequiredOptional(required, optional []string) (req, opt, promoted []string) {
	req = dedupeNames(required)
	promoted = []string{}
	for _, name := range dedupeNames(optional) {
		if slices.Contains(req, name) {
			promoted = append(promoted, name)
			continue
		}
		opt = append(opt, name)
	}
	if len(promoted) == 0 {
		promoted = nil
	}
	return req, opt, promoted
}

func dedupeNames(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, name := range in {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (c Category) Name() string        { return c.name }
func (c Category) Label() string       { return c.label }
func (c Category) Description() string { return c.description }

// Parents returns the ordered parent names. Order is significant: it drives
// the C3 linearization.
func (c Category) Parents() []string { return slices.Clone(c.parents) }

func (c Category) RequiredProperties() []string { return slices.Clone(c.requiredProperties) }
func (c Category) OptionalProperties() []string { return slices.Clone(c.optionalProperties) }
func (c Category) RequiredSubobjects() []string { return slices.Clone(c.requiredSubobjects) }
func (c Category) OptionalSubobjects() []string { return slices.Clone(c.optionalSubobjects) }

func (c Category) DisplayHeaderProperties() []string { return slices.Clone(c.displayHeaderProperties) }
func (c Category) DisplaySections() []Section        { return cloneSections(c.displaySections) }
func (c Category) FormSections() []Section           { return cloneSections(c.formSections) }
func (c Category) TargetNamespace() string           { return c.targetNamespace }

// PromotedProperties lists property names that appeared in both required and
// optional at construction and were promoted. Used by validation to warn.
func (c Category) PromotedProperties() []string { return slices.Clone(c.promotedProperties) }

// PromotedSubobjects is the subobject counterpart of PromotedProperties.
func (c Category) PromotedSubobjects() []string { return slices.Clone(c.promotedSubobjects) }

// AllPropertyNames returns required followed by optional property names.
func (c Category) AllPropertyNames() []string {
	out := make([]string, 0, len(c.requiredProperties)+len(c.optionalProperties))
	out = append(out, c.requiredProperties...)
	out = append(out, c.optionalProperties...)
	return out
}

// AllSubobjectNames returns required followed by optional subobject names.
func (c Category) AllSubobjectNames() []string {
	out := make([]string, 0, len(c.requiredSubobjects)+len(c.optionalSubobjects))
	out = append(out, c.requiredSubobjects...)
	out = append(out, c.optionalSubobjects...)
	return out
}

// MergeWithParent produces a new category combining c with one ancestor:
//
//   - required = union(parent.required, c.required)
//   - optional = union(parent.optional, c.optional) minus required
//   - subobject lists follow the same rule
//   - label, description, targetNamespace, header properties, and section
//     lists: c's value wins when non-empty, otherwise the parent's is
//     inherited; same-named sections merge by appending the parent's novel
//     properties after c's
//   - parents are not altered
//
// The merge is pure: neither operand is mutated and the result shares no
// slices with either.
func (c Category) MergeWithParent(parent Category) Category {
	required := unionNames(parent.requiredProperties, c.requiredProperties)
	optional := subtractNames(unionNames(parent.optionalProperties, c.optionalProperties), required)
	requiredSubs := unionNames(parent.requiredSubobjects, c.requiredSubobjects)
	optionalSubs := subtractNames(unionNames(parent.optionalSubobjects, c.optionalSubobjects), requiredSubs)

	assertDisjoint(c.name, required, optional)
	assertDisjoint(c.name, requiredSubs, optionalSubs)

	merged := Category{
		name:                    c.name,
		label:                   firstNonEmpty(c.label, parent.label),
		description:             firstNonEmpty(c.description, parent.description),
		parents:                 slices.Clone(c.parents),
		requiredProperties:      required,
		optionalProperties:      optional,
		requiredSubobjects:      requiredSubs,
		optionalSubobjects:      optionalSubs,
		displayHeaderProperties: mergeNameList(c.displayHeaderProperties, parent.displayHeaderProperties),
		displaySections:         mergeSections(c.displaySections, parent.displaySections),
		formSections:            mergeSections(c.formSections, parent.formSections),
		targetNamespace:         firstNonEmpty(c.targetNamespace, parent.targetNamespace),
	}
	return merged
}

// unionNames keeps base order and appends names from extra not already
// present. The result is a fresh slice.
func unionNames(base, extra []string) []string {
	out := slices.Clone(base)
	for _, name := range extra {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func subtractNames(in, drop []string) []string {
	var out []string
	for _, name := range in {
		if !slices.Contains(drop, name) {
			out = append(out, name)
		}
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func mergeNameList(child, parent []string) []string {
	if len(child) > 0 {
		return slices.Clone(child)
	}
	return slices.Clone(parent)
}

// mergeSections implements child-wins section inheritance: when the child
// declares no sections the parent's are inherited wholesale; otherwise the
// child's section list is kept and any same-named parent section contributes
// its novel properties, appended in parent order.
func mergeSections(child, parent []Section) []Section {
	if len(child) == 0 {
		return cloneSections(parent)
	}
	out := cloneSections(child)
	for i := range out {
		for _, ps := range parent {
			if ps.Name != out[i].Name {
				continue
			}
			out[i].Properties = unionNames(out[i].Properties, ps.Properties)
		}
	}
	return out
}

// assertDisjoint guards the merge invariant. A violation is a bug in the
// merge algebra, not an input error, so it panics.
func assertDisjoint(category string, required, optional []string) {
	for _, name := range optional {
		if slices.Contains(required, name) {
			panic(fmt.Sprintf("model: merge for category %q produced %q in both required and optional", category, name))
		}
	}
}
