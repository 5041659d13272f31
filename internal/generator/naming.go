// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package generator renders wiki artifacts from resolved schema values:
// semantic storage templates, dispatcher templates, display stubs, and
// entry forms. Generators are pure functions from model values to wikitext
// plus a target title; all page writing happens in the store layer.
package generator

import (
	"slices"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// PropertyProvider supplies property definitions during generation.
// *model.Schema satisfies it. An unresolvable reference falls back to the
// Page datatype rather than failing the artifact.
type PropertyProvider interface {
	PropertyByName(name string) (model.Property, bool)
}

// lookupProperty resolves name through provider, falling back to a bare
// Page-typed property when the definition is missing.
func lookupProperty(provider PropertyProvider, name string) model.Property {
	if p, ok := provider.PropertyByName(name); ok {
		return p
	}
	fallback, err := model.NewProperty(model.PropertySpec{Name: name, Datatype: model.FallbackDatatype})
	if err != nil {
		// The name already passed validation when it entered the schema.
		panic("generator: invalid property name " + name)
	}
	return fallback
}

// ParamName converts a property name into its template parameter name:
// one leading "Has " is stripped, spaces become underscores, colons become
// underscores, and the result is lowercased. Every generator and form uses
// this one mapping so template and form parameters always agree.
func ParamName(property string) string {
	s := strings.TrimPrefix(property, "Has ")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return strings.ToLower(s)
}

// FormName joins category names with "+" after sorting them, so the form
// for [A, B] and [B, A] is the same page.
func FormName(categories []string) string {
	sorted := slices.Clone(categories)
	slices.Sort(sorted)
	return strings.Join(sorted, "+")
}

// SortedCategories returns the deterministic category order used by
// composite artifacts: alphabetical, matching FormName.
func SortedCategories(categories []string) []string {
	sorted := slices.Clone(categories)
	slices.Sort(sorted)
	return sorted
}

// Title builders for every artifact class. Entity names have passed model
// validation, so title construction cannot fail.

// DispatcherTitle is the entity-facing template for a category.
func DispatcherTitle(category string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceTemplate, category)
}

// SemanticTemplateTitle stores the semantic annotations for a category.
func SemanticTemplateTitle(category string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceTemplate, category+"/semantic")
}

// DisplayTemplateTitle is the human-editable display stub for a category.
func DisplayTemplateTitle(category string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceTemplate, category+"/display")
}

// SubobjectTemplateTitle stores one subobject record.
func SubobjectTemplateTitle(subobject string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceTemplate, subobject+"/subobject")
}

// FormTitle is the entry form for one or more categories.
func FormTitle(categories []string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceForm, FormName(categories))
}

// RenderTemplateTitle names a built-in per-datatype render template, e.g.
// "Template:SemanticSchemas/Render/Page".
func RenderTemplateTitle(name string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceTemplate, "SemanticSchemas/Render/"+name)
}

// renderTemplateName is the transclusion name (no namespace prefix) of a
// built-in render template.
func renderTemplateName(name string) string {
	return "SemanticSchemas/Render/" + name
}
