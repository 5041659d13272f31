// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// SchemaProvider extends property lookup with subobject lookup, needed by
// the form generator to declare multiple-instance subobject sections.
// *model.Schema satisfies it.
type SchemaProvider interface {
	PropertyProvider
	SubobjectByName(name string) (model.Subobject, bool)
}

// Form renders Form:<name> for the categories in resolved. One resolved
// set covers the single-category and the composite case: with a single
// category every entry lands in its one template section, and with several
// the shared entries are concentrated in the first section.
//
// Distribution: categories are sorted alphabetically (the same order the
// form name uses). The first template section carries every shared entry
// plus the first category's own entries; later sections carry only their
// category's non-shared entries. Within a section, required fields come
// first and each group is alphabetical, so the rendered bytes do not
// depend on the order the categories were resolved in.
func Form(resolved model.ResolvedPropertySet, schema SchemaProvider) string {
	categories := SortedCategories(resolved.CategoryNames())
	name := FormName(resolved.CategoryNames())

	var b strings.Builder
	b.WriteString(ManagedBanner)
	b.WriteString("\n<noinclude>\n")
	b.WriteString(fmt.Sprintf("This is the %q form.\nTo create a page with this form, enter the page name below;\nif a page with that name already exists, you will be sent to a form to edit that page.\n\n{{#forminput:form=%s}}\n", name, name))
	b.WriteString("</noinclude><includeonly>\n")
	b.WriteString("<div id=\"wikiPreview\" style=\"display: none; padding-bottom: 25px; margin-bottom: 25px; border-bottom: 1px solid #AAAAAA;\"></div>\n")

	for i, category := range categories {
		entries := sectionEntries(resolved, categories, i)
		b.WriteString(fmt.Sprintf("{{{for template|%s|label=%s}}}\n", category, category))
		b.WriteString("{| class=\"formtable\"\n")
		for _, entry := range entries {
			p := lookupProperty(schema, entry.Name())
			required := resolved.PropertyRequired(entry.Name())
			b.WriteString(fmt.Sprintf("|-\n! %s:\n| %s\n", displayLabel(p), FieldDeclaration(p, required)))
		}
		b.WriteString("|}\n{{{end template}}}\n")
	}

	subEntries := slices.Clone(resolved.Subobjects())
	slices.SortStableFunc(subEntries, func(a, b model.ResolvedEntry) int {
		ar, br := resolved.SubobjectRequired(a.Name()), resolved.SubobjectRequired(b.Name())
		if ar != br {
			if ar {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name(), b.Name())
	})
	for _, entry := range subEntries {
		sub, ok := schema.SubobjectByName(entry.Name())
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n==== %s ====\n", sub.Name()))
		b.WriteString(fmt.Sprintf("{{{for template|%s/subobject|label=%s|multiple}}}\n", sub.Name(), sub.Name()))
		b.WriteString("{| class=\"formtable\"\n")
		for _, propName := range sub.RequiredProperties() {
			p := lookupProperty(schema, propName)
			b.WriteString(fmt.Sprintf("|-\n! %s:\n| %s\n", displayLabel(p), FieldDeclaration(p, true)))
		}
		for _, propName := range sub.OptionalProperties() {
			p := lookupProperty(schema, propName)
			b.WriteString(fmt.Sprintf("|-\n! %s:\n| %s\n", displayLabel(p), FieldDeclaration(p, false)))
		}
		b.WriteString("|}\n{{{end template}}}\n")
	}

	b.WriteString("\n{{{standard input|summary|label=Summary:}}}\n")
	b.WriteString("{{{standard input|save}}} {{{standard input|preview}}} {{{standard input|changes}}} {{{standard input|cancel}}}\n")
	for _, category := range categories {
		b.WriteString(fmt.Sprintf("[[Category:%s]]\n", category))
	}
	b.WriteString("</includeonly>\n")
	return b.String()
}

// sectionEntries selects the property entries for the template section at
// index in the sorted category list: shared entries concentrate in the
// first section, every other section gets only its own specifics. Entries
// are re-sorted into canonical order (required first, alphabetical within
// each group) because resolved output order follows the caller's category
// order and the same form must hash identically however it was requested.
func sectionEntries(resolved model.ResolvedPropertySet, sorted []string, index int) []model.ResolvedEntry {
	category := sorted[index]
	var out []model.ResolvedEntry
	for _, entry := range resolved.Properties() {
		switch {
		case entry.Shared():
			if index == 0 {
				out = append(out, entry)
			}
		case entrySource(entry) == category:
			out = append(out, entry)
		}
	}
	slices.SortStableFunc(out, func(a, b model.ResolvedEntry) int {
		ar, br := resolved.PropertyRequired(a.Name()), resolved.PropertyRequired(b.Name())
		if ar != br {
			if ar {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// entrySource returns the single contributing category of a non-shared
// entry.
func entrySource(entry model.ResolvedEntry) string {
	return entry.Sources()[0]
}
