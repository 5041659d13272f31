// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// DisplayStub renders Template:<category>/display: the visual layout for
// an entity of the category. Unlike the other artifacts, the stub is
// created once and then belongs to wiki editors; the compiler checks page
// existence, never content, before writing it.
//
// Layout: header properties as a definition line each, then every display
// section as a heading with a property table, then a table of the
// remaining properties that no section claimed.
func DisplayStub(category model.Category, provider PropertyProvider) string {
	header := category.DisplayHeaderProperties()
	sections := category.DisplaySections()

	placed := make(map[string]struct{}, len(header))
	for _, name := range header {
		placed[name] = struct{}{}
	}
	for _, section := range sections {
		for _, name := range section.Properties {
			placed[name] = struct{}{}
		}
	}
	var rest []string
	for _, name := range category.AllPropertyNames() {
		if _, ok := placed[name]; !ok {
			rest = append(rest, name)
		}
	}

	var b strings.Builder
	b.WriteString(StubBanner)
	b.WriteString("\n<includeonly>")
	for _, name := range header {
		p := lookupProperty(provider, name)
		b.WriteString(fmt.Sprintf("\n'''%s''': %s\n", displayLabel(p), renderedValue(p)))
	}
	for _, section := range sections {
		b.WriteString(fmt.Sprintf("\n== %s ==\n", section.Name))
		writePropertyTable(&b, section.Properties, provider)
	}
	if len(rest) > 0 {
		if len(sections) > 0 || len(header) > 0 {
			b.WriteString("\n== Details ==\n")
		} else {
			b.WriteString("\n")
		}
		writePropertyTable(&b, rest, provider)
	}
	b.WriteString("</includeonly>\n")
	b.WriteString("<noinclude>" + ManagedCategoryTag + "</noinclude>\n")
	return b.String()
}

func writePropertyTable(b *strings.Builder, names []string, provider PropertyProvider) {
	b.WriteString("{| class=\"wikitable\"\n")
	for _, name := range names {
		p := lookupProperty(provider, name)
		b.WriteString(fmt.Sprintf("|-\n! %s\n| %s\n", displayLabel(p), renderedValue(p)))
	}
	b.WriteString("|}\n")
}

// renderedValue renders the value cell for one property, guarded so an
// absent parameter leaves the cell empty. Render template selection:
// explicit override, then the built-in Page renderer for Page datatypes,
// then the built-in text renderer.
func renderedValue(p model.Property) string {
	param := ParamName(p.Name())
	value := fmt.Sprintf("{{{%s|}}}", param)

	// Multi-valued Page properties restricted to a namespace render as a
	// comma-separated link list. The namespace prefix is attached here at
	// generation time so the host resolves each link exactly once.
	if p.AllowsMultipleValues() && p.Datatype() == model.DatatypePage && p.AllowedNamespace() != "" {
		return fmt.Sprintf("{{#if:%s|{{#arraymap:%s|,|%s|[[%s:%s|%s]]|,&#32;}}|}}",
			value, value, arrayMapToken, p.AllowedNamespace(), arrayMapToken, arrayMapToken)
	}

	tmpl := renderTemplateFor(p)
	return fmt.Sprintf("{{#if:%s|{{%s|%s}}|}}", value, tmpl, value)
}

func renderTemplateFor(p model.Property) string {
	if override := p.HasTemplate(); override != "" {
		return override
	}
	if p.Datatype() == model.DatatypePage {
		return renderTemplateName("Page")
	}
	return renderTemplateName("Text")
}

func displayLabel(p model.Property) string {
	if label := p.Label(); label != "" {
		return label
	}
	return p.Name()
}
