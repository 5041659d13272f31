// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"fmt"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/generator"
	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// Base-ontology region markers. They are distinct from the entity schema
// markers so a base property page never looks like a managed schema entity
// to the store enumeration.
const (
	baseRegionStart = "<!-- SemanticSchemas Base Start -->"
	baseRegionEnd   = "<!-- SemanticSchemas Base End -->"

	baseAnnotationsStart = "<!-- SemanticSchemas Base Annotations Start -->"
	baseAnnotationsEnd   = "<!-- SemanticSchemas Base Annotations End -->"
)

// RenderTemplate is one built-in per-datatype render template. Body is the
// transcluded wikitext; {{{1|}}} carries the value.
type RenderTemplate struct {
	Name string
	Body string
}

// BaseProperty is one property of the base ontology itself: the vocabulary
// the compiler's own annotations are written in.
type BaseProperty struct {
	Name     string
	Datatype model.Datatype
	Label    string
}

// BaseSubobject is one subobject declaration of the base ontology.
type BaseSubobject struct {
	Name  string
	Label string
}

// BaseCategory is one category declaration of the base ontology.
type BaseCategory struct {
	Name        string
	Label       string
	Description string
}

// Ontology is the data the installer writes, grouped by what each layer
// depends on. The zero value installs nothing.
type Ontology struct {
	RenderTemplates []RenderTemplate
	Properties      []BaseProperty
	Subobjects      []BaseSubobject
	Categories      []BaseCategory
}

// Base returns the compiler's own base ontology: the render templates the
// display stubs transclude, the typed properties its page annotations use,
// and the category that marks managed pages.
func Base() Ontology {
	return Ontology{
		RenderTemplates: []RenderTemplate{
			{Name: "Text", Body: "{{{1|}}}"},
			// The leading colon forces a page link even when the value
			// begins with a namespace or interwiki prefix.
			{Name: "Page", Body: "[[:{{{1|}}}]]"},
			{Name: "Date", Body: "{{{1|}}}"},
			{Name: "URL", Body: "[{{{1|}}} {{{1|}}}]"},
			{Name: "Email", Body: "[mailto:{{{1|}}} {{{1|}}}]"},
			{Name: "Code", Body: "<code>{{{1|}}}</code>"},
		},
		Properties: []BaseProperty{
			{Name: "Has label", Datatype: model.DatatypeText, Label: "Label"},
			{Name: "Has template", Datatype: model.DatatypeText, Label: "Render template"},
			{Name: "Has required property", Datatype: model.DatatypePage, Label: "Required property"},
			{Name: "Has optional property", Datatype: model.DatatypePage, Label: "Optional property"},
			{Name: "Has required subobject", Datatype: model.DatatypePage, Label: "Required subobject"},
			{Name: "Has optional subobject", Datatype: model.DatatypePage, Label: "Optional subobject"},
			{Name: "Has subobject type", Datatype: model.DatatypePage, Label: "Subobject type"},
			{Name: "Has target namespace", Datatype: model.DatatypeText, Label: "Target namespace"},
		},
		// The base ontology declares no subobjects of its own; the layer
		// exists for ontology extensions and for the user schema import
		// path, which follows the same ordering.
		Subobjects: nil,
		Categories: []BaseCategory{
			{
				Name:        "SemanticSchemas managed",
				Label:       "SemanticSchemas managed",
				Description: "Pages in this category are generated and maintained by the schema compiler.",
			},
		},
	}
}

// Page is one page write of a layer. When StartMarker is set the write is
// scoped to that marker-delimited region; otherwise the whole page is
// overwritten.
type Page struct {
	Title       wiki.Title
	Content     string
	StartMarker string
	EndMarker   string
}

// Layer is an ordered group of page writes that must reach semantic
// quiescence before the next group starts.
type Layer struct {
	Name  string
	Pages []Page
}

// Layers expands the ontology into the five install layers, in dependency
// order.
func (o Ontology) Layers() []Layer {
	return []Layer{
		{Name: "render-templates", Pages: o.renderTemplatePages()},
		{Name: "property-types", Pages: o.propertyTypePages()},
		{Name: "property-annotations", Pages: o.propertyAnnotationPages()},
		{Name: "subobjects", Pages: o.subobjectPages()},
		{Name: "categories", Pages: o.categoryPages()},
	}
}

func (o Ontology) renderTemplatePages() []Page {
	pages := make([]Page, 0, len(o.RenderTemplates))
	for _, rt := range o.RenderTemplates {
		var b strings.Builder
		b.WriteString(generator.ManagedBanner)
		b.WriteString("\n<includeonly>")
		b.WriteString(rt.Body)
		b.WriteString("</includeonly>\n")
		b.WriteString("<noinclude>" + generator.ManagedCategoryTag + "</noinclude>\n")
		pages = append(pages, Page{
			Title:   generator.RenderTemplateTitle(rt.Name),
			Content: b.String(),
		})
	}
	return pages
}

func (o Ontology) propertyTypePages() []Page {
	pages := make([]Page, 0, len(o.Properties))
	for _, p := range o.Properties {
		pages = append(pages, Page{
			Title:       wiki.MustTitle(wiki.NamespaceProperty, p.Name),
			Content:     fmt.Sprintf("[[Has type::%s]]", p.Datatype.SemanticType()),
			StartMarker: baseRegionStart,
			EndMarker:   baseRegionEnd,
		})
	}
	return pages
}

// propertyAnnotationPages carries the annotations whose properties must
// already be typed: the labels on the base property pages themselves.
func (o Ontology) propertyAnnotationPages() []Page {
	var pages []Page
	for _, p := range o.Properties {
		if p.Label == "" {
			continue
		}
		pages = append(pages, Page{
			Title:       wiki.MustTitle(wiki.NamespaceProperty, p.Name),
			Content:     fmt.Sprintf("[[Has label::%s]]", p.Label),
			StartMarker: baseAnnotationsStart,
			EndMarker:   baseAnnotationsEnd,
		})
	}
	return pages
}

func (o Ontology) subobjectPages() []Page {
	var pages []Page
	for _, s := range o.Subobjects {
		content := fmt.Sprintf("[[Has subobject type::Subobject:%s]]", s.Name)
		if s.Label != "" {
			content += fmt.Sprintf("\n[[Has label::%s]]", s.Label)
		}
		pages = append(pages, Page{
			Title:       wiki.MustTitle(wiki.NamespaceSubobject, s.Name),
			Content:     content,
			StartMarker: baseRegionStart,
			EndMarker:   baseRegionEnd,
		})
	}
	return pages
}

func (o Ontology) categoryPages() []Page {
	var pages []Page
	for _, c := range o.Categories {
		var lines []string
		if c.Description != "" {
			lines = append(lines, c.Description)
		}
		if c.Label != "" {
			lines = append(lines, fmt.Sprintf("[[Has label::%s]]", c.Label))
		}
		pages = append(pages, Page{
			Title:       wiki.MustTitle(wiki.NamespaceCategory, c.Name),
			Content:     strings.Join(lines, "\n"),
			StartMarker: baseRegionStart,
			EndMarker:   baseRegionEnd,
		})
	}
	return pages
}
