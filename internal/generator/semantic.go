// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// arrayMapToken is the iterator variable used in #arraymap annotations. A
// single-letter variable would also be replaced inside property and
// namespace names ("x" in "Taxon"), so the token is multi-character and
// delimiter-framed.
const arrayMapToken = "@@item@@"

// SemanticTemplate renders Template:<category>/semantic: the template
// whose expansion stores the semantic annotations of one entity instance.
//
// Every per-property line is guarded with #if so that an empty parameter
// stores nothing. The guard is what makes multi-category pages safe: two
// templates on the same page may both declare property P, and the one
// whose parameter is empty must not zero out the other's value.
func SemanticTemplate(category model.Category, provider PropertyProvider) string {
	properties := category.AllPropertyNames()

	var setLines []string
	var inlineLines []string
	for _, name := range properties {
		p := lookupProperty(provider, name)
		if line, inline := propertyAnnotation(p); inline {
			inlineLines = append(inlineLines, line)
		} else {
			setLines = append(setLines, line)
		}
	}

	var b strings.Builder
	b.WriteString(ManagedBanner)
	b.WriteString("\n<includeonly>")
	if len(setLines) > 0 {
		b.WriteString("{{#set:\n")
		for _, line := range setLines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("}}")
	}
	for _, line := range inlineLines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("</includeonly>\n")
	b.WriteString("<noinclude>" + ManagedCategoryTag + "</noinclude>\n")
	return b.String()
}

// propertyAnnotation renders the annotation for one property. Most
// properties become a guarded line inside the #set block; a multi-valued
// Page property with a namespace restriction cannot (each value needs the
// namespace prefixed individually), so it becomes a standalone inline
// #arraymap annotation instead.
func propertyAnnotation(p model.Property) (line string, inline bool) {
	param := ParamName(p.Name())
	value := fmt.Sprintf("{{{%s|}}}", param)

	if p.AllowsMultipleValues() && p.Datatype() == model.DatatypePage && p.AllowedNamespace() != "" {
		return fmt.Sprintf("{{#if:%s|{{#arraymap:%s|,|%s|[[%s::%s:%s]]|}}|}}",
			value, value, arrayMapToken, p.Name(), p.AllowedNamespace(), arrayMapToken), true
	}

	stored := value
	if p.AllowedNamespace() != "" {
		stored = p.AllowedNamespace() + ":" + value
	}
	line = fmt.Sprintf("|%s={{#if:%s|%s|}}", p.Name(), value, stored)
	if p.AllowsMultipleValues() {
		line += "|+sep=,"
	}
	return line, false
}

// SubobjectTemplate renders Template:<subobject>/subobject: a template
// that records one subobject instance on the calling page. The subobject
// type annotation is constant and therefore unguarded; property lines are
// guarded like in the semantic template.
func SubobjectTemplate(subobject model.Subobject, provider PropertyProvider) string {
	var b strings.Builder
	b.WriteString(ManagedBanner)
	b.WriteString("\n<includeonly>{{#subobject:\n")
	b.WriteString(fmt.Sprintf("|Has subobject type=Subobject:%s\n", subobject.Name()))
	for _, name := range subobject.AllPropertyNames() {
		p := lookupProperty(provider, name)
		line, inline := propertyAnnotation(p)
		if inline {
			// Subobject records cannot carry standalone inline annotations;
			// fall back to a guarded multi-value line without the prefix.
			param := ParamName(p.Name())
			line = fmt.Sprintf("|%s={{#if:{{{%s|}}}|{{{%s|}}}|}}|+sep=,", p.Name(), param, param)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}}</includeonly>\n")
	b.WriteString("<noinclude>" + ManagedCategoryTag + "</noinclude>\n")
	return b.String()
}
