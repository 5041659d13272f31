// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// DispatcherTemplate renders Template:<category>: the thin indirection an
// entity page transcludes. It forwards every parameter to the semantic
// template and the display stub and tags the page with its category. All
// template decisions are made here at generation time; the dispatcher
// never probes the wiki for template existence.
func DispatcherTemplate(category model.Category) string {
	name := category.Name()
	params := paramForward(category)

	var b strings.Builder
	b.WriteString(ManagedBanner)
	b.WriteString("\n<includeonly>")
	b.WriteString(fmt.Sprintf("{{%s/semantic%s}}", name, params))
	b.WriteString(fmt.Sprintf("{{%s/display%s}}", name, params))
	b.WriteString(fmt.Sprintf("[[Category:%s]]", name))
	b.WriteString("</includeonly>\n")
	b.WriteString("<noinclude>" + ManagedCategoryTag + "</noinclude>\n")
	return b.String()
}

// paramForward builds the parameter pass-through for every property of the
// category, one per line for readability of the generated page.
func paramForward(category model.Category) string {
	names := category.AllPropertyNames()
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range names {
		param := ParamName(name)
		b.WriteString(fmt.Sprintf("\n|%s={{{%s|}}}", param, param))
	}
	b.WriteString("\n")
	return b.String()
}
