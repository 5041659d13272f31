// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import (
	"regexp"
	"strings"
)

// Annotation is one inline semantic annotation scanned from page content.
type Annotation struct {
	Property string
	Value    string
}

// annotationPattern matches inline [[Property::value]] annotations. This is
// a storage-level scan for the in-process backends, not a wikitext parser:
// template expansion does not happen here, so only literal annotations on
// the page body are visible.
var annotationPattern = regexp.MustCompile(`\[\[([^:\[\]|]+)::([^\]|]*)(?:\|[^\]]*)?\]\]`)

// ScanAnnotations returns every inline annotation in content, in document
// order. Property names and values are whitespace-trimmed.
func ScanAnnotations(content string) []Annotation {
	matches := annotationPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Annotation, 0, len(matches))
	for _, m := range matches {
		out = append(out, Annotation{
			Property: strings.TrimSpace(m[1]),
			Value:    strings.TrimSpace(m[2]),
		})
	}
	return out
}

// ScanAnnotationValues returns the values of one property's inline
// annotations in content, in document order. The property match is
// case-sensitive on the normalized (first-letter-capitalized) form, the
// same identity rule titles use.
func ScanAnnotationValues(content, property string) []string {
	want := NormalizeTitleText(property)
	var values []string
	for _, a := range ScanAnnotations(content) {
		if NormalizeTitleText(a.Property) == want {
			values = append(values, a.Value)
		}
	}
	return values
}
