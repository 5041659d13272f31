// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package schemafile loads, validates, and exports ontology schema
// documents. The wire format is one logical structure with two encodings,
// JSON and YAML, detected by the first non-whitespace byte. Loading
// produces an immutable model.Schema plus a validation result that
// separates errors (no writes may occur) from warnings (reported,
// non-fatal).
package schemafile

import (
	"bytes"
	"unicode"
)

// Format identifies the encoding of a schema document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the raw wire structure of a schema file. Field names follow
// the JSON encoding; sigs.k8s.io/yaml decodes the YAML encoding through
// the same tags.
type Document struct {
	SchemaVersion string                  `json:"schemaVersion"`
	Categories    map[string]CategoryDoc  `json:"categories,omitempty"`
	Properties    map[string]PropertyDoc  `json:"properties,omitempty"`
	Subobjects    map[string]SubobjectDoc `json:"subobjects,omitempty"`
}

// PropertyListsDoc splits referenced names into required and optional.
type PropertyListsDoc struct {
	Required []string `json:"required,omitempty"`
	Optional []string `json:"optional,omitempty"`
}

// SectionDoc is a named group of properties in display or form layout.
type SectionDoc struct {
	Name       string   `json:"name"`
	Properties []string `json:"properties,omitempty"`
}

// DisplayDoc configures the display stub layout for a category.
type DisplayDoc struct {
	Header   []string     `json:"header,omitempty"`
	Sections []SectionDoc `json:"sections,omitempty"`
}

// FormsDoc configures the entry-form layout for a category.
type FormsDoc struct {
	Sections []SectionDoc `json:"sections,omitempty"`
}

// CategoryDoc is the wire form of one category definition.
type CategoryDoc struct {
	Label           string           `json:"label,omitempty"`
	Description     string           `json:"description,omitempty"`
	Parents         []string         `json:"parents,omitempty"`
	Properties      PropertyListsDoc `json:"properties,omitempty"`
	Subobjects      PropertyListsDoc `json:"subobjects,omitempty"`
	Display         DisplayDoc       `json:"display,omitempty"`
	Forms           FormsDoc         `json:"forms,omitempty"`
	TargetNamespace string           `json:"targetNamespace,omitempty"`
}

// PropertyDoc is the wire form of one property definition.
type PropertyDoc struct {
	Datatype             string   `json:"datatype" validate:"required,oneof=Text Page Date Number Email URL Boolean Code Quantity Temperature Phone Geo"`
	Label                string   `json:"label,omitempty"`
	Description          string   `json:"description,omitempty"`
	AllowedValues        []string `json:"allowedValues,omitempty"`
	AllowedNamespace     string   `json:"allowedNamespace,omitempty"`
	AllowedCategory      string   `json:"allowedCategory,omitempty"`
	AllowsMultipleValues bool     `json:"allowsMultipleValues,omitempty"`
	HasTemplate          string   `json:"hasTemplate,omitempty"`
	SubpropertyOf        string   `json:"subpropertyOf,omitempty"`
}

// SubobjectDoc is the wire form of one subobject definition.
type SubobjectDoc struct {
	Properties PropertyListsDoc `json:"properties,omitempty"`
}

// DetectFormat inspects the first non-whitespace byte: '{' or '[' means
// JSON, anything else is treated as YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}
