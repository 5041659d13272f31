// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The schema region of an entity page carries two representations of the
// same definition: a JSON document inside a comment, which the compiler
// reads back losslessly, and inline semantic annotations, which the
// semantic backend indexes. The JSON is authoritative; the annotations are
// derived from it on every write.
const (
	definitionOpen  = "<!-- SemanticSchemas Definition\n"
	definitionClose = "\n-->"
)

// managedEntityTag categorizes every entity page the compiler manages so
// enumeration needs nothing beyond a namespace scan plus a marker check.
const managedEntityTag = "[[Category:SemanticSchemas managed]]"

// ErrNoDefinition is returned when a page's schema region carries no
// definition document.
var ErrNoDefinition = errors.New("no definition in schema region")

// encodeDefinition renders the definition document for embedding. HTML
// comments may not contain "--", so the JSON is rejected if it does; the
// schema name charset already excludes the characters that could produce
// it in practice.
func encodeDefinition(doc any) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode definition: %w", err)
	}
	if strings.Contains(string(raw), "--") {
		return "", fmt.Errorf("definition contains %q, which cannot be embedded in a comment", "--")
	}
	return definitionOpen + string(raw) + definitionClose, nil
}

// decodeDefinition extracts and parses the definition document from a
// schema region.
func decodeDefinition(region string, out any) error {
	start := strings.Index(region, definitionOpen)
	if start < 0 {
		return ErrNoDefinition
	}
	rest := region[start+len(definitionOpen):]
	end := strings.Index(rest, definitionClose)
	if end < 0 {
		return ErrNoDefinition
	}
	if err := json.Unmarshal([]byte(rest[:end]), out); err != nil {
		return fmt.Errorf("corrupt definition: %w", err)
	}
	return nil
}

// buildRegion assembles a schema region: definition comment, derived
// annotation lines, managed tag.
func buildRegion(doc any, annotations []string) (string, error) {
	def, err := encodeDefinition(doc)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(def)
	for _, line := range annotations {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(managedEntityTag)
	return b.String(), nil
}
