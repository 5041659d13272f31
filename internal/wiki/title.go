// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package wiki defines the title model, the marker-region conventions, and
// the store contracts through which the compiler reaches its host wiki. The
// package has no opinion about how pages are stored; backends live in
// subpackages and real hosts implement the same contracts.
package wiki

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Namespace is the numeric namespace identifier of a wiki title. The values
// follow the host convention: even core namespaces, 1xx for the semantic
// extension, 3xxx for custom content namespaces.
type Namespace int

const (
	NamespaceMain      Namespace = 0
	NamespaceMediaWiki Namespace = 8
	NamespaceTemplate  Namespace = 10
	NamespaceHelp      Namespace = 12
	NamespaceCategory  Namespace = 14
	NamespaceProperty  Namespace = 102
	NamespaceForm      Namespace = 106
	NamespaceSubobject Namespace = 3000
)

var namespaceNames = map[Namespace]string{
	NamespaceMain:      "",
	NamespaceMediaWiki: "MediaWiki",
	NamespaceTemplate:  "Template",
	NamespaceHelp:      "Help",
	NamespaceCategory:  "Category",
	NamespaceProperty:  "Property",
	NamespaceForm:      "Form",
	NamespaceSubobject: "Subobject",
}

var namespacesByName = func() map[string]Namespace {
	m := make(map[string]Namespace, len(namespaceNames))
	for ns, name := range namespaceNames {
		if name != "" {
			m[name] = ns
		}
	}
	return m
}()

// Known reports whether ns is one of the defined namespaces.
func (ns Namespace) Known() bool {
	_, ok := namespaceNames[ns]
	return ok
}

// String returns the canonical namespace name without a colon; empty for the
// main namespace.
func (ns Namespace) String() string {
	if name, ok := namespaceNames[ns]; ok {
		return name
	}
	return fmt.Sprintf("Namespace(%d)", int(ns))
}

// Prefix returns the title prefix including the colon; empty for the main
// namespace.
func (ns Namespace) Prefix() string {
	name := namespaceNames[ns]
	if name == "" {
		return ""
	}
	return name + ":"
}

// forbiddenTitleChars mirrors the characters entity names may not contain;
// titles are built from entity names so the sets agree.
const forbiddenTitleChars = "<>{}|#"

// Title is a (namespace, text) pair identifying one wiki page. Titles are
// normalized at construction: underscores become spaces, runs of whitespace
// collapse, and the first letter is capitalized, matching the host's own
// normalization so lookups and writes agree on identity.
type Title struct {
	ns   Namespace
	text string
}

// NewTitle normalizes and validates text within ns.
func NewTitle(ns Namespace, text string) (Title, error) {
	if !ns.Known() {
		return Title{}, fmt.Errorf("%w: unknown namespace %d", ErrInvalidTitle, int(ns))
	}
	normalized := NormalizeTitleText(text)
	if normalized == "" {
		return Title{}, fmt.Errorf("%w: empty title text", ErrInvalidTitle)
	}
	if i := strings.IndexAny(normalized, forbiddenTitleChars); i >= 0 {
		return Title{}, fmt.Errorf("%w: %q contains %q", ErrInvalidTitle, text, normalized[i:i+1])
	}
	if strings.ContainsAny(normalized, "\n\r") {
		return Title{}, fmt.Errorf("%w: %q contains a line break", ErrInvalidTitle, text)
	}
	return Title{ns: ns, text: normalized}, nil
}

// MustTitle is NewTitle for callers constructing titles from names that have
// already passed validation; it panics on error.
func MustTitle(ns Namespace, text string) Title {
	t, err := NewTitle(ns, text)
	if err != nil {
		panic(fmt.Sprintf("wiki: %v", err))
	}
	return t
}

// ParseTitle splits a full title on its first colon against the known
// namespace prefixes. An unknown prefix leaves the whole string as a
// main-namespace title; colons inside the text are preserved.
func ParseTitle(full string) (Title, error) {
	if name, rest, found := strings.Cut(full, ":"); found {
		if ns, ok := namespacesByName[NormalizeTitleText(name)]; ok {
			return NewTitle(ns, rest)
		}
	}
	return NewTitle(NamespaceMain, full)
}

// NormalizeTitleText applies the host's title-text normalization:
// underscores to spaces, whitespace runs collapsed, leading/trailing space
// trimmed, first letter capitalized.
func NormalizeTitleText(text string) string {
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// Namespace returns the title's namespace identifier.
func (t Title) Namespace() Namespace { return t.ns }

// Text returns the normalized title text without the namespace prefix.
func (t Title) Text() string { return t.text }

// String returns the full prefixed title, e.g. "Property:Has full name".
func (t Title) String() string { return t.ns.Prefix() + t.text }

// IsZero reports whether the title is the zero value.
func (t Title) IsZero() bool { return t.text == "" }
