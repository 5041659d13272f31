// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package hash computes content fingerprints for managed wiki pages.
// This package contains no domain-specific types and can be used by any package.
//
// Fingerprints are SHA-256 over a canonical form of the content, because
// host wikis normalize whitespace on save: trailing spaces and tabs are
// stripped per line, CRLF and bare CR become LF, and trailing blank lines
// collapse to a single final newline. Hashing the canonical form keeps a
// page from registering as drifted when only the host's normalization
// touched it. The canonical form is part of the state-document contract and
// must not change without a state version bump.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Prefix marks a fingerprint string as canonical SHA-256.
const Prefix = "sha256:"

// Content returns the fingerprint of s in the form "sha256:<hex>".
func Content(s string) string {
	sum := sha256.Sum256([]byte(Canonical(s)))
	return Prefix + hex.EncodeToString(sum[:])
}

// Canonical returns the normalized form of s used for fingerprinting.
func Canonical(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	// Collapse trailing blank lines to one final newline. Empty content
	// stays empty.
	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

// Equal reports whether two contents share a fingerprint.
func Equal(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
