// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTitleNormalization(t *testing.T) {
	tests := []struct {
		name string
		ns   Namespace
		text string
		want string
	}{
		{"underscores to spaces", NamespaceMain, "has_full_name", "Has full name"},
		{"whitespace collapsed", NamespaceTemplate, "  Person   overview ", "Person overview"},
		{"first letter capitalized", NamespaceProperty, "has email", "Has email"},
		{"already normalized", NamespaceCategory, "Person", "Person"},
		{"colon kept in text", NamespaceMain, "Subobject type: address", "Subobject type: address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTitle(tt.ns, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text())
			assert.Equal(t, tt.ns, got.Namespace())
		})
	}
}

func TestNewTitleRejects(t *testing.T) {
	_, err := NewTitle(NamespaceMain, "")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewTitle(NamespaceMain, "   ")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewTitle(NamespaceMain, "a{b")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewTitle(NamespaceMain, "a|b")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewTitle(Namespace(999), "x")
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

func TestTitleString(t *testing.T) {
	assert.Equal(t, "Person", MustTitle(NamespaceMain, "Person").String())
	assert.Equal(t, "Template:Person/semantic", MustTitle(NamespaceTemplate, "Person/semantic").String())
	assert.Equal(t, "Property:Has full name", MustTitle(NamespaceProperty, "Has full name").String())
	assert.Equal(t, "Subobject:Address", MustTitle(NamespaceSubobject, "Address").String())
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		full     string
		wantNS   Namespace
		wantText string
	}{
		{"Person", NamespaceMain, "Person"},
		{"Template:Person/semantic", NamespaceTemplate, "Person/semantic"},
		{"Property:Has full name", NamespaceProperty, "Has full name"},
		{"category:Person", NamespaceCategory, "Person"},
		{"Form:Employee+Person", NamespaceForm, "Employee+Person"},
		{"MediaWiki:SemanticSchemas-state", NamespaceMediaWiki, "SemanticSchemas-state"},
		// Unknown prefixes stay in the main namespace with the colon intact.
		{"ISO: 9001", NamespaceMain, "ISO: 9001"},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			got, err := ParseTitle(tt.full)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNS, got.Namespace())
			assert.Equal(t, tt.wantText, got.Text())
		})
	}
}

func TestParseTitleRoundTrip(t *testing.T) {
	for _, full := range []string{
		"Template:Person",
		"Property:Has email",
		"Category:Employee",
		"Subobject:Address",
		"Plain page",
	} {
		parsed, err := ParseTitle(full)
		require.NoError(t, err)
		assert.Equal(t, full, parsed.String())
	}
}
