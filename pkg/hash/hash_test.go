// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStableUnderHostNormalization(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "trailing spaces",
			a:    "line one\nline two\n",
			b:    "line one   \nline two\t\n",
		},
		{
			name: "crlf line endings",
			a:    "line one\nline two\n",
			b:    "line one\r\nline two\r\n",
		},
		{
			name: "bare cr line endings",
			a:    "line one\nline two\n",
			b:    "line one\rline two\r",
		},
		{
			name: "trailing blank lines",
			a:    "body\n",
			b:    "body\n\n\n",
		},
		{
			name: "missing final newline",
			a:    "body\n",
			b:    "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Content(tt.a), Content(tt.b))
			assert.True(t, Equal(tt.a, tt.b))
		})
	}
}

func TestContentDistinguishesRealChanges(t *testing.T) {
	assert.NotEqual(t, Content("a\nb\n"), Content("a\nc\n"))
	// Leading whitespace is significant in wikitext (pre blocks).
	assert.NotEqual(t, Content(" indented\n"), Content("indented\n"))
	// Interior blank lines are significant (paragraph breaks).
	assert.NotEqual(t, Content("a\n\nb\n"), Content("a\nb\n"))
}

func TestContentFormat(t *testing.T) {
	got := Content("anything")
	assert.True(t, strings.HasPrefix(got, Prefix))
	assert.Len(t, got, len(Prefix)+64)
}

func TestCanonicalEmpty(t *testing.T) {
	assert.Equal(t, "", Canonical(""))
	assert.Equal(t, "", Canonical("\n\n"))
	assert.Equal(t, "", Canonical("  \n\t\n"))
}

func TestContentDeterministic(t *testing.T) {
	const body = "{{#set:\n| Has name = x\n}}\n"
	assert.Equal(t, Content(body), Content(body))
}
