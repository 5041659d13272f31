// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.MergePages(map[string]string{"Category:Person": "sha256:aa"})
	doc.MergeTemplates(map[string]TemplateState{
		"Person/semantic":      {Generated: "sha256:bb", Category: "Person"},
		"Form:Employee+Person": {Generated: "sha256:cc", Categories: []string{"Employee", "Person"}},
	})

	data, err := doc.Encode(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, DocumentVersion, parsed.Version)
	assert.Equal(t, "sha256:aa", parsed.PageHashes["Category:Person"])
	assert.Equal(t, "Person", parsed.TemplateHashes["Person/semantic"].Category)
	assert.Equal(t, []string{"Employee", "Person"}, parsed.TemplateHashes["Form:Employee+Person"].Categories)
	assert.Equal(t, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), parsed.LastUpdated)
}

func TestEncodeWritesISOTimestamp(t *testing.T) {
	doc := NewDocument()
	data, err := doc.Encode(time.Date(2026, 8, 24, 12, 0, 0, 500, time.UTC))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2026-08-24T12:00:00Z", raw["lastUpdated"])
}

func TestParseDocumentRejectsCorrupt(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	assert.Error(t, err)

	_, err = ParseDocument([]byte("{}"))
	assert.Error(t, err, "a document without a version is corrupt")
}

func TestStaleTemplates(t *testing.T) {
	doc := NewDocument()
	doc.MergeTemplates(map[string]TemplateState{
		"Person/semantic": {Generated: "sha256:aa", Category: "Person"},
		"Person/display":  {Generated: "sha256:bb", Category: "Person"},
	})

	stale := doc.StaleTemplates(map[string]string{
		"Person/semantic": "sha256:aa", // unchanged
		"Person/display":  "sha256:ff", // regenerated differently
		"Team/semantic":   "sha256:cc", // never recorded
	})
	assert.Equal(t, []string{"Person/display", "Team/semantic"}, stale)
}

func TestStaleTemplatesEmptyWhenRecorded(t *testing.T) {
	current := map[string]string{"A": "sha256:1", "B": "sha256:2"}
	doc := NewDocument()
	for name, h := range current {
		doc.MergeTemplates(map[string]TemplateState{name: {Generated: h}})
	}
	assert.Empty(t, doc.StaleTemplates(current))
}

func TestComparePages(t *testing.T) {
	doc := NewDocument()
	doc.MergePages(map[string]string{
		"Page:A": "sha256:1",
		"Page:B": "sha256:2",
		"Page:C": "sha256:3",
	})

	diff := doc.ComparePages(map[string]string{
		"Page:A": "sha256:1",  // unchanged
		"Page:B": "sha256:22", // edited
		"Page:D": "sha256:4",  // appeared
	})
	assert.Equal(t, []string{"Page:B"}, diff.Changed)
	assert.Equal(t, []string{"Page:D"}, diff.New)
	assert.Equal(t, []string{"Page:C"}, diff.Removed)
	assert.False(t, diff.Empty())
}

// Template regeneration must not make dependent pages look drifted: page
// and template fingerprints live in separate maps, so only the page's own
// content participates in ComparePages.
func TestTemplateRegenerationDoesNotDirtyPages(t *testing.T) {
	doc := NewDocument()
	doc.MergePages(map[string]string{"John Smith": "sha256:page"})
	doc.MergeTemplates(map[string]TemplateState{
		"Person/semantic": {Generated: "sha256:v1", Category: "Person"},
	})

	// Regeneration updates the template fingerprint.
	doc.MergeTemplates(map[string]TemplateState{
		"Person/semantic": {Generated: "sha256:v2", Category: "Person"},
	})

	diff := doc.ComparePages(map[string]string{"John Smith": "sha256:page"})
	assert.True(t, diff.Empty())
}
