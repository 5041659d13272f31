// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package state tracks what the compiler has generated. The state document
// lives on one well-known wiki page as JSON and records a canonical
// SHA-256 fingerprint per managed page and per generated template.
//
// The two granularities are deliberate: template fingerprints answer "does
// this artifact need regeneration", page fingerprints answer "did someone
// change this page outside the compiler". Because they are separate, a
// page that merely transcludes a regenerated template is not reported as
// drifted; only a change to the page's own content registers.
package state

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// DocumentVersion is the current state document schema version.
const DocumentVersion = 1

// TemplateState records one generated template: its fingerprint and the
// category (or, for composite forms, categories) it was generated from.
type TemplateState struct {
	Generated  string   `json:"generated"`
	Category   string   `json:"category,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Document is the persisted state structure.
type Document struct {
	Version        int                      `json:"version"`
	PageHashes     map[string]string        `json:"pageHashes"`
	TemplateHashes map[string]TemplateState `json:"templateHashes"`
	LastUpdated    time.Time                `json:"lastUpdated"`
}

// NewDocument returns an empty state document at the current version.
func NewDocument() *Document {
	return &Document{
		Version:        DocumentVersion,
		PageHashes:     make(map[string]string),
		TemplateHashes: make(map[string]TemplateState),
	}
}

// ParseDocument decodes a persisted state document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("corrupt state document: %w", err)
	}
	if doc.Version == 0 {
		return nil, fmt.Errorf("corrupt state document: missing version")
	}
	if doc.PageHashes == nil {
		doc.PageHashes = make(map[string]string)
	}
	if doc.TemplateHashes == nil {
		doc.TemplateHashes = make(map[string]TemplateState)
	}
	return &doc, nil
}

// Encode serializes the document with a fresh lastUpdated timestamp.
func (d *Document) Encode(now time.Time) ([]byte, error) {
	d.LastUpdated = now.UTC().Truncate(time.Second)
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state document: %w", err)
	}
	return append(out, '\n'), nil
}

// MergePages folds page fingerprints into the document.
func (d *Document) MergePages(hashes map[string]string) {
	for title, h := range hashes {
		d.PageHashes[title] = h
	}
}

// MergeTemplates folds template states into the document.
func (d *Document) MergeTemplates(templates map[string]TemplateState) {
	for name, ts := range templates {
		d.TemplateHashes[name] = ts
	}
}

// StaleTemplates returns the names in current whose recorded fingerprint
// differs or is missing, sorted.
func (d *Document) StaleTemplates(current map[string]string) []string {
	var stale []string
	for name, h := range current {
		recorded, ok := d.TemplateHashes[name]
		if !ok || recorded.Generated != h {
			stale = append(stale, name)
		}
	}
	slices.Sort(stale)
	return stale
}

// PageDiff partitions page titles by how their current fingerprints relate
// to the recorded ones.
type PageDiff struct {
	Changed []string `json:"changed"`
	New     []string `json:"new"`
	Removed []string `json:"removed"`
}

// Empty reports whether the diff carries no entries.
func (pd PageDiff) Empty() bool {
	return len(pd.Changed) == 0 && len(pd.New) == 0 && len(pd.Removed) == 0
}

// ComparePages diffs current page fingerprints against the recorded ones.
// All three lists come back sorted.
func (d *Document) ComparePages(current map[string]string) PageDiff {
	var diff PageDiff
	for title, h := range current {
		recorded, ok := d.PageHashes[title]
		switch {
		case !ok:
			diff.New = append(diff.New, title)
		case recorded != h:
			diff.Changed = append(diff.Changed, title)
		}
	}
	for title := range d.PageHashes {
		if _, ok := current[title]; !ok {
			diff.Removed = append(diff.Removed, title)
		}
	}
	slices.Sort(diff.Changed)
	slices.Sort(diff.New)
	slices.Sort(diff.Removed)
	return diff
}
