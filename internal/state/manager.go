// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// DefaultStatePage is the well-known title of the state document.
const DefaultStatePage = "SemanticSchemas-state"

// saveSummary is the edit summary of every state write. Keeping it
// constant lets the host's page store spot competing state writers.
const saveSummary = "[SemanticSchemas] Update state document"

// Manager persists the state document with whole-document
// read-modify-write; there are no partial updates, so a torn write cannot
// exist. The state page is the only writer-contended resource in the
// system.
type Manager struct {
	store  wiki.PageStore
	title  wiki.Title
	logger *slog.Logger
	now    func() time.Time
}

// NewManager constructs a manager for the state page named statePage in
// the MediaWiki namespace; empty means DefaultStatePage.
func NewManager(store wiki.PageStore, statePage string, logger *slog.Logger) (*Manager, error) {
	if statePage == "" {
		statePage = DefaultStatePage
	}
	if logger == nil {
		logger = slog.Default()
	}
	title, err := wiki.NewTitle(wiki.NamespaceMediaWiki, statePage)
	if err != nil {
		return nil, fmt.Errorf("invalid state page name: %w", err)
	}
	return &Manager{
		store:  store,
		title:  title,
		logger: logger.With("component", "statemanager"),
		now:    time.Now,
	}, nil
}

// Title returns the state page title.
func (m *Manager) Title() wiki.Title { return m.title }

// Load reads the current state document. A missing page yields an empty
// document; a corrupt one is an error, not silently reset.
func (m *Manager) Load(ctx context.Context) (*Document, error) {
	content, err := m.store.Read(ctx, m.title)
	if errors.Is(err, wiki.ErrPageNotFound) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state page %s: %w", m.title, err)
	}
	return ParseDocument([]byte(content))
}

// Save writes doc as the whole state document.
func (m *Manager) Save(ctx context.Context, doc *Document) error {
	data, err := doc.Encode(m.now())
	if err != nil {
		return err
	}
	if err := m.store.CreateOrUpdate(ctx, m.title, string(data), saveSummary); err != nil {
		return fmt.Errorf("failed to write state page %s: %w", m.title, err)
	}
	m.logger.Debug("state document saved",
		"pages", len(doc.PageHashes), "templates", len(doc.TemplateHashes))
	return nil
}

// RecordPages merges page fingerprints into the stored document.
func (m *Manager) RecordPages(ctx context.Context, hashes map[string]string) error {
	if len(hashes) == 0 {
		return nil
	}
	doc, err := m.Load(ctx)
	if err != nil {
		return err
	}
	doc.MergePages(hashes)
	return m.Save(ctx, doc)
}

// RecordTemplates merges template states into the stored document.
func (m *Manager) RecordTemplates(ctx context.Context, templates map[string]TemplateState) error {
	if len(templates) == 0 {
		return nil
	}
	doc, err := m.Load(ctx)
	if err != nil {
		return err
	}
	doc.MergeTemplates(templates)
	return m.Save(ctx, doc)
}

// StaleTemplates loads the document and reports which of current differ
// from their recorded fingerprints.
func (m *Manager) StaleTemplates(ctx context.Context, current map[string]string) ([]string, error) {
	doc, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.StaleTemplates(current), nil
}

// ComparePages loads the document and diffs current page fingerprints
// against it.
func (m *Manager) ComparePages(ctx context.Context, current map[string]string) (PageDiff, error) {
	doc, err := m.Load(ctx)
	if err != nil {
		return PageDiff{}, err
	}
	return doc.ComparePages(current), nil
}
