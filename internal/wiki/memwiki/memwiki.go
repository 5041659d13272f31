// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package memwiki provides an in-memory wiki backend implementing the page
// and semantic store contracts. It backs tests and dry-run compilations;
// nothing persists beyond the process.
package memwiki

import (
	"context"
	"sort"
	"sync"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

type page struct {
	content  string
	revision int
}

// Backend is a mutex-guarded map of pages. The zero value is not usable;
// construct with New.
type Backend struct {
	mu    sync.RWMutex
	pages map[wiki.Title]*page
}

var _ wiki.Store = (*Backend)(nil)

// New returns an empty in-memory wiki.
func New() *Backend {
	return &Backend{pages: make(map[wiki.Title]*page)}
}

// Seed writes initial page content without revision bookkeeping, for test
// fixtures.
func (b *Backend) Seed(title wiki.Title, content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pages[title] = &page{content: content, revision: 1}
}

// Revision returns how many times title has been written; zero when the
// page does not exist. Test helper.
func (b *Backend) Revision(title wiki.Title) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, ok := b.pages[title]; ok {
		return p.revision
	}
	return 0
}

// MakeTitle implements wiki.PageStore.
func (b *Backend) MakeTitle(name string, ns wiki.Namespace) (wiki.Title, error) {
	return wiki.NewTitle(ns, name)
}

// Exists implements wiki.PageStore.
func (b *Backend) Exists(ctx context.Context, title wiki.Title) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.pages[title]
	return ok, nil
}

// Read implements wiki.PageStore.
func (b *Backend) Read(ctx context.Context, title wiki.Title) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.pages[title]
	if !ok {
		return "", wiki.ErrPageNotFound
	}
	return p.content, nil
}

// CreateOrUpdate implements wiki.PageStore.
func (b *Backend) CreateOrUpdate(ctx context.Context, title wiki.Title, content, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.pages[title]; ok {
		p.content = content
		p.revision++
		return nil
	}
	b.pages[title] = &page{content: content, revision: 1}
	return nil
}

// Delete implements wiki.PageStore.
func (b *Backend) Delete(ctx context.Context, title wiki.Title, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.pages[title]; !ok {
		return wiki.ErrPageNotFound
	}
	delete(b.pages, title)
	return nil
}

// Purge implements wiki.PageStore. There is no render cache here.
func (b *Backend) Purge(ctx context.Context, _ wiki.Title) error {
	return ctx.Err()
}

// ListSubjectsInNamespace implements wiki.SemanticStore. Titles come back
// sorted by text so enumeration is deterministic.
func (b *Backend) ListSubjectsInNamespace(ctx context.Context, ns wiki.Namespace) ([]wiki.Title, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	var titles []wiki.Title
	for title := range b.pages {
		if title.Namespace() == ns {
			titles = append(titles, title)
		}
	}
	sort.Slice(titles, func(i, j int) bool { return titles[i].Text() < titles[j].Text() })
	return titles, nil
}

// ReadProperty implements wiki.SemanticStore by scanning inline annotations.
func (b *Backend) ReadProperty(ctx context.Context, subject wiki.Title, property string) ([]string, error) {
	content, err := b.Read(ctx, subject)
	if err != nil {
		return nil, err
	}
	return wiki.ScanAnnotationValues(content, property), nil
}

// FlushPending implements wiki.SemanticStore. Writes are synchronous here,
// so there is never pending work.
func (b *Backend) FlushPending(ctx context.Context) error {
	return ctx.Err()
}
