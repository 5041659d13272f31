// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// SubobjectStore persists subobject definitions onto Subobject: pages.
type SubobjectStore struct {
	store   wiki.Store
	creator *PageCreator
	logger  *slog.Logger
}

// NewSubobjectStore constructs a subobject store writing through creator.
func NewSubobjectStore(s wiki.Store, creator *PageCreator, logger *slog.Logger) *SubobjectStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubobjectStore{store: s, creator: creator, logger: logger.With("component", "subobjectstore")}
}

// Title returns the page title for a subobject name.
func (ss *SubobjectStore) Title(name string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceSubobject, name)
}

// Save writes the schema region of the subobject's page.
func (ss *SubobjectStore) Save(ctx context.Context, sub model.Subobject) (Outcome, error) {
	region, err := subobjectRegion(sub)
	if err != nil {
		return "", fmt.Errorf("subobject %q: %w", sub.Name(), err)
	}
	return ss.creator.UpdateRegion(ctx, ss.Title(sub.Name()), region, fmt.Sprintf("Update subobject %s", sub.Name()))
}

// Load reads one subobject definition back from its page.
func (ss *SubobjectStore) Load(ctx context.Context, name string) (model.Subobject, error) {
	title := ss.Title(name)
	content, err := ss.store.Read(ctx, title)
	if errors.Is(err, wiki.ErrPageNotFound) {
		return model.Subobject{}, fmt.Errorf("subobject %q: %w", name, ErrEntityNotFound)
	}
	if err != nil {
		return model.Subobject{}, fmt.Errorf("failed to read %s: %w", title, err)
	}

	region, found, err := wiki.ExtractRegion(content, wiki.SchemaRegionStart, wiki.SchemaRegionEnd)
	if err != nil {
		return model.Subobject{}, fmt.Errorf("page %s: %w", title, err)
	}
	if !found {
		return model.Subobject{}, fmt.Errorf("subobject %q: %w", name, ErrEntityNotFound)
	}

	var doc schemafile.SubobjectDoc
	if err := decodeDefinition(region, &doc); err != nil {
		return model.Subobject{}, fmt.Errorf("page %s: %w", title, err)
	}
	return schemafile.SubobjectFromDoc(title.Text(), doc)
}

// List enumerates the names of all managed subobjects, in title order.
func (ss *SubobjectStore) List(ctx context.Context) ([]string, error) {
	return listManaged(ctx, ss.store, wiki.NamespaceSubobject)
}

// Delete removes the subobject's page.
func (ss *SubobjectStore) Delete(ctx context.Context, name string) error {
	return ss.creator.Delete(ctx, ss.Title(name), fmt.Sprintf("Delete subobject %s", name))
}

func subobjectRegion(sub model.Subobject) (string, error) {
	var annotations []string
	for _, p := range sub.RequiredProperties() {
		annotations = append(annotations, fmt.Sprintf("[[Has required property::Property:%s]]", p))
	}
	for _, p := range sub.OptionalProperties() {
		annotations = append(annotations, fmt.Sprintf("[[Has optional property::Property:%s]]", p))
	}
	return buildRegion(schemafile.SubobjectToDoc(sub), annotations)
}
