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

// CategoryStore persists category definitions onto Category: pages.
type CategoryStore struct {
	store   wiki.Store
	creator *PageCreator
	logger  *slog.Logger
}

// NewCategoryStore constructs a category store writing through creator.
func NewCategoryStore(s wiki.Store, creator *PageCreator, logger *slog.Logger) *CategoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{store: s, creator: creator, logger: logger.With("component", "categorystore")}
}

// Title returns the page title for a category name.
func (cs *CategoryStore) Title(name string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceCategory, name)
}

// Save writes the schema region of the category's page.
func (cs *CategoryStore) Save(ctx context.Context, c model.Category) (Outcome, error) {
	region, err := categoryRegion(c)
	if err != nil {
		return "", fmt.Errorf("category %q: %w", c.Name(), err)
	}
	return cs.creator.UpdateRegion(ctx, cs.Title(c.Name()), region, fmt.Sprintf("Update category %s", c.Name()))
}

// Load reads one category definition back from its page.
func (cs *CategoryStore) Load(ctx context.Context, name string) (model.Category, error) {
	title := cs.Title(name)
	content, err := cs.store.Read(ctx, title)
	if errors.Is(err, wiki.ErrPageNotFound) {
		return model.Category{}, fmt.Errorf("category %q: %w", name, ErrEntityNotFound)
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to read %s: %w", title, err)
	}

	region, found, err := wiki.ExtractRegion(content, wiki.SchemaRegionStart, wiki.SchemaRegionEnd)
	if err != nil {
		return model.Category{}, fmt.Errorf("page %s: %w", title, err)
	}
	if !found {
		return model.Category{}, fmt.Errorf("category %q: %w", name, ErrEntityNotFound)
	}

	var doc schemafile.CategoryDoc
	if err := decodeDefinition(region, &doc); err != nil {
		return model.Category{}, fmt.Errorf("page %s: %w", title, err)
	}
	return schemafile.CategoryFromDoc(title.Text(), doc)
}

// List enumerates the names of all managed categories, in title order.
func (cs *CategoryStore) List(ctx context.Context) ([]string, error) {
	return listManaged(ctx, cs.store, wiki.NamespaceCategory)
}

// Delete removes the category's page.
func (cs *CategoryStore) Delete(ctx context.Context, name string) error {
	return cs.creator.Delete(ctx, cs.Title(name), fmt.Sprintf("Delete category %s", name))
}

// categoryRegion renders the schema region. Parent links double as the
// wiki's own category hierarchy: a [[Category:Parent]] tag files the child
// category under its parents in addition to the semantic annotation.
func categoryRegion(c model.Category) (string, error) {
	var annotations []string
	for _, parent := range c.Parents() {
		annotations = append(annotations, fmt.Sprintf("[[Subcategory of::Category:%s]]", parent))
		annotations = append(annotations, fmt.Sprintf("[[Category:%s]]", parent))
	}
	for _, p := range c.RequiredProperties() {
		annotations = append(annotations, fmt.Sprintf("[[Has required property::Property:%s]]", p))
	}
	for _, p := range c.OptionalProperties() {
		annotations = append(annotations, fmt.Sprintf("[[Has optional property::Property:%s]]", p))
	}
	for _, s := range c.RequiredSubobjects() {
		annotations = append(annotations, fmt.Sprintf("[[Has required subobject::Subobject:%s]]", s))
	}
	for _, s := range c.OptionalSubobjects() {
		annotations = append(annotations, fmt.Sprintf("[[Has optional subobject::Subobject:%s]]", s))
	}
	if ns := c.TargetNamespace(); ns != "" {
		annotations = append(annotations, fmt.Sprintf("[[Has target namespace::%s]]", ns))
	}
	return buildRegion(schemafile.CategoryToDoc(c), annotations)
}
