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

// ErrEntityNotFound is returned when the requested entity has no managed
// page, or its page carries no schema region.
var ErrEntityNotFound = errors.New("entity not found")

// PropertyStore persists property definitions onto Property: pages.
type PropertyStore struct {
	store   wiki.Store
	creator *PageCreator
	logger  *slog.Logger
}

// NewPropertyStore constructs a property store writing through creator.
func NewPropertyStore(s wiki.Store, creator *PageCreator, logger *slog.Logger) *PropertyStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PropertyStore{store: s, creator: creator, logger: logger.With("component", "propertystore")}
}

// Title returns the page title for a property name.
func (ps *PropertyStore) Title(name string) wiki.Title {
	return wiki.MustTitle(wiki.NamespaceProperty, name)
}

// Save writes the schema region of the property's page, preserving any
// wiki-editor content outside the markers.
func (ps *PropertyStore) Save(ctx context.Context, p model.Property) (Outcome, error) {
	region, err := propertyRegion(p)
	if err != nil {
		return "", fmt.Errorf("property %q: %w", p.Name(), err)
	}
	return ps.creator.UpdateRegion(ctx, ps.Title(p.Name()), region, fmt.Sprintf("Update property %s", p.Name()))
}

// Load reads one property definition back from its page.
func (ps *PropertyStore) Load(ctx context.Context, name string) (model.Property, error) {
	title := ps.Title(name)
	content, err := ps.store.Read(ctx, title)
	if errors.Is(err, wiki.ErrPageNotFound) {
		return model.Property{}, fmt.Errorf("property %q: %w", name, ErrEntityNotFound)
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to read %s: %w", title, err)
	}

	region, found, err := wiki.ExtractRegion(content, wiki.SchemaRegionStart, wiki.SchemaRegionEnd)
	if err != nil {
		return model.Property{}, fmt.Errorf("page %s: %w", title, err)
	}
	if !found {
		return model.Property{}, fmt.Errorf("property %q: %w", name, ErrEntityNotFound)
	}

	var doc schemafile.PropertyDoc
	if err := decodeDefinition(region, &doc); err != nil {
		return model.Property{}, fmt.Errorf("page %s: %w", title, err)
	}
	return schemafile.PropertyFromDoc(title.Text(), doc)
}

// List enumerates the names of all managed properties, in title order.
func (ps *PropertyStore) List(ctx context.Context) ([]string, error) {
	return listManaged(ctx, ps.store, wiki.NamespaceProperty)
}

// Delete removes the property's page.
func (ps *PropertyStore) Delete(ctx context.Context, name string) error {
	return ps.creator.Delete(ctx, ps.Title(name), fmt.Sprintf("Delete property %s", name))
}

// propertyRegion renders the schema region: the definition document plus
// the annotations the semantic backend indexes.
func propertyRegion(p model.Property) (string, error) {
	var annotations []string
	annotations = append(annotations, fmt.Sprintf("[[Has type::%s]]", p.Datatype().SemanticType()))
	if p.Label() != "" {
		annotations = append(annotations, fmt.Sprintf("[[Has label::%s]]", p.Label()))
	}
	for _, v := range p.AllowedValues() {
		annotations = append(annotations, fmt.Sprintf("[[Allows value::%s]]", v))
	}
	if p.SubpropertyOf() != "" {
		annotations = append(annotations, fmt.Sprintf("[[Subproperty of::Property:%s]]", p.SubpropertyOf()))
	}
	return buildRegion(schemafile.PropertyToDoc(p), annotations)
}

// listManaged scans a namespace and keeps titles whose pages carry a
// schema region. The scan is coarse but deterministic: backends list
// subjects in sorted order.
func listManaged(ctx context.Context, s wiki.Store, ns wiki.Namespace) ([]string, error) {
	titles, err := s.ListSubjectsInNamespace(ctx, ns)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s pages: %w", ns, err)
	}
	var names []string
	for _, title := range titles {
		content, err := s.Read(ctx, title)
		if errors.Is(err, wiki.ErrPageNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", title, err)
		}
		if wiki.HasRegion(content, wiki.SchemaRegionStart, wiki.SchemaRegionEnd) {
			names = append(names, title.Text())
		}
	}
	return names, nil
}
