// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/resolver"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// ResolutionService answers multi-category property resolution requests.
// Resolution is read-only, so identical concurrent requests coalesce into
// one universe load through singleflight.
type ResolutionService struct {
	backend wiki.Store
	logger  *slog.Logger
	group   singleflight.Group
}

// NewResolutionService creates a new ResolutionService.
func NewResolutionService(backend wiki.Store, logger *slog.Logger) *ResolutionService {
	return &ResolutionService{
		backend: backend,
		logger:  logger,
	}
}

// NormalizeCategoryNames trims whitespace, strips a case-insensitive
// "Category:" prefix, and drops entries that come out empty.
func NormalizeCategoryNames(raw []string) []string {
	const prefix = "category:"
	var out []string
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
			name = strings.TrimSpace(name[len(prefix):])
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Resolve resolves the requested categories into the deduplicated property
// and subobject lists of the resolution API. Any unknown category fails the
// whole request, naming every missing one.
func (s *ResolutionService) Resolve(ctx context.Context, raw []string) (*models.ResolveResponse, error) {
	names := NormalizeCategoryNames(raw)
	if len(names) == 0 {
		return nil, ErrNoCategories
	}

	key := strings.Join(names, "\x1f")
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.resolve(ctx, names)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Coalesced concurrent resolve", "categories", names)
	}
	return v.(*models.ResolveResponse), nil
}

func (s *ResolutionService) resolve(ctx context.Context, names []string) (*models.ResolveResponse, error) {
	st := store.NewStores(s.backend, s.logger)
	schema, err := st.LoadUniverse(ctx)
	if err != nil {
		return nil, fmt.Errorf("load universe: %w", err)
	}

	res := resolver.New(schema)
	set, err := res.ResolveMany(names)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrUnknownCategory):
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, missingCategories(schema, names))
		case errors.Is(err, resolver.ErrNoCategories):
			return nil, ErrNoCategories
		default:
			return nil, err
		}
	}

	resp := &models.ResolveResponse{
		Properties: make([]models.ResolvedProperty, 0, len(set.Properties())),
		Subobjects: make([]models.ResolvedSubobject, 0, len(set.Subobjects())),
		Categories: make([]models.ResolvedCategory, 0, len(names)),
	}
	for _, e := range set.Properties() {
		resp.Properties = append(resp.Properties, models.ResolvedProperty{
			Name:     e.Name(),
			Title:    st.Properties.Title(e.Name()).String(),
			Datatype: propertyDatatype(schema, e.Name()),
			Required: boolFlag(set.PropertyRequired(e.Name())),
			Shared:   boolFlag(e.Shared()),
			Sources:  e.Sources(),
		})
	}
	for _, e := range set.Subobjects() {
		resp.Subobjects = append(resp.Subobjects, models.ResolvedSubobject{
			Name:     e.Name(),
			Title:    st.Subobjects.Title(e.Name()).String(),
			Required: boolFlag(set.SubobjectRequired(e.Name())),
			Shared:   boolFlag(e.Shared()),
			Sources:  e.Sources(),
		})
	}
	for _, name := range set.CategoryNames() {
		eff, err := res.EffectiveCategory(name)
		if err != nil {
			return nil, err
		}
		var tns *string
		if ns := eff.TargetNamespace(); ns != "" {
			tns = &ns
		}
		resp.Categories = append(resp.Categories, models.ResolvedCategory{
			Name:            name,
			TargetNamespace: tns,
		})
	}
	return resp, nil
}

// propertyDatatype looks a property up in the universe, falling back to
// Page when the category references a property that has no definition yet.
func propertyDatatype(schema *model.Schema, name string) string {
	if p, ok := schema.PropertyByName(name); ok {
		return p.Datatype().String()
	}
	return model.FallbackDatatype.String()
}

func missingCategories(schema *model.Schema, names []string) string {
	var missing []string
	for _, name := range names {
		if _, ok := schema.CategoryByName(name); !ok {
			missing = append(missing, name)
		}
	}
	return strings.Join(missing, ", ")
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
