// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// Stores bundles the three entity stores and the page creator they write
// through. Construct one per invocation next to the compiler.
type Stores struct {
	Creator    *PageCreator
	Properties *PropertyStore
	Categories *CategoryStore
	Subobjects *SubobjectStore
}

// NewStores wires the entity stores over one wiki backend.
func NewStores(s wiki.Store, logger *slog.Logger, opts ...CreatorOption) *Stores {
	creator := NewPageCreator(s, logger, opts...)
	return &Stores{
		Creator:    creator,
		Properties: NewPropertyStore(s, creator, logger),
		Categories: NewCategoryStore(s, creator, logger),
		Subobjects: NewSubobjectStore(s, creator, logger),
	}
}

// LoadUniverse reads every managed definition from the wiki into a fresh
// schema universe. Enumeration order is deterministic, so two loads of an
// unchanged wiki build identical universes.
func (st *Stores) LoadUniverse(ctx context.Context) (*model.Schema, error) {
	schema := model.NewSchema(schemafile.SupportedSchemaVersion)

	propNames, err := st.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range propNames {
		p, err := st.Properties.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := schema.AddProperty(p); err != nil {
			return nil, fmt.Errorf("universe: %w", err)
		}
	}

	subNames, err := st.Subobjects.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range subNames {
		sub, err := st.Subobjects.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := schema.AddSubobject(sub); err != nil {
			return nil, fmt.Errorf("universe: %w", err)
		}
	}

	catNames, err := st.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range catNames {
		c, err := st.Categories.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := schema.AddCategory(c); err != nil {
			return nil, fmt.Errorf("universe: %w", err)
		}
	}

	return schema, nil
}
