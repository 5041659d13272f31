// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/wiki/memwiki"
)

func newTestStores(t *testing.T) (*Stores, *memwiki.Backend) {
	t.Helper()
	backend := memwiki.New()
	return NewStores(backend, nil), backend
}

func TestPropertyRoundTrip(t *testing.T) {
	stores, _ := newTestStores(t)
	ctx := context.Background()

	p, err := model.NewProperty(model.PropertySpec{
		Name:                 "Has member",
		Datatype:             model.DatatypePage,
		Label:                "Members",
		AllowedNamespace:     "Person",
		AllowsMultipleValues: true,
	})
	require.NoError(t, err)

	outcome, err := stores.Properties.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, outcome)

	loaded, err := stores.Properties.Load(ctx, "Has member")
	require.NoError(t, err)
	assert.True(t, p.Equal(loaded))

	names, err := stores.Properties.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Has member"}, names)
}

func TestPropertySaveIsIdempotent(t *testing.T) {
	stores, _ := newTestStores(t)
	ctx := context.Background()

	p, err := model.NewProperty(model.PropertySpec{Name: "Has name", Datatype: model.DatatypeText})
	require.NoError(t, err)

	_, err = stores.Properties.Save(ctx, p)
	require.NoError(t, err)

	outcome, err := stores.Properties.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestCategoryRoundTrip(t *testing.T) {
	stores, backend := newTestStores(t)
	ctx := context.Background()

	c, err := model.NewCategory(model.CategorySpec{
		Name:               "Employee",
		Label:              "Employee",
		Parents:            []string{"Person"},
		RequiredProperties: []string{"Has id"},
		OptionalProperties: []string{"Has desk"},
		RequiredSubobjects: []string{"Address"},
		DisplaySections: []model.Section{
			{Name: "Work", Properties: []string{"Has id", "Has desk"}},
		},
		TargetNamespace: "Staff",
	})
	require.NoError(t, err)

	_, err = stores.Categories.Save(ctx, c)
	require.NoError(t, err)

	loaded, err := stores.Categories.Load(ctx, "Employee")
	require.NoError(t, err)
	assert.Equal(t, c.Parents(), loaded.Parents())
	assert.Equal(t, c.RequiredProperties(), loaded.RequiredProperties())
	assert.Equal(t, c.OptionalProperties(), loaded.OptionalProperties())
	assert.Equal(t, c.RequiredSubobjects(), loaded.RequiredSubobjects())
	assert.Equal(t, c.DisplaySections(), loaded.DisplaySections())
	assert.Equal(t, "Staff", loaded.TargetNamespace())

	// The page carries the derived annotations for the semantic backend.
	content, err := backend.Read(ctx, stores.Categories.Title("Employee"))
	require.NoError(t, err)
	assert.Contains(t, content, "[[Subcategory of::Category:Person]]")
	assert.Contains(t, content, "[[Has required property::Property:Has id]]")
	assert.Contains(t, content, "[[Has target namespace::Staff]]")
}

func TestSubobjectRoundTrip(t *testing.T) {
	stores, _ := newTestStores(t)
	ctx := context.Background()

	sub, err := model.NewSubobject(model.SubobjectSpec{
		Name:               "Address",
		RequiredProperties: []string{"Has street"},
		OptionalProperties: []string{"Has city"},
	})
	require.NoError(t, err)

	_, err = stores.Subobjects.Save(ctx, sub)
	require.NoError(t, err)

	loaded, err := stores.Subobjects.Load(ctx, "Address")
	require.NoError(t, err)
	assert.Equal(t, sub.RequiredProperties(), loaded.RequiredProperties())
	assert.Equal(t, sub.OptionalProperties(), loaded.OptionalProperties())
}

func TestLoadMissingEntity(t *testing.T) {
	stores, _ := newTestStores(t)
	_, err := stores.Properties.Load(context.Background(), "Has ghost")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestLoadUniverse(t *testing.T) {
	stores, _ := newTestStores(t)
	ctx := context.Background()

	p, err := model.NewProperty(model.PropertySpec{Name: "Has name", Datatype: model.DatatypeText})
	require.NoError(t, err)
	_, err = stores.Properties.Save(ctx, p)
	require.NoError(t, err)

	c, err := model.NewCategory(model.CategorySpec{Name: "Person", RequiredProperties: []string{"Has name"}})
	require.NoError(t, err)
	_, err = stores.Categories.Save(ctx, c)
	require.NoError(t, err)

	schema, err := stores.LoadUniverse(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Person"}, schema.CategoryNames())
	assert.Equal(t, []string{"Has name"}, schema.PropertyNames())
}
