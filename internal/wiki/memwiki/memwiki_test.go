// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package memwiki

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

func TestPageLifecycle(t *testing.T) {
	ctx := context.Background()
	b := New()
	title := wiki.MustTitle(wiki.NamespaceTemplate, "Person")

	exists, err := b.Exists(ctx, title)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = b.Read(ctx, title)
	assert.ErrorIs(t, err, wiki.ErrPageNotFound)

	require.NoError(t, b.CreateOrUpdate(ctx, title, "v1", "create"))
	content, err := b.Read(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, "v1", content)
	assert.Equal(t, 1, b.Revision(title))

	require.NoError(t, b.CreateOrUpdate(ctx, title, "v2", "update"))
	content, err = b.Read(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
	assert.Equal(t, 2, b.Revision(title))

	require.NoError(t, b.Delete(ctx, title, "cleanup"))
	exists, err = b.Exists(ctx, title)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.ErrorIs(t, b.Delete(ctx, title, "again"), wiki.ErrPageNotFound)
}

func TestListSubjectsInNamespace(t *testing.T) {
	ctx := context.Background()
	b := New()
	b.Seed(wiki.MustTitle(wiki.NamespaceCategory, "Zebra"), "z")
	b.Seed(wiki.MustTitle(wiki.NamespaceCategory, "Aardvark"), "a")
	b.Seed(wiki.MustTitle(wiki.NamespaceTemplate, "Person"), "t")

	titles, err := b.ListSubjectsInNamespace(ctx, wiki.NamespaceCategory)
	require.NoError(t, err)
	require.Len(t, titles, 2)
	assert.Equal(t, "Aardvark", titles[0].Text())
	assert.Equal(t, "Zebra", titles[1].Text())
}

func TestReadProperty(t *testing.T) {
	ctx := context.Background()
	b := New()
	title := wiki.MustTitle(wiki.NamespaceProperty, "Has email")
	b.Seed(title, "Some intro.\n[[Has type::Email]]\n[[Allows value::work]]\n[[Allows value::home]]\n")

	values, err := b.ReadProperty(ctx, title, "Has type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Email"}, values)

	values, err = b.ReadProperty(ctx, title, "Allows value")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "home"}, values)

	values, err = b.ReadProperty(ctx, title, "Has length")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestContextCancellation(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	title := wiki.MustTitle(wiki.NamespaceMain, "X")
	_, err := b.Read(ctx, title)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, b.CreateOrUpdate(ctx, title, "x", ""), context.Canceled)
	assert.ErrorIs(t, b.FlushPending(ctx), context.Canceled)
}
