// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package sqlitewiki

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(filepath.Join(t.TempDir(), "wiki.db"), nil)
	require.NoError(t, err)
	return b
}

func TestPageLifecycle(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)
	title := wiki.MustTitle(wiki.NamespaceTemplate, "Person")

	_, err := b.Read(ctx, title)
	assert.ErrorIs(t, err, wiki.ErrPageNotFound)

	require.NoError(t, b.CreateOrUpdate(ctx, title, "v1", "create"))
	got, err := b.Read(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, b.CreateOrUpdate(ctx, title, "v2", "update"))
	got, err = b.Read(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	exists, err := b.Exists(ctx, title)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, b.Delete(ctx, title, "cleanup"))
	assert.ErrorIs(t, b.Delete(ctx, title, "again"), wiki.ErrPageNotFound)
}

func TestAnnotationsFollowWrites(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)
	title := wiki.MustTitle(wiki.NamespaceProperty, "Has email")

	require.NoError(t, b.CreateOrUpdate(ctx, title, "[[Has type::Email]]\n[[Allows value::work]]", ""))
	values, err := b.ReadProperty(ctx, title, "Has type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Email"}, values)

	// Rewriting the page replaces its annotations.
	require.NoError(t, b.CreateOrUpdate(ctx, title, "[[Has type::Text]]", ""))
	values, err = b.ReadProperty(ctx, title, "Has type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Text"}, values)

	values, err = b.ReadProperty(ctx, title, "Allows value")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestListSubjectsInNamespaceSorted(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)
	require.NoError(t, b.CreateOrUpdate(ctx, wiki.MustTitle(wiki.NamespaceCategory, "Zebra"), "z", ""))
	require.NoError(t, b.CreateOrUpdate(ctx, wiki.MustTitle(wiki.NamespaceCategory, "Aardvark"), "a", ""))
	require.NoError(t, b.CreateOrUpdate(ctx, wiki.MustTitle(wiki.NamespaceMain, "Other"), "o", ""))

	titles, err := b.ListSubjectsInNamespace(ctx, wiki.NamespaceCategory)
	require.NoError(t, err)
	require.Len(t, titles, 2)
	assert.Equal(t, "Aardvark", titles[0].Text())
	assert.Equal(t, "Zebra", titles[1].Text())
}

func TestPersistenceAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wiki.db")

	first, err := Open(path, nil)
	require.NoError(t, err)
	title := wiki.MustTitle(wiki.NamespaceMain, "Persistent")
	require.NoError(t, first.CreateOrUpdate(ctx, title, "still here", ""))

	second, err := Open(path, nil)
	require.NoError(t, err)
	got, err := second.Read(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, "still here", got)
}
