// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateWithinMarkersReplace(t *testing.T) {
	existing := "User intro, hand-written.\n" +
		SchemaRegionStart + "\nold managed content\n" + SchemaRegionEnd + "\n" +
		"User footer, also hand-written.\n"

	got, err := UpdateWithinMarkers(existing, "new managed content", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)

	want := "User intro, hand-written.\n" +
		SchemaRegionStart + "\nnew managed content\n" + SchemaRegionEnd + "\n" +
		"User footer, also hand-written.\n"
	assert.Equal(t, want, got)
}

func TestUpdateWithinMarkersPreservesOutsideBytes(t *testing.T) {
	// Odd spacing, trailing spaces, no final newline: the user's bytes.
	prefix := "  weird   user content\t \n\n"
	suffix := "\n\n trailing user  notes"
	existing := prefix + SchemaRegionStart + "\nx\n" + SchemaRegionEnd + suffix

	got, err := UpdateWithinMarkers(existing, "y", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)

	assert.True(t, len(got) > len(prefix)+len(suffix))
	assert.Equal(t, prefix, got[:len(prefix)])
	assert.Equal(t, suffix, got[len(got)-len(suffix):])
}

func TestUpdateWithinMarkersAppend(t *testing.T) {
	t.Run("empty page", func(t *testing.T) {
		got, err := UpdateWithinMarkers("", "body", SchemaRegionStart, SchemaRegionEnd)
		require.NoError(t, err)
		assert.Equal(t, SchemaRegionStart+"\nbody\n"+SchemaRegionEnd+"\n", got)
	})

	t.Run("existing content gets blank-line separator", func(t *testing.T) {
		got, err := UpdateWithinMarkers("intro\n", "body", SchemaRegionStart, SchemaRegionEnd)
		require.NoError(t, err)
		assert.Equal(t, "intro\n\n"+SchemaRegionStart+"\nbody\n"+SchemaRegionEnd+"\n", got)
	})

	t.Run("no trailing newline on existing content", func(t *testing.T) {
		got, err := UpdateWithinMarkers("intro", "body", SchemaRegionStart, SchemaRegionEnd)
		require.NoError(t, err)
		assert.Equal(t, "intro\n\n"+SchemaRegionStart+"\nbody\n"+SchemaRegionEnd+"\n", got)
	})
}

func TestUpdateWithinMarkersMalformed(t *testing.T) {
	_, err := UpdateWithinMarkers(SchemaRegionStart+"\nabc", "x", SchemaRegionStart, SchemaRegionEnd)
	assert.ErrorIs(t, err, ErrMalformedMarkers)

	_, err = UpdateWithinMarkers("abc\n"+SchemaRegionEnd, "x", SchemaRegionStart, SchemaRegionEnd)
	assert.ErrorIs(t, err, ErrMalformedMarkers)

	_, err = UpdateWithinMarkers(SchemaRegionEnd+"\n"+SchemaRegionStart, "x", SchemaRegionStart, SchemaRegionEnd)
	assert.ErrorIs(t, err, ErrMalformedMarkers)
}

func TestUpdateWithinMarkersIdempotent(t *testing.T) {
	first, err := UpdateWithinMarkers("intro\n", "region", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)
	second, err := UpdateWithinMarkers(first, "region", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractRegion(t *testing.T) {
	content, err := UpdateWithinMarkers("intro\n", "the managed part", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)

	region, found, err := ExtractRegion(content, SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "the managed part", region)

	_, found, err = ExtractRegion("no markers here", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = ExtractRegion(SchemaRegionStart, SchemaRegionStart, SchemaRegionEnd)
	assert.ErrorIs(t, err, ErrMalformedMarkers)
}

func TestHasRegion(t *testing.T) {
	withRegion, err := UpdateWithinMarkers("", "x", SchemaRegionStart, SchemaRegionEnd)
	require.NoError(t, err)
	assert.True(t, HasRegion(withRegion, SchemaRegionStart, SchemaRegionEnd))
	assert.False(t, HasRegion("plain page", SchemaRegionStart, SchemaRegionEnd))
	assert.False(t, HasRegion(SchemaRegionStart, SchemaRegionStart, SchemaRegionEnd))
}
