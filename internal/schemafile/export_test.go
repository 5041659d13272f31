// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			first, result, err := Load([]byte(sampleYAML))
			require.NoError(t, err)
			require.True(t, result.OK())

			out, err := Export(first, format)
			require.NoError(t, err)
			assert.Equal(t, format, DetectFormat(out))

			second, result2, err := Load(out)
			require.NoError(t, err)
			require.True(t, result2.OK(), "re-import errors: %v", result2.Errors)

			if diff := cmp.Diff(ToDocument(first), ToDocument(second)); diff != "" {
				t.Errorf("round-trip changed the schema (-first +second):\n%s", diff)
			}
		})
	}
}

func TestExportDeterministic(t *testing.T) {
	schema, result, err := Load([]byte(sampleYAML))
	require.NoError(t, err)
	require.True(t, result.OK())

	a, err := Export(schema, FormatYAML)
	require.NoError(t, err)
	b, err := Export(schema, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
