// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
schemaVersion: "1.0"
categories:
  Person:
    properties:
      required: [Has name]
properties:
  Has name:
    datatype: Text
  Has shoe size:
    datatype: Number
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	path := writeSchemaFile(t, sampleYAML)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	// Unreferenced property surfaces as a warning, not an error.
	assert.Contains(t, out, "Has shoe size")
}

func TestValidateCommandRejectsBrokenSchema(t *testing.T) {
	path := writeSchemaFile(t, `
schemaVersion: "1.0"
categories:
  Person:
    properties:
      required: [Has ghost]
`)

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "Has ghost")
}

func TestImportExportRoundTrip(t *testing.T) {
	schema := writeSchemaFile(t, sampleYAML)
	db := filepath.Join(t.TempDir(), "wiki.db")

	out, err := runCommand(t, "--store", "sqlite", "--db", db, "import", schema)
	require.NoError(t, err)
	assert.Contains(t, out, "imported")

	exported, err := runCommand(t, "--store", "sqlite", "--db", db, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, exported, "Person")
	assert.Contains(t, exported, "Has name")
}

func TestImportDryRunWritesNothing(t *testing.T) {
	schema := writeSchemaFile(t, sampleYAML)
	db := filepath.Join(t.TempDir(), "wiki.db")

	out, err := runCommand(t, "--store", "sqlite", "--db", db, "import", "--dry-run", schema)
	require.NoError(t, err)
	assert.Contains(t, out, "planned")

	status, err := runCommand(t, "--store", "sqlite", "--db", db, "status")
	require.NoError(t, err)
	assert.Contains(t, status, "No compiler state recorded yet.")
}

func TestResolveCommand(t *testing.T) {
	schema := writeSchemaFile(t, sampleYAML)
	db := filepath.Join(t.TempDir(), "wiki.db")

	_, err := runCommand(t, "--store", "sqlite", "--db", db, "import", schema)
	require.NoError(t, err)

	out, err := runCommand(t, "--store", "sqlite", "--db", db, "resolve", "Category:Person")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Has name"`)
	assert.Contains(t, out, `"required": 1`)
}

func TestResolveUnknownCategoryFails(t *testing.T) {
	db := filepath.Join(t.TempDir(), "wiki.db")

	_, err := runCommand(t, "--store", "sqlite", "--db", db, "resolve", "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestInstallCommandIsIdempotent(t *testing.T) {
	db := filepath.Join(t.TempDir(), "wiki.db")

	first, err := runCommand(t, "--store", "sqlite", "--db", db, "install")
	require.NoError(t, err)
	assert.Contains(t, first, "install complete")
	assert.NotContains(t, first, "install complete: 0 written")

	second, err := runCommand(t, "--store", "sqlite", "--db", db, "install")
	require.NoError(t, err)
	assert.Contains(t, second, "install complete: 0 written")
}

func TestUnknownStoreRejected(t *testing.T) {
	_, err := runCommand(t, "--store", "postgres", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestSettingsEnvOverride(t *testing.T) {
	t.Setenv("SSC__STORE", "memory")

	root := NewRootCmd()
	root.SetArgs([]string{"status"})
	settings, err := loadSettings(root.PersistentFlags())
	require.NoError(t, err)
	assert.Equal(t, "memory", settings.Store)
}
