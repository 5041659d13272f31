// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/wiki/memwiki"
)

const sampleYAML = `
schemaVersion: "1.0"
categories:
  Person:
    label: Person
    properties:
      required: [Has name]
      optional: [Has email]
  Employee:
    parents: [Person]
    targetNamespace: Staff
    properties:
      required: [Has id]
    subobjects:
      optional: [Address]
properties:
  Has name:
    datatype: Text
  Has email:
    datatype: Email
  Has id:
    datatype: Number
  Has street:
    datatype: Text
subobjects:
  Address:
    properties:
      required: [Has street]
`

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	backend := memwiki.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr, err := state.NewManager(backend, "", logger)
	require.NoError(t, err)
	handler := New(services.NewServices(backend, mgr, logger), logger)
	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func importSample(t *testing.T, srv *httptest.Server) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/schemas/import", "application/yaml", strings.NewReader(sampleYAML))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func decodeEnvelope[T any](t *testing.T, body io.Reader) models.APIResponse[T] {
	t.Helper()
	var env models.APIResponse[T]
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestResolveMultiCategory(t *testing.T) {
	srv := newTestAPI(t)
	importSample(t, srv)

	resp := postJSON(t, srv.URL+"/api/v1/resolve", models.ResolveRequest{
		Categories: []string{" category:Employee ", "Person"},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope[models.ResolveResponse](t, resp.Body)
	require.True(t, env.Success)

	byName := make(map[string]models.ResolvedProperty)
	for _, p := range env.Data.Properties {
		byName[p.Name] = p
	}

	name, ok := byName["Has name"]
	require.True(t, ok)
	assert.Equal(t, "Property:Has name", name.Title)
	assert.Equal(t, "Text", name.Datatype)
	assert.Equal(t, 1, name.Required)
	assert.Equal(t, 1, name.Shared)
	assert.Equal(t, []string{"Employee", "Person"}, name.Sources)

	id, ok := byName["Has id"]
	require.True(t, ok)
	assert.Equal(t, 1, id.Required)
	assert.Equal(t, 0, id.Shared)
	assert.Equal(t, []string{"Employee"}, id.Sources)

	email, ok := byName["Has email"]
	require.True(t, ok)
	assert.Equal(t, 0, email.Required)

	require.Len(t, env.Data.Subobjects, 1)
	assert.Equal(t, "Subobject:Address", env.Data.Subobjects[0].Title)
	assert.Equal(t, 0, env.Data.Subobjects[0].Required)

	require.Len(t, env.Data.Categories, 2)
	assert.Equal(t, "Employee", env.Data.Categories[0].Name)
	require.NotNil(t, env.Data.Categories[0].TargetNamespace)
	assert.Equal(t, "Staff", *env.Data.Categories[0].TargetNamespace)
	assert.Equal(t, "Person", env.Data.Categories[1].Name)
	assert.Nil(t, env.Data.Categories[1].TargetNamespace)
}

func TestResolveEmptyCategoryList(t *testing.T) {
	srv := newTestAPI(t)

	resp := postJSON(t, srv.URL+"/api/v1/resolve", models.ResolveRequest{Categories: []string{"  ", "Category:"}})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope[any](t, resp.Body)
	assert.False(t, env.Success)
	assert.Equal(t, services.CodeInvalidInput, env.Code)
}

func TestResolveUnknownCategoriesNamesAllMissing(t *testing.T) {
	srv := newTestAPI(t)
	importSample(t, srv)

	resp := postJSON(t, srv.URL+"/api/v1/resolve", models.ResolveRequest{
		Categories: []string{"Person", "Ghost", "Phantom"},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope[any](t, resp.Body)
	assert.False(t, env.Success)
	assert.Equal(t, services.CodeCategoryNotFound, env.Code)
	assert.Contains(t, env.Error, "Ghost")
	assert.Contains(t, env.Error, "Phantom")
	assert.NotContains(t, env.Error, "Person,")
}

func TestImportValidationFailureReportsIssues(t *testing.T) {
	srv := newTestAPI(t)

	broken := `
schemaVersion: "1.0"
categories:
  Person:
    properties:
      required: [Has nothing]
`
	resp, err := http.Post(srv.URL+"/api/v1/schemas/import", "application/yaml", strings.NewReader(broken))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	env := decodeEnvelope[models.ImportResponse](t, resp.Body)
	assert.False(t, env.Success)
	assert.Equal(t, services.CodeValidationFailed, env.Code)
	assert.NotEmpty(t, env.Data.Errors)
}

func TestImportDryRunFlag(t *testing.T) {
	srv := newTestAPI(t)

	resp, err := http.Post(srv.URL+"/api/v1/schemas/import?dryRun=1", "application/yaml", strings.NewReader(sampleYAML))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope[models.ImportResponse](t, resp.Body)
	require.True(t, env.Success)
	assert.True(t, env.Data.DryRun)

	// Nothing was written, so the universe is still empty.
	status, err := http.Get(srv.URL + "/api/v1/status")
	require.NoError(t, err)
	defer status.Body.Close()
	statusEnv := decodeEnvelope[models.StatusResponse](t, status.Body)
	assert.Zero(t, statusEnv.Data.PagesTracked)
}

func TestExportFormats(t *testing.T) {
	srv := newTestAPI(t)
	importSample(t, srv)

	resp, err := http.Get(srv.URL + "/api/v1/schemas/export?format=json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc, "categories")

	bad, err := http.Get(srv.URL + "/api/v1/schemas/export?format=xml")
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestRegenerateEndpoint(t *testing.T) {
	srv := newTestAPI(t)
	importSample(t, srv)

	resp := postJSON(t, srv.URL+"/api/v1/regenerate", models.RegenerateRequest{Categories: []string{"Person"}})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope[models.RegenerateResponse](t, resp.Body)
	require.True(t, env.Success)
	assert.Zero(t, env.Data.Failed)
	// Import already generated everything, so a regenerate is all skips.
	assert.Zero(t, env.Data.Written)
	assert.NotEmpty(t, env.Data.Artifacts)
}

func TestStatusReportsState(t *testing.T) {
	srv := newTestAPI(t)
	importSample(t, srv)

	resp, err := http.Get(srv.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope[models.StatusResponse](t, resp.Body)
	require.True(t, env.Success)
	assert.NotZero(t, env.Data.PagesTracked)
	assert.NotZero(t, env.Data.Templates)
	assert.Empty(t, env.Data.StaleTemplates)
	assert.Empty(t, env.Data.ChangedPages)
}

func TestInstallIsIdempotentOverHTTP(t *testing.T) {
	srv := newTestAPI(t)

	first := postJSON(t, srv.URL+"/api/v1/install", nil)
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstEnv := decodeEnvelope[models.InstallResponse](t, first.Body)
	require.True(t, firstEnv.Success)
	assert.NotZero(t, firstEnv.Data.Written)

	second := postJSON(t, srv.URL+"/api/v1/install", nil)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)
	secondEnv := decodeEnvelope[models.InstallResponse](t, second.Body)
	assert.Zero(t, secondEnv.Data.Written)
	assert.Equal(t, firstEnv.Data.Written, secondEnv.Data.Skipped)
}

func TestOperationalEndpoints(t *testing.T) {
	srv := newTestAPI(t)

	for _, path := range []string{"/health", "/ready", "/version", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	version, err := http.Get(srv.URL + "/version")
	require.NoError(t, err)
	defer version.Body.Close()
	env := decodeEnvelope[map[string]any](t, version.Body)
	assert.Equal(t, "semanticschemas", env.Data["name"])
}
