// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Wiki.Backend)
	assert.Equal(t, "SemanticSchemas-state", cfg.Wiki.StatePage)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	cfg.Wiki.Backend = "postgres"
	cfg.Wiki.StatePage = ""
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "wiki.backend")
	assert.Contains(t, err.Error(), "wiki.state_page")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SSC_API__SERVER__PORT", "9191")
	t.Setenv("SSC_API__WIKI__BACKEND", "memory")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Wiki.Backend)
}
