// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
	"github.com/semanticschemas/semanticschemas/internal/config"
	"github.com/semanticschemas/semanticschemas/internal/logging"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/internal/wiki/memwiki"
	"github.com/semanticschemas/semanticschemas/internal/wiki/sqlitewiki"
)

// Settings are the resolved global options: flag defaults, then SSC__
// environment variables, then explicitly set flags.
type Settings struct {
	Store     string `koanf:"store"`
	DB        string `koanf:"db"`
	StatePage string `koanf:"state_page"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// flagMappings maps persistent flag names to config keys.
var flagMappings = map[string]string{
	"store":      "store",
	"db":         "db",
	"state-page": "state_page",
	"log-level":  "log_level",
	"log-format": "log_format",
}

// loadSettings resolves the global options for one invocation.
func loadSettings(flags *pflag.FlagSet) (*Settings, error) {
	defaults := map[string]any{
		"store":      mustFlagDefault(flags, "store"),
		"db":         mustFlagDefault(flags, "db"),
		"state_page": mustFlagDefault(flags, "state-page"),
		"log_level":  mustFlagDefault(flags, "log-level"),
		"log_format": mustFlagDefault(flags, "log-format"),
	}

	loader := config.NewLoader("SSC")
	if err := loader.LoadMap(defaults); err != nil {
		return nil, err
	}
	// Environment: SSC__STORE, SSC__STATE_PAGE, ...
	if err := loader.LoadWithDefaults(nil, ""); err != nil {
		return nil, err
	}
	if err := loader.LoadFlags(flags, flagMappings); err != nil {
		return nil, err
	}

	var s Settings
	if err := loader.Unmarshal("", &s); err != nil {
		return nil, err
	}
	if s.Store != "memory" && s.Store != "sqlite" {
		return nil, fmt.Errorf("unknown store %q (want memory or sqlite)", s.Store)
	}
	return &s, nil
}

func mustFlagDefault(flags *pflag.FlagSet, name string) string {
	f := flags.Lookup(name)
	if f == nil {
		panic("undefined flag " + name)
	}
	return f.DefValue
}

// runtime bundles the objects a subcommand works with.
type runtime struct {
	settings *Settings
	logger   *slog.Logger
	backend  wiki.Store
	state    *state.Manager
	compiler *compiler.Compiler
}

// newRuntime opens the selected backend and assembles a compiler over it.
func newRuntime(flags *pflag.FlagSet) (*runtime, error) {
	s, err := loadSettings(flags)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
	})

	var backend wiki.Store
	switch s.Store {
	case "memory":
		backend = memwiki.New()
	case "sqlite":
		backend, err = sqlitewiki.Open(s.DB, logger.With("component", "sqlitewiki"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
	}

	mgr, err := state.NewManager(backend, s.StatePage, logger.With("component", "state"))
	if err != nil {
		return nil, err
	}

	return &runtime{
		settings: s,
		logger:   logger,
		backend:  backend,
		state:    mgr,
		compiler: compiler.New(backend, mgr, logger),
	}, nil
}
