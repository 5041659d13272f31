// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package config defines the semschema-api configuration: defaults, YAML
// file, then SSC_API__ environment variables, highest last.
package config

import (
	"fmt"

	"github.com/semanticschemas/semanticschemas/internal/config"
	"github.com/semanticschemas/semanticschemas/internal/state"
)

// EnvPrefix is the environment variable prefix:
// SSC_API__SERVER__PORT -> server.port.
const EnvPrefix = "SSC_API"

// Config is the top-level semschema-api configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Wiki    WikiConfig    `koanf:"wiki"`
	Logging LoggingConfig `koanf:"logging"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Server:  ServerDefaults(),
		Wiki:    WikiDefaults(),
		Logging: LoggingDefaults(),
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// the environment, then validates it.
func Load(configPath string) (*Config, error) {
	loader := config.NewLoader(EnvPrefix)
	if err := loader.LoadWithDefaults(Defaults(), configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := loader.UnmarshalAndValidate("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate validates the whole configuration tree.
func (c *Config) Validate() error {
	var errs config.ValidationErrors
	errs = append(errs, c.Server.Validate(config.NewPath("server"))...)
	errs = append(errs, c.Wiki.Validate(config.NewPath("wiki"))...)
	errs = append(errs, c.Logging.Validate(config.NewPath("logging"))...)
	return errs.OrNil()
}

// LoggingConfig defines log output settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`
	// Format is the log output format (json, text).
	Format string `koanf:"format"`
}

// LoggingDefaults returns the default logging configuration.
func LoggingDefaults() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// Validate validates the logging configuration.
func (c *LoggingConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors
	if err := config.MustBeOneOf(path.Child("level"), c.Level, []string{"debug", "info", "warn", "error"}); err != nil {
		errs = append(errs, err)
	}
	if err := config.MustBeOneOf(path.Child("format"), c.Format, []string{"json", "text"}); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// WikiConfig selects and configures the wiki backend.
type WikiConfig struct {
	// Backend is the wiki backend kind (memory, sqlite).
	Backend string `koanf:"backend"`
	// SQLite configures the sqlite backend.
	SQLite SQLiteConfig `koanf:"sqlite"`
	// StatePage is the MediaWiki-namespace page holding the state
	// document.
	StatePage string `koanf:"state_page"`
}

// SQLiteConfig configures the sqlite wiki backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string `koanf:"path"`
}

// WikiDefaults returns the default wiki configuration.
func WikiDefaults() WikiConfig {
	return WikiConfig{
		Backend: "sqlite",
		SQLite: SQLiteConfig{
			Path: "semanticschemas.db",
		},
		StatePage: state.DefaultStatePage,
	}
}

// Validate validates the wiki configuration.
func (c *WikiConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors
	if err := config.MustBeOneOf(path.Child("backend"), c.Backend, []string{"memory", "sqlite"}); err != nil {
		errs = append(errs, err)
	}
	if c.Backend == "sqlite" && c.SQLite.Path == "" {
		errs = append(errs, config.Required(path.Child("sqlite").Child("path")))
	}
	if c.StatePage == "" {
		errs = append(errs, config.Required(path.Child("state_page")))
	}
	return errs
}
