// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/semanticschemas/semanticschemas/internal/logging"
	apiconfig "github.com/semanticschemas/semanticschemas/internal/semschema-api/config"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/handlers"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
	"github.com/semanticschemas/semanticschemas/internal/server"
	"github.com/semanticschemas/semanticschemas/internal/state"
	"github.com/semanticschemas/semanticschemas/internal/version"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
	"github.com/semanticschemas/semanticschemas/internal/wiki/memwiki"
	"github.com/semanticschemas/semanticschemas/internal/wiki/sqlitewiki"
)

var configPath = flag.String("config", "", "path to the configuration file")

func main() {
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("SSC_API_CONFIG_PATH")
	}

	cfg, err := apiconfig.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backend, err := openBackend(cfg, logger)
	if err != nil {
		logger.Error("Failed to open wiki backend", slog.Any("error", err))
		os.Exit(1)
	}

	stateMgr, err := state.NewManager(backend, cfg.Wiki.StatePage, logger.With("component", "state"))
	if err != nil {
		logger.Error("Failed to initialize state manager", slog.Any("error", err))
		os.Exit(1)
	}

	svcs := services.NewServices(backend, stateMgr, logger)
	handler := handlers.New(svcs, logger.With("component", "handlers"))

	logger.Info("semschema-api starting",
		slog.String("backend", cfg.Wiki.Backend),
		slog.String("version", version.Get().Version))
	err = server.Run(ctx, server.Config{
		Addr:            ":" + strconv.Itoa(cfg.Server.Port),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, handler.Routes(), logger)
	if err != nil {
		logger.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func openBackend(cfg *apiconfig.Config, logger *slog.Logger) (wiki.Store, error) {
	switch cfg.Wiki.Backend {
	case "memory":
		return memwiki.New(), nil
	case "sqlite":
		return sqlitewiki.Open(cfg.Wiki.SQLite.Path, logger.With("component", "sqlitewiki"))
	default:
		return nil, fmt.Errorf("unknown wiki backend %q", cfg.Wiki.Backend)
	}
}
