// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package handlers wires the resolution API routes. Handlers decode
// requests, call services, and map sentinel errors to status codes.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
	"github.com/semanticschemas/semanticschemas/internal/server/middleware/logger"
	"github.com/semanticschemas/semanticschemas/internal/server/middleware/metrics"
	"github.com/semanticschemas/semanticschemas/internal/server/middleware/recovery"
	"github.com/semanticschemas/semanticschemas/pkg/middleware"
)

// Handler holds the services and provides HTTP handlers.
type Handler struct {
	services *services.Services
	logger   *slog.Logger
}

// New creates a new Handler instance.
func New(services *services.Services, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Routes sets up all HTTP routes and returns the configured handler.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	v1 := "/api/v1"

	// Global middlewares, outermost first.
	routes := middleware.NewRouteBuilder(mux).With(
		logger.Middleware(h.logger),
		recovery.Middleware(h.logger),
		metrics.Middleware(),
	)

	// Operational endpoints
	routes.HandleFunc("GET /health", h.Health)
	routes.HandleFunc("GET /ready", h.Ready)
	routes.HandleFunc("GET /version", h.Version)
	routes.Handle("GET /metrics", promhttp.Handler())

	// Resolution API
	routes.HandleFunc("POST "+v1+"/resolve", h.Resolve)

	// Schema lifecycle
	routes.HandleFunc("POST "+v1+"/schemas/import", h.ImportSchema)
	routes.HandleFunc("GET "+v1+"/schemas/export", h.ExportSchema)
	routes.HandleFunc("POST "+v1+"/regenerate", h.Regenerate)
	routes.HandleFunc("GET "+v1+"/status", h.Status)
	routes.HandleFunc("POST "+v1+"/install", h.Install)

	return mux
}
