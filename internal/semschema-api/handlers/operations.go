// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"

	"github.com/semanticschemas/semanticschemas/internal/version"
)

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeSuccessResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready handles GET /ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	// Readiness means the wiki backend answers; a status load touches both
	// the backend and the state page.
	if _, err := h.services.CompileService.Status(r.Context()); err != nil {
		h.logger.Warn("Readiness check failed", "error", err)
		writeErrorResponse(w, http.StatusServiceUnavailable, "wiki backend unavailable", "NOT_READY")
		return
	}
	writeSuccessResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Version handles GET /version
func (h *Handler) Version(w http.ResponseWriter, _ *http.Request) {
	writeSuccessResponse(w, http.StatusOK, version.Get())
}
