// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
)

// Resolve handles POST /api/v1/resolve
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", services.CodeInvalidInput)
		return
	}

	resp, err := h.services.ResolutionService.Resolve(ctx, req.Categories)
	if err != nil {
		if errors.Is(err, services.ErrNoCategories) {
			writeErrorResponse(w, http.StatusBadRequest, services.ErrNoCategories.Error(), services.CodeInvalidInput)
			return
		}
		if errors.Is(err, services.ErrCategoryNotFound) {
			writeErrorResponse(w, http.StatusNotFound, err.Error(), services.CodeCategoryNotFound)
			return
		}
		h.logger.Error("Failed to resolve categories", "error", err, "categories", req.Categories)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to resolve categories", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, resp)
}
