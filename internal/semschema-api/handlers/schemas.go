// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
)

// maxSchemaDocumentSize bounds import request bodies.
const maxSchemaDocumentSize = 4 << 20

// ImportSchema handles POST /api/v1/schemas/import?dryRun=1
func (h *Handler) ImportSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(io.LimitReader(r.Body, maxSchemaDocumentSize+1))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Failed to read request body", services.CodeInvalidInput)
		return
	}
	if len(data) == 0 {
		writeErrorResponse(w, http.StatusBadRequest, "Schema document is required", services.CodeInvalidInput)
		return
	}
	if len(data) > maxSchemaDocumentSize {
		writeErrorResponse(w, http.StatusRequestEntityTooLarge, "Schema document too large", services.CodeInvalidInput)
		return
	}

	opts := services.ImportOptions{
		DryRun: queryFlag(r, "dryRun"),
		Bypass: queryFlag(r, "bypass"),
	}

	resp, err := h.services.SchemaService.Import(ctx, data, opts)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDocument) {
			writeErrorResponse(w, http.StatusBadRequest, err.Error(), services.CodeInvalidInput)
			return
		}
		if errors.Is(err, services.ErrValidationFailed) {
			writeFailureResponse(w, http.StatusUnprocessableEntity, resp,
				services.ErrValidationFailed.Error(), services.CodeValidationFailed)
			return
		}
		h.logger.Error("Failed to import schema", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to import schema", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, resp)
}

// ExportSchema handles GET /api/v1/schemas/export?format=yaml|json
func (h *Handler) ExportSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := r.URL.Query().Get("format")

	data, err := h.services.SchemaService.Export(ctx, format)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFormat) {
			writeErrorResponse(w, http.StatusBadRequest, err.Error(), services.CodeInvalidInput)
			return
		}
		h.logger.Error("Failed to export schema", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to export schema", services.CodeInternalError)
		return
	}

	if format == string(schemafile.FormatJSON) {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "application/yaml")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Regenerate handles POST /api/v1/regenerate
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegenerateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", services.CodeInvalidInput)
			return
		}
	}

	resp, err := h.services.CompileService.Regenerate(ctx, req.Categories)
	if err != nil {
		h.logger.Error("Failed to regenerate artifacts", "error", err, "categories", req.Categories)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to regenerate artifacts", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, resp)
}

// Status handles GET /api/v1/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.CompileService.Status(r.Context())
	if err != nil {
		h.logger.Error("Failed to build status report", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to build status report", services.CodeInternalError)
		return
	}
	writeSuccessResponse(w, http.StatusOK, resp)
}

// Install handles POST /api/v1/install
func (h *Handler) Install(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.CompileService.Install(r.Context())
	if err != nil {
		h.logger.Error("Failed to install base ontology", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to install base ontology", services.CodeInternalError)
		return
	}
	writeSuccessResponse(w, http.StatusOK, resp)
}

// queryFlag reads a boolean query parameter; "1" and "true" enable it.
func queryFlag(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	return v == "1" || v == "true"
}
