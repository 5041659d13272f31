// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
)

// writeSuccessResponse writes a successful envelope with the given data.
func writeSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	writeJSONResponse(w, statusCode, models.SuccessResponse(data))
}

// writeErrorResponse writes an error envelope with a message and code.
func writeErrorResponse(w http.ResponseWriter, statusCode int, message, code string) {
	writeJSONResponse(w, statusCode, models.ErrorResponse(message, code))
}

// writeFailureResponse writes a failed envelope that still carries data,
// e.g. a validation report.
func writeFailureResponse[T any](w http.ResponseWriter, statusCode int, data T, message, code string) {
	writeJSONResponse(w, statusCode, models.APIResponse[T]{
		Success: false,
		Data:    data,
		Error:   message,
		Code:    code,
	})
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
