// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package services

import "errors"

var (
	// ErrNoCategories is returned when a resolve or regenerate request
	// carries no usable category names after normalization.
	ErrNoCategories = errors.New("at least one category is required")

	// ErrCategoryNotFound is returned when a requested category has no
	// definition in the wiki. The message names every missing category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidDocument is returned when a schema document cannot be
	// parsed at all.
	ErrInvalidDocument = errors.New("invalid schema document")

	// ErrValidationFailed is returned when a parsed schema document fails
	// validation; the import report carries the findings.
	ErrValidationFailed = errors.New("schema validation failed")

	// ErrInvalidFormat is returned for an unsupported export format.
	ErrInvalidFormat = errors.New("format must be yaml or json")
)

// Error codes surfaced in the response envelope.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)
