// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import "errors"

var (
	// ErrUnknownCategory is returned when a referenced category has no
	// definition in the universe. The message names every missing category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCycle is returned when the parent graph contains a cycle. The
	// message carries the full chain.
	ErrCycle = errors.New("inheritance cycle")

	// ErrNoCategories is returned when a resolution is requested with no
	// input categories.
	ErrNoCategories = errors.New("at least one category is required")
)
