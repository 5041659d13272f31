// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import "errors"

var (
	// ErrPageNotFound is returned by Read for a title with no page.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidTitle is returned when a title cannot be constructed.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrMalformedMarkers is returned when a page carries an unpaired or
	// misordered marker comment.
	ErrMalformedMarkers = errors.New("malformed region markers")
)
