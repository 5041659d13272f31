// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import "errors"

var (
	// ErrValidationFailed means the schema document did not validate; no
	// writes were performed.
	ErrValidationFailed = errors.New("schema document validation failed")
)
