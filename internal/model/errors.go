// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import "errors"

var (
	// ErrEmptyName is returned when an entity is constructed without a name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrForbiddenCharacter is returned when a name contains a character the
	// wiki cannot accept in a title.
	ErrForbiddenCharacter = errors.New("name contains a forbidden character")

	// ErrUnknownDatatype is returned for a datatype outside the closed set.
	ErrUnknownDatatype = errors.New("unknown datatype")

	// ErrEmptyAllowedValues is returned when allowedValues is present but
	// holds no values.
	ErrEmptyAllowedValues = errors.New("allowedValues must not be empty when present")

	// ErrDuplicateAllowedValue is returned when allowedValues repeats a value.
	ErrDuplicateAllowedValue = errors.New("duplicate allowed value")

	// ErrSelfParent is returned when a category lists itself as a parent.
	ErrSelfParent = errors.New("category cannot be its own parent")

	// ErrDuplicateParent is returned when a category lists a parent twice.
	ErrDuplicateParent = errors.New("duplicate parent")

	// ErrDuplicateName is returned when a schema already holds an entity of
	// the same kind under that name.
	ErrDuplicateName = errors.New("duplicate name")
)
