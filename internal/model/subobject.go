// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"slices"
)

// SubobjectSpec carries the raw attributes for constructing a Subobject.
type SubobjectSpec struct {
	Name               string
	RequiredProperties []string
	OptionalProperties []string
}

// Subobject is an immutable named group of properties stored as a sub-record
// of an entity page. Subobjects do not inherit. Required and optional lists
// follow the same promotion normalization as categories.
type Subobject struct {
	name               string
	requiredProperties []string
	optionalProperties []string

	promotedProperties []string
}

// NewSubobject validates spec, normalizes the property lists, and constructs
// an immutable Subobject.
func NewSubobject(spec SubobjectSpec) (Subobject, error) {
	if err := validateName(spec.Name); err != nil {
		return Subobject{}, fmt.Errorf("subobject: %w", err)
	}
	req, opt, promoted := normalizeRequiredOptional(spec.RequiredProperties, spec.OptionalProperties)
	return Subobject{
		name:               spec.Name,
		requiredProperties: req,
		optionalProperties: opt,
		promotedProperties: promoted,
	}, nil
}

func (s Subobject) Name() string                 { return s.name }
func (s Subobject) RequiredProperties() []string { return slices.Clone(s.requiredProperties) }
func (s Subobject) OptionalProperties() []string { return slices.Clone(s.optionalProperties) }

// PromotedProperties lists names promoted to required at construction.
func (s Subobject) PromotedProperties() []string { return slices.Clone(s.promotedProperties) }

// AllPropertyNames returns required followed by optional property names.
func (s Subobject) AllPropertyNames() []string {
	out := make([]string, 0, len(s.requiredProperties)+len(s.optionalProperties))
	out = append(out, s.requiredProperties...)
	out = append(out, s.optionalProperties...)
	return out
}
