// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"slices"
	"strings"
)

// forbiddenNameChars are characters the wiki rejects in titles. Entity names
// become page titles, so the same restriction applies at construction time.
const forbiddenNameChars = "<>{}|#"

// PropertySpec carries the raw attributes for constructing a Property.
type PropertySpec struct {
	Name                 string
	Datatype             Datatype
	Label                string
	Description          string
	AllowedValues        []string
	AllowedNamespace     string
	AllowedCategory      string
	AllowsMultipleValues bool
	HasTemplate          string
	SubpropertyOf        string
}

// Property is a globally scoped, immutable property definition. Names are
// the identity: two categories referring to the same name refer to the same
// property. Values are safe to copy and share; the contained slices are
// never mutated after construction.
type Property struct {
	name                 string
	datatype             Datatype
	label                string
	description          string
	allowedValues        []string
	allowedNamespace     string
	allowedCategory      string
	allowsMultipleValues bool
	hasTemplate          string
	subpropertyOf        string
}

// NewProperty validates spec and constructs an immutable Property.
func NewProperty(spec PropertySpec) (Property, error) {
	if err := validateName(spec.Name); err != nil {
		return Property{}, fmt.Errorf("property: %w", err)
	}
	if !spec.Datatype.IsValid() {
		return Property{}, fmt.Errorf("property %q: %w: %q", spec.Name, ErrUnknownDatatype, string(spec.Datatype))
	}
	if spec.AllowedValues != nil && len(spec.AllowedValues) == 0 {
		return Property{}, fmt.Errorf("property %q: %w", spec.Name, ErrEmptyAllowedValues)
	}
	seen := make(map[string]struct{}, len(spec.AllowedValues))
	for _, v := range spec.AllowedValues {
		if _, dup := seen[v]; dup {
			return Property{}, fmt.Errorf("property %q: %w: %q", spec.Name, ErrDuplicateAllowedValue, v)
		}
		seen[v] = struct{}{}
	}
	return Property{
		name:                 spec.Name,
		datatype:             spec.Datatype,
		label:                spec.Label,
		description:          spec.Description,
		allowedValues:        slices.Clone(spec.AllowedValues),
		allowedNamespace:     spec.AllowedNamespace,
		allowedCategory:      spec.AllowedCategory,
		allowsMultipleValues: spec.AllowsMultipleValues,
		hasTemplate:          spec.HasTemplate,
		subpropertyOf:        spec.SubpropertyOf,
	}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if i := strings.IndexAny(name, forbiddenNameChars); i >= 0 {
		return fmt.Errorf("%w: %q in %q", ErrForbiddenCharacter, name[i:i+1], name)
	}
	return nil
}

func (p Property) Name() string        { return p.name }
func (p Property) Datatype() Datatype  { return p.datatype }
func (p Property) Label() string       { return p.label }
func (p Property) Description() string { return p.description }

// AllowedValues returns a copy of the closed value set, or nil when the
// property is unrestricted.
func (p Property) AllowedValues() []string { return slices.Clone(p.allowedValues) }

func (p Property) AllowedNamespace() string   { return p.allowedNamespace }
func (p Property) AllowedCategory() string    { return p.allowedCategory }
func (p Property) AllowsMultipleValues() bool { return p.allowsMultipleValues }
func (p Property) HasTemplate() string        { return p.hasTemplate }
func (p Property) SubpropertyOf() string      { return p.subpropertyOf }

// Equal reports whether two properties carry identical definitions.
func (p Property) Equal(other Property) bool {
	return p.name == other.name &&
		p.datatype == other.datatype &&
		p.label == other.label &&
		p.description == other.description &&
		slices.Equal(p.allowedValues, other.allowedValues) &&
		p.allowedNamespace == other.allowedNamespace &&
		p.allowedCategory == other.allowedCategory &&
		p.allowsMultipleValues == other.allowsMultipleValues &&
		p.hasTemplate == other.hasTemplate &&
		p.subpropertyOf == other.subpropertyOf
}

// Spec returns the property's attributes as a PropertySpec. The result is
// detached: mutating it does not affect the property.
func (p Property) Spec() PropertySpec {
	return PropertySpec{
		Name:                 p.name,
		Datatype:             p.datatype,
		Label:                p.label,
		Description:          p.description,
		AllowedValues:        slices.Clone(p.allowedValues),
		AllowedNamespace:     p.allowedNamespace,
		AllowedCategory:      p.allowedCategory,
		AllowsMultipleValues: p.allowsMultipleValues,
		HasTemplate:          p.hasTemplate,
		SubpropertyOf:        p.subpropertyOf,
	}
}
