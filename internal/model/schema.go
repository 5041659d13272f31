// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"sort"
)

// Schema is the in-memory universe a compilation works against: name-keyed
// categories, properties, and subobjects. Categories reference parents,
// properties, and subobjects by name only; resolution happens against this
// universe. Iteration order is name-sorted so every traversal of the same
// schema is deterministic.
type Schema struct {
	version    string
	categories map[string]Category
	properties map[string]Property
	subobjects map[string]Subobject
}

// NewSchema constructs an empty schema universe. version is the document
// schemaVersion it was loaded from, if any.
func NewSchema(version string) *Schema {
	return &Schema{
		version:    version,
		categories: make(map[string]Category),
		properties: make(map[string]Property),
		subobjects: make(map[string]Subobject),
	}
}

// Version returns the document schemaVersion.
func (s *Schema) Version() string { return s.version }

// AddProperty registers a property definition. Names are globally unique per
// kind.
func (s *Schema) AddProperty(p Property) error {
	if _, dup := s.properties[p.Name()]; dup {
		return fmt.Errorf("property %q: %w", p.Name(), ErrDuplicateName)
	}
	s.properties[p.Name()] = p
	return nil
}

// AddCategory registers a category definition.
func (s *Schema) AddCategory(c Category) error {
	if _, dup := s.categories[c.Name()]; dup {
		return fmt.Errorf("category %q: %w", c.Name(), ErrDuplicateName)
	}
	s.categories[c.Name()] = c
	return nil
}

// AddSubobject registers a subobject definition.
func (s *Schema) AddSubobject(sub Subobject) error {
	if _, dup := s.subobjects[sub.Name()]; dup {
		return fmt.Errorf("subobject %q: %w", sub.Name(), ErrDuplicateName)
	}
	s.subobjects[sub.Name()] = sub
	return nil
}

// PropertyByName looks up a property definition.
func (s *Schema) PropertyByName(name string) (Property, bool) {
	p, ok := s.properties[name]
	return p, ok
}

// CategoryByName looks up a category definition.
func (s *Schema) CategoryByName(name string) (Category, bool) {
	c, ok := s.categories[name]
	return c, ok
}

// SubobjectByName looks up a subobject definition.
func (s *Schema) SubobjectByName(name string) (Subobject, bool) {
	sub, ok := s.subobjects[name]
	return sub, ok
}

// PropertyNames returns all property names, sorted.
func (s *Schema) PropertyNames() []string { return sortedKeys(s.properties) }

// CategoryNames returns all category names, sorted.
func (s *Schema) CategoryNames() []string { return sortedKeys(s.categories) }

// SubobjectNames returns all subobject names, sorted.
func (s *Schema) SubobjectNames() []string { return sortedKeys(s.subobjects) }

// Properties returns all property definitions in name order.
func (s *Schema) Properties() []Property {
	out := make([]Property, 0, len(s.properties))
	for _, name := range s.PropertyNames() {
		out = append(out, s.properties[name])
	}
	return out
}

// Categories returns all category definitions in name order.
func (s *Schema) Categories() []Category {
	out := make([]Category, 0, len(s.categories))
	for _, name := range s.CategoryNames() {
		out = append(out, s.categories[name])
	}
	return out
}

// Subobjects returns all subobject definitions in name order.
func (s *Schema) Subobjects() []Subobject {
	out := make([]Subobject, 0, len(s.subobjects))
	for _, name := range s.SubobjectNames() {
		out = append(out, s.subobjects[name])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
