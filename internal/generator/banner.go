// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

// Banner comments open every generated page. The managed banner marks
// pages the compiler owns outright and overwrites on regeneration; the
// stub banner marks display stubs, which are created once and then belong
// to wiki editors.
const (
	ManagedBanner = "<!-- Generated by SemanticSchemas. Do not edit: changes are overwritten on regeneration. -->"
	StubBanner    = "<!-- Created by SemanticSchemas as an editable stub. This page is yours: it is never overwritten. -->"
)

// ManagedCategoryTag marks every compiler-managed page so managed entities
// can be enumerated with a category scan instead of a custom index.
const ManagedCategoryTag = "[[Category:SemanticSchemas managed]]"
