// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package models holds the wire types of the resolution API. Responses are
// wrapped in a uniform envelope; the resolve payload uses integer 0/1 flags
// instead of booleans so the encoding is stable across JSON and other
// serializations consumed by wiki-side scripts.
package models

// APIResponse is the envelope every endpoint returns.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func SuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(message, code string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Error:   message,
		Code:    code,
	}
}

// ResolveRequest carries the category selection to resolve. Names may carry
// a "Category:" prefix and surrounding whitespace; the service normalizes
// them.
type ResolveRequest struct {
	Categories []string `json:"categories"`
}

// ResolvedProperty is one property in a resolution result. Required and
// Shared are 0/1 integers.
type ResolvedProperty struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Datatype string   `json:"datatype"`
	Required int      `json:"required"`
	Shared   int      `json:"shared"`
	Sources  []string `json:"sources"`
}

// ResolvedSubobject is one subobject in a resolution result.
type ResolvedSubobject struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Required int      `json:"required"`
	Shared   int      `json:"shared"`
	Sources  []string `json:"sources"`
}

// ResolvedCategory echoes one input category with its effective target
// namespace; null when the category declares none.
type ResolvedCategory struct {
	Name            string  `json:"name"`
	TargetNamespace *string `json:"targetNamespace"`
}

// ResolveResponse is the resolve endpoint payload. Properties and
// subobjects list required entries first.
type ResolveResponse struct {
	Properties []ResolvedProperty  `json:"properties"`
	Subobjects []ResolvedSubobject `json:"subobjects"`
	Categories []ResolvedCategory  `json:"categories"`
}

// RegenerateRequest selects the categories to regenerate; empty means every
// managed category.
type RegenerateRequest struct {
	Categories []string `json:"categories"`
}

// ValidationIssue is one schema validation finding.
type ValidationIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

// ArtifactResult reports the outcome of one page write.
type ArtifactResult struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// ImportResponse reports a schema import: validation findings, definition
// page outcomes, and regenerated artifact outcomes.
type ImportResponse struct {
	DryRun    bool              `json:"dryRun"`
	Errors    []ValidationIssue `json:"errors,omitempty"`
	Warnings  []ValidationIssue `json:"warnings,omitempty"`
	Entities  []ArtifactResult  `json:"entities,omitempty"`
	Artifacts []ArtifactResult  `json:"artifacts,omitempty"`
}

// RegenerateResponse reports the artifact outcomes of a regeneration pass.
type RegenerateResponse struct {
	Written   int              `json:"written"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
	Artifacts []ArtifactResult `json:"artifacts"`
}

// StatusResponse reports compiler state and drift.
type StatusResponse struct {
	LastUpdated    string   `json:"lastUpdated,omitempty"`
	PagesTracked   int      `json:"pagesTracked"`
	Templates      int      `json:"templates"`
	StaleTemplates []string `json:"staleTemplates"`
	ChangedPages   []string `json:"changedPages"`
	NewPages       []string `json:"newPages"`
	RemovedPages   []string `json:"removedPages"`
}

// InstallLayer reports one installer layer.
type InstallLayer struct {
	Name    string   `json:"name"`
	Written int      `json:"written"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}

// InstallResponse reports a base ontology install.
type InstallResponse struct {
	Written int            `json:"written"`
	Skipped int            `json:"skipped"`
	Layers  []InstallLayer `json:"layers"`
}
