// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"time"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
	"github.com/semanticschemas/semanticschemas/internal/installer"
	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/semschema-api/models"
)

func issueList(issues []schemafile.Issue) []models.ValidationIssue {
	out := make([]models.ValidationIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, models.ValidationIssue{
			Severity: string(i.Severity),
			Path:     i.Path,
			Message:  i.Message,
		})
	}
	return out
}

func artifactList(in []compiler.ArtifactResult) []models.ArtifactResult {
	out := make([]models.ArtifactResult, 0, len(in))
	for _, a := range in {
		out = append(out, models.ArtifactResult{
			Name:    a.Name,
			Title:   a.Title,
			Outcome: string(a.Outcome),
			Error:   a.Error,
		})
	}
	return out
}

func importResponse(report *compiler.ImportReport) *models.ImportResponse {
	resp := &models.ImportResponse{
		DryRun:   report.DryRun,
		Entities: artifactList(report.Entities),
	}
	if report.Validation != nil {
		resp.Errors = issueList(report.Validation.Errors)
		resp.Warnings = issueList(report.Validation.Warnings)
	}
	if report.Artifacts != nil {
		resp.Artifacts = artifactList(report.Artifacts.Artifacts)
	}
	return resp
}

func regenerateResponse(report *compiler.RegenerateReport) *models.RegenerateResponse {
	return &models.RegenerateResponse{
		Written:   report.Written(),
		Skipped:   report.Skipped(),
		Failed:    report.Failed(),
		Artifacts: artifactList(report.Artifacts),
	}
}

func statusResponse(report *compiler.StatusReport) *models.StatusResponse {
	resp := &models.StatusResponse{
		PagesTracked:   len(report.State.PageHashes),
		Templates:      len(report.State.TemplateHashes),
		StaleTemplates: emptyIfNil(report.StaleTemplates),
		ChangedPages:   emptyIfNil(report.PageDrift.Changed),
		NewPages:       emptyIfNil(report.PageDrift.New),
		RemovedPages:   emptyIfNil(report.PageDrift.Removed),
	}
	if !report.State.LastUpdated.IsZero() {
		resp.LastUpdated = report.State.LastUpdated.UTC().Format(time.RFC3339)
	}
	return resp
}

func installResponse(report *installer.Report) *models.InstallResponse {
	resp := &models.InstallResponse{
		Written: report.Written(),
		Skipped: report.Skipped(),
		Layers:  make([]models.InstallLayer, 0, len(report.Layers)),
	}
	for _, layer := range report.Layers {
		resp.Layers = append(resp.Layers, models.InstallLayer{
			Name:    layer.Name,
			Written: len(layer.Written),
			Skipped: len(layer.Skipped),
			Failed:  layer.Failed,
		})
	}
	return resp
}

// emptyIfNil keeps drift lists encoding as [] rather than null.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
