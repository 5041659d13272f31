// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"fmt"
	"sort"
)

// Severity distinguishes fatal problems from reportable ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding, located by a field path such as
// "categories[Person].properties.required[2]".
type Issue struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Result collects the findings of one load or validation pass. Warnings
// never block; a single error does.
type Result struct {
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// OK reports whether the document may be acted on.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) addError(path, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Severity: SeverityError, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) addWarning(path, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Severity: SeverityWarning, Path: path, Message: fmt.Sprintf(format, args...)})
}

// sortIssues orders findings by path then message so results are stable
// across map iteration order.
func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}
		return issues[i].Message < issues[j].Message
	})
}
