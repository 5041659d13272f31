// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/semanticschemas/semanticschemas/internal/store"
)

var (
	pagesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semanticschemas",
		Subsystem: "compiler",
		Name:      "pages_written_total",
		Help:      "Wiki pages written by the compiler.",
	})

	writesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semanticschemas",
		Subsystem: "compiler",
		Name:      "writes_skipped_total",
		Help:      "Writes skipped because the page content was already current.",
	})

	artifactsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semanticschemas",
		Subsystem: "compiler",
		Name:      "artifacts_failed_total",
		Help:      "Artifact writes that failed.",
	})
)

func countOutcome(o store.Outcome) {
	switch o {
	case store.OutcomeWritten:
		pagesWritten.Inc()
	case store.OutcomeSkipped:
		writesSkipped.Inc()
	}
}
