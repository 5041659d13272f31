// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package installer writes the base ontology into the wiki in five ordered
// layers. The semantic backend registers property types asynchronously, so
// each layer must reach quiescence before the next starts: an annotation
// written before its property's type declaration has been processed is
// dropped by the backend. The installer flushes pending semantic work
// between layers and refuses to advance past a failure.
package installer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/semanticschemas/semanticschemas/internal/store"
	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

// DefaultFlushTimeout bounds one inter-layer flush of the semantic
// backend's work queue.
const DefaultFlushTimeout = 30 * time.Second

// LayerReport records what one layer's writes did.
type LayerReport struct {
	Name    string   `json:"name"`
	Written []string `json:"written,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
	Failed  []string `json:"failed,omitempty"`
}

// Report is the per-layer outcome of one install run. Layers that never
// ran (because an earlier one failed) are absent.
type Report struct {
	Layers []LayerReport `json:"layers"`
}

// Written counts pages written (or planned, in a dry run) across layers.
func (r *Report) Written() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Written)
	}
	return n
}

// Skipped counts pages whose content was already current.
func (r *Report) Skipped() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Skipped)
	}
	return n
}

// Installer drives the layered install against one wiki backend.
type Installer struct {
	store        wiki.Store
	creator      *store.PageCreator
	ontology     Ontology
	logger       *slog.Logger
	flushTimeout time.Duration
}

// Option configures an Installer.
type Option func(*Installer)

// WithOntology replaces the base ontology, for extensions and tests.
func WithOntology(o Ontology) Option {
	return func(i *Installer) { i.ontology = o }
}

// WithFlushTimeout bounds each inter-layer flush.
func WithFlushTimeout(d time.Duration) Option {
	return func(i *Installer) { i.flushTimeout = d }
}

// New constructs an installer writing through creator.
func New(s wiki.Store, creator *store.PageCreator, logger *slog.Logger, opts ...Option) *Installer {
	if logger == nil {
		logger = slog.Default()
	}
	inst := &Installer{
		store:        s,
		creator:      creator,
		ontology:     Base(),
		logger:       logger.With("component", "installer"),
		flushTimeout: DefaultFlushTimeout,
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Install runs the five layers in order. Writes are content-addressed, so
// re-running an identical install is a no-op. A write failure or a flush
// timeout stops the run; the report covers the layers that ran.
func (i *Installer) Install(ctx context.Context) (*Report, error) {
	report := &Report{}
	layers := i.ontology.Layers()

	for idx, layer := range layers {
		lr, err := i.runLayer(ctx, layer)
		report.Layers = append(report.Layers, lr)
		if err != nil {
			return report, fmt.Errorf("install layer %s: %w", layer.Name, err)
		}
		i.logger.Info("install layer complete", "layer", layer.Name,
			"written", len(lr.Written), "skipped", len(lr.Skipped))

		if idx < len(layers)-1 {
			if err := i.flush(ctx); err != nil {
				return report, fmt.Errorf("after layer %s: %w", layer.Name, err)
			}
		}
	}
	return report, nil
}

func (i *Installer) runLayer(ctx context.Context, layer Layer) (LayerReport, error) {
	lr := LayerReport{Name: layer.Name}
	for _, page := range layer.Pages {
		outcome, err := i.writePage(ctx, page, layer.Name)
		if err != nil {
			lr.Failed = append(lr.Failed, page.Title.String())
			return lr, err
		}
		switch outcome {
		case store.OutcomeSkipped:
			lr.Skipped = append(lr.Skipped, page.Title.String())
		default:
			lr.Written = append(lr.Written, page.Title.String())
		}
	}
	return lr, nil
}

func (i *Installer) writePage(ctx context.Context, page Page, layerName string) (store.Outcome, error) {
	action := fmt.Sprintf("Install base ontology (%s)", layerName)
	if page.StartMarker == "" {
		return i.creator.Write(ctx, page.Title, page.Content, action)
	}
	return i.creator.UpdateMarkedRegion(ctx, page.Title, page.Content,
		page.StartMarker, page.EndMarker, action)
}

// flush waits for the semantic backend's pending work, bounded by the
// configured timeout. A timeout is a failure: advancing would let the next
// layer's annotations race unregistered property types.
func (i *Installer) flush(ctx context.Context) error {
	fctx, cancel := context.WithTimeout(ctx, i.flushTimeout)
	defer cancel()
	if err := i.store.FlushPending(fctx); err != nil {
		return fmt.Errorf("semantic backend flush: %w", err)
	}
	return nil
}
