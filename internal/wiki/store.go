// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import "context"

// PageStore is the page-level contract the compiler consumes. Hosts
// implement it over their own storage; the in-process backends in the
// subpackages implement it for tests and standalone use.
//
// Writes carry an edit summary so the host's audit trail attributes them to
// the compiler's system identity. Last-write-wins semantics are acceptable
// at this level: the compiler's writes are content-addressed, so concurrent
// writers of the same artifact converge on identical bytes.
type PageStore interface {
	// MakeTitle validates and normalizes name within ns per the backend's
	// title rules.
	MakeTitle(name string, ns Namespace) (Title, error)

	// Exists reports whether a page exists at title.
	Exists(ctx context.Context, title Title) (bool, error)

	// Read returns the page content, or ErrPageNotFound.
	Read(ctx context.Context, title Title) (string, error)

	// CreateOrUpdate writes content at title, creating the page if needed.
	CreateOrUpdate(ctx context.Context, title Title, content, summary string) error

	// Delete removes the page at title.
	Delete(ctx context.Context, title Title, reason string) error

	// Purge invalidates any derived/cached renderings of title.
	Purge(ctx context.Context, title Title) error
}

// SemanticStore is the annotation-level contract. The semantic backend
// processes annotation writes asynchronously; FlushPending blocks until its
// work queue is empty so that reads-after-writes become reliable. The
// installer flushes between layers (late-bound annotations are dropped by
// the backend when their property types are not yet registered).
type SemanticStore interface {
	// ListSubjectsInNamespace enumerates pages in ns that carry semantic
	// data. Order is deterministic per backend.
	ListSubjectsInNamespace(ctx context.Context, ns Namespace) ([]Title, error)

	// ReadProperty returns the values of property recorded on subject, in
	// storage order.
	ReadProperty(ctx context.Context, subject Title, property string) ([]string, error)

	// FlushPending blocks until the backend's pending annotation work is
	// complete, or ctx is done.
	FlushPending(ctx context.Context) error
}

// Store combines both contracts; the in-process backends satisfy it.
type Store interface {
	PageStore
	SemanticStore
}
