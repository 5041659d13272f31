// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
)

// Export reads every managed definition from the wiki, rebuilds the schema
// document, and serializes it. The wiki is authoritative: edits made to
// definition regions since the last import are reflected.
func (c *Compiler) Export(ctx context.Context, format schemafile.Format) ([]byte, error) {
	st := c.stores(ImportOptions{})
	schema, err := st.LoadUniverse(ctx)
	if err != nil {
		return nil, err
	}
	return schemafile.Export(schema, format)
}
