// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// ToDocument rebuilds the wire document from a schema universe. The result
// is canonical: re-importing it reproduces the same universe, and map keys
// serialize name-sorted in both encodings.
func ToDocument(schema *model.Schema) *Document {
	doc := &Document{SchemaVersion: schema.Version()}
	if doc.SchemaVersion == "" {
		doc.SchemaVersion = SupportedSchemaVersion
	}

	if names := schema.PropertyNames(); len(names) > 0 {
		doc.Properties = make(map[string]PropertyDoc, len(names))
		for _, name := range names {
			p, _ := schema.PropertyByName(name)
			doc.Properties[name] = PropertyToDoc(p)
		}
	}

	if names := schema.SubobjectNames(); len(names) > 0 {
		doc.Subobjects = make(map[string]SubobjectDoc, len(names))
		for _, name := range names {
			sub, _ := schema.SubobjectByName(name)
			doc.Subobjects[name] = SubobjectToDoc(sub)
		}
	}

	if names := schema.CategoryNames(); len(names) > 0 {
		doc.Categories = make(map[string]CategoryDoc, len(names))
		for _, name := range names {
			c, _ := schema.CategoryByName(name)
			doc.Categories[name] = CategoryToDoc(c)
		}
	}

	return doc
}

func toSectionDocs(in []model.Section) []SectionDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]SectionDoc, len(in))
	for i, s := range in {
		out[i] = SectionDoc{Name: s.Name, Properties: s.Properties}
	}
	return out
}

// Export serializes the schema universe into the requested encoding. YAML
// output sorts map keys; JSON output is two-space indented with sorted
// keys. Both satisfy import(export(import(S))) == import(S).
func Export(schema *model.Schema, format Format) ([]byte, error) {
	doc := ToDocument(schema)
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema as JSON: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(documentToYAMLValue(doc)); err != nil {
			return nil, fmt.Errorf("failed to encode schema as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode schema as YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// documentToYAMLValue routes the YAML encoding through the JSON tags so
// both encodings share field names and omitempty behavior. yaml.v3 sorts
// map keys during marshal, which keeps the output canonical.
func documentToYAMLValue(doc *Document) map[string]any {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("schemafile: document is not JSON-encodable: %v", err))
	}
	var value map[string]any
	if err := json.Unmarshal(raw, &value); err != nil {
		panic(fmt.Sprintf("schemafile: document round-trip failed: %v", err))
	}
	return value
}
