// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/resolver"
)

// ErrInvalidDocument is returned when the bytes cannot be decoded into the
// document structure at all; field-level problems are reported as issues
// instead.
var ErrInvalidDocument = errors.New("invalid schema document")

// SupportedSchemaVersion is the document version this loader accepts.
const SupportedSchemaVersion = "1.0"

var structValidate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes data into the raw document structure. JSON and YAML are
// both accepted; YAML goes through the JSON-tag-driven decoder so the two
// encodings cannot diverge.
func Parse(data []byte) (*Document, error) {
	var doc Document
	switch DetectFormat(data) {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	default:
		if err := sigsyaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	return &doc, nil
}

// Load parses and validates data, returning the constructed schema and the
// validation result. The schema is nil whenever the result carries errors;
// warnings alone do not prevent construction.
func Load(data []byte) (*model.Schema, *Result, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	schema, result := Build(doc)
	return schema, result, nil
}

// Build validates doc and constructs the schema universe. Errors leave the
// schema nil; callers must not write anything when the result is not OK.
func Build(doc *Document) (*model.Schema, *Result) {
	result := &Result{}

	if doc.SchemaVersion == "" {
		result.addError("schemaVersion", "schemaVersion is required")
	} else if doc.SchemaVersion != SupportedSchemaVersion {
		result.addError("schemaVersion", "unsupported schema version %q, want %q", doc.SchemaVersion, SupportedSchemaVersion)
	}

	schema := model.NewSchema(doc.SchemaVersion)

	buildProperties(doc, schema, result)
	buildSubobjects(doc, schema, result)
	buildCategories(doc, schema, result)

	if result.OK() {
		validateReferences(doc, schema, result)
		validateHierarchy(schema, result)
		warnUnused(doc, schema, result)
	}

	sortIssues(result.Errors)
	sortIssues(result.Warnings)

	if !result.OK() {
		return nil, result
	}
	return schema, result
}

func buildProperties(doc *Document, schema *model.Schema, result *Result) {
	for _, name := range sortedDocKeys(doc.Properties) {
		pd := doc.Properties[name]
		path := fmt.Sprintf("properties[%s]", name)

		if err := structValidate.Struct(pd); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					result.addError(path+"."+jsonFieldName(fe.Field()), "%s", fieldErrorMessage(fe))
				}
			} else {
				result.addError(path, "%v", err)
			}
			continue
		}

		p, err := PropertyFromDoc(name, pd)
		if err != nil {
			result.addError(path, "%v", err)
			continue
		}
		if err := schema.AddProperty(p); err != nil {
			result.addError(path, "%v", err)
		}
	}
}

func buildSubobjects(doc *Document, schema *model.Schema, result *Result) {
	for _, name := range sortedDocKeys(doc.Subobjects) {
		sd := doc.Subobjects[name]
		path := fmt.Sprintf("subobjects[%s]", name)

		sub, err := SubobjectFromDoc(name, sd)
		if err != nil {
			result.addError(path, "%v", err)
			continue
		}
		for _, promoted := range sub.PromotedProperties() {
			result.addWarning(path+".properties", "%q promoted to required", promoted)
		}
		if err := schema.AddSubobject(sub); err != nil {
			result.addError(path, "%v", err)
		}
	}
}

func buildCategories(doc *Document, schema *model.Schema, result *Result) {
	for _, name := range sortedDocKeys(doc.Categories) {
		cd := doc.Categories[name]
		path := fmt.Sprintf("categories[%s]", name)

		c, err := CategoryFromDoc(name, cd)
		if err != nil {
			result.addError(path, "%v", err)
			continue
		}
		for _, promoted := range c.PromotedProperties() {
			result.addWarning(path+".properties", "%q promoted to required", promoted)
		}
		for _, promoted := range c.PromotedSubobjects() {
			result.addWarning(path+".subobjects", "%q promoted to required", promoted)
		}
		if len(c.AllPropertyNames()) == 0 && len(c.AllSubobjectNames()) == 0 {
			result.addWarning(path, "category declares no properties and no subobjects")
		}
		if err := schema.AddCategory(c); err != nil {
			result.addError(path, "%v", err)
		}
	}
}

// validateReferences checks that every name a definition points at resolves
// in the universe.
func validateReferences(doc *Document, schema *model.Schema, result *Result) {
	checkProps := func(path string, names []string) {
		for i, ref := range names {
			if _, ok := schema.PropertyByName(ref); !ok {
				result.addError(fmt.Sprintf("%s[%d]", path, i), "unknown property %q", ref)
			}
		}
	}

	for _, name := range schema.SubobjectNames() {
		sub, _ := schema.SubobjectByName(name)
		path := fmt.Sprintf("subobjects[%s].properties", name)
		checkProps(path+".required", sub.RequiredProperties())
		checkProps(path+".optional", sub.OptionalProperties())
	}

	for _, name := range schema.CategoryNames() {
		c, _ := schema.CategoryByName(name)
		path := fmt.Sprintf("categories[%s]", name)

		for i, parent := range c.Parents() {
			if _, ok := schema.CategoryByName(parent); !ok {
				result.addError(fmt.Sprintf("%s.parents[%d]", path, i), "unknown category %q", parent)
			}
		}
		checkProps(path+".properties.required", c.RequiredProperties())
		checkProps(path+".properties.optional", c.OptionalProperties())
		for i, ref := range c.RequiredSubobjects() {
			if _, ok := schema.SubobjectByName(ref); !ok {
				result.addError(fmt.Sprintf("%s.subobjects.required[%d]", path, i), "unknown subobject %q", ref)
			}
		}
		for i, ref := range c.OptionalSubobjects() {
			if _, ok := schema.SubobjectByName(ref); !ok {
				result.addError(fmt.Sprintf("%s.subobjects.optional[%d]", path, i), "unknown subobject %q", ref)
			}
		}
		checkProps(path+".display.header", c.DisplayHeaderProperties())
		for si, section := range c.DisplaySections() {
			checkProps(fmt.Sprintf("%s.display.sections[%d].properties", path, si), section.Properties)
		}
		for si, section := range c.FormSections() {
			checkProps(fmt.Sprintf("%s.forms.sections[%d].properties", path, si), section.Properties)
		}
	}

	// Properties may point at other properties.
	for _, name := range schema.PropertyNames() {
		p, _ := schema.PropertyByName(name)
		if parent := p.SubpropertyOf(); parent != "" {
			if _, ok := schema.PropertyByName(parent); !ok {
				result.addError(fmt.Sprintf("properties[%s].subpropertyOf", name), "unknown property %q", parent)
			}
		}
	}
}

// validateHierarchy linearizes every category so cycles and inconsistent
// hierarchies surface at validation time, before any write.
func validateHierarchy(schema *model.Schema, result *Result) {
	r := resolver.New(schema)
	for _, name := range schema.CategoryNames() {
		if _, err := r.Linearize(name); err != nil {
			result.addError(fmt.Sprintf("categories[%s].parents", name), "%v", err)
		}
	}
	for _, conflict := range r.Conflicts() {
		result.addWarning(fmt.Sprintf("categories[%s].parents", conflict.Category), "%s", conflict.String())
	}
}

// warnUnused flags properties no category or subobject references. They
// still compile; the warning catches schema rot.
func warnUnused(doc *Document, schema *model.Schema, result *Result) {
	used := make(map[string]struct{})
	mark := func(names []string) {
		for _, n := range names {
			used[n] = struct{}{}
		}
	}
	for _, c := range schema.Categories() {
		mark(c.AllPropertyNames())
		mark(c.DisplayHeaderProperties())
		for _, s := range c.DisplaySections() {
			mark(s.Properties)
		}
		for _, s := range c.FormSections() {
			mark(s.Properties)
		}
	}
	for _, sub := range schema.Subobjects() {
		mark(sub.AllPropertyNames())
	}
	for _, p := range schema.Properties() {
		if parent := p.SubpropertyOf(); parent != "" {
			used[parent] = struct{}{}
		}
	}
	for _, name := range schema.PropertyNames() {
		if _, ok := used[name]; !ok {
			result.addWarning(fmt.Sprintf("properties[%s]", name), "property is not referenced by any category or subobject")
		}
	}
}

func sortedDocKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// jsonFieldName lowers the first letter of a struct field name, which is
// how every document field maps to its JSON tag.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return string(field[0]|0x20) + field[1:]
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("value %q is not one of: %s", fmt.Sprint(fe.Value()), fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
