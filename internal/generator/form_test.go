// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/model"
	"github.com/semanticschemas/semanticschemas/internal/resolver"
)

// resolveOver builds a full universe and resolves names through it.
func resolveOver(t *testing.T, schema *model.Schema, names ...string) model.ResolvedPropertySet {
	t.Helper()
	resolved, err := resolver.New(schema).ResolveMany(names)
	require.NoError(t, err)
	return resolved
}

func personEmployeeSchema(t *testing.T) *model.Schema {
	t.Helper()
	schema := testSchema(t,
		model.PropertySpec{Name: "Has name", Datatype: model.DatatypeText},
		model.PropertySpec{Name: "Has id", Datatype: model.DatatypeNumber},
	)
	for _, spec := range []model.CategorySpec{
		{Name: "Person", RequiredProperties: []string{"Has name"}},
		{Name: "Employee", OptionalProperties: []string{"Has name"}, RequiredProperties: []string{"Has id"}},
	} {
		require.NoError(t, schema.AddCategory(mustCategory(t, spec)))
	}
	return schema
}

func TestCompositeFormShape(t *testing.T) {
	schema := personEmployeeSchema(t)
	resolved := resolveOver(t, schema, "Person", "Employee")

	out := Form(resolved, schema)

	// Sections in alphabetical order: Employee first.
	employeeIdx := strings.Index(out, "{{{for template|Employee|label=Employee}}}")
	personIdx := strings.Index(out, "{{{for template|Person|label=Person}}}")
	require.Greater(t, employeeIdx, -1)
	require.Greater(t, personIdx, -1)
	assert.Less(t, employeeIdx, personIdx)

	// The shared property lands only in the first section.
	employeeSection := out[employeeIdx:personIdx]
	personSection := out[personIdx:]
	assert.Contains(t, employeeSection, "|name|")
	assert.Contains(t, employeeSection, "|id|")
	assert.NotContains(t, personSection, "|name|")

	// Category links for every selected category, after the sections.
	assert.Contains(t, personSection, "[[Category:Employee]]")
	assert.Contains(t, personSection, "[[Category:Person]]")
}

func TestCompositeFormOrderInsensitive(t *testing.T) {
	schema := personEmployeeSchema(t)

	a := Form(resolveOver(t, schema, "Person", "Employee"), schema)
	b := Form(resolveOver(t, schema, "Employee", "Person"), schema)
	assert.Equal(t, a, b)

	// Canonical field order inside the Employee section: both required,
	// so alphabetical puts the id field ahead of the shared name field
	// regardless of which category was resolved first.
	employeeSection := a[:strings.Index(a, "{{{for template|Person")]
	assert.Less(t, strings.Index(employeeSection, "|id|"), strings.Index(employeeSection, "|name|"))
	assert.Greater(t, strings.Index(employeeSection, "|id|"), -1)
}

func TestSingleCategoryForm(t *testing.T) {
	schema := personEmployeeSchema(t)
	resolved := resolveOver(t, schema, "Person")

	out := Form(resolved, schema)

	assert.Contains(t, out, "{{{for template|Person|label=Person}}}")
	assert.NotContains(t, out, "{{{for template|Employee")
	// Required field carries the mandatory marker.
	assert.Contains(t, out, "{{{field|name|input type=text|mandatory=true}}}")
	assert.Contains(t, out, "[[Category:Person]]")
}

func TestFormOptionalFieldOmitsMandatory(t *testing.T) {
	schema := testSchema(t,
		model.PropertySpec{Name: "Has note", Datatype: model.DatatypeText},
	)
	require.NoError(t, schema.AddCategory(mustCategory(t, model.CategorySpec{
		Name:               "Article",
		OptionalProperties: []string{"Has note"},
	})))

	out := Form(resolveOver(t, schema, "Article"), schema)
	assert.Contains(t, out, "{{{field|note|input type=text}}}")
	assert.NotContains(t, out, "note|input type=text|mandatory")
}

func TestFormSubobjectSection(t *testing.T) {
	schema := testSchema(t,
		model.PropertySpec{Name: "Has street", Datatype: model.DatatypeText},
	)
	require.NoError(t, schema.AddSubobject(mustSubobject(t, model.SubobjectSpec{
		Name:               "Address",
		RequiredProperties: []string{"Has street"},
	})))
	require.NoError(t, schema.AddCategory(mustCategory(t, model.CategorySpec{
		Name:               "Person",
		OptionalSubobjects: []string{"Address"},
	})))

	out := Form(resolveOver(t, schema, "Person"), schema)

	assert.Contains(t, out, "{{{for template|Address/subobject|label=Address|multiple}}}")
	assert.Contains(t, out, "{{{field|street|input type=text|mandatory=true}}}")
}
