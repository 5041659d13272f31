// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// InputSpec describes the form input widget selected for a property: the
// input type plus any extra field parameters (value sources, autocomplete
// configuration).
type InputSpec struct {
	Type       string
	Parameters []string
}

// InputForProperty selects the form input widget for p. The priority order
// is fixed: an enumerated value set always wins, then autocomplete
// constraints, then datatype-specific widgets, then plain text.
func InputForProperty(p model.Property) InputSpec {
	if values := p.AllowedValues(); len(values) > 0 {
		return InputSpec{
			Type:       "dropdown",
			Parameters: []string{"values=" + strings.Join(values, ",")},
		}
	}
	if ns := p.AllowedNamespace(); ns != "" {
		return InputSpec{
			Type:       "combobox",
			Parameters: []string{"values from namespace=" + ns},
		}
	}
	if cat := p.AllowedCategory(); cat != "" {
		return InputSpec{
			Type:       "combobox",
			Parameters: []string{"values from category=" + cat},
		}
	}

	switch p.Datatype() {
	case model.DatatypeCode:
		return InputSpec{Type: "textarea"}
	case model.DatatypeDate:
		return InputSpec{Type: "datepicker"}
	case model.DatatypeBoolean:
		return InputSpec{Type: "checkbox"}
	case model.DatatypePage:
		return InputSpec{Type: "combobox"}
	case model.DatatypeText, model.DatatypeNumber, model.DatatypeEmail,
		model.DatatypeURL, model.DatatypeQuantity, model.DatatypeTemperature,
		model.DatatypePhone, model.DatatypeGeo:
		return InputSpec{Type: "text"}
	default:
		panic(fmt.Sprintf("generator: unknown datatype %q", p.Datatype()))
	}
}

// FieldDeclaration renders the Page Forms field declaration for p.
// Required fields carry mandatory=true; multi-valued fields accept a
// comma-delimited list.
func FieldDeclaration(p model.Property, required bool) string {
	input := InputForProperty(p)

	parts := []string{"{{{field", ParamName(p.Name()), "input type=" + input.Type}
	parts = append(parts, input.Parameters...)
	if required {
		parts = append(parts, "mandatory=true")
	}
	if p.AllowsMultipleValues() {
		parts = append(parts, "list", "delimiter=,")
	}
	return strings.Join(parts, "|") + "}}}"
}
