// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package model

import "fmt"

// Datatype identifies the value type of a property. The set is closed:
// generators and the form input mapper switch exhaustively over it, and an
// unrecognized value reaching one of those switches is a programming error,
// not an input error.
type Datatype string

const (
	DatatypeText        Datatype = "Text"
	DatatypePage        Datatype = "Page"
	DatatypeDate        Datatype = "Date"
	DatatypeNumber      Datatype = "Number"
	DatatypeEmail       Datatype = "Email"
	DatatypeURL         Datatype = "URL"
	DatatypeBoolean     Datatype = "Boolean"
	DatatypeCode        Datatype = "Code"
	DatatypeQuantity    Datatype = "Quantity"
	DatatypeTemperature Datatype = "Temperature"
	DatatypePhone       Datatype = "Phone"
	DatatypeGeo         Datatype = "Geo"
)

// FallbackDatatype is assumed for property references that cannot be
// resolved to a definition. Unprefixed wiki values behave as page links,
// so Page is the safe assumption.
const FallbackDatatype = DatatypePage

// Datatypes returns every member of the enumeration in canonical order.
func Datatypes() []Datatype {
	return []Datatype{
		DatatypeText,
		DatatypePage,
		DatatypeDate,
		DatatypeNumber,
		DatatypeEmail,
		DatatypeURL,
		DatatypeBoolean,
		DatatypeCode,
		DatatypeQuantity,
		DatatypeTemperature,
		DatatypePhone,
		DatatypeGeo,
	}
}

// ParseDatatype converts the canonical spelling of a datatype into its enum
// value. Spellings are case-sensitive; anything unknown is an error.
func ParseDatatype(s string) (Datatype, error) {
	d := Datatype(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDatatype, s)
	}
	return d, nil
}

// IsValid reports whether d is a member of the closed enumeration.
func (d Datatype) IsValid() bool {
	switch d {
	case DatatypeText, DatatypePage, DatatypeDate, DatatypeNumber,
		DatatypeEmail, DatatypeURL, DatatypeBoolean, DatatypeCode,
		DatatypeQuantity, DatatypeTemperature, DatatypePhone, DatatypeGeo:
		return true
	}
	return false
}

// SemanticType maps the datatype onto the semantic backend's type
// vocabulary, used in the type declaration on a property page.
func (d Datatype) SemanticType() string {
	switch d {
	case DatatypeText:
		return "Text"
	case DatatypePage:
		return "Page"
	case DatatypeDate:
		return "Date"
	case DatatypeNumber:
		return "Number"
	case DatatypeEmail:
		return "Email"
	case DatatypeURL:
		return "URL"
	case DatatypeBoolean:
		return "Boolean"
	case DatatypeCode:
		return "Code"
	case DatatypeQuantity:
		return "Quantity"
	case DatatypeTemperature:
		return "Temperature"
	case DatatypePhone:
		return "Telephone number"
	case DatatypeGeo:
		return "Geographic coordinates"
	default:
		panic(fmt.Sprintf("model: unknown datatype %q", string(d)))
	}
}

func (d Datatype) String() string {
	return string(d)
}
