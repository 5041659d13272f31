// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"github.com/semanticschemas/semanticschemas/internal/model"
)

// PropertyFromDoc constructs the model value for one property document.
func PropertyFromDoc(name string, doc PropertyDoc) (model.Property, error) {
	return model.NewProperty(model.PropertySpec{
		Name:                 name,
		Datatype:             model.Datatype(doc.Datatype),
		Label:                doc.Label,
		Description:          doc.Description,
		AllowedValues:        doc.AllowedValues,
		AllowedNamespace:     doc.AllowedNamespace,
		AllowedCategory:      doc.AllowedCategory,
		AllowsMultipleValues: doc.AllowsMultipleValues,
		HasTemplate:          doc.HasTemplate,
		SubpropertyOf:        doc.SubpropertyOf,
	})
}

// CategoryFromDoc constructs the model value for one category document.
func CategoryFromDoc(name string, doc CategoryDoc) (model.Category, error) {
	return model.NewCategory(model.CategorySpec{
		Name:                    name,
		Label:                   doc.Label,
		Description:             doc.Description,
		Parents:                 doc.Parents,
		RequiredProperties:      doc.Properties.Required,
		OptionalProperties:      doc.Properties.Optional,
		RequiredSubobjects:      doc.Subobjects.Required,
		OptionalSubobjects:      doc.Subobjects.Optional,
		DisplayHeaderProperties: doc.Display.Header,
		DisplaySections:         sectionsFromDocs(doc.Display.Sections),
		FormSections:            sectionsFromDocs(doc.Forms.Sections),
		TargetNamespace:         doc.TargetNamespace,
	})
}

// SubobjectFromDoc constructs the model value for one subobject document.
func SubobjectFromDoc(name string, doc SubobjectDoc) (model.Subobject, error) {
	return model.NewSubobject(model.SubobjectSpec{
		Name:               name,
		RequiredProperties: doc.Properties.Required,
		OptionalProperties: doc.Properties.Optional,
	})
}

// PropertyToDoc converts a model property back to its wire form.
func PropertyToDoc(p model.Property) PropertyDoc {
	return PropertyDoc{
		Datatype:             p.Datatype().String(),
		Label:                p.Label(),
		Description:          p.Description(),
		AllowedValues:        p.AllowedValues(),
		AllowedNamespace:     p.AllowedNamespace(),
		AllowedCategory:      p.AllowedCategory(),
		AllowsMultipleValues: p.AllowsMultipleValues(),
		HasTemplate:          p.HasTemplate(),
		SubpropertyOf:        p.SubpropertyOf(),
	}
}

// CategoryToDoc converts a model category back to its wire form.
func CategoryToDoc(c model.Category) CategoryDoc {
	return CategoryDoc{
		Label:       c.Label(),
		Description: c.Description(),
		Parents:     c.Parents(),
		Properties: PropertyListsDoc{
			Required: c.RequiredProperties(),
			Optional: c.OptionalProperties(),
		},
		Subobjects: PropertyListsDoc{
			Required: c.RequiredSubobjects(),
			Optional: c.OptionalSubobjects(),
		},
		Display: DisplayDoc{
			Header:   c.DisplayHeaderProperties(),
			Sections: toSectionDocs(c.DisplaySections()),
		},
		Forms: FormsDoc{
			Sections: toSectionDocs(c.FormSections()),
		},
		TargetNamespace: c.TargetNamespace(),
	}
}

// SubobjectToDoc converts a model subobject back to its wire form.
func SubobjectToDoc(s model.Subobject) SubobjectDoc {
	return SubobjectDoc{
		Properties: PropertyListsDoc{
			Required: s.RequiredProperties(),
			Optional: s.OptionalProperties(),
		},
	}
}

func sectionsFromDocs(in []SectionDoc) []model.Section {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Section, len(in))
	for i, s := range in {
		out[i] = model.Section{Name: s.Name, Properties: s.Properties}
	}
	return out
}
