package tabular

import (
	"slices"

	"github.com/matzehuels/orbital/pkg/attrs"
	"github.com/matzehuels/orbital/pkg/errors"
)

// None is the accessory trait that suppresses its layer.
const None = "none"

// Attribute keys, in output order. nose and outerEyes are rendered but not
// exposed.
const (
	KeySpecies    = "species"
	KeyBackground = "background"
	KeyBody       = "body"
	KeyHead       = "head"
	KeyEyes       = "eyes"
	KeyMouth      = "mouth"
)

// TraitTable maps a category's codes to trait names. Code n is the n-th
// name of the category.
type TraitTable struct {
	names map[string][]string
}

// NewTraitTable copies indices into a TraitTable.
func NewTraitTable(indices map[string][]string) TraitTable {
	names := make(map[string][]string, len(indices))
	for c, list := range indices {
		names[c] = slices.Clone(list)
	}
	return TraitTable{names: names}
}

// Resolve returns the trait name for code in category.
func (t TraitTable) Resolve(category string, code uint64) (string, error) {
	list, ok := t.names[category]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownTraitCode, "no trait table for category %q", category)
	}
	if code >= uint64(len(list)) {
		return "", errors.New(errors.ErrCodeUnknownTraitCode, "%s code %d: table has %d entries", category, code, len(list))
	}
	return list[code], nil
}

// Code returns the code of name in category. It is the inverse of Resolve.
func (t TraitTable) Code(category, name string) (uint64, error) {
	list, ok := t.names[category]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownTraitCode, "no trait table for category %q", category)
	}
	i := slices.Index(list, name)
	if i < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s has no trait %q", category, name)
	}
	return uint64(i), nil
}

// Names returns a copy of the names of category.
func (t TraitTable) Names(category string) []string {
	return slices.Clone(t.names[category])
}

// Len returns the number of names in category.
func (t TraitTable) Len(category string) int {
	return len(t.names[category])
}

// Traits holds the resolved names of one index.
type Traits struct {
	Background    string
	OuterEyes     string
	Nose          string
	Mouth         string
	Eyes          string
	HeadAccessory string
	BodyAccessory string
	Species       string
}

// Get returns the trait of category, or "" for an unknown category.
func (t Traits) Get(category string) string {
	if p := t.field(category); p != nil {
		return *p
	}
	return ""
}

func (t *Traits) field(category string) *string {
	switch category {
	case Background:
		return &t.Background
	case OuterEyes:
		return &t.OuterEyes
	case Nose:
		return &t.Nose
	case Mouth:
		return &t.Mouth
	case Eyes:
		return &t.Eyes
	case HeadAccessory:
		return &t.HeadAccessory
	case BodyAccessory:
		return &t.BodyAccessory
	case Species:
		return &t.Species
	}
	return nil
}

// Attributes returns the public attribute document.
func (t Traits) Attributes() attrs.Set {
	return attrs.New(
		attrs.Entry{Key: KeySpecies, Value: attrs.String(t.Species)},
		attrs.Entry{Key: KeyBackground, Value: attrs.String(t.Background)},
		attrs.Entry{Key: KeyBody, Value: attrs.String(t.BodyAccessory)},
		attrs.Entry{Key: KeyHead, Value: attrs.String(t.HeadAccessory)},
		attrs.Entry{Key: KeyEyes, Value: attrs.String(t.Eyes)},
		attrs.Entry{Key: KeyMouth, Value: attrs.String(t.Mouth)},
	)
}

// ResolveCodes maps decoded codes, in schema order, to trait names.
func (t TraitTable) ResolveCodes(schema FieldSchema, codes []uint64) (Traits, error) {
	var out Traits
	if len(codes) != len(schema) {
		return out, errors.New(errors.ErrCodeMalformedTable, "got %d codes for %d fields", len(codes), len(schema))
	}
	for i, f := range schema {
		name, err := t.Resolve(f.Category, codes[i])
		if err != nil {
			return Traits{}, err
		}
		if p := out.field(f.Category); p != nil {
			*p = name
		}
	}
	return out, nil
}
