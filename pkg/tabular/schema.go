package tabular

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/orbital/pkg/errors"
)

// MaxBits is the capacity of a packed value.
const MaxBits = 128

// Trait categories, in packing order.
const (
	Background    = "background"
	OuterEyes     = "outerEyes"
	Nose          = "nose"
	Mouth         = "mouth"
	Eyes          = "eyes"
	HeadAccessory = "headAccessory"
	BodyAccessory = "bodyAccessory"
	Species       = "species"
)

// Categories lists the packed categories, least-significant field first.
var Categories = []string{
	Background, OuterEyes, Nose, Mouth, Eyes, HeadAccessory, BodyAccessory, Species,
}

// Field is one fixed-width slice of a packed value.
type Field struct {
	Category string
	Width    uint
}

// FieldSchema is an ordered list of fields. The first field occupies the
// least-significant bits. Changing the schema invalidates every value packed
// with it.
type FieldSchema []Field

// NewSchema builds the schema for the packed categories from their widths.
func NewSchema(widths map[string]uint) (FieldSchema, error) {
	schema := make(FieldSchema, 0, len(Categories))
	for _, c := range Categories {
		w, ok := widths[c]
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedTable, "format: missing width for %q", c)
		}
		schema = append(schema, Field{Category: c, Width: w})
	}
	for c := range widths {
		if schema.Index(c) < 0 {
			return nil, errors.New(errors.ErrCodeMalformedTable, "format: unknown category %q", c)
		}
	}
	return schema, schema.Validate()
}

// Bits returns the total width of the schema. The sum saturates at
// math.MaxUint instead of wrapping.
func (s FieldSchema) Bits() uint {
	var n uint
	for _, f := range s {
		if f.Width > math.MaxUint-n {
			return math.MaxUint
		}
		n += f.Width
	}
	return n
}

// Index returns the position of category in s, or -1.
func (s FieldSchema) Index(category string) int {
	for i, f := range s {
		if f.Category == category {
			return i
		}
	}
	return -1
}

// Offset returns the bit offset of field i.
func (s FieldSchema) Offset(i int) uint {
	var off uint
	for _, f := range s[:i] {
		off += f.Width
	}
	return off
}

// Validate checks field widths. Each field must be 1 to 64 bits wide and the
// total must fit in [MaxBits].
func (s FieldSchema) Validate() error {
	if total := s.Bits(); total > MaxBits {
		return errors.New(errors.ErrCodeSchemaOverflow, "schema needs %d bits, capacity is %d", total, MaxBits)
	}
	seen := make(map[string]bool, len(s))
	for _, f := range s {
		if f.Width == 0 || f.Width > 64 {
			return errors.New(errors.ErrCodeMalformedTable, "field %q: width %d outside 1..64", f.Category, f.Width)
		}
		if seen[f.Category] {
			return errors.New(errors.ErrCodeMalformedTable, "field %q declared twice", f.Category)
		}
		seen[f.Category] = true
	}
	return nil
}

// String renders the schema as "category:width" pairs.
func (s FieldSchema) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = fmt.Sprintf("%s:%d", f.Category, f.Width)
	}
	return strings.Join(parts, " ")
}

// Decode splits packed into one code per field. The schema is validated
// before any bits are read.
func Decode(packed Uint128, schema FieldSchema) ([]uint64, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	codes := make([]uint64, len(schema))
	var offset uint
	for i, f := range schema {
		codes[i] = packed.Bits(offset, f.Width)
		offset += f.Width
	}
	return codes, nil
}

// Encode packs codes according to schema. It is the inverse of [Decode].
func Encode(codes []uint64, schema FieldSchema) (Uint128, error) {
	if err := schema.Validate(); err != nil {
		return Uint128{}, err
	}
	if len(codes) != len(schema) {
		return Uint128{}, errors.New(errors.ErrCodeInvalidInput, "got %d codes for %d fields", len(codes), len(schema))
	}
	var packed Uint128
	var offset uint
	for i, f := range schema {
		if codes[i] > mask(f.Width) {
			return Uint128{}, errors.New(errors.ErrCodeInvalidInput, "code %d does not fit %d-bit field %q", codes[i], f.Width, f.Category)
		}
		packed = packed.Or(U128(codes[i]).Lsh(offset))
		offset += f.Width
	}
	return packed, nil
}
