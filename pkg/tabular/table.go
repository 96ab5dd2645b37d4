package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/matzehuels/orbital/pkg/errors"
)

// PackedTable is the validated packed-trait table: a schema, the trait
// names for each category and one packed value per index.
type PackedTable struct {
	schema FieldSchema
	traits TraitTable
	packed []Uint128
}

// NewPackedTable validates its inputs and returns a table. Every packed
// value is decoded once, so later lookups cannot hit an unknown code.
func NewPackedTable(schema FieldSchema, traits TraitTable, packed []Uint128) (*PackedTable, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	for _, f := range schema {
		if traits.Len(f.Category) == 0 {
			return nil, errors.New(errors.ErrCodeMalformedTable, "indices: no trait names for %q", f.Category)
		}
	}
	for i, p := range packed {
		if p.BitLen() > int(schema.Bits()) {
			return nil, errors.New(errors.ErrCodeMalformedTable, "traits[%d]: %s uses bits beyond the %d-bit schema", i, p, schema.Bits())
		}
		codes, err := Decode(p, schema)
		if err != nil {
			return nil, err
		}
		if _, err := traits.ResolveCodes(schema, codes); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "traits[%d]", i)
		}
	}
	return &PackedTable{schema: schema, traits: traits, packed: packed}, nil
}

// Schema returns the field schema.
func (t *PackedTable) Schema() FieldSchema { return t.schema }

// TraitTable returns the code-to-name tables.
func (t *PackedTable) TraitTable() TraitTable { return t.traits }

// Len returns the number of indices in the table.
func (t *PackedTable) Len() uint64 { return uint64(len(t.packed)) }

// Packed returns the packed value of index.
func (t *PackedTable) Packed(index uint64) (Uint128, error) {
	if index >= t.Len() {
		return Uint128{}, errors.New(errors.ErrCodeIndexOutOfRange, "index %d: table has %d entries", index, t.Len())
	}
	return t.packed[index], nil
}

// Codes decodes the packed value of index.
func (t *PackedTable) Codes(index uint64) ([]uint64, error) {
	p, err := t.Packed(index)
	if err != nil {
		return nil, err
	}
	return Decode(p, t.schema)
}

// Traits decodes and resolves the traits of index.
func (t *PackedTable) Traits(index uint64) (Traits, error) {
	codes, err := t.Codes(index)
	if err != nil {
		return Traits{}, err
	}
	return t.traits.ResolveCodes(t.schema, codes)
}

type tableDocument struct {
	Format  map[string]json.RawMessage `json:"format"`
	Indices map[string][]string        `json:"indices"`
	Traits  []json.RawMessage          `json:"traits"`
}

// LoadTable parses a packed-trait table from JSON or JSONC.
func LoadTable(r io.Reader) (*PackedTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "read table")
	}
	return ParseTable(data)
}

// LoadTableFile reads and parses the table at path.
func LoadTableFile(path string) (*PackedTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable parses table data. Comments and trailing commas are allowed.
func ParseTable(data []byte) (*PackedTable, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var doc tableDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "parse table")
	}
	switch {
	case doc.Format == nil:
		return nil, errors.New(errors.ErrCodeMalformedTable, "missing \"format\"")
	case doc.Indices == nil:
		return nil, errors.New(errors.ErrCodeMalformedTable, "missing \"indices\"")
	case doc.Traits == nil:
		return nil, errors.New(errors.ErrCodeMalformedTable, "missing \"traits\"")
	}

	widths := make(map[string]uint, len(doc.Format))
	for c, raw := range doc.Format {
		var w uint
		if err := json.Unmarshal(raw, &w); err != nil || w == 0 {
			return nil, errors.New(errors.ErrCodeMalformedTable, "format.%s: %s is not a positive integer", c, raw)
		}
		widths[c] = w
	}
	schema, err := NewSchema(widths)
	if err != nil {
		return nil, err
	}

	for c := range doc.Indices {
		if schema.Index(c) < 0 {
			return nil, errors.New(errors.ErrCodeMalformedTable, "indices: unknown category %q", c)
		}
	}
	for _, c := range Categories {
		if len(doc.Indices[c]) == 0 {
			return nil, errors.New(errors.ErrCodeMalformedTable, "indices.%s: missing or empty", c)
		}
	}

	packed := make([]Uint128, len(doc.Traits))
	for i, raw := range doc.Traits {
		v, err := parsePacked(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "traits[%d]", i)
		}
		packed[i] = v
	}

	return NewPackedTable(schema, NewTraitTable(doc.Indices), packed)
}

// parsePacked accepts a decimal string or a bare JSON integer.
func parsePacked(raw json.RawMessage) (Uint128, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Uint128{}, err
		}
		return ParseUint128(s)
	}
	return ParseUint128(string(raw))
}
