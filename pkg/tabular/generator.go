package tabular

import (
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/zeebo/blake3"

	"github.com/matzehuels/orbital/pkg/attrs"
)

// EngineName identifies this generator in configuration and cache keys.
const EngineName = "table"

// FormatVersion changes whenever composition of the same data changes.
const FormatVersion = "table/v1"

// Generator answers attribute and image queries from a packed table and a
// template library. It is immutable and safe for concurrent use.
type Generator struct {
	table       *PackedTable
	compositor  *Compositor
	fingerprint string
}

// New returns a generator over table and lib. It does not check template
// completeness; see [Open] and [ValidateCompleteness].
func New(table *PackedTable, lib *TemplateLibrary) *Generator {
	return &Generator{
		table:       table,
		compositor:  NewCompositor(lib),
		fingerprint: FormatVersion + "+" + contentDigest(table, lib),
	}
}

// Open loads the table and template files and checks that every reachable
// trait can be drawn.
func Open(tablePath, templatesPath string) (*Generator, error) {
	table, err := LoadTableFile(tablePath)
	if err != nil {
		return nil, err
	}
	lib, err := LoadTemplatesFile(templatesPath)
	if err != nil {
		return nil, err
	}
	if err := ValidateCompleteness(table, lib); err != nil {
		return nil, fmt.Errorf("%s: %w", templatesPath, err)
	}
	return New(table, lib), nil
}

// Name returns [EngineName].
func (*Generator) Name() string { return EngineName }

// Fingerprint identifies the format version and the loaded content.
func (g *Generator) Fingerprint() string { return g.fingerprint }

// Len returns the number of indices in the table.
func (g *Generator) Len() uint64 { return g.table.Len() }

// Table returns the underlying packed table.
func (g *Generator) Table() *PackedTable { return g.table }

// Traits resolves every category of index, including internal ones.
func (g *Generator) Traits(index uint64) (Traits, error) {
	return g.table.Traits(index)
}

// Attributes returns the public traits of index.
func (g *Generator) Attributes(index uint64) (attrs.Set, error) {
	t, err := g.table.Traits(index)
	if err != nil {
		return attrs.Set{}, err
	}
	return t.Attributes(), nil
}

// Image composes the SVG document of index.
func (g *Generator) Image(index uint64) ([]byte, error) {
	t, err := g.table.Traits(index)
	if err != nil {
		return nil, err
	}
	return g.compositor.Compose(t)
}

// contentDigest hashes a canonical rendering of the loaded data, so
// reformatting a file does not change it but editing a trait does.
func contentDigest(table *PackedTable, lib *TemplateLibrary) string {
	h := blake3.New()
	field := func(s string) {
		h.Write([]byte(strconv.Itoa(len(s))))
		h.Write([]byte{':'})
		h.Write([]byte(s))
	}

	schema := table.Schema()
	field(schema.String())
	for _, f := range schema {
		names := table.TraitTable().Names(f.Category)
		field(strconv.Itoa(len(names)))
		for _, name := range names {
			field(name)
		}
	}
	for _, p := range table.packed {
		field(p.String())
	}

	w, hgt := lib.Canvas()
	field(strconv.FormatUint(w, 10) + "x" + strconv.FormatUint(hgt, 10))
	for _, c := range slices.Sorted(maps.Keys(lib.fragments)) {
		for _, name := range slices.Sorted(maps.Keys(lib.fragments[c])) {
			field(c)
			field(name)
			field(lib.fragments[c][name])
		}
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
