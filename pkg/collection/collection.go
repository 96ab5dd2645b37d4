// Package collection binds a generator to a fixed-size collection and
// exposes the two queries consumers rely on: the attribute document and the
// image document of an index.
//
// Both queries validate the index against the collection supply before
// calling the generator, and the generator applies its own bound again, so
// a misconfigured supply can never reach past the loaded data.
package collection

import (
	"encoding/json"

	"github.com/matzehuels/orbital/pkg/attrs"
	"github.com/matzehuels/orbital/pkg/errors"
)

// AttributeGenerator produces the attribute document of an index.
type AttributeGenerator interface {
	Attributes(index uint64) (attrs.Set, error)
}

// ImageGenerator produces the image document of an index.
type ImageGenerator interface {
	Image(index uint64) ([]byte, error)
}

// Generator is a complete engine. Implementations must be deterministic and
// safe for concurrent use.
type Generator interface {
	AttributeGenerator
	ImageGenerator

	// Name is the engine name used in configuration.
	Name() string
	// Fingerprint changes whenever any output of the engine may change.
	Fingerprint() string
}

// Info describes a collection.
type Info struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Supply uint64 `json:"max_supply"`
	Engine string `json:"engine"`
}

// Collection answers queries for indices 0..Supply-1.
type Collection struct {
	info Info
	gen  Generator
}

// bounded is implemented by generators backed by finite data.
type bounded interface {
	Len() uint64
}

// New binds gen to info. The supply must be positive and, for generators
// backed by a table, no larger than the table.
func New(info Info, gen Generator) (*Collection, error) {
	if info.Supply == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "collection %q: supply must be positive", info.Name)
	}
	if b, ok := gen.(bounded); ok && info.Supply > b.Len() {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"collection %q: supply %d exceeds the %d entries of the trait table", info.Name, info.Supply, b.Len())
	}
	info.Engine = gen.Name()
	return &Collection{info: info, gen: gen}, nil
}

// Info returns the collection description.
func (c *Collection) Info() Info { return c.info }

// Generator returns the underlying engine.
func (c *Collection) Generator() Generator { return c.gen }

// Attributes returns the attribute set of index.
func (c *Collection) Attributes(index uint64) (attrs.Set, error) {
	if err := errors.ValidateIndex(index, c.info.Supply); err != nil {
		return attrs.Set{}, err
	}
	return c.gen.Attributes(index)
}

// Image returns the SVG document of index.
func (c *Collection) Image(index uint64) ([]byte, error) {
	if err := errors.ValidateIndex(index, c.info.Supply); err != nil {
		return nil, err
	}
	return c.gen.Image(index)
}

// GetAttributes returns the attribute document of index as UTF-8 JSON.
func (c *Collection) GetAttributes(index uint64) ([]byte, error) {
	set, err := c.Attributes(index)
	if err != nil {
		return nil, err
	}
	return json.Marshal(set)
}

// GetData returns the UTF-8 SVG document of index.
func (c *Collection) GetData(index uint64) ([]byte, error) {
	return c.Image(index)
}
