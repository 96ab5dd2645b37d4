package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Default canvas size of composed images.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Format selects the encoding of a template library file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// TemplateLibrary maps (category, trait name) to an SVG fragment.
type TemplateLibrary struct {
	width, height uint64
	fragments     map[string]map[string]string
}

// NewTemplateLibrary copies fragments into a library with the default
// canvas size.
func NewTemplateLibrary(fragments map[string]map[string]string) *TemplateLibrary {
	lib := &TemplateLibrary{
		width:     DefaultWidth,
		height:    DefaultHeight,
		fragments: make(map[string]map[string]string, len(fragments)),
	}
	for c, byName := range fragments {
		lib.fragments[c] = maps.Clone(byName)
	}
	return lib
}

// WithCanvas returns a copy of l drawing on a width x height canvas.
func (l *TemplateLibrary) WithCanvas(width, height uint64) *TemplateLibrary {
	cp := *l
	cp.width, cp.height = width, height
	return &cp
}

// Canvas returns the canvas width and height.
func (l *TemplateLibrary) Canvas() (width, height uint64) { return l.width, l.height }

// Fragment returns the fragment for name in category.
func (l *TemplateLibrary) Fragment(category, name string) (string, error) {
	if f, ok := l.fragments[category][name]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeMissingTemplate, "no template for %s %q", category, name)
}

// Has reports whether a fragment exists for name in category.
func (l *TemplateLibrary) Has(category, name string) bool {
	_, ok := l.fragments[category][name]
	return ok
}

// Size returns the total number of fragments.
func (l *TemplateLibrary) Size() int {
	n := 0
	for _, m := range l.fragments {
		n += len(m)
	}
	return n
}

// LoadTemplates parses a template library in the given format.
func LoadTemplates(r io.Reader, format Format) (*TemplateLibrary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "read templates")
	}

	var doc map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		err = dec.Decode(&doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported template format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "parse templates")
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeMalformedTable, "template library is empty")
	}
	return buildLibrary(doc)
}

// LoadTemplatesFile reads the library at path, choosing the format from its
// extension.
func LoadTemplatesFile(path string) (*TemplateLibrary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	defer f.Close()

	lib, err := LoadTemplates(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

func buildLibrary(doc map[string]any) (*TemplateLibrary, error) {
	fragments := make(map[string]map[string]string, len(doc))
	width, height := uint64(DefaultWidth), uint64(DefaultHeight)

	for key, v := range doc {
		switch key {
		case "width", "height":
			n, ok := dimension(v)
			if !ok {
				return nil, errors.New(errors.ErrCodeMalformedTable, "%s: %v is not a positive integer", key, v)
			}
			if key == "width" {
				width = n
			} else {
				height = n
			}
			continue
		}

		byName, ok := v.(map[string]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedTable, "%s: expected a map of trait name to fragment", key)
		}
		m := make(map[string]string, len(byName))
		for name, f := range byName {
			s, ok := f.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return nil, errors.New(errors.ErrCodeMalformedTable, "%s.%s: fragment must be a non-empty string", key, name)
			}
			m[name] = s
		}
		fragments[key] = m
	}

	lib := NewTemplateLibrary(fragments)
	lib.width, lib.height = width, height
	return lib, nil
}

// dimension accepts the numeric types produced by the JSON and YAML decoders.
func dimension(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return uint64(i), err == nil && i > 0
	case int:
		return uint64(n), n > 0
	case uint64:
		return n, n > 0
	case float64:
		return uint64(n), n > 0 && n == math.Trunc(n) && n <= math.MaxUint32
	}
	return 0, false
}
