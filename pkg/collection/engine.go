package collection

import (
	"slices"

	"github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/procedural"
	"github.com/matzehuels/orbital/pkg/tabular"
)

// EngineOptions carries the data files needed by data-backed engines.
type EngineOptions struct {
	TablePath     string
	TemplatesPath string
}

// Engines lists the supported engine names.
func Engines() []string {
	return []string{procedural.EngineName, tabular.EngineName}
}

// IsEngine reports whether name is a supported engine.
func IsEngine(name string) bool {
	return slices.Contains(Engines(), name)
}

// NewGenerator constructs the named engine. Table data is loaded and fully
// validated here, so a bad deployment fails before serving anything.
func NewGenerator(engine string, opts EngineOptions) (Generator, error) {
	switch engine {
	case procedural.EngineName:
		return procedural.New(), nil
	case tabular.EngineName:
		if opts.TablePath == "" || opts.TemplatesPath == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "engine %q needs a table and a template library", engine)
		}
		g, err := tabular.Open(opts.TablePath, opts.TemplatesPath)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q (supported: %v)", engine, Engines())
}
