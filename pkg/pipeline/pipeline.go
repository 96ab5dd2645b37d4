// Package pipeline runs collection queries for the CLI and the HTTP server.
//
// A [Runner] wraps a [collection.Collection] with a document cache, the
// observability hooks and a logger, so every entry point renders the same
// bytes the same way. Because generators are deterministic, the cache can
// only ever return what a fresh render would produce.
//
// # Usage
//
//	runner := pipeline.NewRunner(coll, fileCache, nil, logger)
//	svg, hit, err := runner.Image(ctx, 42)
//
// Export renders a range of indices concurrently into a directory:
//
//	manifest, err := runner.Export(ctx, pipeline.ExportOptions{
//	    Start: 0, End: 100, Dir: "gallery",
//	})
package pipeline

import (
	"runtime"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Document kinds, used in hooks and manifest entries.
const (
	KindAttributes = "attributes"
	KindImage      = "image"
)

// ManifestFile is the name of the export manifest.
const ManifestFile = "manifest.json"

// DefaultWorkers is the export concurrency when none is given.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ExportOptions configures [Runner.Export].
type ExportOptions struct {
	// Start and End bound the half-open index range to export.
	Start uint64
	End   uint64

	// Dir receives <index>.svg, <index>.json and manifest.json.
	Dir string

	// Workers bounds concurrent renders. Zero means DefaultWorkers.
	Workers int

	// OnProgress, if set, is called after each index is written.
	// It may be called from several goroutines.
	OnProgress func(done, total int)
}

// ValidateAndSetDefaults checks the options against supply and fills in
// defaults.
func (o *ExportOptions) ValidateAndSetDefaults(supply uint64) error {
	if err := errors.ValidateRange(o.Start, o.End, supply); err != nil {
		return err
	}
	if o.Dir == "" {
		return errors.New(errors.ErrCodeInvalidPath, "export directory cannot be empty")
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative")
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	return nil
}

// Count returns the number of indices in the range.
func (o ExportOptions) Count() int { return int(o.End - o.Start) }
