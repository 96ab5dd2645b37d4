package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/observability"
)

// Manifest lists the files written by an export.
type Manifest struct {
	Collection  collection.Info `json:"collection"`
	Fingerprint string          `json:"fingerprint"`
	Tokens      []TokenEntry    `json:"tokens"`
}

// TokenEntry describes the two documents of one index. Digests are
// BLAKE3-256 in hex.
type TokenEntry struct {
	Index            uint64 `json:"index"`
	Image            string `json:"image"`
	ImageDigest      string `json:"image_blake3"`
	Attributes       string `json:"attributes"`
	AttributesDigest string `json:"attributes_blake3"`
}

// Export renders [Start, End) into Dir with bounded concurrency and writes
// a manifest ordered by index. The first failure cancels the remaining
// work; files already written are left in place.
func (r *Runner) Export(ctx context.Context, opts ExportOptions) (*Manifest, error) {
	if err := opts.ValidateAndSetDefaults(r.Info().Supply); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	hooks := observability.Render()
	hooks.OnExportStart(ctx, opts.Start, opts.End)
	start := time.Now()

	total := opts.Count()
	entries := make([]TokenEntry, total)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range total {
		if gctx.Err() != nil {
			break
		}
		index := opts.Start + uint64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := r.exportOne(gctx, opts.Dir, index)
			if err != nil {
				return fmt.Errorf("index %d: %w", index, err)
			}
			entries[i] = entry
			n := done.Add(1)
			if opts.OnProgress != nil {
				opts.OnProgress(int(n), total)
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	hooks.OnExportComplete(ctx, int(done.Load()), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Collection:  r.Info(),
		Fingerprint: r.Collection.Generator().Fingerprint(),
		Tokens:      entries,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(opts.Dir, ManifestFile), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	r.Logger.Info("exported collection",
		"tokens", total,
		"dir", opts.Dir,
		"duration", time.Since(start))
	return manifest, nil
}

func (r *Runner) exportOne(ctx context.Context, dir string, index uint64) (TokenEntry, error) {
	name := strconv.FormatUint(index, 10)
	entry := TokenEntry{
		Index:      index,
		Image:      name + ".svg",
		Attributes: name + ".json",
	}

	svg, _, err := r.Image(ctx, index)
	if err != nil {
		return entry, err
	}
	doc, _, err := r.Attributes(ctx, index)
	if err != nil {
		return entry, err
	}

	if err := os.WriteFile(filepath.Join(dir, entry.Image), svg, 0o644); err != nil {
		return entry, err
	}
	if err := os.WriteFile(filepath.Join(dir, entry.Attributes), doc, 0o644); err != nil {
		return entry, err
	}
	entry.ImageDigest = cache.Hash(svg)
	entry.AttributesDigest = cache.Hash(doc)
	return entry, nil
}
