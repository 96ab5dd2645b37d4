package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/observability"
)

// Runner answers collection queries with caching.
//
// The Runner holds no per-query state. Multiple goroutines can safely share
// one Runner.
type Runner struct {
	Collection *collection.Collection
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
	TTL        time.Duration
}

// NewRunner creates a runner for coll.
// If keyer is nil, a DefaultKeyer scoped by the collection symbol is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(coll *collection.Collection, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), coll.Info().Symbol+":")
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Collection: coll,
		Cache:      c,
		Keyer:      keyer,
		Logger:     logger,
		TTL:        cache.TTLImage,
	}
}

// Info returns the collection description.
func (r *Runner) Info() collection.Info { return r.Collection.Info() }

// Attributes returns the JSON attribute document of index and whether it
// came from the cache.
func (r *Runner) Attributes(ctx context.Context, index uint64) ([]byte, bool, error) {
	gen := r.Collection.Generator()
	key := r.Keyer.AttributesKey(gen.Fingerprint(), index)
	return r.cached(ctx, KindAttributes, index, key, func() ([]byte, error) {
		return r.Collection.GetAttributes(index)
	})
}

// Image returns the SVG document of index and whether it came from the
// cache.
func (r *Runner) Image(ctx context.Context, index uint64) ([]byte, bool, error) {
	gen := r.Collection.Generator()
	key := r.Keyer.ImageKey(gen.Fingerprint(), index)
	return r.cached(ctx, KindImage, index, key, func() ([]byte, error) {
		return r.Collection.GetData(index)
	})
}

// cached validates index, then serves key from the cache or renders and
// stores it. Cache failures are logged and never fail the query.
func (r *Runner) cached(ctx context.Context, kind string, index uint64, key string, render func() ([]byte, error)) ([]byte, bool, error) {
	if err := errors.ValidateIndex(index, r.Info().Supply); err != nil {
		return nil, false, err
	}

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "index", index, "error", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, kind)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, kind)

	engine := r.Collection.Generator().Name()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, engine, index, kind)
	start := time.Now()
	data, err = render()
	hooks.OnRenderComplete(ctx, engine, index, kind, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "index", index, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, kind, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
