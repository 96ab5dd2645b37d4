// Package publish writes collection metadata to MongoDB so off-chain
// consumers (marketplaces, indexers) can query traits without rendering.
//
// Each index becomes one document keyed by the index:
//
//	{
//	  "_id": 42,
//	  "collection": "alkane-royalty-nft",
//	  "name": "Alkane RoyaltyNFT #42",
//	  "attributes": {"art_style": "Flow Field", ...},   // generator order
//	  "image_blake3": "9f2c...",
//	  "fingerprint": "procedural/v1"
//	}
//
// Publishing is idempotent: documents are replaced by _id, so re-running a
// range rewrites identical content.
package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/orbital/pkg/attrs"
	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/pipeline"
)

// DefaultBatchSize is the number of documents per bulk write.
const DefaultBatchSize = 500

const maxAttempts = 3

// Document is the stored form of one index.
type Document struct {
	ID          int64  `bson:"_id"`
	Collection  string `bson:"collection"`
	Name        string `bson:"name"`
	Attributes  bson.D `bson:"attributes"`
	ImageDigest string `bson:"image_blake3"`
	Fingerprint string `bson:"fingerprint"`
}

// Store persists documents.
type Store interface {
	// Upsert replaces or inserts docs by _id and reports how many changed.
	Upsert(ctx context.Context, docs []Document) (int64, error)
	Close(ctx context.Context) error
}

// Publisher renders documents through a runner and writes them to a store.
type Publisher struct {
	runner    *pipeline.Runner
	store     Store
	logger    *log.Logger
	BatchSize int
}

// NewPublisher returns a publisher. A nil logger uses the default logger.
func NewPublisher(runner *pipeline.Runner, store Store, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{runner: runner, store: store, logger: logger, BatchSize: DefaultBatchSize}
}

// Result summarises a publish run.
type Result struct {
	Documents int
	Changed   int64
	Duration  time.Duration
}

// Publish writes documents for [start, end) in batches.
func (p *Publisher) Publish(ctx context.Context, start, end uint64) (Result, error) {
	info := p.runner.Info()
	if err := errors.ValidateRange(start, end, info.Supply); err != nil {
		return Result{}, err
	}
	size := p.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	began := time.Now()
	var res Result
	batch := make([]Document, 0, size)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		var changed int64
		err := RetryWithBackoff(ctx, maxAttempts, func() error {
			n, err := p.store.Upsert(ctx, batch)
			changed = n
			return err
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeNetwork, err, "upsert %d documents", len(batch))
		}
		res.Documents += len(batch)
		res.Changed += changed
		p.logger.Debug("published batch", "first", batch[0].ID, "count", len(batch), "changed", changed)
		batch = batch[:0]
		return nil
	}

	for index := start; index < end; index++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		doc, err := p.Document(ctx, index)
		if err != nil {
			return res, fmt.Errorf("index %d: %w", index, err)
		}
		batch = append(batch, doc)
		if len(batch) == size {
			if err := flush(); err != nil {
				return res, err
			}
		}
	}
	if err := flush(); err != nil {
		return res, err
	}

	res.Duration = time.Since(began)
	p.logger.Info("published metadata", "documents", res.Documents, "changed", res.Changed, "duration", res.Duration)
	return res, nil
}

// Document builds the stored form of index.
func (p *Publisher) Document(ctx context.Context, index uint64) (Document, error) {
	info := p.runner.Info()
	set, err := p.runner.Collection.Attributes(index)
	if err != nil {
		return Document{}, err
	}
	svg, _, err := p.runner.Image(ctx, index)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:          int64(index),
		Collection:  info.Symbol,
		Name:        fmt.Sprintf("%s #%d", info.Name, index),
		Attributes:  AttributesBSON(set),
		ImageDigest: cache.Hash(svg),
		Fingerprint: p.runner.Collection.Generator().Fingerprint(),
	}, nil
}

// AttributesBSON converts a set to an ordered BSON document. Numeric values
// are stored as int64.
func AttributesBSON(set attrs.Set) bson.D {
	entries := set.Entries()
	d := make(bson.D, 0, len(entries))
	for _, e := range entries {
		var v any = e.Value.String()
		if e.Value.IsNumeric() {
			v = int64(e.Value.Uint())
		}
		d = append(d, bson.E{Key: e.Key, Value: v})
	}
	return d
}
