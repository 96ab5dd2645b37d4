package publish

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore writes documents to one MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to uri and verifies the server answers.
func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{client: client, coll: client.Database(database).Collection(collection)}, nil
}

// Upsert replaces documents by _id in one unordered bulk write. Network
// failures and timeouts are marked retryable.
func (s *MongoStore) Upsert(ctx context.Context, docs []Document) (int64, error) {
	res, err := s.coll.BulkWrite(ctx, UpsertModels(docs), options.BulkWrite().SetOrdered(false))
	if err != nil {
		if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
			return 0, Retryable(err)
		}
		return 0, err
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// UpsertModels builds one replace-or-insert model per document.
func UpsertModels(docs []Document) []mongo.WriteModel {
	models := make([]mongo.WriteModel, len(docs))
	for i, d := range docs {
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: d.ID}}).
			SetReplacement(d).
			SetUpsert(true)
	}
	return models
}

var _ Store = (*MongoStore)(nil)
