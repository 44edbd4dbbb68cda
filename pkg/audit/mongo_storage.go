package audit

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection is the collection security events are written to.
const DefaultCollection = "security_events"

// MongoStorage stores audit events in a MongoDB collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage returns a storage writing to the named collection of db.
// An empty name selects DefaultCollection.
func NewMongoStorage(db *mongo.Database, collection string) *MongoStorage {
	if db == nil {
		panic("audit: mongo database cannot be nil")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStorage{coll: db.Collection(collection)}
}

// StoreBatch inserts the events unordered, so one bad document does not
// block the rest of the batch.
func (s *MongoStorage) StoreBatch(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}
	if _, err := s.coll.InsertMany(ctx, events, options.InsertMany().SetOrdered(false)); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by incident review. A
// positive retention adds a TTL on created_at so old events expire.
func (s *MongoStorage) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	createdAt := options.Index().SetName("created_at")
	if retention > 0 {
		createdAt.SetExpireAfterSeconds(int32(retention / time.Second))
	}

	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: 1}}, Options: createdAt},
		{Keys: bson.D{{Key: "ip", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("ip_created_at")},
		{Keys: bson.D{{Key: "code", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("code_created_at")},
	}

	if _, err := s.coll.Indexes().CreateMany(ctx, models); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
