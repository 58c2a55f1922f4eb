package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConfigured is returned by NotConfigured for every operation. Handlers
// branch on it to apply their documented degraded behavior.
var ErrNotConfigured = errors.New("database not available")

// Store is the document store gateway. Fetch decodes documents straight into
// the typed slice pointed to by out, so field defaults live in one place.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Fetch(ctx context.Context, collection string, limit int64, out interface{}) error
	Collections(ctx context.Context) ([]string, error)
}

// MongoStore backs the gateway with a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Fetch returns up to limit documents in the store's natural order. A limit of
// zero means no limit.
func (s *MongoStore) Fetch(ctx context.Context, collection string, limit int64, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("fetch from %s: %w", collection, err)
	}
	return cursor.All(ctx, out)
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// NotConfigured stands in for an absent store so the handler layer always has
// a non-nil dependency.
type NotConfigured struct{}

func (NotConfigured) Insert(context.Context, string, interface{}) (string, error) {
	return "", ErrNotConfigured
}

func (NotConfigured) Fetch(context.Context, string, int64, interface{}) error {
	return ErrNotConfigured
}

func (NotConfigured) Collections(context.Context) ([]string, error) {
	return nil, ErrNotConfigured
}
