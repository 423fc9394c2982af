package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"miranda/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BookingsCollection = "bookings"
	RoomsCollection    = "rooms"
	UsersCollection    = "users"
)

type MongoRepository[T any, K comparable] struct {
	collection   *mongo.Collection
	keyField     string
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewMongoRepository stores T in collectionName, addressing records by the
// keyField document field. The field should carry a unique index.
func NewMongoRepository[T any, K comparable](cfg *config.Config, collectionName, keyField string) *MongoRepository[T, K] {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return newMongoRepository[T, K](db.Collection(collectionName), keyField, cfg.ReadTimeout, cfg.WriteTimeout)
}

func newMongoRepository[T any, K comparable](collection *mongo.Collection, keyField string, readTimeout, writeTimeout time.Duration) *MongoRepository[T, K] {
	return &MongoRepository[T, K]{
		collection:   collection,
		keyField:     keyField,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// withTimeout bounds ctx by timeout unless the caller's deadline is sooner.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *MongoRepository[T, K]) FindAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := withTimeout(ctx, r.readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: r.keyField, Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	records := make([]*T, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.collection.Name(), err)
	}

	return records, nil
}

func (r *MongoRepository[T, K]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.collection.Name(), err)
	}
	return count, nil
}

func (r *MongoRepository[T, K]) FindByKey(ctx context.Context, key K) (*T, error) {
	return r.FindOne(ctx, r.keyField, key)
}

func (r *MongoRepository[T, K]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	ctx, cancel := withTimeout(ctx, r.readTimeout)
	defer cancel()

	var record T
	err := r.collection.FindOne(ctx, bson.M{field: value}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.collection.Name(), field, err)
	}

	return &record, nil
}

func (r *MongoRepository[T, K]) Insert(ctx context.Context, record *T) error {
	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to insert into %s: %w", r.collection.Name(), err)
	}
	return nil
}

// Replace swaps the stored document for record. The Mongo _id is kept.
func (r *MongoRepository[T, K]) Replace(ctx context.Context, key K, record *T) error {
	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{r.keyField: key}, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to replace in %s: %w", r.collection.Name(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository[T, K]) Delete(ctx context.Context, key K) error {
	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{r.keyField: key})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.collection.Name(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
