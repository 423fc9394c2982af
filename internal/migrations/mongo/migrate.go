package mongo

import (
	"context"
	"fmt"

	"miranda/internal/migrations/mongo/validators"
	"miranda/internal/resource"
	"miranda/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	BookingsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("bookings_id_unique"),
		},
		{Keys: bson.D{{Key: "roomNumber", Value: 1}, {Key: "checkIn", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	RoomsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "roomNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("rooms_room_number_unique"),
		},
	}

	UsersIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
	}
)

type CollectionDefinition struct {
	Name      string
	Indexes   []mongo.IndexModel
	Validator bson.M
}

// Collections lists every collection the API stores records in.
func Collections() []CollectionDefinition {
	return []CollectionDefinition{
		{Name: resource.BookingsCollection, Indexes: BookingsIndexes, Validator: validators.BookingValidator},
		{Name: resource.RoomsCollection, Indexes: RoomsIndexes, Validator: validators.RoomValidator},
		{Name: resource.UsersCollection, Indexes: UsersIndexes, Validator: validators.UserValidator},
	}
}

// RunMigration creates the collections with their schema validators and
// indexes. Running it again updates validators and is otherwise a no-op.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range Collections() {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	names, err := db.Collection(name).Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "indexes", names)
	return nil
}
