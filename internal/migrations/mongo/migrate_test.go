package mongo

import (
	"context"
	"testing"

	"miranda/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func listCollections(mt *mtest.T, names ...string) bson.D {
	docs := make([]bson.D, 0, len(names))
	for _, n := range names {
		docs = append(docs, bson.D{{Key: "name", Value: n}, {Key: "type", Value: "collection"}})
	}
	return mtest.CreateCursorResponse(0, mt.DB.Name()+".$cmd.listCollections", mtest.FirstBatch, docs...)
}

func TestRunMigration(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates missing and updates existing", func(mt *mtest.T) {
		mt.AddMockResponses(
			// bookings exists: collMod + createIndexes
			listCollections(mt, "bookings"),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			// rooms missing: create + createIndexes
			listCollections(mt),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			// users missing
			listCollections(mt),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		err := RunMigration(context.Background(), mt.DB, logger.Discard())
		assert.NoError(mt, err)
	})

	mt.Run("validator update failure is not fatal", func(mt *mtest.T) {
		mt.AddMockResponses(
			listCollections(mt, "bookings"),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}),
			mtest.CreateSuccessResponse(),
			listCollections(mt, "rooms"),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			listCollections(mt, "users"),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		err := RunMigration(context.Background(), mt.DB, logger.Discard())
		assert.NoError(mt, err)
	})

	mt.Run("create failure stops the run", func(mt *mtest.T) {
		mt.AddMockResponses(
			listCollections(mt),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}),
		)

		err := RunMigration(context.Background(), mt.DB, logger.Discard())
		assert.ErrorContains(mt, err, "bookings")
	})
}

func TestCollections_UniqueKeys(t *testing.T) {
	unique := map[string][]string{}
	for _, def := range Collections() {
		for _, idx := range def.Indexes {
			if idx.Options != nil && idx.Options.Unique != nil && *idx.Options.Unique {
				keys := idx.Keys.(bson.D)
				unique[def.Name] = append(unique[def.Name], keys[0].Key)
			}
		}
	}

	assert.Equal(t, map[string][]string{
		"bookings": {"id"},
		"rooms":    {"roomNumber"},
		"users":    {"id", "email"},
	}, unique)
}
