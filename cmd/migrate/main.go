package main

import (
	"context"
	"time"

	mongoMigration "miranda/internal/migrations/mongo"
	"miranda/pkg/config"
)

const (
	JobName      = "mongo-migration"
	migrationTTL = 120 * time.Second
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), migrationTTL)
	defer cancel()

	cfg := config.LoadJob(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	cfg.Log.Info("Migration completed successfully")
}
