package database

import (
	"context"
	"fmt"
	"time"

	"stylekart/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the repositories.
const (
	CollectionProducts = "products"
	CollectionUsers    = "users"
	CollectionOrders   = "orders"
	CollectionProfiles = "profiles"
)

// Connect creates a MongoDB client and verifies connectivity.
// The caller owns the returned client and must disconnect it.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	logger.Info().
		Str("uri", cfg.URI).
		Str("database", cfg.Database).
		Msg("connecting to document store")

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	// Verify connection
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on.
// Safe to call on every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger zerolog.Logger) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionProfiles: {
			{
				Keys: bson.D{{Key: "email", Value: 1}},
			},
		},
		CollectionOrders: {
			{
				Keys: bson.D{{Key: "createdAt", Value: -1}},
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logger.Debug().
			Str("collection", collection).
			Int("count", len(models)).
			Msg("indexes ensured")
	}

	return nil
}
