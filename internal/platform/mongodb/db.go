// Package mongodb implements the store interfaces on top of MongoDB.
//
// Every entity carries an application-assigned "id" field (a UUID string)
// distinct from Mongo's internal _id, so external references stay stable
// regardless of the storage engine. Uniqueness is pre-checked in the store
// methods and backed by unique indexes created at startup.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/atolltravel/offers-api/internal/config"
)

// Collection names.
const (
	adminUsersCollection     = "admin_users"
	categoriesCollection     = "categories"
	offersCollection         = "travel_offers"
	advertisementsCollection = "advertisements"
)

const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB connection, verifies it with a ping, and
// returns a handle to the configured database.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

// EnsureIndexes creates the unique and secondary indexes the stores rely
// on. Index creation is idempotent, so this is safe to run at every
// startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		adminUsersCollection: {
			{Keys: keyAsc("username"), Options: unique},
		},
		categoriesCollection: {
			{Keys: keyAsc("id"), Options: unique},
			{Keys: keyAsc("name"), Options: unique},
		},
		offersCollection: {
			{Keys: keyAsc("id"), Options: unique},
			{Keys: keyAsc("destination")},
			{Keys: keyAsc("category")},
			{Keys: keyAsc("price")},
		},
		advertisementsCollection: {
			{Keys: keyAsc("id"), Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	return nil
}
