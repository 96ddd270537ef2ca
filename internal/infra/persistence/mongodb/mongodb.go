// Package mongodb contains the concrete implementation of the persistence
// layer backed by MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"toolstore/config"
	"toolstore/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names used by the repositories.
const (
	usersCollection      = "users"
	sessionsCollection   = "sessions"
	categoriesCollection = "categories"
	productsCollection   = "products"
)

// New creates the MongoDB database handle and registers lifecycle hooks for
// the initial ping, index creation and disconnect.
func New(lc fx.Lifecycle, cfg *config.MongoConfig, logger *slog.Logger) (*mongo.Database, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("store.mongo.uri is required for the mongo provider")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return db, nil
}

// ensureIndexes enforces the uniqueness invariants of the data model:
// one user per email, one session per token.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users.email index")
	}

	_, err = db.Collection(sessionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create sessions.token index")
	}

	return nil
}
