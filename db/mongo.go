package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadeemahmad9/real-estate/config"
	"github.com/nadeemahmad9/real-estate/logger"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

func Connect(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("db: connect: %w", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		return fmt.Errorf("db: ping: %w", err)
	}

	client = c
	database = c.Database(cfg.MongoDB)

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	logger.L().Infow("mongodb connected", "database", cfg.MongoDB)
	return nil
}

// ensureIndexes mirrors the schema-level constraints: email uniqueness on
// users, and the createdAt sort used by the property list.
func ensureIndexes(ctx context.Context) error {
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("db: users email index: %w", err)
	}

	_, err = database.Collection("properties").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("db: properties createdAt index: %w", err)
	}
	return nil
}

func Collection(name string) *mongo.Collection {
	return database.Collection(name)
}

func Disconnect(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.L().Warnw("mongodb disconnect", "error", err)
	}
}
