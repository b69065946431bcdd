package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrMissingURI = errors.New("mongo: missing connection uri")

// Connect opens a client and pings the primary before returning the database handle.
func Connect(signalCtx context.Context, cfg *config.Mongo) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, ErrMissingURI
	}

	slog.Info("Connecting to mongo...")

	ctx, cancel := context.WithTimeout(signalCtx, cfg.ConnectTimeout.Duration)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("Connected to mongo.", "database", cfg.Database)

	return client, client.Database(cfg.Database), nil
}

// Disconnect closes the client, logging instead of failing on error.
func Disconnect(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("failed to disconnect from mongo", "reason", err)
	}
}
