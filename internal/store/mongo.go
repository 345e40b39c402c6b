package store

import (
	"context"
	"fmt"

	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the MongoDB client and the application database handle.
// The client is safe for concurrent use; repositories share one DB instance
// and require no external locking.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo establishes the MongoDB connection described by cfg and
// verifies it with a ping before returning.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to database successfully")

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Collection returns a handle to the named collection of the application
// database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Ping verifies that the database is still reachable. Used by the health
// endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
