package store

import (
	"context"
	"fmt"
	"time"

	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// DB wraps the MongoDB client and the accounts collection handle used by
// the account repository.
type DB struct {
	client   *mongo.Client
	accounts *mongo.Collection
}

// NewDB connects to the document database described by cfg, verifies the
// connection with a ping, and ensures the unique indexes the account
// invariants depend on.
//
// The unique indexes on username and email are the authoritative duplicate
// guard: under concurrent writers the service-level pre-checks can race, and
// exactly one of two conflicting inserts must fail here.
func NewDB(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	logger.Info().Str("database", cfg.Database).Msg("connecting to document database")

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	db := &DB{
		client:   client,
		accounts: client.Database(cfg.Database).Collection(models.User{}.CollectionName()),
	}

	if err := db.ensureIndexes(connectCtx); err != nil {
		return nil, fmt.Errorf("error ensuring unique indexes: %w", err)
	}

	return db, nil
}

// ensureIndexes creates the unique indexes on username and email.
// Index creation is idempotent; re-running at startup is safe.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndexName),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndexName),
		},
	})

	return err
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
