package store

import (
	"context"
	"fmt"

	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
)

// Storages bundles every persistence adapter of the application.
type Storages struct {
	AccountRepository AccountRepository
	ImageStorage      ImageStorage

	db *DB
}

// NewStorages connects to the document database, ensures its indexes, and
// constructs the account repository and the object-storage adapter.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	imageStorage, err := NewImageStorage(cfg.Images, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ImageStorage:      imageStorage,
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close(ctx)
}
