package store

import (
	"context"

	"github.com/azimovr/go-user-admin/models"
)

// AccountRepository is the data-access layer for the accounts collection.
//
// Uniqueness of username and email is enforced by unique indexes at the
// storage layer; the service performs optimistic pre-checks on top of it to
// produce friendly conflict errors, but the index remains the authoritative
// guard under concurrent writers.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.User) (models.User, error)
	FindAccountByID(ctx context.Context, id string) (models.User, error)
	FindAccountByEmail(ctx context.Context, email string) (models.User, error)
	FindAccountByUsername(ctx context.Context, username string) (models.User, error)
	FindAllAccounts(ctx context.Context) ([]models.User, error)
	CountAccounts(ctx context.Context) (int64, error)
	UpdateAccountByID(ctx context.Context, id string, patch models.AccountPatch) (models.User, error)
	DeleteAccountByID(ctx context.Context, id string) error
}

// ImageStorage is the object-storage adapter for avatar images.
//
// Upload returns a durable public URL together with the opaque storage key
// required to delete the object later. Delete treats a missing object as
// success so that repeated cleanup attempts stay idempotent.
type ImageStorage interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (models.StoredImage, error)
	DeleteImage(ctx context.Context, key string) error
}
