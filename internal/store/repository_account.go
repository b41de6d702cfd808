// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Azimov

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Names of the unique indexes backing the account invariants. Duplicate-key
// errors are attributed to a field by matching these names in the driver
// error message.
const (
	usernameIndexName = "username_unique"
	emailIndexName    = "email_unique"
)

// accountRepository is the MongoDB-backed implementation of
// [AccountRepository]. It handles account creation, lookup, partial update
// and deletion against the accounts collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account document and returns the fully
// populated [models.User] with the store-assigned ID.
//
// Error handling:
//   - Duplicate-key violation → [ErrEmailAlreadyExists],
//     [ErrUsernameAlreadyExists] or [ErrAccountAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.accounts.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, duplicateKeyToSentinel(err)
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Str("func", "*accountRepository.CreateAccount").Msg("unexpected inserted ID type")
		return models.User{}, ErrDecodingDocument
	}
	account.ID = insertedID

	return account, nil
}

// FindAccountByID retrieves the account with the given ObjectID hex string.
//
// Error handling:
//   - Malformed hex string → [ErrInvalidAccountID].
//   - No matching document → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidAccountID
	}

	return r.findOne(ctx, bson.M{"_id": objectID})
}

// FindAccountByEmail retrieves the account with the given (normalized) email.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindAccountByUsername retrieves the account with the given username.
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *accountRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var account models.User
	err := r.db.accounts.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error finding account")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// FindAllAccounts returns every stored account.
func (r *accountRepository) FindAllAccounts(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.db.accounts.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	accounts := make([]models.User, 0)
	if err := cursor.All(ctx, &accounts); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error decoding accounts")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return accounts, nil
}

// CountAccounts returns the number of stored accounts. Used by the
// bootstrap bypass of the authorization gate.
func (r *accountRepository) CountAccounts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := r.db.accounts.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CountAccounts").Msg("error counting accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// UpdateAccountByID applies the non-nil fields of patch to the account with
// the given ID and returns the refreshed document.
//
// ClearImage removes both image fields in the same operation, keeping the
// "set and cleared together" invariant at the storage layer.
//
// Error handling mirrors the other methods; a duplicate-key violation on a
// changed username/email maps to the field-specific conflict sentinel.
func (r *accountRepository) UpdateAccountByID(ctx context.Context, id string, patch models.AccountPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidAccountID
	}

	update := bson.M{}
	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if patch.ClearImage {
		update["$unset"] = bson.M{"image_url": "", "image_ref": ""}
	} else {
		if patch.ImageURL != nil {
			set["image_url"] = *patch.ImageURL
		}
		if patch.ImageRef != nil {
			// Externally-hosted avatars carry no storage key; an empty
			// ref removes the field instead of storing "".
			if *patch.ImageRef == "" {
				update["$unset"] = bson.M{"image_ref": ""}
			} else {
				set["image_ref"] = *patch.ImageRef
			}
		}
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(update) == 0 {
		return r.findOne(ctx, bson.M{"_id": objectID})
	}

	var updated models.User
	err = r.db.accounts.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoAccountWasFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, duplicateKeyToSentinel(err)
		}
		log.Err(err).Str("func", "*accountRepository.UpdateAccountByID").Msg("error updating account")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteAccountByID removes the account with the given ID.
//
// Returns [ErrInvalidAccountID] for malformed identifiers and
// [ErrNoAccountWasFound] when nothing was deleted.
func (r *accountRepository) DeleteAccountByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidAccountID
	}

	result, err := r.db.accounts.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccountByID").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.DeletedCount == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

// duplicateKeyToSentinel attributes a duplicate-key driver error to the
// violated unique index. The driver exposes the index name only inside the
// error message, so matching on it is the practical option.
func duplicateKeyToSentinel(err error) error {
	message := err.Error()
	switch {
	case strings.Contains(message, usernameIndexName):
		return ErrUsernameAlreadyExists
	case strings.Contains(message, emailIndexName):
		return ErrEmailAlreadyExists
	default:
		return ErrAccountAlreadyExists
	}
}
