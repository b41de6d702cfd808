package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/store"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/internal/validators"
	"github.com/azimovr/go-user-admin/models"
)

// accountService is the concrete implementation of AccountService.
//
// Every mutating operation runs the same pipeline: schema validation first,
// then uniqueness pre-checks, then exactly one hashing of a supplied
// plaintext password, then persistence. The unique indexes of the store
// remain the authoritative duplicate guard; the pre-checks only produce
// friendlier errors for the common case.
type accountService struct {
	accountRepository store.AccountRepository
	imageStorage      store.ImageStorage

	// cleanup receives storage keys of replaced avatar objects for
	// deferred best-effort deletion off the request path.
	cleanup ImageCleanup

	validator validators.Validator

	// maxUploadBytes caps accepted avatar payloads.
	maxUploadBytes int64

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. Passing a nil cleanup wires
// a no-op sink, which keeps replaced objects in the bucket.
func NewAccountService(accountRepository store.AccountRepository, imageStorage store.ImageStorage, cleanup ImageCleanup, cfg config.Images, logger *logger.Logger) AccountService {
	if cleanup == nil {
		cleanup = noopCleanup{}
	}

	return &accountService{
		accountRepository: accountRepository,
		imageStorage:      imageStorage,
		cleanup:           cleanup,
		validator:         validators.NewAccountValidator(),
		maxUploadBytes:    cfg.MaxUploadBytes,
		logger:            logger,
	}
}

// ListAccounts returns every stored account.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.User, error) {
	return s.accountRepository.FindAllAccounts(ctx)
}

// GetAccount returns the account with the given ID.
func (s *accountService) GetAccount(ctx context.Context, id string) (models.User, error) {
	return s.accountRepository.FindAccountByID(ctx, id)
}

// CountAccounts returns the number of stored accounts. Used by the bootstrap
// bypass of the authorization gate.
func (s *accountService) CountAccounts(ctx context.Context) (int64, error) {
	return s.accountRepository.CountAccounts(ctx)
}

// CreateAccount runs the full creation pipeline: validate (normalizing
// username/email in place) → email conflict check → username conflict check →
// hash password → insert.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided wrapping the full violation list.
//   - store.ErrEmailAlreadyExists / store.ErrUsernameAlreadyExists on
//     conflict, whether caught by the pre-check or by the unique index.
func (s *accountService) CreateAccount(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, &request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkEmailIsFree(ctx, request.Email); err != nil {
		return models.User{}, err
	}
	if err := s.checkUsernameIsFree(ctx, request.Username); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
	}
	if request.Image != nil && *request.Image != "" {
		account.ImageURL = request.Image
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("account creation failed")
		return models.User{}, err
	}

	return created, nil
}

// UpdateAccount applies the supplied fields of request to the account with
// the given ID and returns the refreshed record. PUT and PATCH share these
// semantics: absent fields are left untouched.
//
// Uniqueness is re-checked only for a changed email/username. A supplied
// plaintext password is hashed here and nowhere else; omitting it never
// re-hashes the stored value. Supplying an empty image string clears the
// avatar; a URL replaces it. Either way a previously stored object is
// enqueued for best-effort deletion.
func (s *accountService) UpdateAccount(ctx context.Context, id string, request models.UpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, &request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	var patch models.AccountPatch
	if request.Email != nil && *request.Email != existing.Email {
		if err := s.checkEmailIsFree(ctx, *request.Email); err != nil {
			return models.User{}, err
		}
		patch.Email = request.Email
	}
	if request.Username != nil && *request.Username != existing.Username {
		if err := s.checkUsernameIsFree(ctx, *request.Username); err != nil {
			return models.User{}, err
		}
		patch.Username = request.Username
	}
	if request.Password != nil {
		hash, err := utils.HashPassword(*request.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		patch.PasswordHash = &hash
	}
	if request.Image != nil {
		if *request.Image == "" {
			patch.ClearImage = true
		} else {
			patch.ImageURL = request.Image
			emptyRef := ""
			patch.ImageRef = &emptyRef
		}
		s.cleanup.Enqueue(existing.ImageRef)
	}

	updated, err := s.accountRepository.UpdateAccountByID(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("account update failed")
		return models.User{}, err
	}

	return updated, nil
}

// DeleteAccount removes the account with the given ID. A stored avatar
// object is left in the bucket, matching the source system's behavior.
func (s *accountService) DeleteAccount(ctx context.Context, id string) error {
	return s.accountRepository.DeleteAccountByID(ctx, id)
}

// UploadImage stores the payload as the account's new avatar.
//
// Payload checks run before the account lookup: an empty payload returns
// ErrNoImageProvided, an oversized one ErrImageTooLarge, and one that does
// not sniff as a supported image utils.ErrUnsupportedImage. On success the
// previous stored object (if any) is enqueued for best-effort deletion and
// URL+key are persisted together.
func (s *accountService) UploadImage(ctx context.Context, id string, payload []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(payload) == 0 {
		return models.User{}, ErrNoImageProvided
	}
	if s.maxUploadBytes > 0 && int64(len(payload)) > s.maxUploadBytes {
		return models.User{}, ErrImageTooLarge
	}
	contentType, err := utils.SniffImage(payload)
	if err != nil {
		return models.User{}, err
	}

	existing, err := s.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	stored, err := s.imageStorage.UploadImage(ctx, payload, contentType)
	if err != nil {
		log.Err(err).Str("id", id).Msg("image upload failed")
		return models.User{}, err
	}

	s.cleanup.Enqueue(existing.ImageRef)

	updated, err := s.accountRepository.UpdateAccountByID(ctx, id, models.AccountPatch{
		ImageURL: &stored.URL,
		ImageRef: &stored.Key,
	})
	if err != nil {
		// The fresh object is unreferenced now; schedule it for removal.
		s.cleanup.Enqueue(stored.Key)
		log.Err(err).Str("id", id).Msg("persisting image reference failed")
		return models.User{}, err
	}

	return updated, nil
}

// RemoveImage clears the account's avatar.
//
// Returns ErrNoImageToRemove when no avatar is set. A stored object is
// deleted synchronously, but deletion failure only logs: the reference is
// cleared regardless, and the orphan is recoverable by bucket maintenance.
func (s *accountService) RemoveImage(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if existing.ImageURL == nil {
		return models.User{}, ErrNoImageToRemove
	}

	if existing.ImageRef != "" {
		if err := s.imageStorage.DeleteImage(ctx, existing.ImageRef); err != nil {
			log.Err(err).Str("key", existing.ImageRef).Msg("image object deletion failed, clearing reference anyway")
		}
	}

	updated, err := s.accountRepository.UpdateAccountByID(ctx, id, models.AccountPatch{ClearImage: true})
	if err != nil {
		log.Err(err).Str("id", id).Msg("clearing image reference failed")
		return models.User{}, err
	}

	return updated, nil
}

// checkEmailIsFree returns store.ErrEmailAlreadyExists when an account with
// the given email already exists.
func (s *accountService) checkEmailIsFree(ctx context.Context, email string) error {
	_, err := s.accountRepository.FindAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return store.ErrEmailAlreadyExists
	case errors.Is(err, store.ErrNoAccountWasFound):
		return nil
	default:
		return fmt.Errorf("account search by email failed: %w", err)
	}
}

// checkUsernameIsFree returns store.ErrUsernameAlreadyExists when an account
// with the given username already exists.
func (s *accountService) checkUsernameIsFree(ctx context.Context, username string) error {
	_, err := s.accountRepository.FindAccountByUsername(ctx, username)
	switch {
	case err == nil:
		return store.ErrUsernameAlreadyExists
	case errors.Is(err, store.ErrNoAccountWasFound):
		return nil
	default:
		return fmt.Errorf("account search by username failed: %w", err)
	}
}
