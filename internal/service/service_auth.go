package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/store"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification against bcrypt hashes, and
// the JWT token lifecycle. Account creation itself is delegated to the
// AccountService so that the whole create pipeline (validation, uniqueness
// checks, hashing) lives in exactly one place.
type authService struct {
	// accounts runs the shared account-creation pipeline for registration.
	accounts AccountService

	// accountRepository is the data-access layer used to look up accounts
	// during login.
	accountRepository store.AccountRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given account
// service and repository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accounts AccountService, accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:          accounts,
		accountRepository: accountRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new account through the shared creation pipeline.
//
// Returns the persisted account (with a store-assigned ID, password hash
// stripped by serialization) or the pipeline's validation/conflict error.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	account, err := a.accounts.CreateAccount(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("registration failed")
		return models.User{}, err
	}

	return account, nil
}

// Login authenticates an account by email and password.
//
// The email is normalized the same way registration normalizes it before the
// lookup. Accounts persisted without a password hash (external-identity
// signups) authenticate by email lookup alone.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if no account matches or the password is wrong.
//     Lookup miss and bad password are deliberately indistinguishable.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" || request.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.User{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if account.PasswordHash != "" {
		ok, err := utils.VerifyPassword(request.Password, account.PasswordHash)
		if err != nil {
			log.Err(err).Str("email", email).Msg("password verification failed")
			return models.User{}, fmt.Errorf("password verification failed: %w", err)
		}
		if !ok {
			return models.User{}, ErrWrongCredentials
		}
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the account ID as the subject, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, account models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID.Hex(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
