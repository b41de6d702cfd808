package service

import (
	"context"

	"github.com/azimovr/go-user-admin/models"
)

// AuthService covers registration, credential verification and the JWT token
// lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, account models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService covers the account lifecycle: listing, lookup, creation,
// partial update, deletion and avatar management.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]models.User, error)
	GetAccount(ctx context.Context, id string) (models.User, error)
	CreateAccount(ctx context.Context, request models.RegisterRequest) (models.User, error)
	UpdateAccount(ctx context.Context, id string, request models.UpdateRequest) (models.User, error)
	DeleteAccount(ctx context.Context, id string) error
	CountAccounts(ctx context.Context) (int64, error)

	UploadImage(ctx context.Context, id string, payload []byte) (models.User, error)
	RemoveImage(ctx context.Context, id string) (models.User, error)
}

// ImageCleanup accepts storage keys of replaced avatar objects for deferred
// best-effort deletion. Implementations ignore empty keys.
type ImageCleanup interface {
	Enqueue(key string)
}

// noopCleanup discards keys. Used when no cleanup worker is wired, e.g. in
// tests that do not care about replaced objects.
type noopCleanup struct{}

func (noopCleanup) Enqueue(string) {}
