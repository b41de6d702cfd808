package service

import (
	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
}

func NewServices(storages *store.Storages, cleanup ImageCleanup, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	accountService := NewAccountService(storages.AccountRepository, storages.ImageStorage, cleanup, cfg.Storage.Images, logger)

	return &Services{
		AuthService:    NewAuthService(accountService, storages.AccountRepository, cfg.App, logger),
		AccountService: accountService,
	}
}
