package handler

import (
	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/handler/http"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Storage.Images.MaxUploadBytes, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
