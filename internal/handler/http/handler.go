package http

import (
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadBytes caps the avatar payload accepted by the upload
	// endpoint; the request body is limited to it plus form overhead.
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadBytes int64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}
