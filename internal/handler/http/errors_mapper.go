package http

import (
	"errors"
	"net/http"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/service"
	"github.com/azimovr/go-user-admin/internal/store"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoImageProvided:     http.StatusBadRequest,
	service.ErrImageTooLarge:       http.StatusBadRequest,
	service.ErrNoImageToRemove:     http.StatusBadRequest,
	utils.ErrUnsupportedImage:      http.StatusBadRequest,
	errInvalidJSON:                 http.StatusBadRequest,
	errNoFileProvided:              http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrInvalidAccountID:      http.StatusBadRequest,
	store.ErrNoAccountWasFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrAccountAlreadyExists:  http.StatusConflict,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrDecodingDocument:      http.StatusInternalServerError,

	store.ErrImageStoreUnavailable: http.StatusBadGateway,
}

// statusFromError resolves an error chain to the HTTP status and the
// client-facing message of the first matching sentinel. Unmapped errors are
// internal server errors.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeMappedError is the single error-formatting boundary of the API. Every
// handler funnels its errors here; the response body is always
// {message, details?}. Validation failures carry the complete per-field
// violation list in details. Server-side failures are logged with the full
// chain but reach the client as the bare status text.
func (h *Handler) writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)

	var details []string
	var violations validators.ValidationErrors
	if errors.As(err, &violations) {
		details = violations.Messages()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	utils.WriteError(w, message, details, status)
}
