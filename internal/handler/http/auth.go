package http

import (
	"encoding/json"
	"net/http"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/models"
)

const (
	healthStatus  = "OK"
	healthService = "User Admin API"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: healthStatus, Service: healthService}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeMappedError(w, r, errInvalidJSON)
		return
	}

	account, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeMappedError(w, r, errInvalidJSON)
		return
	}

	account, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	log.Debug().Str("id", account.ID.Hex()).Msg("account successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: account}, http.StatusOK)
}

// decodeJSON decodes a request body into dst, failing closed on fields the
// target schema does not declare.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
