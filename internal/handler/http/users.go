package http

import (
	"net/http"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/azimovr/go-user-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.services.AccountService.ListAccounts(ctx)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.services.AccountService.GetAccount(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeMappedError(w, r, errInvalidJSON)
		return
	}

	account, err := h.services.AccountService.CreateAccount(ctx, request)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeMappedError(w, r, errInvalidJSON)
		return
	}

	account, err := h.services.AccountService.UpdateAccount(ctx, chi.URLParam(r, "id"), request)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AccountService.DeleteAccount(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Deleted: true}, http.StatusOK)
}
