package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/service"
	"github.com/azimovr/go-user-admin/internal/utils"
	"github.com/go-chi/chi/v5"
)

// imageFormField is the multipart form field carrying the avatar payload.
const imageFormField = "file"

// multipartOverhead is the slack added to the payload cap for multipart
// boundaries and part headers when limiting the request body.
const multipartOverhead = 16 << 10

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	}

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeMappedError(w, r, service.ErrImageTooLarge)
			return
		}
		log.Err(err).Msg("no usable multipart file field")
		h.writeMappedError(w, r, errNoFileProvided)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeMappedError(w, r, service.ErrImageTooLarge)
			return
		}
		log.Err(err).Msg("error reading multipart file")
		h.writeMappedError(w, r, err)
		return
	}

	account, err := h.services.AccountService.UploadImage(ctx, chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) removeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.services.AccountService.RemoveImage(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}
