package http

import (
	"net/http"

	"github.com/azimovr/go-user-admin/internal/logger"
)

// bootstrapAuth gates account creation.
//
// While the account store is empty, the request passes through without any
// authorization so the very first account can be created. Once at least one
// account exists, the regular bearer-token check applies. A failing count
// query is a server-side error, never an open gate.
func (h *Handler) bootstrapAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		count, err := h.services.AccountService.CountAccounts(r.Context())
		if err != nil {
			log.Err(err).Msg("error counting accounts for bootstrap check")
			h.writeMappedError(w, r, err)
			return
		}

		if count == 0 {
			log.Info().Msg("account store is empty, allowing unauthenticated account creation")
			next.ServeHTTP(w, r)
			return
		}

		h.auth(next).ServeHTTP(w, r)
	})
}
