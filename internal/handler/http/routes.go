package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	router.Route("/users", func(r chi.Router) {
		// account creation bypasses the gate only while the store is empty
		r.With(h.bootstrapAuth).Post("/", h.createAccount)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listAccounts)
			r.Get("/{id}", h.getAccount)
			r.Put("/{id}", h.updateAccount)
			r.Patch("/{id}", h.updateAccount)
			r.Delete("/{id}", h.deleteAccount)

			r.Post("/{id}/image", h.uploadImage)
			r.Delete("/{id}/image", h.removeImage)
		})
	})

	return router
}
