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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes guarded by the token validator
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/me", h.me)
	})

	return router
}
