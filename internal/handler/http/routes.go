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

	// auth consults the exclusion list itself, so it wraps every route
	router.Use(h.auth)

	router.Get("/", h.welcome)
	router.Post("/api/user/register", h.register)
	router.Post("/api/user/login", h.login)
	router.Delete("/api/user/logout", h.logout)
	router.Get("/api/user/profile", h.profile)
	router.Post("/api/user/password/reset", h.requestPasswordReset)
	router.Put("/api/user/password", h.updatePassword)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
