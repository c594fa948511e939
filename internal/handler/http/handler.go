package http

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieName is the name of the session cookie, injected from
	// configuration so the transport never consults the environment at
	// request time.
	cookieName string

	// excludedPaths lists request paths the auth middleware lets through
	// without a session. See [RequireAuth] for the matching rules.
	excludedPaths []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		cookieName:    cfg.SessionCookieName,
		excludedPaths: cfg.ExcludedPaths,
		logger:        logger,
	}
}
