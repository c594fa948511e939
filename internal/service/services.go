package service

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

// Services groups all service-layer components into a single value that can
// be passed to the transport layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires the service layer: the bcrypt hasher (cost from
// configuration) and the UUID token generator feed a single AuthService.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			crypto.NewBcryptHasher(cfg.BcryptCost),
			crypto.NewUUIDGenerator(),
			logger,
		),
	}
}
