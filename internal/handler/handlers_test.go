package handler

import (
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTPAddress yields
// an initialised HTTP handler and no error.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
		App:    config.App{SessionCookieName: "session_id"},
	}

	handlers, err := NewHandlers(newTestServices(), cfg, newTestLogger())
	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty HTTPAddress is a fatal
// misconfiguration.
func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}

	handlers, err := NewHandlers(newTestServices(), cfg, newTestLogger())
	assert.Nil(t, handlers)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
