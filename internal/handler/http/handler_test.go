package http

import (
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandler verifies that configuration values are carried into the
// handler.
func TestNewHandler(t *testing.T) {
	cfg := config.App{
		SessionCookieName: "sid",
		ExcludedPaths:     []string{"/", "/api/user/login"},
	}

	h := NewHandler(nil, cfg, logger.Nop())
	require.NotNil(t, h)
	assert.Equal(t, "sid", h.cookieName)
	assert.Equal(t, cfg.ExcludedPaths, h.excludedPaths)
}
