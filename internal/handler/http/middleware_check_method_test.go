package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// TestCheckHTTPMethod_UnsupportedMethod verifies that a registered path
// requested with an unsupported method responds 404 instead of 405.
func TestCheckHTTPMethod_UnsupportedMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/user/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	req := httptest.NewRequest(http.MethodGet, "/api/user/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestCheckHTTPMethod_SupportedMethod verifies that a supported method is
// delegated to the normal pipeline.
func TestCheckHTTPMethod_SupportedMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/user/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	handler := CheckHTTPMethod(router)
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

// TestCheckHTTPMethod_UnknownPath verifies that a path matching no route at
// all also responds 404.
func TestCheckHTTPMethod_UnknownPath(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/user/login", func(w http.ResponseWriter, r *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	handler := CheckHTTPMethod(router)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
