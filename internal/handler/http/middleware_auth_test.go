package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder is a terminal handler that records whether it was reached and
// which user (if any) the middleware stored in the context.
type nextRecorder struct {
	called bool
	user   *models.User
	userOK bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.user, n.userOK = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuth_ExcludedPathPassesThrough verifies that requests to excluded paths
// reach the next handler without any session lookup.
func TestAuth_ExcludedPathPassesThrough(t *testing.T) {
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, _ string) (*models.User, error) {
			t.Fatal("session lookup must not happen for excluded paths")
			return nil, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.called)
	assert.False(t, next.userOK)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestAuth_NoToken verifies that a protected path without any session token
// is rejected with 401.
func TestAuth_NoToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrNoSessionToken.Error())
}

// TestAuth_BearerHeader verifies that a valid bearer token resolves the user
// and stores it in the request context.
func TestAuth_BearerHeader(t *testing.T) {
	user := &models.User{ID: 1, Email: "alice@example.com"}
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, sessionID string) (*models.User, error) {
			assert.Equal(t, "token-123", sessionID)
			return user, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.True(t, next.called)
	require.True(t, next.userOK)
	assert.Equal(t, user, next.user)
}

// TestAuth_SessionCookie verifies that the configured cookie is used when no
// Authorization header is present.
func TestAuth_SessionCookie(t *testing.T) {
	user := &models.User{ID: 2, Email: "bob@example.com"}
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, sessionID string) (*models.User, error) {
			assert.Equal(t, "cookie-token", sessionID)
			return user, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.True(t, next.called)
	assert.Equal(t, user, next.user)
}

// TestAuth_HeaderTakesPrecedenceOverCookie verifies the extraction order.
func TestAuth_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, sessionID string) (*models.User, error) {
			assert.Equal(t, "header-token", sessionID)
			return &models.User{ID: 3}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.called)
}

// TestAuth_MalformedAuthorizationHeader verifies that a header without a
// token part is rejected with 401.
func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidAuthorizationHeader.Error())
}

// TestAuth_EmptyBearerToken verifies that "Bearer " with an empty token is
// rejected with 401.
func TestAuth_EmptyBearerToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuth_UnknownSession verifies that a token resolving to no user is
// rejected with 403.
func TestAuth_UnknownSession(t *testing.T) {
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestAuth_StoreError verifies that session resolution failures result in
// 500 Internal Server Error.
func TestAuth_StoreError(t *testing.T) {
	auth := &mockAuthService{
		getUserFromSessionFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, assert.AnError
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
