package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// Paths matched by the exclusion list (see [RequireAuth]) pass through
// untouched. For every other request the middleware extracts the session
// token — from the "Authorization: Bearer <token>" header first, then from
// the configured session cookie — resolves it via
// AuthService.GetUserFromSession, and stores the resulting [models.User]
// in the request context under [utils.UserCtxKey].
//
// Rejections:
//   - HTTP 401 Unauthorized when no token is present at all.
//   - HTTP 403 Forbidden when a token is present but resolves to no user.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !RequireAuth(r.URL.Path, h.excludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token, err := h.getSessionToken(r)
		if err != nil {
			log.Err(err).Str("path", r.URL.Path).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.GetUserFromSession(ctx, token)
		if err != nil {
			log.Err(err).Msg("error occurred during session resolution")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if user == nil {
			log.Error().Msg("session token does not resolve to a user")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without a second store round-trip.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionToken extracts the session token from the request.
//
// The "Authorization" header takes precedence; it is expected to follow the
// standard format:
//
//	Authorization: Bearer <token>
//
// When the header is absent the configured session cookie is consulted
// instead. It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — the header contains fewer than two
//     space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — the second part exists but is an empty string.
//   - [ErrNoSessionToken] — neither the header nor the cookie is present.
func (h *Handler) getSessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 {
			return "", ErrInvalidAuthorizationHeader
		}

		tokenString := parts[1]
		if tokenString == "" {
			return "", ErrEmptyToken
		}

		return tokenString, nil
	}

	cookie, err := r.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSessionToken
	}

	return cookie.Value, nil
}
