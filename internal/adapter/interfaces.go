// Package adapter provides a typed HTTP client for the authentication API.
// It is the counterpart of the server's REST surface and is intended for
// other services and integration tooling that talk to this service.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthClient is the client-side contract for the authentication API.
//
// Implementations hold the session token obtained from Login and attach it
// to authenticated calls (Profile, Logout) automatically.
type AuthClient interface {
	// Register creates a new account. Returns ErrConflict (wrapped) when the
	// email is already registered.
	Register(ctx context.Context, credentials models.Credentials) (models.Message, error)

	// Login authenticates and stores the session token carried by the
	// Authorization response header. Returns ErrUnauthorized (wrapped) on
	// bad credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Message, error)

	// Logout destroys the current session and clears the stored token.
	Logout(ctx context.Context) error

	// Profile returns the authenticated user's profile.
	Profile(ctx context.Context) (models.Message, error)

	// RequestPasswordReset asks for a reset token for the given email.
	// Returns ErrForbidden (wrapped) when the email is not registered.
	RequestPasswordReset(ctx context.Context, email string) (models.ResetResponse, error)

	// UpdatePassword consumes a reset token to set a new password. Returns
	// ErrForbidden (wrapped) on an invalid token.
	UpdatePassword(ctx context.Context, update models.PasswordUpdate) error

	// SetToken replaces the stored session token.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string
}
