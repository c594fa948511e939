package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

// AuthService orchestrates registration, login, session lifecycle, and the
// password-reset workflow on top of the user repository, the password
// hasher, and the token generator.
//
// Ordinary negative outcomes that callers branch on routinely (failed
// login, session miss) are reported as zero values with a nil error;
// explicit user-initiated actions (register, reset issuance, password
// update) surface typed failures instead.
type AuthService interface {
	// RegisterUser creates a new account. Fails with
	// ErrEmailAlreadyRegistered if the email is taken.
	RegisterUser(ctx context.Context, email string, password string) (models.User, error)

	// ValidLogin reports whether the credentials match an existing account.
	// An unknown email yields (false, nil); only storage failures produce
	// an error.
	ValidLogin(ctx context.Context, email string, password string) (bool, error)

	// CreateSession starts a session for the account and returns its
	// opaque token. An unknown email yields ("", nil).
	CreateSession(ctx context.Context, email string) (string, error)

	// GetUserFromSession resolves the holder of a session token. An empty
	// or unknown token yields (nil, nil) — no store round-trip happens for
	// the empty token.
	GetUserFromSession(ctx context.Context, sessionID string) (*models.User, error)

	// DestroySession ends the user's active session. A zero userID is a
	// no-op; destroying an already-destroyed session succeeds.
	DestroySession(ctx context.Context, userID int64) error

	// IssueResetToken starts a password reset for the account and returns
	// the opaque token. Fails with store.ErrUserNotFound for an unknown
	// email.
	IssueResetToken(ctx context.Context, email string) (string, error)

	// UpdatePassword consumes a reset token and sets the new password.
	// The stored hash is replaced and the token cleared in one atomic
	// update. Fails with ErrInvalidResetToken for an unknown or already
	// consumed token.
	UpdatePassword(ctx context.Context, resetToken string, newPassword string) error
}
