package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// It holds no cross-request state of its own: every operation is a
// read-then-write against the user repository plus CPU-bound hashing, so
// the value is safe for concurrent use after construction.
type authService struct {
	// userRepository is the data-access layer used to create, look up, and
	// mutate users.
	userRepository store.UserRepository

	// hasher produces and verifies salted password hashes.
	hasher crypto.PasswordHasher

	// tokens generates opaque session and reset identifiers.
	tokens crypto.TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository,
// hasher, and token generator.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens crypto.TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It first resolves the email; an existing account fails with
// [ErrEmailAlreadyRegistered] and leaves the stored record untouched.
// Otherwise the password is hashed and persistence is delegated to the
// repository. A unique-constraint violation from the store (two concurrent
// registrations racing past the lookup) is folded into the same
// [ErrEmailAlreadyRegistered].
func (a *authService) RegisterUser(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	switch {
	case err == nil:
		log.Error().Str("email", email).Msg("email already registered")
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hashedPassword, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.AddUser(ctx, email, hashedPassword)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// ValidLogin reports whether email and password identify an existing
// account. An unknown email is an ordinary negative outcome, not an error.
func (a *authService) ValidLogin(ctx context.Context, email string, password string) (bool, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return a.hasher.Verify(foundUser.HashedPassword, password), nil
}

// CreateSession starts a session for the given email and returns the fresh
// opaque token. An unknown email yields an empty token with a nil error,
// mirroring the failed-login style of ValidLogin.
//
// A concurrent CreateSession for the same user wins last: the earlier
// token stops resolving once the later write lands.
func (a *authService) CreateSession(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	sessionID := a.tokens.Next()
	update := store.Update{{Field: store.FieldSessionID, Value: sessionID}}
	if err = a.userRepository.UpdateUser(ctx, foundUser.ID, update); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("persisting session failed")
		return "", fmt.Errorf("persisting session failed: %w", err)
	}

	return sessionID, nil
}

// GetUserFromSession resolves the holder of sessionID. The empty token
// short-circuits to (nil, nil) without touching the store.
func (a *authService) GetUserFromSession(ctx context.Context, sessionID string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return nil, nil
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, store.BySessionID(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}

		log.Err(err).Msg("user search by session failed")
		return nil, fmt.Errorf("user search by session failed: %w", err)
	}

	return &foundUser, nil
}

// DestroySession clears the session token of the given user. A zero userID
// is a no-op. Clearing an already-clear session succeeds, which makes
// repeated logouts harmless.
func (a *authService) DestroySession(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil
	}

	update := store.Update{{Field: store.FieldSessionID, Value: nil}}
	if err := a.userRepository.UpdateUser(ctx, userID, update); err != nil {
		log.Err(err).Int64("id", userID).Msg("destroying session failed")
		return fmt.Errorf("destroying session failed: %w", err)
	}

	return nil
}

// IssueResetToken starts a password reset for the account identified by
// email. Unlike login and session lookups this is an explicit
// user-initiated action, so an unknown email surfaces
// [store.ErrUserNotFound] to the caller instead of collapsing to a
// sentinel.
func (a *authService) IssueResetToken(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", email).Msg("reset requested for unknown email")
			return "", err
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken := a.tokens.Next()
	update := store.Update{{Field: store.FieldResetToken, Value: resetToken}}
	if err = a.userRepository.UpdateUser(ctx, foundUser.ID, update); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("persisting reset token failed")
		return "", fmt.Errorf("persisting reset token failed: %w", err)
	}

	return resetToken, nil
}

// UpdatePassword consumes resetToken and replaces the account's password.
//
// The new hash and the token clearing land in the same atomic update: a
// user must never be left with a stale valid reset token after changing
// their password.
func (a *authService) UpdatePassword(ctx context.Context, resetToken string, newPassword string) error {
	log := logger.FromContext(ctx)

	if resetToken == "" || newPassword == "" {
		return ErrInvalidResetToken
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByResetToken(resetToken))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Msg("unknown or already consumed reset token")
			return ErrInvalidResetToken
		}

		log.Err(err).Msg("user search by reset token failed")
		return fmt.Errorf("user search by reset token failed: %w", err)
	}

	hashedPassword, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	update := store.Update{
		{Field: store.FieldHashedPassword, Value: hashedPassword},
		{Field: store.FieldResetToken, Value: nil},
	}
	if err = a.userRepository.UpdateUser(ctx, foundUser.ID, update); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("updating password failed")
		return fmt.Errorf("updating password failed: %w", err)
	}

	return nil
}
