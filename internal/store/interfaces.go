package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence abstraction over the users table.
//
// Lookups and updates are expressed through the closed attribute
// enumeration of this package ([Criteria], [Update]); fields outside the
// enumeration fail with [ErrInvalidAttribute] before any SQL runs.
type UserRepository interface {
	// AddUser inserts a new user with the given email and hashed password
	// and returns the stored record with its server-assigned ID. A failed
	// insert never returns a partially constructed user.
	AddUser(ctx context.Context, email string, hashedPassword string) (models.User, error)

	// FindUserBy returns the single user matching all criteria
	// conjunctively, choosing the lowest id when several rows match.
	// Returns [ErrUserNotFound] if no row matches.
	FindUserBy(ctx context.Context, criteria Criteria) (models.User, error)

	// UpdateUser applies all assignments to the user with the given id as
	// one atomic UPDATE. Returns [ErrUserNotFound] if the id does not
	// exist; resolving the user first is the caller's responsibility.
	UpdateUser(ctx context.Context, userID int64, update Update) error
}
