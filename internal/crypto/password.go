package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// BcryptHasher implements [PasswordHasher] using bcrypt. Each hash embeds a
// freshly generated salt, so hashing the same password twice yields
// different opaque strings.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given cost factor.
// A cost outside the range supported by bcrypt falls back to the library
// default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches hashedPassword.
//
// bcrypt treats a malformed hash as a comparison error, so hashes produced
// outside this service simply fail verification instead of panicking.
func (h *BcryptHasher) Verify(hashedPassword string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
