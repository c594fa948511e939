// Package crypto provides the credential primitives of the service:
// one-way password hashing and opaque token generation.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and verifies salted one-way password hashes.
//
// Hash output is opaque: it embeds the salt and algorithm parameters and is
// meaningful only to Verify. Two Hash calls on the same plaintext produce
// different outputs.
type PasswordHasher interface {
	// Hash returns the salted hash of the given plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hashedPassword.
	// Malformed hashes from foreign sources yield false, never a panic.
	Verify(hashedPassword string, password string) bool
}

// TokenGenerator produces fresh opaque identifiers used for session and
// password-reset tokens. Tokens carry no parseable structure and are
// compared only for equality.
type TokenGenerator interface {
	// Next returns a new token with at least 128 bits of entropy.
	Next() string
}
