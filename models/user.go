package models

// User represents an account entity used for authentication and session
// management. It is the only entity this service persists.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user. It is assigned by
	// the store on creation and never reassigned afterwards.
	ID int64 `json:"-"`

	// Email identifies the account and is used during login and password
	// recovery.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a hasher output, never plaintext, and it is never
	// exposed via JSON.
	HashedPassword string `json:"-"`

	// SessionID is the opaque token of the user's active session.
	// Nil means the user has no active session.
	SessionID *string `json:"-"`

	// ResetToken is the opaque token of a pending password-reset request.
	// Nil means no reset is pending. It is cleared together with the
	// password update that consumes it.
	ResetToken *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
