package store

import "fmt"

// Field names a column of the users table that may appear in a query or an
// update. The set of valid fields is a closed enumeration: anything outside
// it is rejected with [ErrInvalidAttribute] before any SQL is built. This is
// a deliberate safety boundary, not a generic reflective query surface.
type Field string

const (
	// FieldID is the immutable primary key. Queryable, never updatable.
	FieldID Field = "id"

	// FieldEmail identifies the account.
	FieldEmail Field = "email"

	// FieldHashedPassword is the stored bcrypt hash. Updatable only; the
	// service never locates users by their hash.
	FieldHashedPassword Field = "hashed_password"

	// FieldSessionID is the opaque active-session token.
	FieldSessionID Field = "session_id"

	// FieldResetToken is the opaque pending-reset token.
	FieldResetToken Field = "reset_token"
)

// queryableFields is the closed set of fields accepted in [Criteria].
var queryableFields = map[Field]struct{}{
	FieldID:         {},
	FieldEmail:      {},
	FieldSessionID:  {},
	FieldResetToken: {},
}

// updatableFields is the closed set of fields accepted in [Update].
// FieldID is deliberately absent: the identifier is immutable after
// creation.
var updatableFields = map[Field]struct{}{
	FieldEmail:          {},
	FieldHashedPassword: {},
	FieldSessionID:      {},
	FieldResetToken:     {},
}

// Condition is a single field = value pair of a conjunctive query.
// A nil Value matches SQL NULL.
type Condition struct {
	Field Field
	Value any
}

// Criteria is an ordered set of conditions combined with AND semantics.
// All fields must belong to the queryable enumeration.
type Criteria []Condition

// validate checks every condition field against the queryable enumeration.
func (c Criteria) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty criteria", ErrInvalidAttribute)
	}

	for _, cond := range c {
		if _, ok := queryableFields[cond.Field]; !ok {
			return fmt.Errorf("%w: %q is not a queryable field", ErrInvalidAttribute, cond.Field)
		}
	}

	return nil
}

// Assignment is a single field = new value pair of an update.
// A nil Value writes SQL NULL (used to clear session and reset tokens).
type Assignment struct {
	Field Field
	Value any
}

// Update is an ordered set of assignments applied atomically as a single
// UPDATE statement. All fields must belong to the updatable enumeration.
type Update []Assignment

// validate checks every assignment field against the updatable enumeration.
func (u Update) validate() error {
	if len(u) == 0 {
		return fmt.Errorf("%w: empty update", ErrInvalidAttribute)
	}

	for _, a := range u {
		if _, ok := updatableFields[a.Field]; !ok {
			return fmt.Errorf("%w: %q is not an updatable field", ErrInvalidAttribute, a.Field)
		}
	}

	return nil
}

// ByID builds criteria matching a single user by primary key.
func ByID(id int64) Criteria {
	return Criteria{{Field: FieldID, Value: id}}
}

// ByEmail builds criteria matching a single user by email.
func ByEmail(email string) Criteria {
	return Criteria{{Field: FieldEmail, Value: email}}
}

// BySessionID builds criteria matching the holder of an active session token.
func BySessionID(token string) Criteria {
	return Criteria{{Field: FieldSessionID, Value: token}}
}

// ByResetToken builds criteria matching the holder of a pending reset token.
func ByResetToken(token string) Criteria {
	return Criteria{{Field: FieldResetToken, Value: token}}
}
