package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailAlreadyRegistered is returned by RegisterUser when an account
	// for the email already exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidResetToken is returned by UpdatePassword when the supplied
	// reset token does not match any pending reset request. A token is
	// consumed by the first successful password update, so replaying it
	// also yields this error.
	ErrInvalidResetToken = errors.New("invalid reset token")
)
