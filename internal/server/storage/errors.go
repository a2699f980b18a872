package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that no user matched the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates a uniqueness violation on the email column
	ErrEmailTaken = errors.New("email already taken")

	// ErrSessionNotFound indicates that no session matched the lookup
	ErrSessionNotFound = errors.New("session not found")
)
