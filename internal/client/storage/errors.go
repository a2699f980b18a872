package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no cached session exists
	ErrSessionNotFound = errors.New("session data not found")
)
