package validation

import (
	"fmt"
	"strings"
)

const (
	// MaxFieldLen caps every registration text field.
	MaxFieldLen = 255
)

// Registration holds the raw fields submitted at sign-up.
type Registration struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ValidateRegistration checks that every required registration field is
// present and within bounds. Email is matched byte-for-byte elsewhere, so no
// normalization happens here.
func ValidateRegistration(r Registration) error {
	fields := []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
		if len(f.value) > MaxFieldLen {
			return fmt.Errorf("%s must not exceed %d characters", f.name, MaxFieldLen)
		}
	}

	return ValidatePassword(r.Password)
}

// ValidatePassword checks the submitted plaintext password.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	// bcrypt only hashes the first 72 bytes; reject anything longer instead
	// of silently truncating.
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 bytes")
	}
	return nil
}
