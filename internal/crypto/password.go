// Package crypto implements the credential store contract: one-way salted
// password hashing and constant-time verification.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds a random per-password salt in the hash, so identical
// passwords produce different stored values.
const bcryptCost = bcrypt.DefaultCost

// dummyHash is a valid bcrypt hash of an unguessable throwaway value. It is
// used to equalize login timing when the submitted email matches no user.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted one-way hash from the submitted plaintext.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// bcrypt's comparison does not short-circuit on early mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummy burns the same bcrypt work as a real verification. Callers use
// it on unknown logins so that "no such user" and "wrong password" take
// comparable time.
func CheckDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
