package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted bcrypt hash of the given plaintext
// credential using the default cost (10 rounds).
//
// Hashing is intentionally slow; callers must invoke it exactly once per
// write that carries a plaintext password and never re-hash a stored hash.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
//
// A mismatch returns (false, nil); any other comparison failure (e.g. a
// malformed stored hash) is returned as an error.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("error comparing password with hash: %w", err)
	}

	return true, nil
}
