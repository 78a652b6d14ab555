// Package password hashes and verifies account credentials with bcrypt.
// It is the step immediately after a creation payload passes validation;
// strength policy lives in the validator package, not here.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost trades roughly 250ms of hashing time for resistance to
// offline attacks. Lower it only in tests.
const DefaultCost = 12

// Hash derives a bcrypt hash from a plaintext password. A cost outside the
// bcrypt bounds falls back to DefaultCost. Inputs longer than 72 bytes are
// rejected by bcrypt and reported as an error.
func Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("password: failed to hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the stored hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
