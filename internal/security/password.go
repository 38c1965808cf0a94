// Package security implements the credential primitives: bcrypt password
// hashing and signed session tokens.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// bcryptCost is the bcrypt work factor. Hashing is intentionally slow.
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plaintext password. bcrypt
// rejects inputs over 72 bytes; the request validator caps the length in
// characters, so a multi-byte password can still hit the byte limit here.
// That case surfaces as a validation error, not a server fault.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("Password cannot exceed 72 characters")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// treated as a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
