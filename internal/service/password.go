package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier compares a supplied password with the stored value.
type PasswordVerifier interface {
	Verify(stored, supplied string) (bool, error)
}

// StoredPasswordVerifier matches passwords as the credential store keeps them:
// plaintext values are compared for exact equality, bcrypt hashes are checked
// with bcrypt.
type StoredPasswordVerifier struct{}

// NewStoredPasswordVerifier creates a StoredPasswordVerifier.
func NewStoredPasswordVerifier() *StoredPasswordVerifier {
	return &StoredPasswordVerifier{}
}

// Verify reports whether supplied matches stored.
func (v *StoredPasswordVerifier) Verify(stored, supplied string) (bool, error) {
	if !isBcryptHash(stored) {
		return stored == supplied, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
