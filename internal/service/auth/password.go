package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// truncated to this length before hashing and comparing.
const MaxPasswordBytes = 72

// DefaultBcryptCost is the work factor used when none is configured. It is
// deliberately low; existing digests were produced at this cost.
const DefaultBcryptCost = 5

// PasswordHasher hashes passwords at signup and compares them at signin.
type PasswordHasher interface {
	// Hash returns a salted one-way digest of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hashedPassword.
	// A mismatch is (false, nil); a malformed digest is an error.
	Compare(hashedPassword, password string) (bool, error)
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// Ensure BcryptHasher implements PasswordHasher interface
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher with the given cost. A cost outside
// bcrypt's accepted range falls back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements PasswordHasher using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hashed), nil
}

// Compare implements PasswordHasher using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncate(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt compare: %w", err)
	}
}

// truncate returns at most MaxPasswordBytes of password, the same prefix
// bcrypt implementations that truncate silently would read.
func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
