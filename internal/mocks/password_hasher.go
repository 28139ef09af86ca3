package mocks

import (
	"strings"

	"github.com/phrazzld/course-api/internal/service/auth"
)

// mockHashPrefix marks digests produced by MockPasswordHasher.
const mockHashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher without bcrypt's cost.
// The default digest is the plaintext behind a fixed prefix.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashed, password string) (bool, error)

	HashErr    error
	CompareErr error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return mockHashPrefix + password, nil
}

// Compare implements the PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashed, password string) (bool, error) {
	if m.CompareFn != nil {
		return m.CompareFn(hashed, password)
	}
	if m.CompareErr != nil {
		return false, m.CompareErr
	}
	plain, ok := strings.CutPrefix(hashed, mockHashPrefix)
	return ok && plain == password, nil
}
