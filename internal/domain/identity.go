package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Identity validation errors
var (
	ErrEmptyIdentityID     = errors.New("identity ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Identity is a registered admin or user. Both actor types share this shape;
// which one an Identity belongs to is decided by the store holding it.
//
// Email is stored exactly as submitted: no trimming or case folding, so
// lookups are case-sensitive.
type Identity struct {
	ID             uuid.UUID `json:"_id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewIdentity creates a new Identity with a fresh UUID and creation time.
// The password must already be hashed.
func NewIdentity(email, hashedPassword, firstName, lastName string) (*Identity, error) {
	identity := &Identity{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		FirstName:      firstName,
		LastName:       lastName,
		CreatedAt:      time.Now().UTC(),
	}

	if err := identity.Validate(); err != nil {
		return nil, err
	}

	return identity, nil
}

// Validate checks the fields a store needs to persist the identity. Payload
// shape (email syntax, password length, names) is checked at the API edge.
func (i *Identity) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyIdentityID
	}
	if i.Email == "" {
		return ErrEmptyEmail
	}
	if i.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
