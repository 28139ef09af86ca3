package store

import (
	"context"

	"github.com/phrazzld/course-api/internal/domain"
)

// IdentityStore persists identities of a single actor type. Admins and
// users each get their own instance backed by a separate collection/table.
type IdentityStore interface {
	// ActorType reports which identity space this store holds.
	ActorType() domain.ActorType

	// Create saves a new identity.
	// Returns ErrEmailExists if the email is already taken (exact match).
	// Returns ErrInvalidEntity if the identity fails domain validation.
	Create(ctx context.Context, identity *domain.Identity) error

	// GetByEmail retrieves an identity by exact, case-sensitive email.
	// Returns ErrNotFound if no identity has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
