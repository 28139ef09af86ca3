package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
)

// PurchaseStore defines the interface for purchase persistence.
type PurchaseStore interface {
	// Create saves a new purchase. No API route writes purchases; checkout
	// tooling and tests do.
	Create(ctx context.Context, purchase *domain.Purchase) error

	// ListByUser returns every purchase made by userID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error)
}
