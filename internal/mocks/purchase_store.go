package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/store"
)

// MockPurchaseStore implements store.PurchaseStore for testing
type MockPurchaseStore struct {
	CreateFn     func(ctx context.Context, purchase *domain.Purchase) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error)

	Err error

	mu        sync.Mutex
	purchases []domain.Purchase
}

var _ store.PurchaseStore = (*MockPurchaseStore)(nil)

// NewMockPurchaseStore creates a mock store seeded with purchases.
func NewMockPurchaseStore(purchases ...domain.Purchase) *MockPurchaseStore {
	return &MockPurchaseStore{purchases: append([]domain.Purchase(nil), purchases...)}
}

// Create implements the PurchaseStore interface
func (m *MockPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, purchase)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := purchase.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases = append(m.purchases, *purchase)
	return nil
}

// ListByUser implements the PurchaseStore interface
func (m *MockPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	purchases := []domain.Purchase{}
	for _, p := range m.purchases {
		if p.UserID == userID {
			purchases = append(purchases, p)
		}
	}
	return purchases, nil
}
