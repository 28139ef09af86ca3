package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/store"
)

// MockIdentityStore implements store.IdentityStore for testing
type MockIdentityStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, identity *domain.Identity) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Identity, error)

	// Data for default implementation
	Actor           domain.ActorType
	CreateError     error
	GetByEmailError error

	mu         sync.Mutex
	identities map[string]*domain.Identity
}

var _ store.IdentityStore = (*MockIdentityStore)(nil)

// NewMockIdentityStore creates a new mock store for the given actor type
func NewMockIdentityStore(actor domain.ActorType) *MockIdentityStore {
	return &MockIdentityStore{
		Actor:      actor,
		identities: make(map[string]*domain.Identity),
	}
}

// ActorType implements the IdentityStore interface
func (m *MockIdentityStore) ActorType() domain.ActorType {
	return m.Actor
}

// Create implements the IdentityStore interface. Emails are unique and
// compared exactly.
func (m *MockIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, identity)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	if err := identity.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identities == nil {
		m.identities = make(map[string]*domain.Identity)
	}
	if _, exists := m.identities[identity.Email]; exists {
		return store.ErrEmailExists
	}
	stored := *identity
	m.identities[identity.Email] = &stored
	return nil
}

// GetByEmail implements the IdentityStore interface
func (m *MockIdentityStore) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	identity, exists := m.identities[email]
	if !exists {
		return nil, store.ErrIdentityNotFound
	}
	found := *identity
	return &found, nil
}

// Len returns how many identities the default implementation holds.
func (m *MockIdentityStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.identities)
}
