package mocks

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing. Default
// tokens have the form "<actor>:<uuid>", so a token issued for one actor
// type fails verification on the other.
type MockTokenService struct {
	IssueFn  func(ctx context.Context, id uuid.UUID) (string, error)
	VerifyFn func(ctx context.Context, token string) (uuid.UUID, error)

	Actor     domain.ActorType
	IssueErr  error
	VerifyErr error
}

var _ auth.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock token service for the given actor type.
func NewMockTokenService(actor domain.ActorType) *MockTokenService {
	return &MockTokenService{Actor: actor}
}

// ActorType implements the TokenService interface
func (m *MockTokenService) ActorType() domain.ActorType {
	return m.Actor
}

// Issue implements the TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, id uuid.UUID) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, id)
	}
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	return m.Actor.String() + ":" + id.String(), nil
}

// Verify implements the TokenService interface
func (m *MockTokenService) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	if m.VerifyErr != nil {
		return uuid.Nil, m.VerifyErr
	}

	raw, ok := strings.CutPrefix(token, m.Actor.String()+":")
	if !ok {
		return uuid.Nil, auth.ErrInvalidToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return id, nil
}
