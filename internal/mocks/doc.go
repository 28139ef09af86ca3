// Package mocks provides in-memory implementations of the store and auth
// interfaces for handler and router tests.
//
// Every mock exposes function fields that override a single method. When a
// field is nil the mock falls back to an in-memory default that follows the
// same filter semantics as the real stores, so a test can exercise a whole
// request flow without a database:
//
//	admins := mocks.NewMockIdentityStore(domain.ActorAdmin)
//	admins.GetByEmailFn = func(ctx context.Context, email string) (*domain.Identity, error) {
//	    return nil, errors.New("connection refused")
//	}
package mocks
