package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, its signature does not
	// match this service's secret, or it carries no usable identity claim.
	// Callers never learn which.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWeakSecret indicates the signing secret is shorter than MinSecretLength.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
