package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
)

// MinSecretLength is the shortest accepted HMAC signing secret.
const MinSecretLength = 32

// TokenService mints and verifies bearer tokens for one actor type.
type TokenService interface {
	// ActorType reports which identity space this service signs for.
	ActorType() domain.ActorType

	// Issue returns a signed token whose only claim is the identity id.
	// Tokens carry no expiry.
	Issue(ctx context.Context, id uuid.UUID) (string, error)

	// Verify checks the token signature against this service's secret and
	// returns the embedded identity id. Any failure is ErrInvalidToken.
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// tokenClaims is the full claim set: {"id": "<uuid>"}. The embedded
// registered claims stay zero so nothing else is serialized.
type tokenClaims struct {
	ActorID string `json:"id"`
	jwt.RegisteredClaims
}

// hmacTokenService is an implementation of TokenService using HMAC-SHA256.
type hmacTokenService struct {
	actor      domain.ActorType
	signingKey []byte
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService for actor signing with secret.
func NewTokenService(actor domain.ActorType, secret string) (TokenService, error) {
	if actor.Collection() == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActorType, actor)
	}
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &hmacTokenService{
		actor:      actor,
		signingKey: []byte(secret),
	}, nil
}

// ActorType implements TokenService.
func (s *hmacTokenService) ActorType() domain.ActorType {
	return s.actor
}

// Issue implements TokenService.
func (s *hmacTokenService) Issue(ctx context.Context, id uuid.UUID) (string, error) {
	log := logger.FromContext(ctx)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{ActorID: id.String()})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"actor_type", s.actor,
			"actor_id", id,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign %s token with HMAC-SHA256: %w", s.actor, err)
	}

	return signed, nil
}

// Verify implements TokenService.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return uuid.Nil, ErrInvalidToken
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token verification failed: malformed token", "actor_type", s.actor)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token verification failed: invalid signature", "actor_type", s.actor)
		default:
			log.Debug("token verification failed",
				"actor_type", s.actor,
				"error_type", fmt.Sprintf("%T", err))
		}
		return uuid.Nil, ErrInvalidToken
	}

	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.ActorID)
	if err != nil || id == uuid.Nil {
		log.Debug("token verification failed: unusable id claim", "actor_type", s.actor)
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}
