package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/service/auth"
)

// LegacyTokenHeader carries a raw token for clients that predate the
// Authorization header.
const LegacyTokenHeader = "token"

// AuthGate admits requests that carry a token signed for one actor type.
type AuthGate struct {
	tokens auth.TokenService
}

// NewAuthGate creates a gate that verifies tokens with the given service.
func NewAuthGate(tokens auth.TokenService) *AuthGate {
	return &AuthGate{tokens: tokens}
}

// ActorType reports which identity space the gate admits.
func (g *AuthGate) ActorType() domain.ActorType {
	return g.tokens.ActorType()
}

// Authenticate verifies the bearer token and adds the actor ID to the
// request context. Every rejection gets the same 403 so a client cannot
// tell a missing token from a forged one or one signed for the other
// actor type.
func (g *AuthGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug("request rejected by auth gate",
				slog.String("actor", g.ActorType().String()),
				slog.String("reason", err.Error()))
			shared.RespondWithError(w, r, http.StatusForbidden, shared.NotSignedInMessage)
			return
		}

		id, err := g.tokens.Verify(r.Context(), token)
		if err != nil {
			log.Debug("request rejected by auth gate",
				slog.String("actor", g.ActorType().String()),
				slog.String("reason", redact.Error(err)))
			shared.RespondWithError(w, r, http.StatusForbidden, shared.NotSignedInMessage)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithActorID(r.Context(), id)))
	})
}

// tokenFromRequest reads "Authorization: Bearer <token>", falling back to
// the legacy token header.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", fmt.Errorf("%w: invalid authorization format", auth.ErrInvalidToken)
		}
		return strings.TrimSpace(token), nil
	}

	if token := strings.TrimSpace(r.Header.Get(LegacyTokenHeader)); token != "" {
		return token, nil
	}
	return "", auth.ErrMissingToken
}

// ActorID extracts the authenticated actor ID from the request context.
// Returns the ID and a boolean indicating if it was found.
func ActorID(r *http.Request) (uuid.UUID, bool) {
	return shared.GetActorID(r.Context())
}
