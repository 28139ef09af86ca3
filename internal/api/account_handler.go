package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/service/auth"
	"github.com/phrazzld/course-api/internal/store"
)

// AccountHandler serves signup and signin for one actor type. Admins and
// users each get their own handler, store and token service.
type AccountHandler struct {
	actor      domain.ActorType
	identities store.IdentityStore
	hasher     auth.PasswordHasher
	tokens     auth.TokenService
	logger     *slog.Logger
}

// NewAccountHandler creates an AccountHandler. The store and token service
// must serve the same actor type.
func NewAccountHandler(
	identities store.IdentityStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}
	if identities.ActorType() != tokens.ActorType() {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic(fmt.Sprintf("identity store serves %q but token service signs for %q",
			identities.ActorType(), tokens.ActorType()))
	}

	actor := identities.ActorType()
	return &AccountHandler{
		actor:      actor,
		identities: identities,
		hasher:     hasher,
		tokens:     tokens,
		logger: logger.With(
			slog.String("component", "account_handler"),
			slog.String("actor", actor.String()),
		),
	}
}

// Signup handles POST /signup. It stores a new identity and returns no token.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("actor", h.actor.String()))

	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupFailed, err)
		return
	}

	identity, err := domain.NewIdentity(req.Email, hashed, req.FirstName, req.LastName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupFailed, err)
		return
	}

	// A duplicate email is reported like any other persistence failure.
	if err := h.identities.Create(r.Context(), identity); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupFailed,
			fmt.Errorf("create %s: %w", h.actor, err))
		return
	}

	log.Info("identity created", slog.String("identity_id", identity.ID.String()))
	shared.RespondWithMessage(w, r, http.StatusOK, msgSignupDone)
}

// Signin handles POST /signin. On matching credentials it returns a token
// signed with this actor type's secret.
func (h *AccountHandler) Signin(w http.ResponseWriter, r *http.Request) {
	req := newSigninRequest(h.actor)
	if !decodeAndValidate(w, r, req) {
		return
	}
	email, password := req.credentials()

	identity, err := h.identities.GetByEmail(r.Context(), email)
	if err != nil {
		h.signinFailed(w, r, fmt.Errorf("get %s by email: %w", h.actor, err))
		return
	}

	match, err := h.hasher.Compare(identity.HashedPassword, password)
	if err != nil {
		h.signinFailed(w, r, err)
		return
	}
	if !match {
		h.signinFailed(w, r, errIncorrectCredentials)
		return
	}

	token, err := h.tokens.Issue(r.Context(), identity.ID)
	if err != nil {
		h.signinFailed(w, r, fmt.Errorf("issue token: %w", err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

func (h *AccountHandler) signinFailed(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := signinErrorStatus(err)
	shared.RespondWithErrorAndLog(w, r, status, msg, err, shared.WithElevatedLogLevel())
}
