package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/platform/logger"
)

// decodeAndValidate reads the JSON body into req and validates it.
// On failure it has already written the 400 response and returns false.
//
// A JSON type mismatch is reported as a field violation; a body that is not
// JSON at all gets the generic invalid-format message.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		if violation, ok := shared.TypeViolation(err); ok {
			shared.RespondWithValidationError(w, r, []shared.FieldViolation{violation})
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.InvalidRequestFormatMessage, err)
		return false
	}

	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, fieldViolations(err))
		return false
	}
	return true
}

// requireActorID extracts the id the authorization gate stored in the
// request context. Routes are always mounted behind the gate, so a miss
// is answered exactly as the gate would answer it.
func requireActorID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	id, ok := shared.GetActorID(r.Context())
	if !ok {
		if log == nil {
			log = logger.FromContext(r.Context())
		}
		log.Warn("actor ID not found in request context", slog.String("path", r.URL.Path))
		shared.RespondWithError(w, r, http.StatusForbidden, shared.NotSignedInMessage)
		return uuid.Nil, false
	}
	return id, true
}
