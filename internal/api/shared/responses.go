package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
)

// FieldViolation describes one field that failed payload validation.
type FieldViolation struct {
	// Field is the JSON name of the offending field, or "body" when the
	// payload as a whole could not be read.
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Message string           `json:"message"`
	Errors  []FieldViolation `json:"errors,omitempty"`
	Code    int              `json:"-"` // Not serialized to JSON, used for logging
	TraceID string           `json:"trace_id,omitempty"`
}

// MessageResponse is the body of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// Client-facing messages shared by handlers and middleware.
const (
	// ValidationErrorMessage accompanies every 400 with field detail.
	ValidationErrorMessage = "Validation error"
	// NotSignedInMessage is the single response for every rejected bearer.
	NotSignedInMessage = "You are not signed in"
	// InvalidRequestFormatMessage is returned for bodies that are not JSON.
	InvalidRequestFormatMessage = "Invalid request format"
)

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithMessage writes {"message": message} with the given status code.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Message: message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithValidationError writes a 400 listing every field violation.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, violations []FieldViolation) {
	logger.FromContext(r.Context()).Debug("payload validation failed",
		"path", r.URL.Path,
		"violations", len(violations))

	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Message: ValidationErrorMessage,
		Errors:  violations,
		Code:    http.StatusBadRequest,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The client only ever sees userMessage; err is redacted and logged.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level, WARN with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Message: userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
