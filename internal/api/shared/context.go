package shared

import (
	"context"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// ActorIDContextKey is the context key for the authenticated admin or user ID
	ActorIDContextKey ContextKey = "actorID"
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a trace ID to the context. The chi request id is reused
// when the RequestID middleware ran first; otherwise a fresh UUID is minted.
func SetTraceID(ctx context.Context) context.Context {
	traceID := chimiddleware.GetReqID(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithActorID returns a copy of ctx carrying the authenticated actor id.
func WithActorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ActorIDContextKey, id)
}

// GetActorID extracts the authenticated actor id from ctx.
// The boolean is false when no non-nil id is present.
func GetActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ActorIDContextKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
