package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context together with a
// logger that carries it. It should run early in the chain, after chi's
// RequestID, so that every handler and error response shares the same ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithContext(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
