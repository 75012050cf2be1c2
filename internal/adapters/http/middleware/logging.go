package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
)

// Logging emits a start and a completion event per request. The completion
// event carries the status, response size, and wall-clock duration. A child
// logger tagged with the request and correlation IDs is placed in the
// context via logging.WithLogger so handlers and services log under the
// same IDs without threading them explicitly.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)

			reqLog.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			logHeaders(ctx, reqLog, r)

			sw := wrapWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			reqLog.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// logHeaders dumps redacted request headers at debug level. The Enabled
// check skips the header flattening entirely on info and above.
func logHeaders(ctx context.Context, log *slog.Logger, r *http.Request) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := RedactHeaders(r.Header)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	log.DebugContext(ctx, "request headers", args...)
}
