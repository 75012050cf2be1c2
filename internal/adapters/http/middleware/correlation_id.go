package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

// correlationIDKey keys correlation IDs in the context.
type correlationIDKey struct{}

// WithCorrelationID stores a correlation ID in the context, for this
// package and for outbound calls made through httpclient, which propagate
// it as the X-Correlation-ID header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID stored by
// WithCorrelationID, or "" when the context carries none.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID propagates the caller's X-Correlation-ID across the whole
// request, falling back to the request ID when the caller sent none. Must
// run after RequestID so the fallback exists. Like the request ID, the
// resolved value is stored in context and echoed on the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}

			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
