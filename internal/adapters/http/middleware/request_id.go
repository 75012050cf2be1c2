package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey keys request IDs in this package's context namespace.
// httpclient keeps its own key so the two packages stay independent;
// WithRequestID writes through to both.
type requestIDKey struct{}

// WithRequestID stores a request ID in the context, for this package and
// for outbound calls made through httpclient, which propagate it as the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID,
// or "" when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID assigns every request an X-Request-ID. A caller-supplied
// header value is trusted as-is; otherwise a fresh UUID is minted. The ID
// lands in the request context and is echoed on the response so clients
// can quote it when reporting failures.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}
