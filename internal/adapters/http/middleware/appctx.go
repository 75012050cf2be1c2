package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/knowledge-graph-service/internal/app/context"
)

// AppContext gives each request its own appctx.RequestContext, the
// carrier for graph writes queued during LLM extraction and committed at
// the end of the operation. Services reach it with appctx.FromContext.
//
// Ordering: after CorrelationID so the embedded context carries the
// request and correlation IDs, before OpenTelemetry so the queue exists
// when tracing begins.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
