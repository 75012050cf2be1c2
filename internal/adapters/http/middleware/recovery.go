package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
)

// errUnhandledPanic is what clients see when a panic is recovered. The
// panic value and stack stay in the logs and never reach the response.
var errUnhandledPanic = errors.New("internal server error")

// Recovery converts panics in downstream handlers into logged RFC 9457
// 500 responses. It is the outermost middleware so that nothing above it
// can turn a panic into a dropped connection. If the handler already
// committed a response, only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)
			defer func() {
				if v := recover(); v != nil {
					respondToPanic(logger, sw, r, v)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

func respondToPanic(logger *slog.Logger, sw *statusWriter, r *http.Request, v any) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if !sw.wrote {
		dto.WriteErrorResponse(sw, r, errUnhandledPanic)
	}
}
