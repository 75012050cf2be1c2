// Package middleware provides the inbound HTTP request pipeline.
//
// Handlers are registered on a chi router and the pipeline is applied with
// Router.Use in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout
//
// Recovery sits outermost so that a panic anywhere below it still produces
// a well-formed error response. AppContext must run before OpenTelemetry so
// the per-request write queue exists when tracing begins.
package middleware

import "net/http"

// statusWriter wraps http.ResponseWriter so the pipeline can observe the
// status code and response size after the handler runs. Recovery uses the
// wrote flag to decide whether an error body can still be sent.
type statusWriter struct {
	http.ResponseWriter

	status int
	bytes  int64
	wrote  bool
}

func wrapWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code and forwards it. Later calls
// are dropped, mirroring net/http's superfluous-WriteHeader handling.
func (sw *statusWriter) WriteHeader(code int) {
	if sw.wrote {
		return
	}
	sw.status = code
	sw.wrote = true
	sw.ResponseWriter.WriteHeader(code)
}

// Write forwards the body bytes, counting them. A Write before any
// WriteHeader commits the implicit 200.
func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wrote = true
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer for http.ResponseController and for
// interface assertions such as http.Flusher.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
