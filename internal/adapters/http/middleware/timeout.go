package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// timeoutBody is the RFC 9457 document written when the deadline fires.
// Built by hand because the dto error mapping is keyed by error value and
// a deadline is a pipeline condition, not a handler error.
const timeoutBody = `{"type":"about:blank","title":"Gateway Timeout","status":504,"detail":"request exceeded the server deadline"}`

// Timeout enforces a per-request deadline. The handler runs against a
// context carrying the deadline, so repository and gateway calls abort
// with it; if the handler still has not finished when the deadline fires,
// the buffered response is discarded and a 504 problem document is sent
// instead. Graph traversals with generous depth arguments are the usual
// way to hit this.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.release()
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				if !bw.committed {
					w.Header().Set("Content-Type", "application/problem+json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(timeoutBody))
					bw.committed = true
				}
			}
		})
	}
}

// bufferedWriter holds the handler's response until the race between
// completion and deadline is decided. The mutex covers the handler
// goroutine and the select above; committed flips once either side has
// claimed the real writer.
type bufferedWriter struct {
	dst http.ResponseWriter

	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	hasStatus bool
	committed bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.hasStatus {
		return
	}
	bw.status = code
	bw.hasStatus = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if !bw.hasStatus {
		bw.status = http.StatusOK
		bw.hasStatus = true
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// release copies the buffered response to the destination writer. Callers
// must hold bw.mu. A no-op when the timeout path already responded.
func (bw *bufferedWriter) release() {
	if bw.committed {
		return
	}
	bw.committed = true

	if bw.header != nil {
		maps.Copy(bw.dst.Header(), bw.header)
	}
	if bw.hasStatus {
		bw.dst.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = bw.dst.Write(bw.body)
	}
}
