package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/middleware"
)

func TestRequestID_MintsWhenHeaderAbsent(t *testing.T) {
	t.Parallel()

	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/graph/overview", http.NoBody))

	if seen == "" {
		t.Fatal("no request ID in handler context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("minted ID %q is not a UUID: %v", seen, err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("response X-Request-ID = %q, want %q", got, seen)
	}
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/overview", http.NoBody)
	req.Header.Set("X-Request-ID", "caller-supplied-7")
	handler.ServeHTTP(rec, req)

	if seen != "caller-supplied-7" {
		t.Errorf("context request ID = %q, want %q", seen, "caller-supplied-7")
	}
	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-7" {
		t.Errorf("response X-Request-ID = %q, want %q", got, "caller-supplied-7")
	}
}

func TestRequestID_DistinctPerRequest(t *testing.T) {
	t.Parallel()

	minted := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		minted[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 50 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))
	}

	if len(minted) != 50 {
		t.Errorf("distinct IDs = %d, want 50", len(minted))
	}
}

func TestRequestIDFromContext_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
}

func TestWithRequestID_RoundTrips(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "stored-id")

	if got := middleware.RequestIDFromContext(ctx); got != "stored-id" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "stored-id")
	}
}
