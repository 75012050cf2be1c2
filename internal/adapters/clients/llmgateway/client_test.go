package llmgateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/config"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// newTestGateway creates a Client pointing at the given test server with
// circuit breaker and retry configured for fast test execution.
func newTestGateway(t *testing.T, baseURL string) *Client {
	t.Helper()

	clientCfg := &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	transport := httpclient.New(clientCfg, "llm-gateway-test", nil, slog.Default())

	llmCfg := &config.LLMConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
	}
	return New(llmCfg, transport, nil, slog.Default())
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

// completionResponse builds a minimal chat completion payload the SDK can parse.
func completionResponse(content string, promptTokens, completionTokens int) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     promptTokens,
			"completion_tokens": completionTokens,
			"total_tokens":      promptTokens + completionTokens,
		},
	}
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer test-key")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, completionResponse(`{"name": "Ada Lovelace"}`, 37, 21))
	}))
	defer ts.Close()

	client := newTestGateway(t, ts.URL)
	result, err := client.Complete(context.Background(), ports.ChatRequest{
		Operation:   "extract_person",
		System:      "You extract people.",
		User:        "Ada Lovelace, mathematician.",
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if result.Content != `{"name": "Ada Lovelace"}` {
		t.Errorf("Content = %q", result.Content)
	}
	if result.PromptTokens != 37 || result.CompletionTokens != 21 {
		t.Errorf("tokens = %d/%d, want 37/21", result.PromptTokens, result.CompletionTokens)
	}

	if gotBody["model"] != "gpt-3.5-turbo" {
		t.Errorf("model = %v, want gpt-3.5-turbo", gotBody["model"])
	}
	if gotBody["temperature"] != 0.1 {
		t.Errorf("temperature = %v, want 0.1", gotBody["temperature"])
	}
	if gotBody["max_tokens"] != float64(500) {
		t.Errorf("max_tokens = %v, want 500", gotBody["max_tokens"])
	}
	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v, want system+user pair", gotBody["messages"])
	}
	if _, present := gotBody["response_format"]; present {
		t.Error("response_format sent without JSONMode")
	}
}

func TestClient_Complete_JSONMode(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, completionResponse(`{"ok": true}`, 10, 5))
	}))
	defer ts.Close()

	client := newTestGateway(t, ts.URL)
	_, err := client.Complete(context.Background(), ports.ChatRequest{
		Operation:   "enrich_node",
		System:      "sys",
		User:        "user",
		Temperature: 0.4,
		MaxTokens:   600,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	format, ok := gotBody["response_format"].(map[string]any)
	if !ok {
		t.Fatalf("response_format = %v, want object", gotBody["response_format"])
	}
	if format["type"] != "json_object" {
		t.Errorf("response_format.type = %v, want json_object", format["type"])
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"id": "chatcmpl-empty", "object": "chat.completion",
			"created": 1700000000, "model": "gpt-3.5-turbo",
			"choices": []any{},
		})
	}))
	defer ts.Close()

	client := newTestGateway(t, ts.URL)
	_, err := client.Complete(context.Background(), ports.ChatRequest{User: "hi", MaxTokens: 10})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Complete() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Complete_GatewayDown(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(t, w, map[string]any{"error": map[string]any{
			"message": "backend overloaded", "type": "server_error",
		}})
	}))
	defer ts.Close()

	client := newTestGateway(t, ts.URL)
	_, err := client.Complete(context.Background(), ports.ChatRequest{User: "hi", MaxTokens: 10})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Complete() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Complete_RejectedKey(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(t, w, map[string]any{"error": map[string]any{
			"message": "invalid api key", "type": "invalid_request_error",
		}})
	}))
	defer ts.Close()

	client := newTestGateway(t, ts.URL)
	_, err := client.Complete(context.Background(), ports.ChatRequest{User: "hi", MaxTokens: 10})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Complete() error = %v, want ErrForbidden", err)
	}
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := newTestGateway(t, "http://localhost")
	if got := client.Name(); got != "llm-gateway" {
		t.Errorf("Name() = %q, want %q", got, "llm-gateway")
	}
}

func TestTranslateError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "nil", err: nil, sentinel: nil},
		{name: "not found", err: &openai.Error{StatusCode: http.StatusNotFound, Message: "no such route"}, sentinel: domain.ErrNotFound},
		{name: "bad request", err: &openai.Error{StatusCode: http.StatusBadRequest, Message: "bad payload"}, sentinel: domain.ErrValidation},
		{name: "unprocessable", err: &openai.Error{StatusCode: http.StatusUnprocessableEntity}, sentinel: domain.ErrValidation},
		{name: "unauthorized", err: &openai.Error{StatusCode: http.StatusUnauthorized}, sentinel: domain.ErrForbidden},
		{name: "forbidden", err: &openai.Error{StatusCode: http.StatusForbidden}, sentinel: domain.ErrForbidden},
		{name: "rate limited", err: &openai.Error{StatusCode: http.StatusTooManyRequests}, sentinel: domain.ErrUnavailable},
		{name: "server error", err: &openai.Error{StatusCode: http.StatusBadGateway}, sentinel: domain.ErrUnavailable},
		{name: "breaker open", err: gobreaker.ErrOpenState, sentinel: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateError(tt.err)
			if tt.sentinel == nil {
				if got != nil {
					t.Errorf("translateError() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.sentinel) {
				t.Errorf("translateError() = %v, want %v", got, tt.sentinel)
			}
		})
	}

	if got := translateError(plain); !errors.Is(got, plain) {
		t.Errorf("translateError(plain) = %v, want passthrough", got)
	}
}
