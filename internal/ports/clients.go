package ports

import "context"

// ChatRequest is a single chat completion exchange with the LLM gateway.
// Sampling parameters are fixed per operation by the application layer.
// Operation names the calling operation for token accounting.
type ChatRequest struct {
	Operation   string
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
	JSONMode    bool
}

// ChatResult carries the completion text and token accounting from the
// gateway response.
type ChatResult struct {
	Content          string
	PromptTokens     int64
	CompletionTokens int64
}

// ChatClient defines the client port for the LLM gateway.
// Implemented by the gateway adapter; called by the application layer.
type ChatClient interface {
	// Complete sends one system+user exchange and returns the completion.
	// Returns domain.ErrUnavailable for gateway outages and 5xx responses,
	// domain.ErrForbidden for rejected credentials.
	Complete(ctx context.Context, req ChatRequest) (*ChatResult, error)
}

// ExtractionCache stores LLM extraction payloads keyed by a prompt digest so
// repeated identical requests skip the gateway. A cache miss is not an error.
type ExtractionCache interface {
	// Get returns the cached payload for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the payload under key with the adapter's configured TTL.
	Set(ctx context.Context, key, value string) error
}
