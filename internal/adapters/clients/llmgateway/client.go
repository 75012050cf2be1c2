// Package llmgateway is the outbound adapter for the OpenAI-compatible
// chat completions gateway used by assisted node creation. Requests go
// through the openai-go SDK but ride the shared [httpclient.Client]
// transport, so every gateway call inherits the retry, circuit breaker,
// rate limiting, and tracing pipeline.
package llmgateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/config"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ChatClient = (*Client)(nil)

// Client implements [ports.ChatClient] against an OpenAI-compatible chat
// completions endpoint. Gateway and SDK errors are mapped to domain errors
// (ErrUnavailable, ErrForbidden, etc.) by [translateError], and token usage
// is recorded per operation when metrics are provided.
type Client struct {
	api       openai.Client
	transport *httpclient.Client
	model     string
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// doer adapts [httpclient.Client] to the transport interface the SDK
// accepts, threading each request's context back into the ctx-first Do.
type doer struct {
	client *httpclient.Client
}

// Do executes the request through the transport pipeline. When retries
// exhaust on a retryable status the transport returns both the final
// response and an error; the SDK expects the plain http.Client contract,
// so the response wins and the status surfaces through the SDK's own
// error parsing.
func (d *doer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.client.Do(req.Context(), req)
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// New creates a Client that sends chat completions to cfg.BaseURL through
// the given transport. SDK-level retries are disabled; the transport
// already retries with backoff and jitter.
func New(cfg *config.LLMConfig, transport *httpclient.Client, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	api := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(&doer{client: transport}),
		option.WithMaxRetries(0),
	)

	return &Client{
		api:       api,
		transport: transport,
		model:     cfg.Model,
		metrics:   metrics,
		logger:    logger,
	}
}

// Complete sends one system+user exchange and returns the completion text
// with token counts. JSONMode asks the gateway to emit a single JSON
// object. Returns [domain.ErrUnavailable] for gateway outages, 5xx
// responses, and an open circuit breaker.
func (c *Client) Complete(ctx context.Context, req ports.ChatRequest) (*ports.ChatResult, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
		// The gateway fronts backends that only accept the legacy
		// max_tokens field.
		MaxTokens: openai.Int(req.MaxTokens),
	}
	if req.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		err = translateError(err)
		c.logger.ErrorContext(ctx, "chat completion failed",
			slog.String("operation", req.Operation),
			slog.String("model", c.model),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("gateway returned no choices: %w", domain.ErrUnavailable)
	}

	c.recordTokens(ctx, req.Operation, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)

	return &ports.ChatResult{
		Content:          completion.Choices[0].Message.Content,
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
	}, nil
}

// recordTokens records prompt and completion token counts for the
// operation. Safe to call with nil metrics.
func (c *Client) recordTokens(ctx context.Context, operation string, prompt, completion int64) {
	if c.metrics == nil {
		return
	}

	c.metrics.LLMTokensTotal.Add(ctx, prompt, metric.WithAttributes(
		telemetry.AttrLLMOperation.String(operation),
		telemetry.AttrTokenKind.String("prompt"),
	))
	c.metrics.LLMTokensTotal.Add(ctx, completion, metric.WithAttributes(
		telemetry.AttrLLMOperation.String(operation),
		telemetry.AttrTokenKind.String("completion"),
	))
}
