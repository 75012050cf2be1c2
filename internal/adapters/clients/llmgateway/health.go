package llmgateway

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "llm-gateway" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *Client) Name() string {
	return "llm-gateway"
}

// HealthCheck reports gateway availability from the transport's circuit
// breaker state -- no network call is made. An open breaker surfaces in
// readiness alongside the graph store check.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.transport.HealthCheck(ctx)
}
