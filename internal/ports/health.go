package ports

import "context"

// HealthChecker is the self-reporting side of readiness: the Neo4j
// repository, the Redis cache, and the LLM gateway client each expose one.
type HealthChecker interface {
	// Name identifies the component in readiness responses, e.g. "neo4j".
	Name() string

	// HealthCheck returns nil when the component can serve traffic. It
	// honors the context's deadline; probes carry the readiness timeout.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and drives them on each
// readiness probe.
type HealthRegistry interface {
	// Register adds a checker. Registration happens during wiring, before
	// the server accepts traffic.
	Register(checker HealthChecker)

	// CheckAll probes every registered checker and returns the results
	// keyed by name; nil values mean healthy.
	CheckAll(ctx context.Context) map[string]error
}
