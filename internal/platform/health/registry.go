// Package health tracks the liveness of the service's downstream
// dependencies. The Neo4j driver, the Redis cache, and the LLM gateway
// client each register a checker at startup; the readiness endpoint
// consults the registry on every probe.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry fans readiness probes out to every registered checker.
// Safe for concurrent registration and checking.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll probes every registered checker and returns results keyed by
// checker name; a nil value means healthy. Probes run in parallel so one
// slow dependency does not stretch the readiness check by the sum of all
// timeouts. When two checkers share a name, the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = c.HealthCheck(ctx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
