package neo4j

import (
	"context"
	"fmt"
)

// Name returns the identifier used when the repository is registered with a
// [ports.HealthRegistry].
func (r *Repository) Name() string {
	return "neo4j"
}

// HealthCheck verifies Bolt connectivity against the configured endpoint.
// Unlike downstream-API checkers, this one gates readiness: every operation
// the service exposes needs the graph store.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j: %w", err)
	}
	return nil
}
