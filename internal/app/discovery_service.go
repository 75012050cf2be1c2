package app

import (
	"fmt"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that DiscoveryService implements ports.DiscoveryService.
var _ ports.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService implements ports.DiscoveryService as the read side of the
// schema registry. Reads never block and need no context.
type DiscoveryService struct {
	registry *graph.Registry
}

// NewDiscoveryService creates a DiscoveryService over the given registry.
func NewDiscoveryService(registry *graph.Registry) *DiscoveryService {
	return &DiscoveryService{registry: registry}
}

// Models returns all registered schemas sorted by label.
func (s *DiscoveryService) Models() []graph.Schema {
	return s.registry.Schemas()
}

// Model returns the schema registered for label.
func (s *DiscoveryService) Model(label string) (*graph.Schema, error) {
	schema, ok := s.registry.Lookup(label)
	if !ok {
		return nil, fmt.Errorf("%w: no model registered for label %q", domain.ErrNotFound, label)
	}
	return &schema, nil
}
