package ports

import (
	"context"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// GraphRepository defines the outbound port for graph persistence.
// Implemented by the Neo4j adapter; called by the application layer.
// Labels and relationship types are validated against the schema registry
// before they reach Cypher; property values always travel as parameters.
type GraphRepository interface {
	// UpsertNode merges a node by uid under the given label and returns the
	// stored node. An empty uid mints a new one. created_at is set on first
	// write, updated_at on every write.
	// Returns domain.ErrValidation if the label is not registered.
	UpsertNode(ctx context.Context, label, uid string, props map[string]any) (*graph.Node, error)

	// DeleteNode detaches and deletes a node by uid.
	// Returns domain.ErrNotFound if no node matched.
	DeleteNode(ctx context.Context, label, uid string) error

	// GetNode returns a single node by uid. An empty label matches a node of
	// any registered label.
	// Returns domain.ErrNotFound if the node does not exist.
	GetNode(ctx context.Context, label, uid string) (*graph.Node, error)

	// CreateRelationship merges a typed relationship between two existing
	// nodes and sets its properties.
	// Returns domain.ErrNotFound if either endpoint does not exist and
	// domain.ErrValidation if the type is not a valid relationship type.
	CreateRelationship(ctx context.Context, fromUID, toUID, relType string, props map[string]any) (*graph.Relationship, error)

	// DeleteRelationship removes a typed relationship between two nodes.
	// Returns domain.ErrNotFound if the relationship does not exist.
	DeleteRelationship(ctx context.Context, fromUID, toUID, relType string) error

	// NodesByLabel returns nodes of a label matching the given equality
	// filters. A non-positive limit falls back to the default of 100.
	NodesByLabel(ctx context.Context, label string, filters map[string]any, limit int) ([]graph.Node, error)

	// NodesByText searches name, description, and title properties with a
	// case-insensitive substring match, scored by which property matched.
	// Empty labels searches all registered labels. A non-positive limit
	// falls back to the default of 50.
	NodesByText(ctx context.Context, text string, labels []string, limit int) ([]graph.TextMatch, error)

	// ShortestPath returns the shortest path between two nodes up to
	// maxDepth hops (default 6), optionally restricted to the given
	// relationship types.
	// Returns domain.ErrNotFound if no path exists.
	ShortestPath(ctx context.Context, fromUID, toUID string, maxDepth int, relTypes []string) (*graph.Path, error)

	// Neighbors returns nodes reachable from uid within depth hops (clamped
	// to 1..5) in the given direction, each carrying its distance from the
	// source.
	Neighbors(ctx context.Context, uid string, depth int, direction graph.Direction) ([]graph.Neighbor, error)

	// NodeStatistics returns incoming/outgoing relationship counts and the
	// distinct relationship types touching the node.
	// Returns domain.ErrNotFound if the node does not exist.
	NodeStatistics(ctx context.Context, uid string) (*graph.NodeStatistics, error)

	// AggregateByRelationship aggregates the relationship count of relType
	// per node of the given label, capped at 100 rows.
	AggregateByRelationship(ctx context.Context, label, relType string, op graph.AggregateOp) ([]graph.AggregateRow, error)

	// CountByLabel returns the number of nodes carrying the given label.
	CountByLabel(ctx context.Context, label string) (int64, error)

	// Run executes a raw Cypher query in a read session and returns the
	// records with their keys preserved.
	Run(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error)
}
