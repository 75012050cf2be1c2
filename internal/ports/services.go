package ports

import (
	"context"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// PersonService defines the service port for Person node operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Node services follow the upsert/delete convention: exactly two mutation
// operations per domain object.
type PersonService interface {
	// Upsert validates the person and merges it by UID, returning the
	// stored entity with server-assigned fields (UID, timestamps).
	// Returns domain.ErrValidation if the person fails validation.
	Upsert(ctx context.Context, p *graph.Person) (*graph.Person, error)

	// Delete removes a person and its relationships by UID.
	// Returns domain.ErrNotFound if the person does not exist.
	Delete(ctx context.Context, uid string) error
}

// OrganizationService defines the service port for Organization node operations.
type OrganizationService interface {
	Upsert(ctx context.Context, o *graph.Organization) (*graph.Organization, error)
	Delete(ctx context.Context, uid string) error
}

// LocationService defines the service port for Location node operations.
type LocationService interface {
	Upsert(ctx context.Context, l *graph.Location) (*graph.Location, error)
	Delete(ctx context.Context, uid string) error
}

// ProjectService defines the service port for Project node operations.
type ProjectService interface {
	Upsert(ctx context.Context, p *graph.Project) (*graph.Project, error)
	Delete(ctx context.Context, uid string) error
}

// TagService defines the service port for Tag node operations.
type TagService interface {
	Upsert(ctx context.Context, t *graph.Tag) (*graph.Tag, error)
	Delete(ctx context.Context, uid string) error
}

// RelationshipService defines the service port for typed relationships
// between existing nodes.
type RelationshipService interface {
	// Connect validates the relationship type and its typed properties
	// (unmodeled types pass through) and merges the relationship.
	// Returns domain.ErrValidation for bad types or properties and
	// domain.ErrNotFound if either endpoint is missing.
	Connect(ctx context.Context, rel *graph.Relationship) (*graph.Relationship, error)

	// Disconnect removes a typed relationship between two nodes.
	// Returns domain.ErrNotFound if the relationship does not exist.
	Disconnect(ctx context.Context, fromUID, toUID, relType string) error
}

// GraphOverview summarizes the graph: node counts per registered label and
// the overall total.
type GraphOverview struct {
	Labels []graph.LabelCount
	Total  int64
}

// SearchService defines the service port for graph search and traversal.
type SearchService interface {
	// NodesByLabel returns nodes of a registered label matching the given
	// equality filters.
	// Returns domain.ErrValidation if the label is not registered.
	NodesByLabel(ctx context.Context, label string, filters map[string]any, limit int) ([]graph.Node, error)

	// NodesByText searches across name, description, and title properties,
	// ordered by relevance.
	NodesByText(ctx context.Context, text string, labels []string, limit int) ([]graph.TextMatch, error)

	// ShortestPath finds the shortest path between two nodes.
	// Returns domain.ErrNotFound if no path exists.
	ShortestPath(ctx context.Context, fromUID, toUID string, maxDepth int, relTypes []string) (*graph.Path, error)

	// Neighbors returns nodes within depth hops of uid, grouped by distance
	// in the HTTP representation.
	Neighbors(ctx context.Context, uid string, depth int, direction graph.Direction) ([]graph.Neighbor, error)

	// NodeStatistics returns relationship counts and distinct types for a node.
	NodeStatistics(ctx context.Context, uid string) (*graph.NodeStatistics, error)

	// Aggregate runs a whitelisted aggregate (count/avg/sum/min/max) of
	// relType relationships per node of the given label.
	// Returns domain.ErrValidation for unknown labels, types, or operations.
	Aggregate(ctx context.Context, label, relType string, op graph.AggregateOp) ([]graph.AggregateRow, error)

	// ExecuteQuery runs raw Cypher in a read session. The caller owns query
	// correctness; results preserve record keys.
	ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error)

	// Overview fans out per-label counts across all registered labels.
	Overview(ctx context.Context) (*GraphOverview, error)
}

// DiscoveryService exposes the registered node schemas (model discovery).
// Reads are served from the in-memory registry and never block.
type DiscoveryService interface {
	// Models returns all registered schemas sorted by label.
	Models() []graph.Schema

	// Model returns a single schema by label.
	// Returns domain.ErrNotFound if the label is not registered.
	Model(label string) (*graph.Schema, error)
}

// PersonExtraction is the outcome of LLM-assisted person creation: the
// stored person, the Tag nodes attached from extracted interests and skills,
// and any additional extracted context that has no column of its own.
type PersonExtraction struct {
	Person     *graph.Person
	Tags       []graph.Tag
	Additional map[string]any
}

// OrganizationExtraction is the outcome of LLM-assisted organization creation.
type OrganizationExtraction struct {
	Organization *graph.Organization
	Additional   map[string]any
}

// RelationshipSuggestion is one LLM-proposed relationship between the source
// node and a candidate node.
type RelationshipSuggestion struct {
	Type       string
	TargetUID  string
	Direction  string
	Confidence float64
	Properties map[string]any
	Reasoning  string
}

// NodeEnrichment carries LLM-suggested additions for an existing node.
// Suggestions are advisory and never persisted by the service.
type NodeEnrichment struct {
	SuggestedProperties map[string]any
	SuggestedTags       []string
	Confidence          float64
	Reasoning           string
}

// LLMService defines the service port for LLM-assisted graph operations.
// When no gateway is configured every operation returns domain.ErrUnavailable.
type LLMService interface {
	// CreatePersonFromDescription extracts a person from free text, stores
	// it, and attaches extracted interests and skills as tags.
	// Returns domain.ErrValidation if the gateway response cannot be used.
	CreatePersonFromDescription(ctx context.Context, description, createdBy string) (*PersonExtraction, error)

	// CreateOrganizationFromDescription extracts and stores an organization
	// from free text.
	CreateOrganizationFromDescription(ctx context.Context, description, createdBy string) (*OrganizationExtraction, error)

	// SuggestRelationships proposes relationships between the node and
	// candidate nodes gathered from the graph. Suggestions with unknown
	// types or confidence outside [0,1] are dropped.
	// Returns domain.ErrNotFound if the source node does not exist.
	SuggestRelationships(ctx context.Context, uid string) ([]RelationshipSuggestion, error)

	// EnrichNode returns suggested properties and tags for an existing node
	// without persisting them.
	// Returns domain.ErrNotFound if the node does not exist.
	EnrichNode(ctx context.Context, uid string) (*NodeEnrichment, error)

	// Available reports whether an LLM gateway is configured.
	Available() bool
}
