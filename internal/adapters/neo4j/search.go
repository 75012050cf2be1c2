package neo4j

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// --- Query operations ---

// NodesByLabel returns nodes of a label matching the given equality filters.
// Filter keys must be properties the schema declares; a non-positive limit
// falls back to the default of 100.
func (r *Repository) NodesByLabel(ctx context.Context, label string, filters map[string]any, limit int) ([]graph.Node, error) {
	schema, ok := r.registry.Lookup(label)
	if !ok {
		return nil, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}
	if err := validateFilterKeys(schema, filters); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLabelLimit
	}

	cypher, params := nodesByLabelCypher(label, filters)
	params["limit"] = limit

	records, err := r.execute(ctx, neo4j.AccessModeRead, "nodes_by_label", label, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s nodes: %w", label, err)
	}
	return nodesFromRecords(records, "n")
}

// NodesByText searches name, description, and title properties with a
// case-insensitive containment match, scored by which property matched.
// Empty labels searches across all labels. A non-positive limit falls back
// to the default of 50.
func (r *Repository) NodesByText(ctx context.Context, text string, labels []string, limit int) ([]graph.TextMatch, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: search text must not be empty", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultTextLimit
	}
	if labels == nil {
		labels = []string{}
	}

	params := map[string]any{
		"pattern": textPattern(text),
		"labels":  labels,
		"limit":   limit,
	}
	records, err := r.execute(ctx, neo4j.AccessModeRead, "nodes_by_text", "", nodesByTextCypher, params)
	if err != nil {
		return nil, fmt.Errorf("searching nodes: %w", err)
	}

	matches := make([]graph.TextMatch, 0, len(records))
	for _, record := range records {
		node, err := nodeFromRecord(record, "n")
		if err != nil {
			return nil, err
		}
		matches = append(matches, graph.TextMatch{Node: *node, Relevance: intColumn(record, "relevance")})
	}
	return matches, nil
}

// ShortestPath returns the shortest path between two nodes up to maxDepth
// hops (default 6), optionally restricted to the given relationship types.
// Returns [domain.ErrNotFound] if no path exists.
func (r *Repository) ShortestPath(ctx context.Context, fromUID, toUID string, maxDepth int, relTypes []string) (*graph.Path, error) {
	for _, relType := range relTypes {
		if !graph.IsRelationshipType(relType) {
			return nil, fmt.Errorf("%w: invalid relationship type %q", domain.ErrValidation, relType)
		}
	}
	if maxDepth <= 0 {
		maxDepth = defaultPathDepth
	}

	params := map[string]any{"from_uid": fromUID, "to_uid": toUID}
	records, err := r.execute(ctx, neo4j.AccessModeRead, "shortest_path", "", shortestPathCypher(maxDepth, relTypes), params)
	if err != nil {
		return nil, fmt.Errorf("finding shortest path: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("path between %s and %s: %w", fromUID, toUID, domain.ErrNotFound)
	}
	return pathFromRecord(records[0], "p")
}

// Neighbors returns nodes reachable from uid within depth hops (clamped to
// 1..5) in the given direction, each carrying its shortest distance from the
// source.
func (r *Repository) Neighbors(ctx context.Context, uid string, depth int, direction graph.Direction) ([]graph.Neighbor, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: invalid direction %q", domain.ErrValidation, direction)
	}
	depth = clampDepth(depth)

	records, err := r.execute(ctx, neo4j.AccessModeRead, "neighbors", "", neighborsCypher(depth, direction), map[string]any{"uid": uid})
	if err != nil {
		return nil, fmt.Errorf("fetching neighbors of %s: %w", uid, err)
	}

	neighbors := make([]graph.Neighbor, 0, len(records))
	for _, record := range records {
		node, err := nodeFromRecord(record, "m")
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, graph.Neighbor{Node: *node, Distance: int(intColumn(record, "distance"))})
	}
	return neighbors, nil
}

// NodeStatistics returns incoming/outgoing relationship counts and the
// distinct relationship types touching the node. Returns
// [domain.ErrNotFound] if the node does not exist.
func (r *Repository) NodeStatistics(ctx context.Context, uid string) (*graph.NodeStatistics, error) {
	records, err := r.execute(ctx, neo4j.AccessModeRead, "node_statistics", "", nodeStatisticsCypher, map[string]any{"uid": uid})
	if err != nil {
		return nil, fmt.Errorf("fetching statistics for %s: %w", uid, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("node %s: %w", uid, domain.ErrNotFound)
	}
	return statisticsFromRecord(records[0])
}

// AggregateByRelationship aggregates the relationship count of relType per
// node of the given label, ordered by count descending and capped at 100
// rows. The op must be one of the whitelisted aggregations; all of them
// reduce to a per-node relationship count today.
func (r *Repository) AggregateByRelationship(ctx context.Context, label, relType string, op graph.AggregateOp) ([]graph.AggregateRow, error) {
	if !r.registry.ValidLabel(label) {
		return nil, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}
	if !graph.IsRelationshipType(relType) {
		return nil, fmt.Errorf("%w: invalid relationship type %q", domain.ErrValidation, relType)
	}
	if !op.IsValid() {
		return nil, fmt.Errorf("%w: unsupported aggregation %q", domain.ErrValidation, op)
	}

	records, err := r.execute(ctx, neo4j.AccessModeRead, "aggregate", label, aggregateCypher(label, relType), map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("aggregating %s by %s: %w", label, relType, err)
	}
	return aggregateRowsFromRecords(records), nil
}

// CountByLabel returns the number of nodes carrying the given label.
func (r *Repository) CountByLabel(ctx context.Context, label string) (int64, error) {
	if !r.registry.ValidLabel(label) {
		return 0, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}

	records, err := r.execute(ctx, neo4j.AccessModeRead, "count_by_label", label, countByLabelCypher(label), map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("counting %s nodes: %w", label, err)
	}
	if len(records) == 0 {
		return 0, nil
	}
	return intColumn(records[0], "total"), nil
}

// Run executes caller-supplied Cypher in a read session and returns every
// record with column order preserved. Values are flattened to plain Go types
// before they leave the adapter.
func (r *Repository) Run(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	if strings.TrimSpace(cypher) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrValidation)
	}
	if params == nil {
		params = map[string]any{}
	}

	records, err := r.execute(ctx, neo4j.AccessModeRead, "run", "", cypher, params)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}

	out := make([]graph.Record, 0, len(records))
	for _, record := range records {
		out = append(out, genericRecord(record))
	}
	return out, nil
}

// clampDepth bounds traversal depth to 1..5 hops.
func clampDepth(depth int) int {
	if depth < minTraversalDepth {
		return minTraversalDepth
	}
	if depth > maxTraversalDepth {
		return maxTraversalDepth
	}
	return depth
}

// validateFilterKeys rejects filter properties the schema does not declare.
// Filter keys are interpolated into query text, so unknown keys never reach
// Cypher.
func validateFilterKeys(schema graph.Schema, filters map[string]any) error {
	if len(filters) == 0 {
		return nil
	}

	declared := make(map[string]struct{}, len(schema.Properties))
	for _, p := range schema.Properties {
		declared[p.Name] = struct{}{}
	}

	fields := make(map[string]string)
	for key := range filters {
		if _, ok := declared[key]; !ok {
			fields[key] = fmt.Sprintf("not a property of %s", schema.Label)
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
