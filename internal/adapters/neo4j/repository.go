// Package neo4j implements the graph persistence port over the Bolt
// protocol using the official v5 driver.
//
// Sessions are opened per call with the access mode the operation needs and
// closed before returning. Write queries MERGE on the uid key so repeated
// upserts converge on a single node. Labels and relationship types are
// checked against the schema registry (or the relationship-type alphabet)
// before they are interpolated into query text; property values always
// travel as query parameters.
package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/config"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time interface check.
var _ ports.GraphRepository = (*Repository)(nil)

// Repository is the Neo4j-backed implementation of [ports.GraphRepository].
// It owns the driver and its connection pool; callers must Close it on
// shutdown. Query latency and counts are recorded per operation when metrics
// are provided.
type Repository struct {
	driver   neo4j.DriverWithContext
	database string
	registry *graph.Registry
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New connects a Repository to the Bolt endpoint described by cfg.
// Credentials embedded in the URI userinfo are honored unless the explicit
// username/password fields override them. If metrics is nil, metric
// recording is skipped.
func New(cfg *config.Neo4jConfig, registry *graph.Registry, metrics *telemetry.Metrics, logger *slog.Logger) (*Repository, error) {
	target, err := cfg.BoltTarget()
	if err != nil {
		return nil, fmt.Errorf("resolving bolt target: %w", err)
	}

	driver, err := neo4j.NewDriverWithContext(
		target.URI,
		neo4j.BasicAuth(target.Username, target.Password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = cfg.MaxConnectionPoolSize
			c.SocketConnectTimeout = cfg.ConnectionTimeout
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	return &Repository{
		driver:   driver,
		database: cfg.Database,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Close releases the driver and its connection pool.
func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// --- Node operations ---

// UpsertNode merges a node by uid under the given label and returns the
// stored node. An empty uid mints a new v4 UUID. created_at is set on first
// write and updated_at on every write; both are store-maintained and
// stripped from the incoming property map.
func (r *Repository) UpsertNode(ctx context.Context, label, uid string, props map[string]any) (*graph.Node, error) {
	if !r.registry.ValidLabel(label) {
		return nil, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}
	if uid == "" {
		uid = uuid.New().String()
	}

	params := map[string]any{
		"uid":   uid,
		"props": writableProps(props),
		"now":   time.Now().UTC().Format(time.RFC3339),
	}
	records, err := r.execute(ctx, neo4j.AccessModeWrite, "upsert_node", label, upsertNodeCypher(label), params)
	if err != nil {
		return nil, fmt.Errorf("upserting %s node: %w", label, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("upserting %s node: merge returned no record", label)
	}
	return nodeFromRecord(records[0], "n")
}

// GetNode returns a single node by uid. An empty label matches a node of any
// label. Returns [domain.ErrNotFound] if the node does not exist.
func (r *Repository) GetNode(ctx context.Context, label, uid string) (*graph.Node, error) {
	if label != "" && !r.registry.ValidLabel(label) {
		return nil, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}

	records, err := r.execute(ctx, neo4j.AccessModeRead, "get_node", label, getNodeCypher(label), map[string]any{"uid": uid})
	if err != nil {
		return nil, fmt.Errorf("fetching node %s: %w", uid, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("node %s: %w", uid, domain.ErrNotFound)
	}
	return nodeFromRecord(records[0], "n")
}

// DeleteNode detaches and deletes a node by uid. Returns
// [domain.ErrNotFound] if no node matched.
func (r *Repository) DeleteNode(ctx context.Context, label, uid string) error {
	if !r.registry.ValidLabel(label) {
		return fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}

	records, err := r.execute(ctx, neo4j.AccessModeWrite, "delete_node", label, deleteNodeCypher(label), map[string]any{"uid": uid})
	if err != nil {
		return fmt.Errorf("deleting %s node: %w", label, err)
	}
	if deletedCount(records) == 0 {
		return fmt.Errorf("node %s: %w", uid, domain.ErrNotFound)
	}
	return nil
}

// --- Relationship operations ---

// CreateRelationship merges a typed relationship between two existing nodes.
// Properties are normalized through the relationship property model for the
// type, when one exists; created_by is passed through as supplied. Returns
// [domain.ErrNotFound] if either endpoint does not exist.
func (r *Repository) CreateRelationship(ctx context.Context, fromUID, toUID, relType string, props map[string]any) (*graph.Relationship, error) {
	if !graph.IsRelationshipType(relType) {
		return nil, fmt.Errorf("%w: invalid relationship type %q", domain.ErrValidation, relType)
	}
	normalized, err := graph.ValidateRelationshipProperties(relType, props)
	if err != nil {
		return nil, err
	}
	// Property models drop keys they do not declare; created_by is
	// store-level metadata and survives normalization.
	if v, ok := props["created_by"]; ok {
		normalized["created_by"] = v
	}

	params := map[string]any{
		"from_uid": fromUID,
		"to_uid":   toUID,
		"props":    writableProps(normalized),
		"now":      time.Now().UTC().Format(time.RFC3339),
	}
	records, err := r.execute(ctx, neo4j.AccessModeWrite, "create_relationship", "", createRelationshipCypher(relType), params)
	if err != nil {
		return nil, fmt.Errorf("creating %s relationship: %w", relType, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("relationship endpoints %s and %s: %w", fromUID, toUID, domain.ErrNotFound)
	}
	return relationshipFromRecord(records[0], fromUID, toUID)
}

// DeleteRelationship removes a typed relationship between two nodes. Returns
// [domain.ErrNotFound] if the relationship does not exist.
func (r *Repository) DeleteRelationship(ctx context.Context, fromUID, toUID, relType string) error {
	if !graph.IsRelationshipType(relType) {
		return fmt.Errorf("%w: invalid relationship type %q", domain.ErrValidation, relType)
	}

	params := map[string]any{"from_uid": fromUID, "to_uid": toUID}
	records, err := r.execute(ctx, neo4j.AccessModeWrite, "delete_relationship", "", deleteRelationshipCypher(relType), params)
	if err != nil {
		return fmt.Errorf("deleting %s relationship: %w", relType, err)
	}
	if deletedCount(records) == 0 {
		return fmt.Errorf("%s relationship between %s and %s: %w", relType, fromUID, toUID, domain.ErrNotFound)
	}
	return nil
}

// --- Execution ---

// execute runs one Cypher statement in a session of the given access mode,
// collects the full result, and records query telemetry. Driver and server
// errors are translated to domain errors before returning.
func (r *Repository) execute(ctx context.Context, mode neo4j.AccessMode, operation, label, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	start := time.Now()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: r.database})
	defer session.Close(ctx)

	var records []*neo4j.Record
	result, err := session.Run(ctx, cypher, params)
	if err == nil {
		records, err = result.Collect(ctx)
	}
	err = translateError(err)

	r.recordQuery(ctx, operation, label, start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "cypher query failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil, err
	}
	return records, nil
}

// recordQuery records per-operation query duration and count. Safe to call
// with nil metrics.
func (r *Repository) recordQuery(ctx context.Context, operation, label string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrNodeLabel.String(label),
		telemetry.AttrResult.String(result),
	)

	r.metrics.CypherQueryDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.CypherQueryTotal.Add(ctx, 1, attrs)
}

// writableProps copies props minus the store-maintained keys.
func writableProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch k {
		case "uid", "created_at", "updated_at":
			continue
		}
		out[k] = v
	}
	return out
}
