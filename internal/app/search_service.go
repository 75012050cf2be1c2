package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/app/fanout"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// overviewWorkers bounds the per-label count queries running concurrently
// during Overview.
const overviewWorkers = 4

// Compile-time check that SearchService implements ports.SearchService.
var _ ports.SearchService = (*SearchService)(nil)

// SearchService implements ports.SearchService. Reads forward to the
// repository; the registry supplies the label set for overview fan-out and
// rejects unregistered labels before they reach the store.
type SearchService struct {
	repo     ports.GraphRepository
	registry *graph.Registry
	logger   *slog.Logger
}

// NewSearchService creates a SearchService. A nil logger is replaced with a
// no-op logger.
func NewSearchService(repo ports.GraphRepository, registry *graph.Registry, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SearchService{
		repo:     repo,
		registry: registry,
		logger:   logger,
	}
}

// NodesByLabel returns nodes of a registered label matching the given
// equality filters.
func (s *SearchService) NodesByLabel(ctx context.Context, label string, filters map[string]any, limit int) ([]graph.Node, error) {
	s.logger.InfoContext(ctx, "searching nodes by label",
		slog.String("label", label),
		slog.Int("filters", len(filters)),
	)

	if !s.registry.ValidLabel(label) {
		return nil, fmt.Errorf("%w: unknown node label %q", domain.ErrValidation, label)
	}

	nodes, err := s.repo.NodesByLabel(ctx, label, filters, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search nodes by label",
			slog.String("operation", "NodesByLabel"),
			slog.String("label", label),
			slog.Any("error", err),
		)
		return nil, err
	}

	return nodes, nil
}

// NodesByText searches name, description, and title properties across the
// given labels (all registered labels when empty), ordered by relevance.
func (s *SearchService) NodesByText(ctx context.Context, text string, labels []string, limit int) ([]graph.TextMatch, error) {
	s.logger.InfoContext(ctx, "searching nodes by text", slog.Int("labels", len(labels)))

	matches, err := s.repo.NodesByText(ctx, text, labels, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search nodes by text",
			slog.String("operation", "NodesByText"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return matches, nil
}

// ShortestPath finds the shortest path between two nodes, optionally
// restricted to the given relationship types.
func (s *SearchService) ShortestPath(ctx context.Context, fromUID, toUID string, maxDepth int, relTypes []string) (*graph.Path, error) {
	s.logger.InfoContext(ctx, "finding shortest path",
		slog.String("from_uid", fromUID),
		slog.String("to_uid", toUID),
		slog.Int("max_depth", maxDepth),
	)

	path, err := s.repo.ShortestPath(ctx, fromUID, toUID, maxDepth, relTypes)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find shortest path",
			slog.String("operation", "ShortestPath"),
			slog.String("from_uid", fromUID),
			slog.String("to_uid", toUID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return path, nil
}

// Neighbors returns nodes within depth hops of uid in the given direction,
// each carrying its distance from the source.
func (s *SearchService) Neighbors(ctx context.Context, uid string, depth int, direction graph.Direction) ([]graph.Neighbor, error) {
	s.logger.InfoContext(ctx, "collecting neighbors",
		slog.String("uid", uid),
		slog.Int("depth", depth),
		slog.String("direction", direction.String()),
	)

	neighbors, err := s.repo.Neighbors(ctx, uid, depth, direction)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to collect neighbors",
			slog.String("operation", "Neighbors"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return nil, err
	}

	return neighbors, nil
}

// NodeStatistics returns relationship counts and distinct types for a node.
func (s *SearchService) NodeStatistics(ctx context.Context, uid string) (*graph.NodeStatistics, error) {
	s.logger.InfoContext(ctx, "collecting node statistics", slog.String("uid", uid))

	stats, err := s.repo.NodeStatistics(ctx, uid)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to collect node statistics",
			slog.String("operation", "NodeStatistics"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stats, nil
}

// Aggregate runs a whitelisted aggregate of relType relationships per node
// of the given label. The operation whitelist is enforced before the query
// is attempted.
func (s *SearchService) Aggregate(ctx context.Context, label, relType string, op graph.AggregateOp) ([]graph.AggregateRow, error) {
	s.logger.InfoContext(ctx, "aggregating relationships",
		slog.String("label", label),
		slog.String("type", relType),
		slog.String("op", op.String()),
	)

	if !op.IsValid() {
		return nil, fmt.Errorf("%w: unsupported aggregation %q", domain.ErrValidation, op)
	}

	rows, err := s.repo.AggregateByRelationship(ctx, label, relType, op)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to aggregate relationships",
			slog.String("operation", "Aggregate"),
			slog.String("label", label),
			slog.String("type", relType),
			slog.Any("error", err),
		)
		return nil, err
	}

	return rows, nil
}

// ExecuteQuery runs raw Cypher in a read session. The caller owns query
// correctness; results preserve record keys.
func (s *SearchService) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	s.logger.InfoContext(ctx, "executing raw query", slog.Int("params", len(params)))

	records, err := s.repo.Run(ctx, cypher, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to execute raw query",
			slog.String("operation", "ExecuteQuery"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return records, nil
}

// Overview fans out per-label counts across all registered labels and sums
// the total. A single failing label count fails the overview.
func (s *SearchService) Overview(ctx context.Context) (*ports.GraphOverview, error) {
	s.logger.InfoContext(ctx, "building graph overview")

	labels := s.registry.Labels()
	results := fanout.Run(ctx, overviewWorkers, labels, func(ctx context.Context, label string) (int64, error) {
		return s.repo.CountByLabel(ctx, label)
	})

	overview := &ports.GraphOverview{
		Labels: make([]graph.LabelCount, 0, len(labels)),
	}
	for i, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to count label",
				slog.String("operation", "Overview"),
				slog.String("label", labels[i]),
				slog.Any("error", res.Err),
			)
			return nil, fmt.Errorf("counting %s nodes: %w", labels[i], res.Err)
		}
		overview.Labels = append(overview.Labels, graph.LabelCount{Label: labels[i], Count: res.Value})
		overview.Total += res.Value
	}

	return overview, nil
}
