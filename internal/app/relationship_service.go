package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that RelationshipService implements ports.RelationshipService.
var _ ports.RelationshipService = (*RelationshipService)(nil)

// RelationshipService implements ports.RelationshipService. It validates
// relationship types and their typed property models before anything reaches
// the graph store; types without a property model pass through with their
// properties unchanged.
type RelationshipService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewRelationshipService creates a RelationshipService. A nil logger is
// replaced with a no-op logger.
func NewRelationshipService(repo ports.GraphRepository, logger *slog.Logger) *RelationshipService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RelationshipService{
		repo:   repo,
		logger: logger,
	}
}

// Connect validates and merges a typed relationship between two existing
// nodes, returning the stored relationship with its normalized properties.
func (s *RelationshipService) Connect(ctx context.Context, rel *graph.Relationship) (*graph.Relationship, error) {
	if rel == nil {
		return nil, fmt.Errorf("%w: relationship is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "connecting nodes",
		slog.String("type", rel.Type),
		slog.String("from_uid", rel.FromUID),
		slog.String("to_uid", rel.ToUID),
	)

	if err := validateEndpoints(rel.FromUID, rel.ToUID, rel.Type); err != nil {
		return nil, err
	}

	props, err := graph.ValidateRelationshipProperties(rel.Type, rel.Properties)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateRelationship(ctx, rel.FromUID, rel.ToUID, rel.Type, props)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create relationship",
			slog.String("operation", "Connect"),
			slog.String("type", rel.Type),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Disconnect removes a typed relationship between two nodes.
func (s *RelationshipService) Disconnect(ctx context.Context, fromUID, toUID, relType string) error {
	s.logger.InfoContext(ctx, "disconnecting nodes",
		slog.String("type", relType),
		slog.String("from_uid", fromUID),
		slog.String("to_uid", toUID),
	)

	if err := validateEndpoints(fromUID, toUID, relType); err != nil {
		return err
	}

	if err := s.repo.DeleteRelationship(ctx, fromUID, toUID, relType); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete relationship",
			slog.String("operation", "Disconnect"),
			slog.String("type", relType),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// validateEndpoints checks the structural parts shared by Connect and
// Disconnect: both endpoint UIDs and a well-formed relationship type.
func validateEndpoints(fromUID, toUID, relType string) error {
	fields := make(map[string]string)

	if strings.TrimSpace(fromUID) == "" {
		fields["from_uid"] = domain.MsgRequired
	}
	if strings.TrimSpace(toUID) == "" {
		fields["to_uid"] = domain.MsgRequired
	}
	if !graph.IsRelationshipType(relType) {
		fields["type"] = "must be an upper-case identifier like WORKS_FOR"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
