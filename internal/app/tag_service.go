package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that TagService implements ports.TagService.
var _ ports.TagService = (*TagService)(nil)

// TagService implements ports.TagService on top of the GraphRepository port.
type TagService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewTagService creates a TagService. A nil logger is replaced with a no-op
// logger.
func NewTagService(repo ports.GraphRepository, logger *slog.Logger) *TagService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TagService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates and merges a tag by UID, returning the stored entity.
func (s *TagService) Upsert(ctx context.Context, t *graph.Tag) (*graph.Tag, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: tag is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "upserting tag", slog.String("name", t.Name))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelTag, t.UID, t.Properties())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert tag",
			slog.String("operation", "UpsertTag"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.TagFromNode(*node)
	return &stored, nil
}

// Delete detaches and deletes a tag by UID. Nodes that carried the tag keep
// their other relationships.
func (s *TagService) Delete(ctx context.Context, uid string) error {
	s.logger.InfoContext(ctx, "deleting tag", slog.String("uid", uid))

	if err := s.repo.DeleteNode(ctx, graph.LabelTag, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete tag",
			slog.String("operation", "DeleteTag"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
