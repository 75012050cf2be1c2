package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the
// GraphRepository port.
type ProjectService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger is replaced with
// a no-op logger.
func NewProjectService(repo ports.GraphRepository, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates and merges a project by UID, returning the stored entity.
// A project with no status is stored with the default planning status.
func (s *ProjectService) Upsert(ctx context.Context, p *graph.Project) (*graph.Project, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: project is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "upserting project", slog.String("name", p.Name))

	if p.Status == "" {
		p.Status = graph.DefaultProjectStatus
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelProject, p.UID, p.Properties())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert project",
			slog.String("operation", "UpsertProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.ProjectFromNode(*node)
	return &stored, nil
}

// Delete detaches and deletes a project by UID.
func (s *ProjectService) Delete(ctx context.Context, uid string) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("uid", uid))

	if err := s.repo.DeleteNode(ctx, graph.LabelProject, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
