package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that OrganizationService implements ports.OrganizationService.
var _ ports.OrganizationService = (*OrganizationService)(nil)

// OrganizationService implements ports.OrganizationService on top of the
// GraphRepository port.
type OrganizationService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewOrganizationService creates an OrganizationService. A nil logger is
// replaced with a no-op logger.
func NewOrganizationService(repo ports.GraphRepository, logger *slog.Logger) *OrganizationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrganizationService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates and merges an organization by UID, returning the stored
// entity.
func (s *OrganizationService) Upsert(ctx context.Context, o *graph.Organization) (*graph.Organization, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: organization is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "upserting organization", slog.String("name", o.Name))

	if err := o.Validate(); err != nil {
		return nil, err
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelOrganization, o.UID, o.Properties())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert organization",
			slog.String("operation", "UpsertOrganization"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.OrganizationFromNode(*node)
	return &stored, nil
}

// Delete detaches and deletes an organization by UID.
func (s *OrganizationService) Delete(ctx context.Context, uid string) error {
	s.logger.InfoContext(ctx, "deleting organization", slog.String("uid", uid))

	if err := s.repo.DeleteNode(ctx, graph.LabelOrganization, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete organization",
			slog.String("operation", "DeleteOrganization"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
