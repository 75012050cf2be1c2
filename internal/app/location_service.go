package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that LocationService implements ports.LocationService.
var _ ports.LocationService = (*LocationService)(nil)

// LocationService implements ports.LocationService on top of the
// GraphRepository port.
type LocationService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewLocationService creates a LocationService. A nil logger is replaced
// with a no-op logger.
func NewLocationService(repo ports.GraphRepository, logger *slog.Logger) *LocationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LocationService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates and merges a location by UID, returning the stored entity.
func (s *LocationService) Upsert(ctx context.Context, l *graph.Location) (*graph.Location, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "upserting location", slog.String("name", l.Name))

	if err := l.Validate(); err != nil {
		return nil, err
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelLocation, l.UID, l.Properties())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert location",
			slog.String("operation", "UpsertLocation"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.LocationFromNode(*node)
	return &stored, nil
}

// Delete detaches and deletes a location by UID.
func (s *LocationService) Delete(ctx context.Context, uid string) error {
	s.logger.InfoContext(ctx, "deleting location", slog.String("uid", uid))

	if err := s.repo.DeleteNode(ctx, graph.LabelLocation, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete location",
			slog.String("operation", "DeleteLocation"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
