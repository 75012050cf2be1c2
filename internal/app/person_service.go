// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time check that PersonService implements ports.PersonService.
var _ ports.PersonService = (*PersonService)(nil)

// PersonService implements ports.PersonService by orchestrating Person node
// writes through the GraphRepository port. It handles validation and
// structured logging but contains no persistence logic.
type PersonService struct {
	repo   ports.GraphRepository
	logger *slog.Logger
}

// NewPersonService creates a PersonService. The repository port provides
// access to the graph store. A nil logger is replaced with a no-op logger.
func NewPersonService(repo ports.GraphRepository, logger *slog.Logger) *PersonService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PersonService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates and merges a person by UID, returning the stored entity
// with server-assigned fields (UID, timestamps). An empty UID creates a new
// person.
func (s *PersonService) Upsert(ctx context.Context, p *graph.Person) (*graph.Person, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: person is required", domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "upserting person", slog.String("name", p.Name))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelPerson, p.UID, p.Properties())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert person",
			slog.String("operation", "UpsertPerson"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.PersonFromNode(*node)
	return &stored, nil
}

// Delete detaches and deletes a person by UID.
func (s *PersonService) Delete(ctx context.Context, uid string) error {
	s.logger.InfoContext(ctx, "deleting person", slog.String("uid", uid))

	if err := s.repo.DeleteNode(ctx, graph.LabelPerson, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete person",
			slog.String("operation", "DeletePerson"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
