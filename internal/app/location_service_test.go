package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/mocks"
)

func float64Ptr(v float64) *float64 { return &v }

func validLocation() graph.Location {
	return graph.Location{
		Name:      "Oslo",
		Country:   "Norway",
		City:      "Oslo",
		Latitude:  float64Ptr(59.91),
		Longitude: float64Ptr(10.75),
	}
}

func TestLocationService_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("returns stored location on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewLocationService(mockRepo, discardLogger())

		l := validLocation()
		node := graph.Node{
			UID:   "loc-1",
			Label: graph.LabelLocation,
			Properties: map[string]any{
				"uid":      "loc-1",
				"name":     "Oslo",
				"country":  "Norway",
				"latitude": 59.91,
			},
		}

		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelLocation, "", l.Properties()).
			Return(&node, nil)

		got, err := svc.Upsert(context.Background(), &l)
		if err != nil {
			t.Fatalf("Upsert() error = %v, want nil", err)
		}
		if got.UID != "loc-1" {
			t.Errorf("Upsert().UID = %q, want %q", got.UID, "loc-1")
		}
		if got.Latitude == nil || *got.Latitude != 59.91 {
			t.Errorf("Upsert().Latitude = %v, want 59.91", got.Latitude)
		}
	})

	t.Run("returns validation error without calling repository", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewLocationService(mockRepo, discardLogger())

		invalid := validLocation()
		invalid.Latitude = float64Ptr(120)

		_, err := svc.Upsert(context.Background(), &invalid)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upsert() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewLocationService(mockRepo, discardLogger())

		l := validLocation()
		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelLocation, "", mock.Anything).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.Upsert(context.Background(), &l)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Upsert() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestLocationService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes location successfully", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewLocationService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelLocation, "loc-1").
			Return(nil)

		if err := svc.Delete(context.Background(), "loc-1"); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})

	t.Run("returns error when location not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewLocationService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelLocation, "missing").
			Return(domain.ErrNotFound)

		err := svc.Delete(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
