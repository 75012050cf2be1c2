package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func intPtr(v int) *int { return &v }

func validPerson() graph.Person {
	return graph.Person{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Age:      intPtr(36),
		IsActive: true,
	}
}

// personNode is the stored form the repository hands back for a person.
func personNode(uid, name string) graph.Node {
	return graph.Node{
		UID:   uid,
		Label: graph.LabelPerson,
		Properties: map[string]any{
			"uid":        uid,
			"name":       name,
			"is_active":  true,
			"created_at": "2025-01-01T00:00:00Z",
			"updated_at": "2025-01-01T00:00:00Z",
		},
	}
}

// --- NewPersonService ---

func TestNewPersonService_NilLogger(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockGraphRepository(t)

	svc := NewPersonService(mockRepo, nil)
	if svc.logger == nil {
		t.Fatal("NewPersonService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Upsert ---

func TestPersonService_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("returns stored person on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		p := validPerson()
		node := personNode("person-1", "Ada Lovelace")
		node.Properties["email"] = "ada@example.com"
		node.Properties["age"] = int64(36)

		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelPerson, "", p.Properties()).
			Return(&node, nil)

		got, err := svc.Upsert(context.Background(), &p)
		if err != nil {
			t.Fatalf("Upsert() error = %v, want nil", err)
		}
		if got.UID != "person-1" {
			t.Errorf("Upsert().UID = %q, want %q", got.UID, "person-1")
		}
		if got.Name != "Ada Lovelace" {
			t.Errorf("Upsert().Name = %q, want %q", got.Name, "Ada Lovelace")
		}
		if got.Email != "ada@example.com" {
			t.Errorf("Upsert().Email = %q, want %q", got.Email, "ada@example.com")
		}
		if got.Age == nil || *got.Age != 36 {
			t.Errorf("Upsert().Age = %v, want 36", got.Age)
		}
		if !got.IsActive {
			t.Error("Upsert().IsActive = false, want true")
		}
		if !got.CreatedAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Upsert().CreatedAt = %v, want 2025-01-01T00:00:00Z", got.CreatedAt)
		}
	})

	t.Run("merges by uid when set", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		p := validPerson()
		p.UID = "person-7"
		node := personNode("person-7", "Ada Lovelace")

		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelPerson, "person-7", mock.Anything).
			Return(&node, nil)

		got, err := svc.Upsert(context.Background(), &p)
		if err != nil {
			t.Fatalf("Upsert() error = %v, want nil", err)
		}
		if got.UID != "person-7" {
			t.Errorf("Upsert().UID = %q, want %q", got.UID, "person-7")
		}
	})

	t.Run("returns validation error for nil person", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		_, err := svc.Upsert(context.Background(), nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upsert(nil) error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns validation error without calling repository", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		invalid := validPerson()
		invalid.Name = ""

		_, err := svc.Upsert(context.Background(), &invalid)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upsert() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		p := validPerson()
		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelPerson, "", mock.Anything).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.Upsert(context.Background(), &p)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Upsert() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- Delete ---

func TestPersonService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes person successfully", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelPerson, "person-1").
			Return(nil)

		if err := svc.Delete(context.Background(), "person-1"); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})

	t.Run("returns error when person not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewPersonService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelPerson, "missing").
			Return(domain.ErrNotFound)

		err := svc.Delete(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
