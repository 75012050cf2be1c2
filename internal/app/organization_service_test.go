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

func validOrganization() graph.Organization {
	return graph.Organization{
		Name:          "Acme Corp",
		Description:   "Makes everything",
		Industry:      "Manufacturing",
		EmployeeCount: intPtr(5000),
		Website:       "https://acme.example.com",
	}
}

// organizationNode is the stored form the repository hands back for an
// organization.
func organizationNode(uid, name string) graph.Node {
	return graph.Node{
		UID:   uid,
		Label: graph.LabelOrganization,
		Properties: map[string]any{
			"uid":        uid,
			"name":       name,
			"created_at": "2025-01-01T00:00:00Z",
			"updated_at": "2025-01-01T00:00:00Z",
		},
	}
}

func TestOrganizationService_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("returns stored organization on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		o := validOrganization()
		node := organizationNode("org-1", "Acme Corp")
		node.Properties["industry"] = "Manufacturing"
		node.Properties["employee_count"] = int64(5000)

		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelOrganization, "", o.Properties()).
			Return(&node, nil)

		got, err := svc.Upsert(context.Background(), &o)
		if err != nil {
			t.Fatalf("Upsert() error = %v, want nil", err)
		}
		if got.UID != "org-1" {
			t.Errorf("Upsert().UID = %q, want %q", got.UID, "org-1")
		}
		if got.Industry != "Manufacturing" {
			t.Errorf("Upsert().Industry = %q, want %q", got.Industry, "Manufacturing")
		}
		if got.EmployeeCount == nil || *got.EmployeeCount != 5000 {
			t.Errorf("Upsert().EmployeeCount = %v, want 5000", got.EmployeeCount)
		}
	})

	t.Run("returns validation error for nil organization", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		_, err := svc.Upsert(context.Background(), nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upsert(nil) error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns validation error without calling repository", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		invalid := validOrganization()
		invalid.EmployeeCount = intPtr(-1)

		_, err := svc.Upsert(context.Background(), &invalid)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upsert() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		o := validOrganization()
		mockRepo.EXPECT().
			UpsertNode(mock.Anything, graph.LabelOrganization, "", mock.Anything).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.Upsert(context.Background(), &o)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Upsert() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestOrganizationService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes organization successfully", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelOrganization, "org-1").
			Return(nil)

		if err := svc.Delete(context.Background(), "org-1"); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})

	t.Run("returns error when organization not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewOrganizationService(mockRepo, discardLogger())

		mockRepo.EXPECT().
			DeleteNode(mock.Anything, graph.LabelOrganization, "missing").
			Return(domain.ErrNotFound)

		err := svc.Delete(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
