package app

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

func TestDiscoveryService_Models(t *testing.T) {
	t.Parallel()
	svc := NewDiscoveryService(testRegistry(t))

	got := svc.Models()
	if len(got) != 5 {
		t.Fatalf("Models() len = %d, want 5", len(got))
	}
	// Schemas are sorted by label.
	if got[0].Label != graph.LabelLocation {
		t.Errorf("Models()[0].Label = %q, want %q", got[0].Label, graph.LabelLocation)
	}
	if got[4].Label != graph.LabelTag {
		t.Errorf("Models()[4].Label = %q, want %q", got[4].Label, graph.LabelTag)
	}
}

func TestDiscoveryService_Model(t *testing.T) {
	t.Parallel()

	t.Run("returns schema for registered label", func(t *testing.T) {
		t.Parallel()
		svc := NewDiscoveryService(testRegistry(t))

		got, err := svc.Model(graph.LabelPerson)
		if err != nil {
			t.Fatalf("Model() error = %v, want nil", err)
		}
		if got.Label != graph.LabelPerson {
			t.Errorf("Model().Label = %q, want %q", got.Label, graph.LabelPerson)
		}
		if len(got.Relationships) != 3 {
			t.Errorf("Model().Relationships len = %d, want 3", len(got.Relationships))
		}

		var name *graph.PropertySpec
		for i := range got.Properties {
			if got.Properties[i].Name == "name" {
				name = &got.Properties[i]
			}
		}
		if name == nil || !name.Required {
			t.Errorf("Model() name property = %+v, want required", name)
		}
	})

	t.Run("returns error for unknown label", func(t *testing.T) {
		t.Parallel()
		svc := NewDiscoveryService(testRegistry(t))

		_, err := svc.Model("Widget")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Model() error = %v, want ErrNotFound", err)
		}
	})
}
