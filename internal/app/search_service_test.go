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

// testRegistry returns a registry loaded with the built-in model schemas.
func testRegistry(t *testing.T) *graph.Registry {
	t.Helper()
	r := graph.NewRegistry()
	for _, s := range graph.Builtin() {
		if err := r.Register(s); err != nil {
			t.Fatalf("Register(%s) error = %v", s.Label, err)
		}
	}
	return r
}

// --- NodesByLabel ---

func TestSearchService_NodesByLabel(t *testing.T) {
	t.Parallel()

	t.Run("returns nodes for a registered label", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		filters := map[string]any{"is_active": true}
		want := []graph.Node{personNode("person-1", "Ada Lovelace")}

		mockRepo.EXPECT().
			NodesByLabel(mock.Anything, graph.LabelPerson, filters, 25).
			Return(want, nil)

		got, err := svc.NodesByLabel(context.Background(), graph.LabelPerson, filters, 25)
		if err != nil {
			t.Fatalf("NodesByLabel() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Fatalf("NodesByLabel() len = %d, want 1", len(got))
		}
		if got[0].UID != "person-1" {
			t.Errorf("NodesByLabel()[0].UID = %q, want %q", got[0].UID, "person-1")
		}
	})

	t.Run("rejects unregistered label without calling repository", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		_, err := svc.NodesByLabel(context.Background(), "Widget", nil, 10)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("NodesByLabel() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			NodesByLabel(mock.Anything, graph.LabelPerson, mock.Anything, 10).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.NodesByLabel(context.Background(), graph.LabelPerson, nil, 10)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("NodesByLabel() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- NodesByText ---

func TestSearchService_NodesByText(t *testing.T) {
	t.Parallel()

	t.Run("returns matches ordered by relevance", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		want := []graph.TextMatch{
			{Node: personNode("person-1", "Ada Lovelace"), Relevance: 3},
			{Node: organizationNode("org-1", "Ada Systems"), Relevance: 2},
		}
		labels := []string{graph.LabelPerson, graph.LabelOrganization}

		mockRepo.EXPECT().
			NodesByText(mock.Anything, "ada", labels, 20).
			Return(want, nil)

		got, err := svc.NodesByText(context.Background(), "ada", labels, 20)
		if err != nil {
			t.Fatalf("NodesByText() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("NodesByText() len = %d, want 2", len(got))
		}
		if got[0].Relevance != 3 {
			t.Errorf("NodesByText()[0].Relevance = %d, want 3", got[0].Relevance)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			NodesByText(mock.Anything, "", mock.Anything, 20).
			Return(nil, domain.ErrValidation)

		_, err := svc.NodesByText(context.Background(), "", nil, 20)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("NodesByText() error = %v, want ErrValidation", err)
		}
	})
}

// --- ShortestPath ---

func TestSearchService_ShortestPath(t *testing.T) {
	t.Parallel()

	t.Run("returns path between nodes", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		want := &graph.Path{
			Nodes: []graph.Node{
				personNode("person-1", "Ada Lovelace"),
				organizationNode("org-1", "Acme Corp"),
			},
			Relationships: []graph.Relationship{
				{Type: graph.RelWorksFor, FromUID: "person-1", ToUID: "org-1"},
			},
			Length: 1,
		}

		mockRepo.EXPECT().
			ShortestPath(mock.Anything, "person-1", "org-1", 5, []string(nil)).
			Return(want, nil)

		got, err := svc.ShortestPath(context.Background(), "person-1", "org-1", 5, nil)
		if err != nil {
			t.Fatalf("ShortestPath() error = %v, want nil", err)
		}
		if got.Length != 1 {
			t.Errorf("ShortestPath().Length = %d, want 1", got.Length)
		}
	})

	t.Run("returns error when no path exists", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			ShortestPath(mock.Anything, "person-1", "loc-9", 5, []string(nil)).
			Return(nil, domain.ErrNotFound)

		_, err := svc.ShortestPath(context.Background(), "person-1", "loc-9", 5, nil)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ShortestPath() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Neighbors ---

func TestSearchService_Neighbors(t *testing.T) {
	t.Parallel()

	t.Run("returns neighbors with distance", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		want := []graph.Neighbor{
			{Node: organizationNode("org-1", "Acme Corp"), Distance: 1},
			{Node: personNode("person-2", "Grace Hopper"), Distance: 2},
		}

		mockRepo.EXPECT().
			Neighbors(mock.Anything, "person-1", 2, graph.DirectionBoth).
			Return(want, nil)

		got, err := svc.Neighbors(context.Background(), "person-1", 2, graph.DirectionBoth)
		if err != nil {
			t.Fatalf("Neighbors() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("Neighbors() len = %d, want 2", len(got))
		}
		if got[1].Distance != 2 {
			t.Errorf("Neighbors()[1].Distance = %d, want 2", got[1].Distance)
		}
	})

	t.Run("returns error when node not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			Neighbors(mock.Anything, "ghost", 1, graph.DirectionOutgoing).
			Return(nil, domain.ErrNotFound)

		_, err := svc.Neighbors(context.Background(), "ghost", 1, graph.DirectionOutgoing)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Neighbors() error = %v, want ErrNotFound", err)
		}
	})
}

// --- NodeStatistics ---

func TestSearchService_NodeStatistics(t *testing.T) {
	t.Parallel()

	t.Run("returns statistics for node", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		want := &graph.NodeStatistics{
			UID:           "person-1",
			Labels:        []string{graph.LabelPerson},
			IncomingCount: 2,
			IncomingTypes: []string{graph.RelKnows},
			OutgoingCount: 3,
			OutgoingTypes: []string{graph.RelKnows, graph.RelWorksFor},
		}

		mockRepo.EXPECT().
			NodeStatistics(mock.Anything, "person-1").
			Return(want, nil)

		got, err := svc.NodeStatistics(context.Background(), "person-1")
		if err != nil {
			t.Fatalf("NodeStatistics() error = %v, want nil", err)
		}
		if got.OutgoingCount != 3 {
			t.Errorf("NodeStatistics().OutgoingCount = %d, want 3", got.OutgoingCount)
		}
	})

	t.Run("returns error when node not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			NodeStatistics(mock.Anything, "ghost").
			Return(nil, domain.ErrNotFound)

		_, err := svc.NodeStatistics(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("NodeStatistics() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Aggregate ---

func TestSearchService_Aggregate(t *testing.T) {
	t.Parallel()

	t.Run("forwards whitelisted operation", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		want := []graph.AggregateRow{
			{UID: "org-1", Name: "Acme Corp", Value: 120000},
			{UID: "org-2", Name: "Globex", Value: 95000},
		}

		mockRepo.EXPECT().
			AggregateByRelationship(mock.Anything, graph.LabelOrganization, graph.RelWorksFor, graph.AggregateAvg).
			Return(want, nil)

		got, err := svc.Aggregate(context.Background(), graph.LabelOrganization, graph.RelWorksFor, graph.AggregateAvg)
		if err != nil {
			t.Fatalf("Aggregate() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("Aggregate() len = %d, want 2", len(got))
		}
		if got[0].Value != 120000 {
			t.Errorf("Aggregate()[0].Value = %g, want 120000", got[0].Value)
		}
	})

	t.Run("rejects unsupported operation without calling repository", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		_, err := svc.Aggregate(context.Background(), graph.LabelOrganization, graph.RelWorksFor, "median")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Aggregate() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			AggregateByRelationship(mock.Anything, graph.LabelPerson, graph.RelKnows, graph.AggregateCount).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.Aggregate(context.Background(), graph.LabelPerson, graph.RelKnows, graph.AggregateCount)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Aggregate() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- ExecuteQuery ---

func TestSearchService_ExecuteQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns records with key order preserved", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		cypher := "MATCH (p:Person) RETURN p.name AS name, p.age AS age LIMIT $limit"
		params := map[string]any{"limit": 10}
		want := []graph.Record{
			{Keys: []string{"name", "age"}, Values: map[string]any{"name": "Ada Lovelace", "age": int64(36)}},
		}

		mockRepo.EXPECT().
			Run(mock.Anything, cypher, params).
			Return(want, nil)

		got, err := svc.ExecuteQuery(context.Background(), cypher, params)
		if err != nil {
			t.Fatalf("ExecuteQuery() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Fatalf("ExecuteQuery() len = %d, want 1", len(got))
		}
		if got[0].Keys[0] != "name" {
			t.Errorf("ExecuteQuery()[0].Keys[0] = %q, want %q", got[0].Keys[0], "name")
		}
	})

	t.Run("returns error for rejected query", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		mockRepo.EXPECT().
			Run(mock.Anything, "", mock.Anything).
			Return(nil, domain.ErrValidation)

		_, err := svc.ExecuteQuery(context.Background(), "", nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ExecuteQuery() error = %v, want ErrValidation", err)
		}
	})
}

// --- Overview ---

func TestSearchService_Overview(t *testing.T) {
	t.Parallel()

	t.Run("sums counts across all registered labels", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		counts := map[string]int64{
			graph.LabelLocation:     4,
			graph.LabelOrganization: 7,
			graph.LabelPerson:       31,
			graph.LabelProject:      2,
			graph.LabelTag:          12,
		}
		for label, count := range counts {
			mockRepo.EXPECT().CountByLabel(mock.Anything, label).Return(count, nil).Once()
		}

		got, err := svc.Overview(context.Background())
		if err != nil {
			t.Fatalf("Overview() error = %v, want nil", err)
		}
		if got.Total != 56 {
			t.Errorf("Overview().Total = %d, want 56", got.Total)
		}
		if len(got.Labels) != 5 {
			t.Fatalf("Overview().Labels len = %d, want 5", len(got.Labels))
		}
		// Entries follow the registry's sorted label order.
		if got.Labels[0].Label != graph.LabelLocation {
			t.Errorf("Overview().Labels[0].Label = %q, want %q", got.Labels[0].Label, graph.LabelLocation)
		}
		if got.Labels[2].Label != graph.LabelPerson || got.Labels[2].Count != 31 {
			t.Errorf("Overview().Labels[2] = %+v, want Person with 31", got.Labels[2])
		}
	})

	t.Run("fails when any label count fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockGraphRepository(t)
		svc := NewSearchService(mockRepo, testRegistry(t), discardLogger())

		// Every label is still counted; one failure fails the overview.
		for _, label := range []string{graph.LabelLocation, graph.LabelPerson, graph.LabelProject, graph.LabelTag} {
			mockRepo.EXPECT().CountByLabel(mock.Anything, label).Return(1, nil).Once()
		}
		mockRepo.EXPECT().
			CountByLabel(mock.Anything, graph.LabelOrganization).
			Return(0, domain.ErrUnavailable).
			Once()

		_, err := svc.Overview(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Overview() error = %v, want ErrUnavailable", err)
		}
	})
}
