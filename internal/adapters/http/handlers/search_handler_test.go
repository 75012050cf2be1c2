package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
	"github.com/jsamuelsen11/knowledge-graph-service/mocks"
)

func newSearchHandler(t *testing.T) (*handlers.SearchHandler, *mocks.MockSearchService) {
	t.Helper()
	svc := mocks.NewMockSearchService(t)
	return handlers.NewSearchHandler(svc), svc
}

// --- Search ---

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().NodesByLabel(mock.Anything, graph.LabelPerson, map[string]any{"is_active": true, "age": int64(36)}, 100).
		Return([]graph.Node{personNode("person-1", "Ada Lovelace")}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search?label=Person&is_active=true&age=36", nil)
	h.Search(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.NodeListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Nodes[0].UID != "person-1" {
		t.Errorf("Nodes[0].UID = %q, want %q", resp.Nodes[0].UID, "person-1")
	}
}

func TestSearch_MissingLabel(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search", nil)
	h.Search(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSearch_InvalidLimit(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search?label=Person&limit=abc", nil)
	h.Search(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSearch_UnknownLabel(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().NodesByLabel(mock.Anything, "Widget", map[string]any{}, 100).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"label": "unknown label: Widget"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search?label=Widget", nil)
	h.Search(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- SearchText ---

func TestSearchText_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	matches := []graph.TextMatch{
		{Node: personNode("person-1", "Ada Lovelace"), Relevance: 3},
	}
	svc.EXPECT().NodesByText(mock.Anything, "lovelace", []string{"Person", "Organization"}, 10).
		Return(matches, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search/text?q=lovelace&labels=Person,Organization&limit=10", nil)
	h.SearchText(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TextSearchResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Matches[0].Relevance != 3 {
		t.Errorf("Matches[0].Relevance = %d, want 3", resp.Matches[0].Relevance)
	}
}

func TestSearchText_DefaultLimit(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().NodesByText(mock.Anything, "ada", []string(nil), 50).
		Return([]graph.TextMatch{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search/text?q=ada", nil)
	h.SearchText(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSearchText_MissingQuery(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/search/text", nil)
	h.SearchText(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ShortestPath ---

func TestShortestPath_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	path := graph.Path{
		Nodes: []graph.Node{
			personNode("person-1", "Ada Lovelace"),
			{UID: "org-1", Label: graph.LabelOrganization, Properties: map[string]any{"name": "Initech"}},
		},
		Relationships: []graph.Relationship{
			{Type: graph.RelWorksFor, FromUID: "person-1", ToUID: "org-1"},
		},
		Length: 1,
	}
	svc.EXPECT().ShortestPath(mock.Anything, "person-1", "org-1", 6, []string(nil)).
		Return(&path, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/paths/shortest?from=person-1&to=org-1", nil)
	h.ShortestPath(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PathResponse](t, rec)
	if resp.Length != 1 {
		t.Errorf("Length = %d, want 1", resp.Length)
	}
	if len(resp.Nodes) != 2 || len(resp.Relationships) != 1 {
		t.Errorf("Nodes/Relationships = %d/%d, want 2/1", len(resp.Nodes), len(resp.Relationships))
	}
}

func TestShortestPath_CustomDepthAndTypes(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().ShortestPath(mock.Anything, "person-1", "person-2", 3, []string{"KNOWS"}).
		Return(&graph.Path{Length: 2}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/paths/shortest?from=person-1&to=person-2&max_depth=3&types=KNOWS", nil)
	h.ShortestPath(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/paths/shortest?from=person-1", nil)
	h.ShortestPath(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestShortestPath_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().ShortestPath(mock.Anything, "person-1", "island-1", 6, []string(nil)).
		Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/paths/shortest?from=person-1&to=island-1", nil)
	h.ShortestPath(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Neighbors ---

func TestNeighbors_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	neighbors := []graph.Neighbor{
		{Node: personNode("person-2", "Grace Hopper"), Distance: 1},
		{Node: graph.Node{UID: "org-1", Label: graph.LabelOrganization, Properties: map[string]any{"name": "Initech"}}, Distance: 1},
		{Node: graph.Node{UID: "loc-1", Label: graph.LabelLocation, Properties: map[string]any{"name": "London"}}, Distance: 2},
	}
	svc.EXPECT().Neighbors(mock.Anything, "person-1", 1, graph.DirectionBoth).
		Return(neighbors, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/graph/nodes/person-1/neighbors", nil), map[string]string{"uid": "person-1"})
	h.Neighbors(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.NeighborsResponse](t, rec)
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
	if len(resp.Neighbors[1]) != 2 {
		t.Errorf("len(Neighbors[1]) = %d, want 2", len(resp.Neighbors[1]))
	}
	if len(resp.Neighbors[2]) != 1 {
		t.Errorf("len(Neighbors[2]) = %d, want 1", len(resp.Neighbors[2]))
	}
}

func TestNeighbors_CustomDepthAndDirection(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().Neighbors(mock.Anything, "person-1", 2, graph.DirectionIncoming).
		Return([]graph.Neighbor{}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/graph/nodes/person-1/neighbors?depth=2&direction=incoming", nil), map[string]string{"uid": "person-1"})
	h.Neighbors(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestNeighbors_InvalidDirection(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/graph/nodes/person-1/neighbors?direction=sideways", nil), map[string]string{"uid": "person-1"})
	h.Neighbors(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Statistics ---

func TestStatistics_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	stats := graph.NodeStatistics{
		UID:           "person-1",
		Labels:        []string{"Person"},
		IncomingCount: 2,
		IncomingTypes: []string{"KNOWS"},
		OutgoingCount: 3,
		OutgoingTypes: []string{"KNOWS", "WORKS_FOR"},
	}
	svc.EXPECT().NodeStatistics(mock.Anything, "person-1").Return(&stats, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/graph/nodes/person-1/statistics", nil), map[string]string{"uid": "person-1"})
	h.Statistics(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.NodeStatisticsResponse](t, rec)
	if resp.OutgoingCount != 3 {
		t.Errorf("OutgoingCount = %d, want 3", resp.OutgoingCount)
	}
	if len(resp.OutgoingTypes) != 2 {
		t.Errorf("len(OutgoingTypes) = %d, want 2", len(resp.OutgoingTypes))
	}
}

func TestStatistics_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().NodeStatistics(mock.Anything, "ghost-99").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/graph/nodes/ghost-99/statistics", nil), map[string]string{"uid": "ghost-99"})
	h.Statistics(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Aggregate ---

func TestAggregate_DefaultsToCount(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	rows := []graph.AggregateRow{{UID: "person-1", Name: "Ada Lovelace", Value: 4}}
	svc.EXPECT().Aggregate(mock.Anything, "Person", "KNOWS", graph.AggregateCount).
		Return(rows, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/aggregate?label=Person&type=KNOWS", nil)
	h.Aggregate(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AggregateResponse](t, rec)
	if resp.Op != "count" {
		t.Errorf("Op = %q, want %q", resp.Op, "count")
	}
	if resp.Count != 1 || resp.Rows[0].Value != 4 {
		t.Errorf("Rows = %+v, want single row with value 4", resp.Rows)
	}
}

func TestAggregate_CustomOp(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().Aggregate(mock.Anything, "Person", "KNOWS", graph.AggregateAvg).
		Return([]graph.AggregateRow{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/aggregate?label=Person&type=KNOWS&op=avg", nil)
	h.Aggregate(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestAggregate_MissingParams(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/aggregate?label=Person", nil)
	h.Aggregate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAggregate_UnknownOp(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().Aggregate(mock.Anything, "Person", "KNOWS", graph.AggregateOp("median")).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"op": "unknown aggregate op: median"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/aggregate?label=Person&type=KNOWS&op=median", nil)
	h.Aggregate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Query ---

func TestQuery_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	records := []graph.Record{
		{Keys: []string{"name"}, Values: map[string]any{"name": "Ada Lovelace"}},
	}
	svc.EXPECT().ExecuteQuery(mock.Anything, "MATCH (p:Person) RETURN p.name AS name", map[string]any{"limit": "10"}).
		Return(records, nil)

	body := jsonBody(t, dto.ExecuteQueryRequest{
		Query:  "MATCH (p:Person) RETURN p.name AS name",
		Params: map[string]any{"limit": "10"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/graph/query", body)
	req.Header.Set("Content-Type", "application/json")
	h.Query(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.QueryResultResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if len(resp.Keys) != 1 || resp.Keys[0] != "name" {
		t.Errorf("Keys = %v, want [name]", resp.Keys)
	}
}

func TestQuery_MissingQuery(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	body := jsonBody(t, dto.ExecuteQueryRequest{Query: ""})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/graph/query", body)
	req.Header.Set("Content-Type", "application/json")
	h.Query(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestQuery_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newSearchHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/graph/query", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.Query(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Overview ---

func TestOverview_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	overview := ports.GraphOverview{
		Labels: []graph.LabelCount{
			{Label: "Location", Count: 1},
			{Label: "Person", Count: 2},
		},
		Total: 3,
	}
	svc.EXPECT().Overview(mock.Anything).Return(&overview, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/overview", nil)
	h.Overview(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.OverviewResponse](t, rec)
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
	if len(resp.Labels) != 2 {
		t.Errorf("len(Labels) = %d, want 2", len(resp.Labels))
	}
}

func TestOverview_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newSearchHandler(t)

	svc.EXPECT().Overview(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph/overview", nil)
	h.Overview(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
