package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Query parameter defaults mirror the repository's traversal defaults.
const (
	defaultSearchLimit     = 100
	defaultTextSearchLimit = 50
	defaultPathMaxDepth    = 6
	defaultNeighborDepth   = 1
)

// SearchHandler handles HTTP endpoints for graph search, traversal,
// aggregation, and the raw query passthrough.
type SearchHandler struct {
	svc ports.SearchService
}

// NewSearchHandler creates a new SearchHandler with the given service port.
func NewSearchHandler(svc ports.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/v1/graph/search. The label parameter selects the
// node model; every other parameter becomes an equality filter.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if label == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"label": "is required"},
		})
		return
	}

	limit, err := queryInt(r, "limit", defaultSearchLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filters := queryFilters(r, "label", "limit")

	nodes, err := h.svc.NodesByLabel(r.Context(), label, filters, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNodeListResponse(nodes))
}

// SearchText handles GET /api/v1/graph/search/text.
func (h *SearchHandler) SearchText(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	if text == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"q": "is required"},
		})
		return
	}

	limit, err := queryInt(r, "limit", defaultTextSearchLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	matches, err := h.svc.NodesByText(r.Context(), text, queryList(r, "labels"), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTextSearchResponse(matches))
}

// ShortestPath handles GET /api/v1/graph/paths/shortest.
func (h *SearchHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromUID := q.Get("from")
	toUID := q.Get("to")

	fields := make(map[string]string)
	if fromUID == "" {
		fields["from"] = "is required"
	}
	if toUID == "" {
		fields["to"] = "is required"
	}
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	maxDepth, err := queryInt(r, "max_depth", defaultPathMaxDepth)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	path, err := h.svc.ShortestPath(r.Context(), fromUID, toUID, maxDepth, queryList(r, "types"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPathResponse(path))
}

// Neighbors handles GET /api/v1/graph/nodes/{uid}/neighbors.
func (h *SearchHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	depth, err := queryInt(r, "depth", defaultNeighborDepth)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	direction := graph.DirectionBoth
	if raw := r.URL.Query().Get("direction"); raw != "" {
		direction = graph.Direction(raw)
		if !direction.IsValid() {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{"direction": fmt.Sprintf("invalid: %q", raw)},
			})
			return
		}
	}

	neighbors, err := h.svc.Neighbors(r.Context(), uid, depth, direction)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNeighborsResponse(neighbors))
}

// Statistics handles GET /api/v1/graph/nodes/{uid}/statistics.
func (h *SearchHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stats, err := h.svc.NodeStatistics(r.Context(), uid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNodeStatisticsResponse(stats))
}

// Aggregate handles GET /api/v1/graph/aggregate.
func (h *SearchHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	label := q.Get("label")
	relType := q.Get("type")

	fields := make(map[string]string)
	if label == "" {
		fields["label"] = "is required"
	}
	if relType == "" {
		fields["type"] = "is required"
	}
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	op := graph.AggregateCount
	if raw := q.Get("op"); raw != "" {
		op = graph.AggregateOp(raw)
	}

	rows, err := h.svc.Aggregate(r.Context(), label, relType, op)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAggregateResponse(label, relType, op, rows))
}

// Query handles POST /api/v1/graph/query.
func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req dto.ExecuteQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	records, err := h.svc.ExecuteQuery(r.Context(), req.Query, req.Params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQueryResultResponse(records))
}

// Overview handles GET /api/v1/graph/overview.
func (h *SearchHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverviewResponse(overview))
}
