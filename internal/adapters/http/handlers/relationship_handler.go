package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// RelationshipHandler handles HTTP endpoints for connecting and
// disconnecting typed relationships between existing nodes.
type RelationshipHandler struct {
	svc ports.RelationshipService
}

// NewRelationshipHandler creates a new RelationshipHandler with the given
// service port.
func NewRelationshipHandler(svc ports.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{svc: svc}
}

// Connect handles PUT /api/v1/relationships.
func (h *RelationshipHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req dto.ConnectRelationshipRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.svc.Connect(r.Context(), mapConnectRelationshipRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRelationshipResponse(stored))
}

// Disconnect handles DELETE /api/v1/relationships. The relationship is
// identified by the from, to, and type query parameters.
func (h *RelationshipHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromUID := q.Get("from")
	toUID := q.Get("to")
	relType := q.Get("type")

	fields := make(map[string]string)
	if fromUID == "" {
		fields["from"] = "is required"
	}
	if toUID == "" {
		fields["to"] = "is required"
	}
	if relType == "" {
		fields["type"] = "is required"
	}
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	if err := h.svc.Disconnect(r.Context(), fromUID, toUID, relType); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
