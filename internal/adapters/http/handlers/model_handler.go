package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// ModelHandler handles HTTP endpoints exposing the registered node model
// schemas (model discovery).
type ModelHandler struct {
	svc ports.DiscoveryService
}

// NewModelHandler creates a new ModelHandler with the given service port.
func NewModelHandler(svc ports.DiscoveryService) *ModelHandler {
	return &ModelHandler{svc: svc}
}

// ListModels handles GET /api/v1/graph/models.
func (h *ModelHandler) ListModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToModelListResponse(h.svc.Models()))
}

// GetModel handles GET /api/v1/graph/models/{label}.
func (h *ModelHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	schema, err := h.svc.Model(chi.URLParam(r, "label"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToModelResponse(schema))
}
