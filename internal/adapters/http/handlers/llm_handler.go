package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// LLMHandler handles HTTP endpoints for LLM-assisted node creation,
// relationship suggestion, and enrichment. When no gateway is configured the
// service answers ErrUnavailable, which renders as 502.
type LLMHandler struct {
	svc ports.LLMService
}

// NewLLMHandler creates a new LLMHandler with the given service port.
func NewLLMHandler(svc ports.LLMService) *LLMHandler {
	return &LLMHandler{svc: svc}
}

// CreatePerson handles POST /api/v1/llm/persons.
func (h *LLMHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req dto.ExtractionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.CreatePersonFromDescription(r.Context(), req.Description, req.CreatedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPersonExtractionResponse(result))
}

// CreateOrganization handles POST /api/v1/llm/organizations.
func (h *LLMHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req dto.ExtractionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.CreateOrganizationFromDescription(r.Context(), req.Description, req.CreatedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToOrganizationExtractionResponse(result))
}

// SuggestRelationships handles POST /api/v1/llm/nodes/{uid}/suggestions.
func (h *LLMHandler) SuggestRelationships(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	suggestions, err := h.svc.SuggestRelationships(r.Context(), uid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSuggestionListResponse(suggestions))
}

// EnrichNode handles POST /api/v1/llm/nodes/{uid}/enrichment.
func (h *LLMHandler) EnrichNode(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	enrichment, err := h.svc.EnrichNode(r.Context(), uid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEnrichmentResponse(enrichment))
}
