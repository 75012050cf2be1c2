// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// NodeHandler handles upsert/delete HTTP endpoints for the registered node
// models. Each model gets exactly one upsert and one delete route.
type NodeHandler struct {
	persons       ports.PersonService
	organizations ports.OrganizationService
	locations     ports.LocationService
	projects      ports.ProjectService
	tags          ports.TagService
}

// NewNodeHandler creates a new NodeHandler with the given service ports.
func NewNodeHandler(
	persons ports.PersonService,
	organizations ports.OrganizationService,
	locations ports.LocationService,
	projects ports.ProjectService,
	tags ports.TagService,
) *NodeHandler {
	return &NodeHandler{
		persons:       persons,
		organizations: organizations,
		locations:     locations,
		projects:      projects,
		tags:          tags,
	}
}

// UpsertPerson handles PUT /api/v1/persons.
func (h *NodeHandler) UpsertPerson(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPersonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.persons.Upsert(r.Context(), mapUpsertPersonRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPersonResponse(stored))
}

// DeletePerson handles DELETE /api/v1/persons/{uid}.
func (h *NodeHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.persons.Delete(r.Context(), uid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertOrganization handles PUT /api/v1/organizations.
func (h *NodeHandler) UpsertOrganization(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertOrganizationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.organizations.Upsert(r.Context(), mapUpsertOrganizationRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrganizationResponse(stored))
}

// DeleteOrganization handles DELETE /api/v1/organizations/{uid}.
func (h *NodeHandler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.organizations.Delete(r.Context(), uid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertLocation handles PUT /api/v1/locations.
func (h *NodeHandler) UpsertLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.locations.Upsert(r.Context(), mapUpsertLocationRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLocationResponse(stored))
}

// DeleteLocation handles DELETE /api/v1/locations/{uid}.
func (h *NodeHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.locations.Delete(r.Context(), uid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertProject handles PUT /api/v1/projects.
func (h *NodeHandler) UpsertProject(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.projects.Upsert(r.Context(), mapUpsertProjectRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(stored))
}

// DeleteProject handles DELETE /api/v1/projects/{uid}.
func (h *NodeHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.projects.Delete(r.Context(), uid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertTag handles PUT /api/v1/tags.
func (h *NodeHandler) UpsertTag(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertTagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stored, err := h.tags.Upsert(r.Context(), mapUpsertTagRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagResponse(stored))
}

// DeleteTag handles DELETE /api/v1/tags/{uid}.
func (h *NodeHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	uid, err := uidParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.tags.Delete(r.Context(), uid); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
