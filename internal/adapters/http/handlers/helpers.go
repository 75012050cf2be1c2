package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// uidParam extracts the uid path parameter from the chi URL params.
func uidParam(r *http.Request) (string, error) {
	uid := chi.URLParam(r, "uid")
	if uid == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"uid": "is required"},
		}
	}
	return uid, nil
}

// queryInt parses an optional integer query parameter, falling back to def
// when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{name: "must be a valid integer"},
		}
	}
	return v, nil
}

// queryList parses a comma-separated query parameter into a slice, dropping
// empty entries. Returns nil when the parameter is absent.
func queryList(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// queryFilters collects the remaining query parameters as equality filters,
// coercing literal booleans and numbers so they match stored property types.
func queryFilters(r *http.Request, exclude ...string) map[string]any {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	filters := make(map[string]any)
	for name, values := range r.URL.Query() {
		if _, ok := skip[name]; ok || len(values) == 0 {
			continue
		}
		filters[name] = coerceFilterValue(values[0])
	}
	return filters
}

// coerceFilterValue converts a raw query value to the Go type its stored
// counterpart most likely has. Only literal true/false become booleans so
// numeric strings like "1" stay numbers.
func coerceFilterValue(raw string) any {
	if raw == "true" || raw == "false" {
		return raw == "true"
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// mapUpsertPersonRequest converts an UpsertPersonRequest DTO to a domain
// Person entity. A missing is_active defaults to true.
func mapUpsertPersonRequest(req *dto.UpsertPersonRequest) *graph.Person {
	p := &graph.Person{
		UID:      req.UID,
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		IsActive: true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return p
}

// mapUpsertOrganizationRequest converts an UpsertOrganizationRequest DTO to
// a domain Organization entity.
func mapUpsertOrganizationRequest(req *dto.UpsertOrganizationRequest) *graph.Organization {
	return &graph.Organization{
		UID:           req.UID,
		Name:          req.Name,
		Description:   req.Description,
		Industry:      req.Industry,
		EmployeeCount: req.EmployeeCount,
		Website:       req.Website,
	}
}

// mapUpsertLocationRequest converts an UpsertLocationRequest DTO to a domain
// Location entity.
func mapUpsertLocationRequest(req *dto.UpsertLocationRequest) *graph.Location {
	return &graph.Location{
		UID:       req.UID,
		Name:      req.Name,
		Country:   req.Country,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}

// mapUpsertProjectRequest converts an UpsertProjectRequest DTO to a domain
// Project entity. An empty status is left for the service to default.
func mapUpsertProjectRequest(req *dto.UpsertProjectRequest) *graph.Project {
	return &graph.Project{
		UID:         req.UID,
		Name:        req.Name,
		Description: req.Description,
		Status:      graph.ProjectStatus(req.Status),
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
}

// mapUpsertTagRequest converts an UpsertTagRequest DTO to a domain Tag entity.
func mapUpsertTagRequest(req *dto.UpsertTagRequest) *graph.Tag {
	return &graph.Tag{
		UID:         req.UID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
}

// mapConnectRelationshipRequest converts a ConnectRelationshipRequest DTO to
// a domain Relationship.
func mapConnectRelationshipRequest(req *dto.ConnectRelationshipRequest) *graph.Relationship {
	return &graph.Relationship{
		Type:       req.Type,
		FromUID:    req.FromUID,
		ToUID:      req.ToUID,
		Properties: req.Properties,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
