package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. Every non-2xx body the
// service writes takes this shape, including the documents produced by the
// recovery and timeout middleware.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure inside an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse builds the problem document for err, using the request
// URI as the instance. Validation errors carry their field details in
// Errors.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse renders err as application/problem+json on w.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// statusFor maps domain sentinels to HTTP statuses. ErrUnavailable becomes
// 502 because it means a dependency (the graph store or the LLM gateway)
// turned us away, not that the request was wrong.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// validationDetails renders the failed fields sorted by name so the same
// failure always produces the same document.
func validationDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  fields[field],
		})
	}
	return details
}
