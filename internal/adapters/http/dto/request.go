package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

const msgRequired = "is required"

// UpsertPersonRequest represents the JSON body for upserting a person node.
// An empty uid creates a new node; a set uid merges into the existing one.
type UpsertPersonRequest struct {
	UID      string `json:"uid,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Age      *int   `json:"age,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpsertPersonRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpsertOrganizationRequest represents the JSON body for upserting an
// organization node.
type UpsertOrganizationRequest struct {
	UID           string `json:"uid,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Industry      string `json:"industry,omitempty"`
	EmployeeCount *int   `json:"employee_count,omitempty"`
	Website       string `json:"website,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpsertOrganizationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpsertLocationRequest represents the JSON body for upserting a location node.
type UpsertLocationRequest struct {
	UID       string   `json:"uid,omitempty"`
	Name      string   `json:"name"`
	Country   string   `json:"country,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpsertLocationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpsertProjectRequest represents the JSON body for upserting a project node.
// Dates are RFC 3339 timestamps; an empty status gets the planning default.
type UpsertProjectRequest struct {
	UID         string     `json:"uid,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *UpsertProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Status != "" && !graph.ProjectStatus(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpsertTagRequest represents the JSON body for upserting a tag node.
type UpsertTagRequest struct {
	UID         string `json:"uid,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpsertTagRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ConnectRelationshipRequest represents the JSON body for connecting two
// existing nodes with a typed relationship.
type ConnectRelationshipRequest struct {
	FromUID    string         `json:"from_uid"`
	ToUID      string         `json:"to_uid"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Validate checks that required fields are present. Type and property
// validation happens in the relationship service.
// Returns a *domain.ValidationError if any checks fail.
func (r *ConnectRelationshipRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.FromUID) == "" {
		fields["from_uid"] = msgRequired
	}
	if strings.TrimSpace(r.ToUID) == "" {
		fields["to_uid"] = msgRequired
	}
	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ExecuteQueryRequest represents the JSON body for running raw Cypher.
type ExecuteQueryRequest struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ExecuteQueryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Query) == "" {
		fields["query"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ExtractionRequest represents the JSON body for LLM-assisted node creation
// from a free-text description.
type ExtractionRequest struct {
	Description string `json:"description"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ExtractionRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
