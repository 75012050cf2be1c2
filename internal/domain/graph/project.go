package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

const maxProjectName = 200

// Project is a unit-of-work node in the graph, owned by an organization
// and staffed by persons.
type Project struct {
	UID         string
	Name        string
	Description string
	Status      ProjectStatus
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Project entity.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(p.Name) == "":
		fields["name"] = domain.MsgRequired
	case len(p.Name) > maxProjectName:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxProjectName)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	if p.Budget != nil && *p.Budget < 0 {
		fields["budget"] = fmt.Sprintf("must not be negative, got %g", *p.Budget)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the property map persisted for this project.
func (p *Project) Properties() map[string]any {
	props := map[string]any{
		"name":   p.Name,
		"status": string(p.Status),
	}
	if p.Description != "" {
		props["description"] = p.Description
	}
	if p.Budget != nil {
		props["budget"] = *p.Budget
	}
	if p.StartDate != nil {
		props["start_date"] = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		props["end_date"] = p.EndDate.Format(dateLayout)
	}
	return props
}

// ProjectFromNode rebuilds a Project from its stored node form.
func ProjectFromNode(n Node) Project {
	p := Project{
		UID:         n.UID,
		Name:        asString(n.Properties, "name"),
		Description: asString(n.Properties, "description"),
		Status:      DefaultProjectStatus,
	}
	if v := asString(n.Properties, "status"); v != "" {
		p.Status = ProjectStatus(v)
	}
	if v, ok := asFloat(n.Properties, "budget"); ok {
		p.Budget = &v
	}
	if t, ok := asTime(n.Properties, "start_date"); ok {
		p.StartDate = &t
	}
	if t, ok := asTime(n.Properties, "end_date"); ok {
		p.EndDate = &t
	}
	p.CreatedAt = n.CreatedAt()
	p.UpdatedAt = n.UpdatedAt()
	return p
}
