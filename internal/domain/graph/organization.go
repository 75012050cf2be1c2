package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

const (
	maxOrganizationName = 200
	maxIndustry         = 100
	maxWebsite          = 255
)

// Organization is a company or institution node in the graph.
type Organization struct {
	UID           string
	Name          string
	Description   string
	Industry      string
	EmployeeCount *int
	Website       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks business rules for the Organization entity.
func (o *Organization) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(o.Name) == "":
		fields["name"] = domain.MsgRequired
	case len(o.Name) > maxOrganizationName:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxOrganizationName)
	}
	if len(o.Industry) > maxIndustry {
		fields["industry"] = fmt.Sprintf("must be at most %d characters", maxIndustry)
	}
	if len(o.Website) > maxWebsite {
		fields["website"] = fmt.Sprintf("must be at most %d characters", maxWebsite)
	}
	if o.EmployeeCount != nil && *o.EmployeeCount < 0 {
		fields["employee_count"] = fmt.Sprintf("must not be negative, got %d", *o.EmployeeCount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the property map persisted for this organization.
func (o *Organization) Properties() map[string]any {
	props := map[string]any{
		"name": o.Name,
	}
	if o.Description != "" {
		props["description"] = o.Description
	}
	if o.Industry != "" {
		props["industry"] = o.Industry
	}
	if o.EmployeeCount != nil {
		props["employee_count"] = *o.EmployeeCount
	}
	if o.Website != "" {
		props["website"] = o.Website
	}
	return props
}

// OrganizationFromNode rebuilds an Organization from its stored node form.
func OrganizationFromNode(n Node) Organization {
	o := Organization{
		UID:         n.UID,
		Name:        asString(n.Properties, "name"),
		Description: asString(n.Properties, "description"),
		Industry:    asString(n.Properties, "industry"),
		Website:     asString(n.Properties, "website"),
	}
	if v, ok := asInt(n.Properties, "employee_count"); ok {
		o.EmployeeCount = &v
	}
	o.CreatedAt = n.CreatedAt()
	o.UpdatedAt = n.UpdatedAt()
	return o
}
