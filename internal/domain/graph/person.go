package graph

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

const (
	maxPersonName  = 100
	maxPersonEmail = 255
)

// Person is an individual node in the graph.
type Person struct {
	UID       string
	Name      string
	Email     string
	Age       *int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Person entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (p *Person) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(p.Name) == "":
		fields["name"] = domain.MsgRequired
	case len(p.Name) > maxPersonName:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxPersonName)
	}
	if p.Email != "" {
		if len(p.Email) > maxPersonEmail {
			fields["email"] = fmt.Sprintf("must be at most %d characters", maxPersonEmail)
		} else if _, err := mail.ParseAddress(p.Email); err != nil {
			fields["email"] = "invalid email address"
		}
	}
	if p.Age != nil && *p.Age < 0 {
		fields["age"] = fmt.Sprintf("must not be negative, got %d", *p.Age)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the property map persisted for this person. Timestamp
// properties are managed by the store and not included.
func (p *Person) Properties() map[string]any {
	props := map[string]any{
		"name":      p.Name,
		"is_active": p.IsActive,
	}
	if p.Email != "" {
		props["email"] = p.Email
	}
	if p.Age != nil {
		props["age"] = *p.Age
	}
	return props
}

// PersonFromNode rebuilds a Person from its stored node form.
func PersonFromNode(n Node) Person {
	p := Person{
		UID:      n.UID,
		Name:     asString(n.Properties, "name"),
		Email:    asString(n.Properties, "email"),
		IsActive: true,
	}
	if v, ok := asInt(n.Properties, "age"); ok {
		p.Age = &v
	}
	if v, ok := asBool(n.Properties, "is_active"); ok {
		p.IsActive = v
	}
	p.CreatedAt = n.CreatedAt()
	p.UpdatedAt = n.UpdatedAt()
	return p
}
