package graph

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

const maxTagName = 50

// colorPattern matches 3- or 6-digit hex colors with a leading hash.
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Tag is a free-form label node attachable to other nodes.
type Tag struct {
	UID         string
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Tag entity.
func (t *Tag) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(t.Name) == "":
		fields["name"] = domain.MsgRequired
	case len(t.Name) > maxTagName:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxTagName)
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		fields["color"] = fmt.Sprintf("must be a hex color like #ff8800, got %q", t.Color)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the property map persisted for this tag.
func (t *Tag) Properties() map[string]any {
	props := map[string]any{
		"name": t.Name,
	}
	if t.Description != "" {
		props["description"] = t.Description
	}
	if t.Color != "" {
		props["color"] = t.Color
	}
	return props
}

// TagFromNode rebuilds a Tag from its stored node form.
func TagFromNode(n Node) Tag {
	t := Tag{
		UID:         n.UID,
		Name:        asString(n.Properties, "name"),
		Description: asString(n.Properties, "description"),
		Color:       asString(n.Properties, "color"),
	}
	t.CreatedAt = n.CreatedAt()
	t.UpdatedAt = n.UpdatedAt()
	return t
}
