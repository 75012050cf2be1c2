package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

const maxLocationName = 100

// Location is a geographic place node in the graph.
type Location struct {
	UID       string
	Name      string
	Country   string
	City      string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Location entity.
func (l *Location) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(l.Name) == "":
		fields["name"] = domain.MsgRequired
	case len(l.Name) > maxLocationName:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxLocationName)
	}
	if l.Latitude != nil && (*l.Latitude < -90 || *l.Latitude > 90) {
		fields["latitude"] = fmt.Sprintf("must be between -90 and 90, got %g", *l.Latitude)
	}
	if l.Longitude != nil && (*l.Longitude < -180 || *l.Longitude > 180) {
		fields["longitude"] = fmt.Sprintf("must be between -180 and 180, got %g", *l.Longitude)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the property map persisted for this location.
func (l *Location) Properties() map[string]any {
	props := map[string]any{
		"name": l.Name,
	}
	if l.Country != "" {
		props["country"] = l.Country
	}
	if l.City != "" {
		props["city"] = l.City
	}
	if l.Latitude != nil {
		props["latitude"] = *l.Latitude
	}
	if l.Longitude != nil {
		props["longitude"] = *l.Longitude
	}
	return props
}

// LocationFromNode rebuilds a Location from its stored node form.
func LocationFromNode(n Node) Location {
	l := Location{
		UID:     n.UID,
		Name:    asString(n.Properties, "name"),
		Country: asString(n.Properties, "country"),
		City:    asString(n.Properties, "city"),
	}
	if v, ok := asFloat(n.Properties, "latitude"); ok {
		l.Latitude = &v
	}
	if v, ok := asFloat(n.Properties, "longitude"); ok {
		l.Longitude = &v
	}
	l.CreatedAt = n.CreatedAt()
	l.UpdatedAt = n.UpdatedAt()
	return l
}
