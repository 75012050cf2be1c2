package graph

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

// PropertyKind describes the storage type of a schema property.
type PropertyKind string

const (
	KindString   PropertyKind = "string"
	KindInt      PropertyKind = "integer"
	KindFloat    PropertyKind = "float"
	KindBool     PropertyKind = "boolean"
	KindDateTime PropertyKind = "datetime"
	KindDate     PropertyKind = "date"
)

// PropertySpec describes one property of a registered node model.
type PropertySpec struct {
	Name      string
	Kind      PropertyKind
	Required  bool
	Unique    bool
	MaxLength int
	Choices   []string
	Default   any
}

// RelationshipSpec describes one declared relationship of a node model.
type RelationshipSpec struct {
	// Name is the accessor name on the model, e.g. "works_for".
	Name string
	// Type is the relationship type, e.g. WORKS_FOR.
	Type string
	// Direction is outgoing for relationships the model points at others
	// with, incoming for relationships others point at the model with.
	Direction Direction
	// Target is the label of the node model at the other end.
	Target string
	// Model names the property model attached to the relationship, empty
	// when only the base properties apply.
	Model string
}

// Schema describes a registered node model: its label plus declared
// properties and relationships.
type Schema struct {
	Label         string
	Properties    []PropertySpec
	Relationships []RelationshipSpec
}

// Registry holds the set of known node models. It is the counterpart of the
// original model auto-discovery: models register explicitly at composition
// time, and query layers consult the registry to validate labels before
// interpolating them into Cypher.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register adds a node model schema. Registering the same label twice
// returns an error wrapping domain.ErrConflict.
func (r *Registry) Register(s Schema) error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("%w: schema label must not be empty", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Label]; exists {
		return fmt.Errorf("%w: model %q already registered", domain.ErrConflict, s.Label)
	}
	r.schemas[s.Label] = s
	return nil
}

// Lookup returns the schema registered for label.
func (r *Registry) Lookup(label string) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[label]
	return s, ok
}

// ValidLabel reports whether label names a registered model. Only
// registered labels may be interpolated into Cypher.
func (r *Registry) ValidLabel(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.schemas[label]
	return ok
}

// Schemas returns all registered schemas sorted by label.
func (r *Registry) Schemas() []Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Labels returns all registered labels sorted.
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.schemas))
	for label := range r.schemas {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// RelationshipTypes returns the distinct relationship types declared across
// all registered schemas, sorted.
func (r *Registry) RelationshipTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, s := range r.schemas {
		for _, rel := range s.Relationships {
			seen[rel.Type] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// baseProperties are shared by every node model: the stable identifier plus
// store-maintained timestamps.
func baseProperties(props ...PropertySpec) []PropertySpec {
	base := []PropertySpec{
		{Name: "uid", Kind: KindString, Required: true, Unique: true},
		{Name: "created_at", Kind: KindDateTime},
		{Name: "updated_at", Kind: KindDateTime},
	}
	return append(base, props...)
}

// Builtin returns the model schemas shipped with the service.
func Builtin() []Schema {
	return []Schema{
		{
			Label: LabelPerson,
			Properties: baseProperties(
				PropertySpec{Name: "name", Kind: KindString, Required: true, MaxLength: maxPersonName},
				PropertySpec{Name: "email", Kind: KindString, Unique: true, MaxLength: maxPersonEmail},
				PropertySpec{Name: "age", Kind: KindInt},
				PropertySpec{Name: "is_active", Kind: KindBool, Default: true},
			),
			Relationships: []RelationshipSpec{
				{Name: "knows", Type: RelKnows, Direction: DirectionOutgoing, Target: LabelPerson, Model: "Knows"},
				{Name: "works_for", Type: RelWorksFor, Direction: DirectionOutgoing, Target: LabelOrganization, Model: "WorksFor"},
				{Name: "lives_in", Type: RelLivesIn, Direction: DirectionOutgoing, Target: LabelLocation},
			},
		},
		{
			Label: LabelOrganization,
			Properties: baseProperties(
				PropertySpec{Name: "name", Kind: KindString, Required: true, MaxLength: maxOrganizationName},
				PropertySpec{Name: "description", Kind: KindString},
				PropertySpec{Name: "industry", Kind: KindString, MaxLength: maxIndustry},
				PropertySpec{Name: "employee_count", Kind: KindInt},
				PropertySpec{Name: "website", Kind: KindString, MaxLength: maxWebsite},
			),
			Relationships: []RelationshipSpec{
				{Name: "employees", Type: RelWorksFor, Direction: DirectionIncoming, Target: LabelPerson, Model: "WorksFor"},
				{Name: "located_in", Type: RelLocatedIn, Direction: DirectionOutgoing, Target: LabelLocation},
				{Name: "partners_with", Type: RelPartnersWith, Direction: DirectionOutgoing, Target: LabelOrganization, Model: "PartnersWith"},
			},
		},
		{
			Label: LabelLocation,
			Properties: baseProperties(
				PropertySpec{Name: "name", Kind: KindString, Required: true, MaxLength: maxLocationName},
				PropertySpec{Name: "country", Kind: KindString},
				PropertySpec{Name: "city", Kind: KindString},
				PropertySpec{Name: "latitude", Kind: KindFloat},
				PropertySpec{Name: "longitude", Kind: KindFloat},
			),
		},
		{
			Label: LabelProject,
			Properties: baseProperties(
				PropertySpec{Name: "name", Kind: KindString, Required: true, MaxLength: maxProjectName},
				PropertySpec{Name: "description", Kind: KindString},
				PropertySpec{
					Name: "status", Kind: KindString,
					Choices: []string{
						string(ProjectPlanning), string(ProjectActive),
						string(ProjectCompleted), string(ProjectCancelled),
					},
					Default: string(DefaultProjectStatus),
				},
				PropertySpec{Name: "budget", Kind: KindFloat},
				PropertySpec{Name: "start_date", Kind: KindDate},
				PropertySpec{Name: "end_date", Kind: KindDate},
			),
			Relationships: []RelationshipSpec{
				{Name: "owned_by", Type: RelOwnedBy, Direction: DirectionOutgoing, Target: LabelOrganization},
				{Name: "assigned_to", Type: RelAssignedTo, Direction: DirectionIncoming, Target: LabelPerson, Model: "AssignedTo"},
				{Name: "depends_on", Type: RelDependsOn, Direction: DirectionOutgoing, Target: LabelProject, Model: "DependsOn"},
			},
		},
		{
			Label: LabelTag,
			Properties: baseProperties(
				PropertySpec{Name: "name", Kind: KindString, Required: true, Unique: true, MaxLength: maxTagName},
				PropertySpec{Name: "description", Kind: KindString},
				PropertySpec{Name: "color", Kind: KindString, MaxLength: 7},
			),
		},
	}
}
