package graph

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

// Relationship types used by the built-in models and by LLM relationship
// suggestions.
const (
	RelKnows        = "KNOWS"
	RelWorksFor     = "WORKS_FOR"
	RelLivesIn      = "LIVES_IN"
	RelLocatedIn    = "LOCATED_IN"
	RelPartnersWith = "PARTNERS_WITH"
	RelOwnedBy      = "OWNED_BY"
	RelAssignedTo   = "ASSIGNED_TO"
	RelDependsOn    = "DEPENDS_ON"
	RelOwns         = "OWNS"
	RelTagged       = "TAGGED"
)

// relTypePattern constrains relationship types to SCREAMING_SNAKE_CASE
// identifiers. Relationship types are interpolated into Cypher (the driver
// cannot parameterize them), so anything outside this alphabet is rejected
// before it reaches a query.
var relTypePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]{0,49}$`)

// IsRelationshipType reports whether s is a safe relationship type
// identifier.
func IsRelationshipType(s string) bool {
	return relTypePattern.MatchString(s)
}

// Relationship is a stored relationship in generic form. Properties always
// include created_at and updated_at, maintained by the store, plus
// created_by when the writer supplied one.
type Relationship struct {
	Type       string
	FromUID    string
	ToUID      string
	Properties map[string]any
}

// KnowsType classifies the social connection of a KNOWS relationship.
type KnowsType string

const (
	KnowsFriend       KnowsType = "friend"
	KnowsColleague    KnowsType = "colleague"
	KnowsFamily       KnowsType = "family"
	KnowsAcquaintance KnowsType = "acquaintance"
)

// IsValid returns true if the value is one of the defined constants.
func (k KnowsType) IsValid() bool {
	switch k {
	case KnowsFriend, KnowsColleague, KnowsFamily, KnowsAcquaintance:
		return true
	default:
		return false
	}
}

// Knows is the property model for KNOWS relationships between persons.
type Knows struct {
	Since            *time.Time
	RelationshipType KnowsType
	Strength         int
}

// KnowsFromProperties builds a Knows from a generic property map, applying
// model defaults for absent keys.
func KnowsFromProperties(props map[string]any) Knows {
	k := Knows{RelationshipType: KnowsAcquaintance, Strength: 1}
	if v := asString(props, "relationship_type"); v != "" {
		k.RelationshipType = KnowsType(v)
	}
	if v, ok := asInt(props, "strength"); ok {
		k.Strength = v
	}
	if t, ok := asTime(props, "since"); ok {
		k.Since = &t
	}
	return k
}

// Validate checks the KNOWS property model rules.
func (k *Knows) Validate() error {
	fields := make(map[string]string)
	if !k.RelationshipType.IsValid() {
		fields["relationship_type"] = fmt.Sprintf("invalid: %q", k.RelationshipType)
	}
	if k.Strength < 1 || k.Strength > 10 {
		fields["strength"] = fmt.Sprintf("must be 1-10, got %d", k.Strength)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the normalized property map for persistence.
func (k *Knows) Properties() map[string]any {
	props := map[string]any{
		"relationship_type": string(k.RelationshipType),
		"strength":          k.Strength,
	}
	if k.Since != nil {
		props["since"] = k.Since.Format(dateLayout)
	}
	return props
}

// WorksFor is the property model for WORKS_FOR relationships between a
// person and an organization.
type WorksFor struct {
	Position   string
	Department string
	Salary     *float64
	StartDate  *time.Time
	EndDate    *time.Time
	IsCurrent  bool
}

const (
	maxPosition   = 100
	maxDepartment = 100
)

// WorksForFromProperties builds a WorksFor from a generic property map,
// applying model defaults for absent keys.
func WorksForFromProperties(props map[string]any) WorksFor {
	w := WorksFor{
		Position:   asString(props, "position"),
		Department: asString(props, "department"),
		IsCurrent:  true,
	}
	if v, ok := asFloat(props, "salary"); ok {
		w.Salary = &v
	}
	if t, ok := asTime(props, "start_date"); ok {
		w.StartDate = &t
	}
	if t, ok := asTime(props, "end_date"); ok {
		w.EndDate = &t
	}
	if v, ok := asBool(props, "is_current"); ok {
		w.IsCurrent = v
	}
	return w
}

// Validate checks the WORKS_FOR property model rules.
func (w *WorksFor) Validate() error {
	fields := make(map[string]string)
	if len(w.Position) > maxPosition {
		fields["position"] = fmt.Sprintf("must be at most %d characters", maxPosition)
	}
	if len(w.Department) > maxDepartment {
		fields["department"] = fmt.Sprintf("must be at most %d characters", maxDepartment)
	}
	if w.Salary != nil && *w.Salary < 0 {
		fields["salary"] = fmt.Sprintf("must not be negative, got %g", *w.Salary)
	}
	if w.StartDate != nil && w.EndDate != nil && w.EndDate.Before(*w.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the normalized property map for persistence.
func (w *WorksFor) Properties() map[string]any {
	props := map[string]any{
		"is_current": w.IsCurrent,
	}
	if w.Position != "" {
		props["position"] = w.Position
	}
	if w.Department != "" {
		props["department"] = w.Department
	}
	if w.Salary != nil {
		props["salary"] = *w.Salary
	}
	if w.StartDate != nil {
		props["start_date"] = w.StartDate.Format(dateLayout)
	}
	if w.EndDate != nil {
		props["end_date"] = w.EndDate.Format(dateLayout)
	}
	return props
}

// PartnershipType classifies a PARTNERS_WITH relationship.
type PartnershipType string

const (
	PartnershipStrategic PartnershipType = "strategic"
	PartnershipTechnical PartnershipType = "technical"
	PartnershipFinancial PartnershipType = "financial"
	PartnershipVendor    PartnershipType = "vendor"
)

// IsValid returns true if the value is one of the defined constants.
func (p PartnershipType) IsValid() bool {
	switch p {
	case PartnershipStrategic, PartnershipTechnical, PartnershipFinancial, PartnershipVendor:
		return true
	default:
		return false
	}
}

// PartnersWith is the property model for PARTNERS_WITH relationships
// between organizations.
type PartnersWith struct {
	PartnershipType PartnershipType
	ContractValue   *float64
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        bool
}

// PartnersWithFromProperties builds a PartnersWith from a generic property
// map, applying model defaults for absent keys.
func PartnersWithFromProperties(props map[string]any) PartnersWith {
	p := PartnersWith{PartnershipType: PartnershipStrategic, IsActive: true}
	if v := asString(props, "partnership_type"); v != "" {
		p.PartnershipType = PartnershipType(v)
	}
	if v, ok := asFloat(props, "contract_value"); ok {
		p.ContractValue = &v
	}
	if t, ok := asTime(props, "start_date"); ok {
		p.StartDate = &t
	}
	if t, ok := asTime(props, "end_date"); ok {
		p.EndDate = &t
	}
	if v, ok := asBool(props, "is_active"); ok {
		p.IsActive = v
	}
	return p
}

// Validate checks the PARTNERS_WITH property model rules.
func (p *PartnersWith) Validate() error {
	fields := make(map[string]string)
	if !p.PartnershipType.IsValid() {
		fields["partnership_type"] = fmt.Sprintf("invalid: %q", p.PartnershipType)
	}
	if p.ContractValue != nil && *p.ContractValue < 0 {
		fields["contract_value"] = fmt.Sprintf("must not be negative, got %g", *p.ContractValue)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the normalized property map for persistence.
func (p *PartnersWith) Properties() map[string]any {
	props := map[string]any{
		"partnership_type": string(p.PartnershipType),
		"is_active":        p.IsActive,
	}
	if p.ContractValue != nil {
		props["contract_value"] = *p.ContractValue
	}
	if p.StartDate != nil {
		props["start_date"] = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		props["end_date"] = p.EndDate.Format(dateLayout)
	}
	return props
}

// AssignedTo is the property model for ASSIGNED_TO relationships between a
// person and a project.
type AssignedTo struct {
	Role                 string
	AllocationPercentage int
	StartDate            *time.Time
	EndDate              *time.Time
	IsLead               bool
}

const maxRole = 100

// AssignedToFromProperties builds an AssignedTo from a generic property map,
// applying model defaults for absent keys.
func AssignedToFromProperties(props map[string]any) AssignedTo {
	a := AssignedTo{Role: asString(props, "role"), AllocationPercentage: 100}
	if v, ok := asInt(props, "allocation_percentage"); ok {
		a.AllocationPercentage = v
	}
	if t, ok := asTime(props, "start_date"); ok {
		a.StartDate = &t
	}
	if t, ok := asTime(props, "end_date"); ok {
		a.EndDate = &t
	}
	if v, ok := asBool(props, "is_lead"); ok {
		a.IsLead = v
	}
	return a
}

// Validate checks the ASSIGNED_TO property model rules.
func (a *AssignedTo) Validate() error {
	fields := make(map[string]string)
	if len(a.Role) > maxRole {
		fields["role"] = fmt.Sprintf("must be at most %d characters", maxRole)
	}
	if a.AllocationPercentage < 0 || a.AllocationPercentage > 100 {
		fields["allocation_percentage"] = fmt.Sprintf("must be 0-100, got %d", a.AllocationPercentage)
	}
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the normalized property map for persistence.
func (a *AssignedTo) Properties() map[string]any {
	props := map[string]any{
		"allocation_percentage": a.AllocationPercentage,
		"is_lead":               a.IsLead,
	}
	if a.Role != "" {
		props["role"] = a.Role
	}
	if a.StartDate != nil {
		props["start_date"] = a.StartDate.Format(dateLayout)
	}
	if a.EndDate != nil {
		props["end_date"] = a.EndDate.Format(dateLayout)
	}
	return props
}

// DependencyType classifies a DEPENDS_ON relationship.
type DependencyType string

const (
	DependencyBlocking     DependencyType = "blocking"
	DependencyRelated      DependencyType = "related"
	DependencyPrerequisite DependencyType = "prerequisite"
)

// IsValid returns true if the value is one of the defined constants.
func (d DependencyType) IsValid() bool {
	switch d {
	case DependencyBlocking, DependencyRelated, DependencyPrerequisite:
		return true
	default:
		return false
	}
}

// DependsOn is the property model for DEPENDS_ON relationships between
// projects.
type DependsOn struct {
	DependencyType DependencyType
	Criticality    int
	Description    string
}

// DependsOnFromProperties builds a DependsOn from a generic property map,
// applying model defaults for absent keys.
func DependsOnFromProperties(props map[string]any) DependsOn {
	d := DependsOn{
		DependencyType: DependencyRelated,
		Criticality:    1,
		Description:    asString(props, "description"),
	}
	if v := asString(props, "dependency_type"); v != "" {
		d.DependencyType = DependencyType(v)
	}
	if v, ok := asInt(props, "criticality"); ok {
		d.Criticality = v
	}
	return d
}

// Validate checks the DEPENDS_ON property model rules.
func (d *DependsOn) Validate() error {
	fields := make(map[string]string)
	if !d.DependencyType.IsValid() {
		fields["dependency_type"] = fmt.Sprintf("invalid: %q", d.DependencyType)
	}
	if d.Criticality < 1 || d.Criticality > 5 {
		fields["criticality"] = fmt.Sprintf("must be 1-5, got %d", d.Criticality)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Properties returns the normalized property map for persistence.
func (d *DependsOn) Properties() map[string]any {
	props := map[string]any{
		"dependency_type": string(d.DependencyType),
		"criticality":     d.Criticality,
	}
	if d.Description != "" {
		props["description"] = d.Description
	}
	return props
}

// ValidateRelationshipProperties validates and normalizes props against the
// property model for relType, returning the map to persist. Types without a
// property model pass through unchanged, so suggestion-only types such as
// OWNS can still be stored.
func ValidateRelationshipProperties(relType string, props map[string]any) (map[string]any, error) {
	switch relType {
	case RelKnows:
		m := KnowsFromProperties(props)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m.Properties(), nil
	case RelWorksFor:
		m := WorksForFromProperties(props)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m.Properties(), nil
	case RelPartnersWith:
		m := PartnersWithFromProperties(props)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m.Properties(), nil
	case RelAssignedTo:
		m := AssignedToFromProperties(props)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m.Properties(), nil
	case RelDependsOn:
		m := DependsOnFromProperties(props)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m.Properties(), nil
	default:
		return props, nil
	}
}
