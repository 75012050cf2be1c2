package graph

import (
	"errors"
	"sort"
	"testing"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

func newBuiltinRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	for _, s := range Builtin() {
		if err := r.Register(s); err != nil {
			t.Fatalf("Register(%s) = %v", s.Label, err)
		}
	}
	return r
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("duplicate label conflicts", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		if err := r.Register(Schema{Label: "Widget"}); err != nil {
			t.Fatalf("first Register() = %v, want nil", err)
		}

		err := r.Register(Schema{Label: "Widget"})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("second Register() = %v, want ErrConflict", err)
		}
	})

	t.Run("empty label rejected", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		err := r.Register(Schema{Label: "  "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register() = %v, want ErrValidation", err)
		}
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := newBuiltinRegistry(t)

	s, ok := r.Lookup(LabelPerson)
	if !ok {
		t.Fatal("Lookup(Person) = false, want true")
	}
	if s.Label != LabelPerson {
		t.Errorf("Label = %q, want %q", s.Label, LabelPerson)
	}

	if _, ok := r.Lookup("Ghost"); ok {
		t.Error("Lookup(Ghost) = true, want false")
	}
}

func TestRegistry_ValidLabel(t *testing.T) {
	t.Parallel()

	r := newBuiltinRegistry(t)

	if !r.ValidLabel(LabelTag) {
		t.Error("ValidLabel(Tag) = false, want true")
	}
	if r.ValidLabel("n) DETACH DELETE n //") {
		t.Error("ValidLabel accepted unregistered input")
	}
}

func TestRegistry_SchemasSorted(t *testing.T) {
	t.Parallel()

	r := newBuiltinRegistry(t)
	schemas := r.Schemas()

	if len(schemas) != 5 {
		t.Fatalf("len(Schemas()) = %d, want 5", len(schemas))
	}
	labels := make([]string, len(schemas))
	for i, s := range schemas {
		labels[i] = s.Label
	}
	if !sort.StringsAreSorted(labels) {
		t.Errorf("Schemas() labels not sorted: %v", labels)
	}
}

func TestRegistry_RelationshipTypes(t *testing.T) {
	t.Parallel()

	r := newBuiltinRegistry(t)
	types := r.RelationshipTypes()

	want := map[string]bool{
		RelKnows: true, RelWorksFor: true, RelLivesIn: true,
		RelLocatedIn: true, RelPartnersWith: true, RelOwnedBy: true,
		RelAssignedTo: true, RelDependsOn: true,
	}
	if len(types) != len(want) {
		t.Fatalf("RelationshipTypes() = %v, want %d distinct types", types, len(want))
	}
	for _, typ := range types {
		if !want[typ] {
			t.Errorf("unexpected relationship type %q", typ)
		}
	}
	if !sort.StringsAreSorted(types) {
		t.Errorf("RelationshipTypes() not sorted: %v", types)
	}
}

func TestBuiltin_SchemaShapes(t *testing.T) {
	t.Parallel()

	r := newBuiltinRegistry(t)

	person, _ := r.Lookup(LabelPerson)
	byName := make(map[string]PropertySpec, len(person.Properties))
	for _, p := range person.Properties {
		byName[p.Name] = p
	}

	name, ok := byName["name"]
	if !ok || !name.Required || name.MaxLength != 100 {
		t.Errorf("Person.name property = %+v, want required max 100", name)
	}
	email, ok := byName["email"]
	if !ok || !email.Unique || email.MaxLength != 255 {
		t.Errorf("Person.email property = %+v, want unique max 255", email)
	}
	if _, ok := byName["uid"]; !ok {
		t.Error("Person schema missing base uid property")
	}

	project, _ := r.Lookup(LabelProject)
	var status PropertySpec
	for _, p := range project.Properties {
		if p.Name == "status" {
			status = p
		}
	}
	if len(status.Choices) != 4 || status.Default != string(ProjectPlanning) {
		t.Errorf("Project.status property = %+v, want 4 choices default planning", status)
	}

	org, _ := r.Lookup(LabelOrganization)
	var employees RelationshipSpec
	for _, rel := range org.Relationships {
		if rel.Name == "employees" {
			employees = rel
		}
	}
	if employees.Type != RelWorksFor || employees.Direction != DirectionIncoming || employees.Target != LabelPerson {
		t.Errorf("Organization.employees relationship = %+v, want incoming WORKS_FOR from Person", employees)
	}
}
