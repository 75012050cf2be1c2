package graph

import (
	"testing"
	"time"
)

func TestIsRelationshipType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{
			name:  "known type",
			value: RelWorksFor,
			want:  true,
		},
		{
			name:  "single letter",
			value: "A",
			want:  true,
		},
		{
			name:  "digits after first letter",
			value: "TIER2_SUPPORT",
			want:  true,
		},
		{
			name:  "lowercase rejected",
			value: "works_for",
			want:  false,
		},
		{
			name:  "empty rejected",
			value: "",
			want:  false,
		},
		{
			name:  "cypher injection rejected",
			value: "KNOWS]->() DETACH DELETE n//",
			want:  false,
		},
		{
			name:  "leading digit rejected",
			value: "1KNOWS",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRelationshipType(tt.value); got != tt.want {
				t.Errorf("IsRelationshipType(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestKnowsFromProperties_Defaults(t *testing.T) {
	t.Parallel()

	k := KnowsFromProperties(map[string]any{})

	if k.RelationshipType != KnowsAcquaintance {
		t.Errorf("RelationshipType = %q, want %q", k.RelationshipType, KnowsAcquaintance)
	}
	if k.Strength != 1 {
		t.Errorf("Strength = %d, want 1", k.Strength)
	}
	if k.Since != nil {
		t.Errorf("Since = %v, want nil", k.Since)
	}
}

func TestKnows_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		knows     Knows
		wantField string
	}{
		{
			name:      "strength below range",
			knows:     Knows{RelationshipType: KnowsFriend, Strength: 0},
			wantField: "strength",
		},
		{
			name:      "strength above range",
			knows:     Knows{RelationshipType: KnowsFriend, Strength: 11},
			wantField: "strength",
		},
		{
			name:      "unknown relationship type",
			knows:     Knows{RelationshipType: "enemy", Strength: 5},
			wantField: "relationship_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, tt.knows.Validate(), tt.wantField)
		})
	}

	t.Run("valid knows passes", func(t *testing.T) {
		t.Parallel()
		k := Knows{RelationshipType: KnowsColleague, Strength: 7}
		if err := k.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestWorksForFromProperties_Defaults(t *testing.T) {
	t.Parallel()

	w := WorksForFromProperties(map[string]any{"position": "Engineer"})

	if !w.IsCurrent {
		t.Error("IsCurrent default = false, want true")
	}
	if w.Position != "Engineer" {
		t.Errorf("Position = %q, want Engineer", w.Position)
	}
}

func TestAssignedTo_Validate(t *testing.T) {
	t.Parallel()

	a := AssignedToFromProperties(map[string]any{})
	if a.AllocationPercentage != 100 {
		t.Errorf("AllocationPercentage default = %d, want 100", a.AllocationPercentage)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}

	a.AllocationPercentage = 150
	requireValidationField(t, a.Validate(), "allocation_percentage")
}

func TestDependsOn_Validate(t *testing.T) {
	t.Parallel()

	d := DependsOnFromProperties(map[string]any{})
	if d.DependencyType != DependencyRelated {
		t.Errorf("DependencyType default = %q, want %q", d.DependencyType, DependencyRelated)
	}
	if d.Criticality != 1 {
		t.Errorf("Criticality default = %d, want 1", d.Criticality)
	}

	d.Criticality = 6
	requireValidationField(t, d.Validate(), "criticality")
}

func TestValidateRelationshipProperties(t *testing.T) {
	t.Parallel()

	t.Run("knows normalizes and validates", func(t *testing.T) {
		t.Parallel()

		props, err := ValidateRelationshipProperties(RelKnows, map[string]any{"strength": 3})
		if err != nil {
			t.Fatalf("ValidateRelationshipProperties() = %v, want nil", err)
		}
		if props["strength"] != 3 {
			t.Errorf("strength = %v, want 3", props["strength"])
		}
		if props["relationship_type"] != string(KnowsAcquaintance) {
			t.Errorf("relationship_type = %v, want default %q", props["relationship_type"], KnowsAcquaintance)
		}
	})

	t.Run("invalid model properties rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateRelationshipProperties(RelAssignedTo, map[string]any{"allocation_percentage": -10})
		requireValidationField(t, err, "allocation_percentage")
	})

	t.Run("unmodeled type passes through", func(t *testing.T) {
		t.Parallel()

		in := map[string]any{"note": "inferred"}
		props, err := ValidateRelationshipProperties(RelOwns, in)
		if err != nil {
			t.Fatalf("ValidateRelationshipProperties() = %v, want nil", err)
		}
		if props["note"] != "inferred" {
			t.Errorf("props = %v, want passthrough", props)
		}
	})
}

func TestPartnersWith_Properties_RoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	p := PartnersWith{
		PartnershipType: PartnershipTechnical,
		ContractValue:   floatPtr(120000),
		StartDate:       &start,
		IsActive:        true,
	}

	rebuilt := PartnersWithFromProperties(p.Properties())

	if rebuilt.PartnershipType != PartnershipTechnical {
		t.Errorf("PartnershipType = %q, want %q", rebuilt.PartnershipType, PartnershipTechnical)
	}
	if rebuilt.ContractValue == nil || *rebuilt.ContractValue != 120000 {
		t.Errorf("ContractValue = %v, want 120000", rebuilt.ContractValue)
	}
	if rebuilt.StartDate == nil || !rebuilt.StartDate.Equal(start) {
		t.Errorf("StartDate = %v, want %v", rebuilt.StartDate, start)
	}
}
