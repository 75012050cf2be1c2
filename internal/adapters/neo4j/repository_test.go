package neo4j

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// testRepository builds a Repository with the builtin registry and no
// driver. Validation happens before any session is opened, so these tests
// never touch the network.
func testRepository(t *testing.T) *Repository {
	t.Helper()

	registry := graph.NewRegistry()
	for _, schema := range graph.Builtin() {
		if err := registry.Register(schema); err != nil {
			t.Fatalf("register %s: %v", schema.Label, err)
		}
	}
	return &Repository{registry: registry}
}

func TestUpsertNode_UnknownLabel(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.UpsertNode(context.Background(), "Widget", "", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGetNode_UnknownLabel(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.GetNode(context.Background(), "Widget", "x-1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteNode_UnknownLabel(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	err := repo.DeleteNode(context.Background(), "Widget", "x-1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestCreateRelationship_InvalidType(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	tests := []struct {
		name    string
		relType string
	}{
		{name: "lowercase", relType: "knows"},
		{name: "injection attempt", relType: "KNOWS]->() MATCH (x"},
		{name: "empty", relType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := repo.CreateRelationship(context.Background(), "p-1", "p-2", tt.relType, nil)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation for %q, got %v", tt.relType, err)
			}
		})
	}
}

func TestCreateRelationship_InvalidProperties(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.CreateRelationship(context.Background(), "p-1", "p-2", graph.RelKnows, map[string]any{
		"strength": 99,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["strength"]; !ok {
		t.Errorf("expected strength field error, got %v", verr.Fields)
	}
}

func TestDeleteRelationship_InvalidType(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	err := repo.DeleteRelationship(context.Background(), "p-1", "p-2", "nope")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestNodesByLabel_UnknownLabel(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.NodesByLabel(context.Background(), "Widget", nil, 10)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestNodesByLabel_UnknownFilterKey(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.NodesByLabel(context.Background(), graph.LabelPerson, map[string]any{"favorite_color": "blue"}, 10)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["favorite_color"]; !ok {
		t.Errorf("expected favorite_color field error, got %v", verr.Fields)
	}
}

func TestNodesByText_EmptyText(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.NodesByText(context.Background(), "   ", nil, 10)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestShortestPath_InvalidRelType(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.ShortestPath(context.Background(), "p-1", "p-2", 4, []string{"KNOWS", "bad type"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestNeighbors_InvalidDirection(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.Neighbors(context.Background(), "p-1", 2, graph.Direction("sideways"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestAggregateByRelationship_Validation(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)
	ctx := context.Background()

	if _, err := repo.AggregateByRelationship(ctx, "Widget", graph.RelWorksFor, graph.AggregateCount); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown label: expected ErrValidation, got %v", err)
	}
	if _, err := repo.AggregateByRelationship(ctx, graph.LabelPerson, "bad type", graph.AggregateCount); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad type: expected ErrValidation, got %v", err)
	}
	if _, err := repo.AggregateByRelationship(ctx, graph.LabelPerson, graph.RelWorksFor, graph.AggregateOp("median")); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad op: expected ErrValidation, got %v", err)
	}
}

func TestCountByLabel_UnknownLabel(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.CountByLabel(context.Background(), "Widget")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRun_EmptyQuery(t *testing.T) {
	t.Parallel()

	repo := testRepository(t)

	_, err := repo.Run(context.Background(), "  ", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestWritableProps(t *testing.T) {
	t.Parallel()

	got := writableProps(map[string]any{
		"uid":        "p-1",
		"created_at": "2024-01-01T00:00:00Z",
		"updated_at": "2024-01-02T00:00:00Z",
		"name":       "Ada",
		"age":        36,
	})

	want := map[string]any{"name": "Ada", "age": 36}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("writableProps = %v, want %v", got, want)
	}
}

func TestClampDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{in: -1, want: 1},
		{in: 0, want: 1},
		{in: 3, want: 3},
		{in: 5, want: 5},
		{in: 12, want: 5},
	}

	for _, tt := range tests {
		if got := clampDepth(tt.in); got != tt.want {
			t.Errorf("clampDepth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTranslateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "constraint violation",
			err:  &db.Neo4jError{Code: "Neo.ClientError.Schema.ConstraintValidationFailed", Msg: "email taken"},
			want: domain.ErrConflict,
		},
		{
			name: "syntax error",
			err:  &db.Neo4jError{Code: "Neo.ClientError.Statement.SyntaxError", Msg: "bad cypher"},
			want: domain.ErrValidation,
		},
		{
			name: "unauthorized",
			err:  &db.Neo4jError{Code: "Neo.ClientError.Security.Unauthorized", Msg: "bad credentials"},
			want: domain.ErrForbidden,
		},
		{
			name: "transient",
			err:  &db.Neo4jError{Code: "Neo.TransientError.General.MemoryPoolOutOfMemoryError", Msg: "busy"},
			want: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("translateError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()

		if got := translateError(nil); got != nil {
			t.Errorf("translateError(nil) = %v", got)
		}
	})

	t.Run("unrecognized error passes through", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("boom")
		if got := translateError(plain); got != plain {
			t.Errorf("translateError(plain) = %v, want same error", got)
		}
	})
}
