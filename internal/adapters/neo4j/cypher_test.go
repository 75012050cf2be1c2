package neo4j

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

func TestUpsertNodeCypher(t *testing.T) {
	t.Parallel()

	got := upsertNodeCypher("Person")
	want := `MERGE (n:Person {uid: $uid})
ON CREATE SET n.created_at = datetime($now)
SET n += $props, n.updated_at = datetime($now)
RETURN n`

	if got != want {
		t.Errorf("upsertNodeCypher(Person) = %q, want %q", got, want)
	}
}

func TestGetNodeCypher(t *testing.T) {
	t.Parallel()

	t.Run("with label", func(t *testing.T) {
		t.Parallel()

		got := getNodeCypher("Organization")
		if got != `MATCH (n:Organization {uid: $uid}) RETURN n` {
			t.Errorf("unexpected query: %q", got)
		}
	})

	t.Run("any label", func(t *testing.T) {
		t.Parallel()

		got := getNodeCypher("")
		if got != `MATCH (n {uid: $uid}) RETURN n` {
			t.Errorf("unexpected query: %q", got)
		}
	})
}

func TestDeleteNodeCypher(t *testing.T) {
	t.Parallel()

	got := deleteNodeCypher("Tag")
	want := `MATCH (n:Tag {uid: $uid})
DETACH DELETE n
RETURN count(n) AS deleted`

	if got != want {
		t.Errorf("deleteNodeCypher(Tag) = %q, want %q", got, want)
	}
}

func TestCreateRelationshipCypher(t *testing.T) {
	t.Parallel()

	got := createRelationshipCypher("WORKS_FOR")
	want := `MATCH (a {uid: $from_uid})
MATCH (b {uid: $to_uid})
MERGE (a)-[r:WORKS_FOR]->(b)
ON CREATE SET r.created_at = datetime($now)
SET r += $props, r.updated_at = datetime($now)
RETURN r`

	if got != want {
		t.Errorf("createRelationshipCypher(WORKS_FOR) = %q, want %q", got, want)
	}
}

func TestDeleteRelationshipCypher(t *testing.T) {
	t.Parallel()

	got := deleteRelationshipCypher("KNOWS")
	want := `MATCH ({uid: $from_uid})-[r:KNOWS]->({uid: $to_uid})
DELETE r
RETURN count(r) AS deleted`

	if got != want {
		t.Errorf("deleteRelationshipCypher(KNOWS) = %q, want %q", got, want)
	}
}

func TestNodesByLabelCypher_NoFilters(t *testing.T) {
	t.Parallel()

	query, params := nodesByLabelCypher("Person", nil)

	want := "MATCH (n:Person)\nRETURN n\nORDER BY n.uid\nLIMIT $limit"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(params) != 0 {
		t.Errorf("expected no params, got %v", params)
	}
}

func TestNodesByLabelCypher_FiltersSorted(t *testing.T) {
	t.Parallel()

	query, params := nodesByLabelCypher("Person", map[string]any{
		"name":      "Ada",
		"age":       36,
		"is_active": true,
	})

	want := "MATCH (n:Person)\n" +
		"WHERE n.age = $f_age AND n.is_active = $f_is_active AND n.name = $f_name\n" +
		"RETURN n\nORDER BY n.uid\nLIMIT $limit"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}

	wantParams := map[string]any{"f_age": 36, "f_is_active": true, "f_name": "Ada"}
	if !reflect.DeepEqual(params, wantParams) {
		t.Errorf("params = %v, want %v", params, wantParams)
	}
}

func TestTextPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain text", text: "ada", want: "(?i).*ada.*"},
		{name: "spaces preserved", text: "ada lovelace", want: "(?i).*ada lovelace.*"},
		{name: "metacharacters quoted", text: "a+b (corp)", want: `(?i).*a\+b \(corp\).*`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := textPattern(tt.text); got != tt.want {
				t.Errorf("textPattern(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestShortestPathCypher(t *testing.T) {
	t.Parallel()

	t.Run("unrestricted", func(t *testing.T) {
		t.Parallel()

		got := shortestPathCypher(6, nil)
		want := `MATCH (a {uid: $from_uid}), (b {uid: $to_uid})
MATCH p = shortestPath((a)-[*1..6]-(b))
RETURN p`
		if got != want {
			t.Errorf("shortestPathCypher(6, nil) = %q, want %q", got, want)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		t.Parallel()

		got := shortestPathCypher(3, []string{"KNOWS", "WORKS_FOR"})
		if !strings.Contains(got, "[:KNOWS|WORKS_FOR*1..3]") {
			t.Errorf("expected type-filtered pattern, got %q", got)
		}
	})
}

func TestNeighborsCypher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction graph.Direction
		pattern   string
	}{
		{name: "outgoing", direction: graph.DirectionOutgoing, pattern: "(n)-[*1..2]->(m)"},
		{name: "incoming", direction: graph.DirectionIncoming, pattern: "(n)<-[*1..2]-(m)"},
		{name: "both", direction: graph.DirectionBoth, pattern: "(n)-[*1..2]-(m)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := neighborsCypher(2, tt.direction)
			if !strings.Contains(got, tt.pattern) {
				t.Errorf("neighborsCypher(2, %s) = %q, want pattern %q", tt.direction, got, tt.pattern)
			}
			if !strings.Contains(got, "min(length(p)) AS distance") {
				t.Errorf("expected distance column in %q", got)
			}
		})
	}
}

func TestAggregateCypher(t *testing.T) {
	t.Parallel()

	got := aggregateCypher("Organization", "WORKS_FOR")
	want := `MATCH (n:Organization)-[r:WORKS_FOR]->()
RETURN n.uid AS uid, n.name AS name, count(r) AS value
ORDER BY value DESC
LIMIT 100`

	if got != want {
		t.Errorf("aggregateCypher = %q, want %q", got, want)
	}
}

func TestCountByLabelCypher(t *testing.T) {
	t.Parallel()

	got := countByLabelCypher("Project")
	if got != `MATCH (n:Project) RETURN count(n) AS total` {
		t.Errorf("unexpected query: %q", got)
	}
}
