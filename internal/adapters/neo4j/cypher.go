package neo4j

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// Default limits and traversal bounds.
const (
	defaultLabelLimit = 100
	defaultTextLimit  = 50
	defaultPathDepth  = 6
	minTraversalDepth = 1
	maxTraversalDepth = 5
	aggregateRowLimit = 100
)

// Cypher cannot parameterize labels or relationship types, so the builders
// below interpolate them after registry and alphabet checks have passed.
// Everything else binds as a parameter.

func upsertNodeCypher(label string) string {
	return fmt.Sprintf(`MERGE (n:%s {uid: $uid})
ON CREATE SET n.created_at = datetime($now)
SET n += $props, n.updated_at = datetime($now)
RETURN n`, label)
}

func getNodeCypher(label string) string {
	if label == "" {
		return `MATCH (n {uid: $uid}) RETURN n`
	}
	return fmt.Sprintf(`MATCH (n:%s {uid: $uid}) RETURN n`, label)
}

func deleteNodeCypher(label string) string {
	return fmt.Sprintf(`MATCH (n:%s {uid: $uid})
DETACH DELETE n
RETURN count(n) AS deleted`, label)
}

func createRelationshipCypher(relType string) string {
	return fmt.Sprintf(`MATCH (a {uid: $from_uid})
MATCH (b {uid: $to_uid})
MERGE (a)-[r:%s]->(b)
ON CREATE SET r.created_at = datetime($now)
SET r += $props, r.updated_at = datetime($now)
RETURN r`, relType)
}

func deleteRelationshipCypher(relType string) string {
	return fmt.Sprintf(`MATCH ({uid: $from_uid})-[r:%s]->({uid: $to_uid})
DELETE r
RETURN count(r) AS deleted`, relType)
}

// nodesByLabelCypher builds the filtered listing query. Filter keys are
// sorted so the generated text is stable; each key k binds to parameter f_k.
func nodesByLabelCypher(label string, filters map[string]any) (string, map[string]any) {
	params := make(map[string]any, len(filters)+1)

	var b strings.Builder
	fmt.Fprintf(&b, "MATCH (n:%s)", label)

	if len(filters) > 0 {
		keys := make([]string, 0, len(filters))
		for k := range filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		clauses := make([]string, 0, len(keys))
		for _, k := range keys {
			clauses = append(clauses, fmt.Sprintf("n.%s = $f_%s", k, k))
			params["f_"+k] = filters[k]
		}
		b.WriteString("\nWHERE " + strings.Join(clauses, " AND "))
	}

	b.WriteString("\nRETURN n\nORDER BY n.uid\nLIMIT $limit")
	return b.String(), params
}

// nodesByTextCypher scores matches by which property hit: name 10,
// description 5, title 1.
const nodesByTextCypher = `MATCH (n)
WHERE (size($labels) = 0 OR any(label IN labels(n) WHERE label IN $labels))
  AND (n.name =~ $pattern OR n.description =~ $pattern OR n.title =~ $pattern)
RETURN n,
       CASE
         WHEN n.name =~ $pattern THEN 10
         WHEN n.description =~ $pattern THEN 5
         ELSE 1
       END AS relevance
ORDER BY relevance DESC
LIMIT $limit`

// textPattern builds the case-insensitive containment regex for text search.
// The needle is quoted so regex metacharacters match literally.
func textPattern(text string) string {
	return "(?i).*" + regexp.QuoteMeta(text) + ".*"
}

func shortestPathCypher(maxDepth int, relTypes []string) string {
	typeFilter := ""
	if len(relTypes) > 0 {
		typeFilter = ":" + strings.Join(relTypes, "|")
	}
	return fmt.Sprintf(`MATCH (a {uid: $from_uid}), (b {uid: $to_uid})
MATCH p = shortestPath((a)-[%s*1..%d]-(b))
RETURN p`, typeFilter, maxDepth)
}

func neighborsCypher(depth int, direction graph.Direction) string {
	var pattern string
	switch direction {
	case graph.DirectionOutgoing:
		pattern = fmt.Sprintf("-[*1..%d]->", depth)
	case graph.DirectionIncoming:
		pattern = fmt.Sprintf("<-[*1..%d]-", depth)
	default:
		pattern = fmt.Sprintf("-[*1..%d]-", depth)
	}
	return fmt.Sprintf(`MATCH (n {uid: $uid})
MATCH p = (n)%s(m)
WHERE m.uid <> $uid
RETURN m, min(length(p)) AS distance
ORDER BY distance, m.uid`, pattern)
}

const nodeStatisticsCypher = `MATCH (n {uid: $uid})
OPTIONAL MATCH (n)-[outRel]->()
WITH n, count(outRel) AS outgoing, collect(DISTINCT type(outRel)) AS outgoing_types
OPTIONAL MATCH (n)<-[inRel]-()
RETURN n.uid AS uid, labels(n) AS labels,
       outgoing, outgoing_types,
       count(inRel) AS incoming, collect(DISTINCT type(inRel)) AS incoming_types`

// aggregateCypher counts relationships of one type per source node. Every
// whitelisted aggregation op reduces to this count today.
func aggregateCypher(label, relType string) string {
	return fmt.Sprintf(`MATCH (n:%s)-[r:%s]->()
RETURN n.uid AS uid, n.name AS name, count(r) AS value
ORDER BY value DESC
LIMIT %d`, label, relType, aggregateRowLimit)
}

func countByLabelCypher(label string) string {
	return fmt.Sprintf(`MATCH (n:%s) RETURN count(n) AS total`, label)
}
