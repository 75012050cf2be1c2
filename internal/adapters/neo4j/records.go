package neo4j

import (
	"fmt"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// nodeFromRecord extracts the node bound to key and converts it to the
// generic domain form.
func nodeFromRecord(record *neo4j.Record, key string) (*graph.Node, error) {
	value, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record has no %q column", key)
	}
	dbNode, ok := value.(dbtype.Node)
	if !ok {
		return nil, fmt.Errorf("column %q is %T, not a node", key, value)
	}
	node := nodeFromDB(dbNode)
	return &node, nil
}

func nodesFromRecords(records []*neo4j.Record, key string) ([]graph.Node, error) {
	nodes := make([]graph.Node, 0, len(records))
	for _, record := range records {
		node, err := nodeFromRecord(record, key)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}
	return nodes, nil
}

// nodeFromDB converts a driver node. The primary label is the first one the
// store reports.
func nodeFromDB(n dbtype.Node) graph.Node {
	props := plainProps(n.Props)

	label := ""
	if len(n.Labels) > 0 {
		label = n.Labels[0]
	}
	uid, _ := props["uid"].(string)

	return graph.Node{UID: uid, Label: label, Properties: props}
}

// relationshipFromRecord extracts the relationship bound to "r". The
// endpoints are identified by the uids the caller matched on; the driver
// only exposes internal element IDs.
func relationshipFromRecord(record *neo4j.Record, fromUID, toUID string) (*graph.Relationship, error) {
	value, ok := record.Get("r")
	if !ok {
		return nil, fmt.Errorf(`record has no "r" column`)
	}
	dbRel, ok := value.(dbtype.Relationship)
	if !ok {
		return nil, fmt.Errorf(`column "r" is %T, not a relationship`, value)
	}

	return &graph.Relationship{
		Type:       dbRel.Type,
		FromUID:    fromUID,
		ToUID:      toUID,
		Properties: plainProps(dbRel.Props),
	}, nil
}

// pathFromRecord extracts the path bound to key. Relationship endpoints are
// resolved back to node uids through the path's own node list.
func pathFromRecord(record *neo4j.Record, key string) (*graph.Path, error) {
	value, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record has no %q column", key)
	}
	dbPath, ok := value.(dbtype.Path)
	if !ok {
		return nil, fmt.Errorf("column %q is %T, not a path", key, value)
	}

	nodes := make([]graph.Node, 0, len(dbPath.Nodes))
	uidByElementID := make(map[string]string, len(dbPath.Nodes))
	for _, dbNode := range dbPath.Nodes {
		node := nodeFromDB(dbNode)
		nodes = append(nodes, node)
		uidByElementID[dbNode.ElementId] = node.UID
	}

	rels := make([]graph.Relationship, 0, len(dbPath.Relationships))
	for _, dbRel := range dbPath.Relationships {
		rels = append(rels, graph.Relationship{
			Type:       dbRel.Type,
			FromUID:    uidByElementID[dbRel.StartElementId],
			ToUID:      uidByElementID[dbRel.EndElementId],
			Properties: plainProps(dbRel.Props),
		})
	}

	return &graph.Path{Nodes: nodes, Relationships: rels, Length: len(rels)}, nil
}

func statisticsFromRecord(record *neo4j.Record) (*graph.NodeStatistics, error) {
	stats := &graph.NodeStatistics{
		UID:           stringColumn(record, "uid"),
		Labels:        stringSliceColumn(record, "labels"),
		IncomingCount: intColumn(record, "incoming"),
		IncomingTypes: stringSliceColumn(record, "incoming_types"),
		OutgoingCount: intColumn(record, "outgoing"),
		OutgoingTypes: stringSliceColumn(record, "outgoing_types"),
	}
	// collect() order is unspecified.
	sort.Strings(stats.IncomingTypes)
	sort.Strings(stats.OutgoingTypes)
	return stats, nil
}

func aggregateRowsFromRecords(records []*neo4j.Record) []graph.AggregateRow {
	rows := make([]graph.AggregateRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, graph.AggregateRow{
			UID:   stringColumn(record, "uid"),
			Name:  stringColumn(record, "name"),
			Value: floatColumn(record, "value"),
		})
	}
	return rows
}

// deletedCount reads the "deleted" column of a delete query result.
func deletedCount(records []*neo4j.Record) int64 {
	if len(records) == 0 {
		return 0
	}
	v, _ := records[0].Get("deleted")
	n, _ := v.(int64)
	return n
}

// genericRecord converts a driver record to the transport-friendly form,
// flattening driver values to plain Go types with column order preserved.
func genericRecord(record *neo4j.Record) graph.Record {
	values := make(map[string]any, len(record.Keys))
	for i, key := range record.Keys {
		values[key] = plainValue(record.Values[i])
	}
	return graph.Record{
		Keys:   append([]string(nil), record.Keys...),
		Values: values,
	}
}

// plainValue flattens a driver value into a plain Go type: nodes and
// relationships become property maps carrying _labels and _type, paths
// become node/relationship lists, temporal values become strings. Scalars
// pass through.
func plainValue(v any) any {
	switch t := v.(type) {
	case dbtype.Node:
		m := plainProps(t.Props)
		m["_labels"] = append([]string(nil), t.Labels...)
		return m
	case dbtype.Relationship:
		m := plainProps(t.Props)
		m["_type"] = t.Type
		return m
	case dbtype.Path:
		nodes := make([]any, 0, len(t.Nodes))
		for _, n := range t.Nodes {
			nodes = append(nodes, plainValue(n))
		}
		rels := make([]any, 0, len(t.Relationships))
		for _, rel := range t.Relationships {
			rels = append(rels, plainValue(rel))
		}
		return map[string]any{"nodes": nodes, "relationships": rels}
	case dbtype.Date:
		return t.String()
	case dbtype.LocalDateTime:
		return t.String()
	case dbtype.LocalTime:
		return t.String()
	case dbtype.Time:
		return t.String()
	case dbtype.Duration:
		return t.String()
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			out = append(out, plainValue(item))
		}
		return out
	case map[string]any:
		return plainProps(t)
	default:
		return v
	}
}

func plainProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = plainValue(v)
	}
	return out
}

// Typed column extraction. Driver values arrive as any; these helpers apply
// zero-value defaults so missing or mistyped columns never panic.

func stringColumn(record *neo4j.Record, key string) string {
	v, _ := record.Get(key)
	s, _ := v.(string)
	return s
}

func intColumn(record *neo4j.Record, key string) int64 {
	v, _ := record.Get(key)
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func floatColumn(record *neo4j.Record, key string) float64 {
	v, _ := record.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func stringSliceColumn(record *neo4j.Record, key string) []string {
	v, _ := record.Get(key)
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
