package graph

// TextMatch pairs a node with the relevance score assigned by text search.
// Name matches score highest, then description, then title.
type TextMatch struct {
	Node      Node
	Relevance int64
}

// Path is an ordered traversal between two nodes.
type Path struct {
	Nodes         []Node
	Relationships []Relationship
	Length        int
}

// Neighbor is a node reached by traversal, carrying its distance from the
// origin node.
type Neighbor struct {
	Node     Node
	Distance int
}

// NodeStatistics summarizes a node's relationship fan-in and fan-out.
type NodeStatistics struct {
	UID           string
	Labels        []string
	IncomingCount int64
	IncomingTypes []string
	OutgoingCount int64
	OutgoingTypes []string
}

// AggregateOp enumerates the aggregation functions accepted by
// relationship aggregation queries.
type AggregateOp string

const (
	AggregateCount AggregateOp = "count"
	AggregateAvg   AggregateOp = "avg"
	AggregateSum   AggregateOp = "sum"
	AggregateMin   AggregateOp = "min"
	AggregateMax   AggregateOp = "max"
)

// IsValid returns true if the op is one of the defined constants.
func (op AggregateOp) IsValid() bool {
	switch op {
	case AggregateCount, AggregateAvg, AggregateSum, AggregateMin, AggregateMax:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (op AggregateOp) String() string {
	return string(op)
}

// AggregateRow is one aggregation result: a node identified by uid and
// name, plus its computed value.
type AggregateRow struct {
	UID   string
	Name  string
	Value float64
}

// LabelCount is a per-label node tally used by the graph overview.
type LabelCount struct {
	Label string
	Count int64
}

// Record is one row of a raw query result with column order preserved.
type Record struct {
	Keys   []string
	Values map[string]any
}
