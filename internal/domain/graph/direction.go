package graph

// Direction constrains a traversal to incoming, outgoing, or both
// relationship directions.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionBoth     Direction = "both"
)

// IsValid returns true if the direction is one of the defined constants.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionBoth:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}
