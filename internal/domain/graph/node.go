package graph

import "time"

// Node labels for the built-in models.
const (
	LabelPerson       = "Person"
	LabelOrganization = "Organization"
	LabelLocation     = "Location"
	LabelProject      = "Project"
	LabelTag          = "Tag"
)

// dateLayout is the storage layout for date-only properties. Timestamps
// (created_at, updated_at) are stored as RFC 3339 strings.
const dateLayout = "2006-01-02"

// Node is a stored graph node in generic form: its label plus the full
// property map as persisted. Typed entities convert to and from this form
// at the repository boundary.
type Node struct {
	UID        string
	Label      string
	Properties map[string]any
}

// CreatedAt returns the node's creation timestamp, zero if absent.
func (n Node) CreatedAt() time.Time {
	t, _ := asTime(n.Properties, "created_at")
	return t
}

// UpdatedAt returns the node's last update timestamp, zero if absent.
func (n Node) UpdatedAt() time.Time {
	t, _ := asTime(n.Properties, "updated_at")
	return t
}

// Name returns the node's name property, empty if absent. Every built-in
// model has a name, so this is the common display handle.
func (n Node) Name() string {
	return asString(n.Properties, "name")
}

// Property map extraction helpers. Stored values arrive as string, int64,
// float64, or bool from the graph store, and as float64 for all numbers
// when decoded from JSON, so the numeric helpers accept both widths.

func asString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func asInt(props map[string]any, key string) (int, bool) {
	switch v := props[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func asFloat(props map[string]any, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asBool(props map[string]any, key string) (bool, bool) {
	if v, ok := props[key].(bool); ok {
		return v, true
	}
	return false, false
}

func asTime(props map[string]any, key string) (time.Time, bool) {
	switch v := props[key].(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		if t, err := time.Parse(dateLayout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asStringSlice(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
