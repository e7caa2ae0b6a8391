package graph

import "fmt"

// Reason classifies a [Diagnostic].
type Reason string

// Diagnostic reasons.
const (
	ReasonOutOfRange Reason = "out_of_range"
	ReasonSelfLoop   Reason = "self_loop"
	ReasonDuplicate  Reason = "duplicate"
)

// Diagnostic describes one questionable adjacency entry.
type Diagnostic struct {
	Node     int    `json:"node"`
	Neighbor int    `json:"neighbor"`
	Reason   Reason `json:"reason"`
}

// String formats the diagnostic for humans.
func (d Diagnostic) String() string {
	switch d.Reason {
	case ReasonOutOfRange:
		return fmt.Sprintf("node %d: neighbor %d is out of range", d.Node, d.Neighbor)
	case ReasonSelfLoop:
		return fmt.Sprintf("node %d: self loop", d.Node)
	case ReasonDuplicate:
		return fmt.Sprintf("node %d: neighbor %d listed more than once", d.Node, d.Neighbor)
	}
	return fmt.Sprintf("node %d: neighbor %d: %s", d.Node, d.Neighbor, d.Reason)
}

// Validate reports entries that [Layout] would ignore or collapse: neighbors
// outside [0, n), self loops and repeated neighbors. A nil result means the
// adjacency is clean.
func Validate(adj Adjacency) []Diagnostic {
	var out []Diagnostic
	for i, ns := range adj {
		seen := make(map[int]struct{}, len(ns))
		for _, j := range ns {
			switch {
			case !adj.inRange(j):
				out = append(out, Diagnostic{Node: i, Neighbor: j, Reason: ReasonOutOfRange})
				continue
			case j == i:
				out = append(out, Diagnostic{Node: i, Neighbor: j, Reason: ReasonSelfLoop})
			}
			if _, dup := seen[j]; dup {
				out = append(out, Diagnostic{Node: i, Neighbor: j, Reason: ReasonDuplicate})
			}
			seen[j] = struct{}{}
		}
	}
	return out
}
