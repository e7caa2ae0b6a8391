package tree

import "fmt"

// Problem classifies a [Diagnostic].
type Problem string

// Diagnostic problems.
const (
	ProblemMissingRoot Problem = "missing_root"
	ProblemDuplicateID Problem = "duplicate_id"
	ProblemUnresolved  Problem = "unresolved_child"
	ProblemUnreachable Problem = "unreachable"
	ProblemRevisited   Problem = "revisited"
)

// Diagnostic describes one structural issue in a [Tree].
type Diagnostic struct {
	NodeID  string  `json:"node_id"`
	ChildID string  `json:"child_id,omitempty"`
	Problem Problem `json:"problem"`
}

// String formats the diagnostic for humans.
func (d Diagnostic) String() string {
	switch d.Problem {
	case ProblemMissingRoot:
		return fmt.Sprintf("root %q does not match any node", d.NodeID)
	case ProblemDuplicateID:
		return fmt.Sprintf("node id %q is used more than once", d.NodeID)
	case ProblemUnresolved:
		return fmt.Sprintf("node %q: child %q does not exist", d.NodeID, d.ChildID)
	case ProblemUnreachable:
		return fmt.Sprintf("node %q is not reachable from the root", d.NodeID)
	case ProblemRevisited:
		return fmt.Sprintf("node %q: child %q is reached more than once", d.NodeID, d.ChildID)
	}
	return fmt.Sprintf("node %q: %s", d.NodeID, d.Problem)
}

// Validate reports conditions that [Layout] tolerates silently. An empty
// Root is a valid empty tree and is not reported.
func Validate(t Tree) []Diagnostic {
	var out []Diagnostic
	seen := make(map[string]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		if seen[n.ID] {
			out = append(out, Diagnostic{NodeID: n.ID, Problem: ProblemDuplicateID})
		}
		seen[n.ID] = true
	}
	for _, n := range t.Nodes {
		for _, c := range [2]string{n.Left, n.Right} {
			if c != "" && !seen[c] {
				out = append(out, Diagnostic{NodeID: n.ID, ChildID: c, Problem: ProblemUnresolved})
			}
		}
	}
	if t.Root == "" {
		return out
	}
	if !seen[t.Root] {
		return append(out, Diagnostic{NodeID: t.Root, Problem: ProblemMissingRoot})
	}

	nodes := t.index()
	reached := map[string]bool{t.Root: true}
	queue := []string{t.Root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := nodes[id]
		for _, c := range [2]string{n.Left, n.Right} {
			if c == "" || !seen[c] {
				continue
			}
			if reached[c] {
				out = append(out, Diagnostic{NodeID: id, ChildID: c, Problem: ProblemRevisited})
				continue
			}
			reached[c] = true
			queue = append(queue, c)
		}
	}
	for _, n := range t.Nodes {
		if !reached[n.ID] {
			out = append(out, Diagnostic{NodeID: n.ID, Problem: ProblemUnreachable})
			reached[n.ID] = true
		}
	}
	return out
}
