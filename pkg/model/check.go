package model

import (
	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/tree"
)

// Check validates the document strictly: the adjacency must be clean and
// every annotation must name a node that exists.
func (d GraphDocument) Check() error {
	var details []string
	for _, diag := range graph.Validate(d.Adjacency) {
		details = append(details, diag.String())
	}
	n := len(d.Adjacency)
	for _, p := range d.Pointers {
		if err := errors.ValidateName("pointer", p.Name); err != nil {
			details = append(details, errors.UserMessage(err))
		}
		if p.Index == nil || *p.Index < 0 || *p.Index >= n {
			details = append(details, "pointer "+p.ID()+" does not target a node")
		}
	}
	for _, m := range d.Motions {
		if m.FromIndex < 0 || m.FromIndex >= n || m.ToIndex < 0 || m.ToIndex >= n {
			details = append(details, "motion "+m.ID()+" has an endpoint out of range")
		}
	}
	if len(details) > 0 {
		return errors.WithDetails(errors.ErrCodeInvalidAdjacency, details, "graph has %d problems", len(details))
	}
	return nil
}

// Check validates the document strictly: the tree must be well formed and
// every annotation must name a reachable node.
func (d TreeDocument) Check() error {
	var details []string
	for _, diag := range tree.Validate(d.Tree()) {
		details = append(details, diag.String())
	}
	ids := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		ids[n.ID] = true
	}
	for _, p := range d.Pointers {
		if err := errors.ValidateName("pointer", p.Name); err != nil {
			details = append(details, errors.UserMessage(err))
		}
		if !ids[p.NodeID] {
			details = append(details, "pointer "+p.ID()+" does not target a node")
		}
	}
	for _, m := range d.Motions {
		if !ids[m.FromID] || !ids[m.ToID] {
			details = append(details, "motion "+m.ID()+" references a missing node")
		}
	}
	for _, h := range d.Highlighted {
		if !ids[h] {
			details = append(details, "highlighted node "+h+" does not exist")
		}
	}
	if len(details) > 0 {
		return errors.WithDetails(errors.ErrCodeInvalidTree, details, "tree has %d problems", len(details))
	}
	return nil
}

// Check validates whichever document d holds.
func (d Document) Check() error {
	switch {
	case d.Graph != nil:
		return d.Graph.Check()
	case d.Tree != nil:
		return d.Tree.Check()
	}
	return errors.New(errors.ErrCodeInvalidInput, "document has no content")
}
