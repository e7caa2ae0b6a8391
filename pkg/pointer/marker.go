package pointer

import "strconv"

// Marker is a named badge attached to a graph node (Index) or tree node
// (NodeID). Color is optional; empty means palette-derived.
type Marker struct {
	Name   string `json:"name" bson:"name" yaml:"name"`
	Index  *int   `json:"index,omitempty" bson:"index,omitempty" yaml:"index,omitempty"`
	NodeID string `json:"node_id,omitempty" bson:"node_id,omitempty" yaml:"node_id,omitempty"`
	Color  string `json:"color,omitempty" bson:"color,omitempty" yaml:"color,omitempty"`
}

// AtIndex returns a marker targeting graph node i.
func AtIndex(name string, i int) Marker { return Marker{Name: name, Index: &i} }

// AtNode returns a marker targeting tree node id.
func AtNode(name, id string) Marker { return Marker{Name: name, NodeID: id} }

// ID returns "name-index-nodeId", using -1 and "none" for absent targets.
func (m Marker) ID() string {
	idx := -1
	if m.Index != nil {
		idx = *m.Index
	}
	node := m.NodeID
	if node == "" {
		node = "none"
	}
	return m.Name + "-" + strconv.Itoa(idx) + "-" + node
}

// ResolvedColor returns the marker's color under palette p.
func (m Marker) ResolvedColor(p Palette) string { return Resolve(p, m.Name, m.Color) }

// Motion is a named arrow between two graph nodes.
type Motion struct {
	Name      string `json:"name" bson:"name" yaml:"name"`
	FromIndex int    `json:"from" bson:"from" yaml:"from"`
	ToIndex   int    `json:"to" bson:"to" yaml:"to"`
	Color     string `json:"color,omitempty" bson:"color,omitempty" yaml:"color,omitempty"`
}

// ID returns "name-from-to".
func (m Motion) ID() string {
	return m.Name + "-" + strconv.Itoa(m.FromIndex) + "-" + strconv.Itoa(m.ToIndex)
}

// ResolvedColor returns the motion's color under palette p.
func (m Motion) ResolvedColor(p Palette) string { return Resolve(p, m.Name, m.Color) }

// TreeMotion is a named arrow between two tree nodes.
type TreeMotion struct {
	Name   string `json:"name" bson:"name" yaml:"name"`
	FromID string `json:"from" bson:"from" yaml:"from"`
	ToID   string `json:"to" bson:"to" yaml:"to"`
	Color  string `json:"color,omitempty" bson:"color,omitempty" yaml:"color,omitempty"`
}

// ID returns "name-fromId-toId".
func (m TreeMotion) ID() string { return m.Name + "-" + m.FromID + "-" + m.ToID }

// ResolvedColor returns the motion's color under palette p.
func (m TreeMotion) ResolvedColor(p Palette) string { return Resolve(p, m.Name, m.Color) }

// GroupByIndex groups markers by graph node index, keeping input order
// within each group. Markers without an index are skipped.
func GroupByIndex(markers []Marker) map[int][]Marker {
	out := make(map[int][]Marker)
	for _, m := range markers {
		if m.Index == nil {
			continue
		}
		out[*m.Index] = append(out[*m.Index], m)
	}
	return out
}

// GroupByNode groups markers by tree node id, keeping input order within
// each group. Markers without a node id are skipped.
func GroupByNode(markers []Marker) map[string][]Marker {
	out := make(map[string][]Marker)
	for _, m := range markers {
		if m.NodeID == "" {
			continue
		}
		out[m.NodeID] = append(out[m.NodeID], m)
	}
	return out
}
