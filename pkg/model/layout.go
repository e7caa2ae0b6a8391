package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/geom"
)

// =============================================================================
// Layout - Render-Ready Output
// =============================================================================

// Layout is the serialization format for a computed visualization.
//
// All coordinates are absolute within a Width x Height frame whose top
// PadTop points are reserved for pointer motions arcing above the nodes and
// whose bottom PadBottom points are reserved for motions arcing below.
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type" bson:"viz_type"`

	// Frame
	Width     float64 `json:"width" bson:"width"`
	Height    float64 `json:"height" bson:"height"`
	PadTop    float64 `json:"pad_top,omitempty" bson:"pad_top,omitempty"`
	PadBottom float64 `json:"pad_bottom,omitempty" bson:"pad_bottom,omitempty"`
	NodeSize  float64 `json:"node_size" bson:"node_size"`

	// Structure
	Nodes      []Node `json:"nodes" bson:"nodes"`
	Edges      []Edge `json:"edges" bson:"edges"`
	Undirected bool   `json:"undirected,omitempty" bson:"undirected,omitempty"`

	// Annotations
	Pointers []Pointer `json:"pointers,omitempty" bson:"pointers,omitempty"`
	Motions  []Motion  `json:"motions,omitempty" bson:"motions,omitempty"`
}

// IsGraph returns true if this is a graph layout.
func (l *Layout) IsGraph() bool { return l.VizType == KindGraph }

// IsTree returns true if this is a tree layout.
func (l *Layout) IsTree() bool { return l.VizType == KindTree }

// Node is a positioned node. For graphs the ID is the decimal node index.
type Node struct {
	ID          string     `json:"id" bson:"id"`
	Label       string     `json:"label" bson:"label"`
	Position    geom.Point `json:"position" bson:"position"`
	Depth       int        `json:"depth,omitempty" bson:"depth,omitempty"`
	Highlighted bool       `json:"highlighted,omitempty" bson:"highlighted,omitempty"`
}

// Edge is a straight connector between two nodes.
type Edge struct {
	ID       string         `json:"id" bson:"id"`
	From     string         `json:"from" bson:"from"`
	To       string         `json:"to" bson:"to"`
	Start    geom.Point     `json:"start" bson:"start"`
	End      geom.Point     `json:"end" bson:"end"`
	Directed bool           `json:"directed,omitempty" bson:"directed,omitempty"`
	Head     *geom.Triangle `json:"head,omitempty" bson:"head,omitempty"`
}

// Pointer is a placed pointer badge. Position is the badge center.
type Pointer struct {
	ID       string     `json:"id" bson:"id"`
	Name     string     `json:"name" bson:"name"`
	Target   string     `json:"target" bson:"target"`
	Color    string     `json:"color" bson:"color"`
	Position geom.Point `json:"position" bson:"position"`
	Width    float64    `json:"width" bson:"width"`
	Height   float64    `json:"height" bson:"height"`
	FontSize float64    `json:"font_size" bson:"font_size"`
}

// Motion is a routed pointer motion.
type Motion struct {
	ID     string         `json:"id" bson:"id"`
	Name   string         `json:"name" bson:"name"`
	From   string         `json:"from" bson:"from"`
	To     string         `json:"to" bson:"to"`
	Color  string         `json:"color" bson:"color"`
	Curve  geom.QuadCurve `json:"curve" bson:"curve"`
	Head   geom.Triangle  `json:"head" bson:"head"`
	Lane   int            `json:"lane" bson:"lane"`
	Bottom bool           `json:"bottom,omitempty" bson:"bottom,omitempty"`
}

// Node returns the node with the given id.
func (l *Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates the viz type and frame dimensions.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if !l.IsGraph() && !l.IsTree() {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "unknown viz type %q", l.VizType)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "layout frame must have positive dimensions")
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
