package tree

import (
	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/pointer"
)

// Frame is the padded drawing area around a tree layout.
type Frame struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewFrame returns the frame for r with room for motions pointer motions.
// Pass the input motion count: lanes are assigned by input position, so a
// skipped motion still shifts later ones into the bottom lanes.
func NewFrame(r Result, motions int, nodeSize float64) Frame {
	top, bottom := pointer.Padding(motions, nodeSize)
	return Frame{
		Top:    top,
		Bottom: bottom,
		Width:  r.Width,
		Height: r.Height + top + bottom,
	}
}

// Offset shifts a layout-space point into frame space.
func (f Frame) Offset(p geom.Point) geom.Point { return geom.Pt(p.X, p.Y+f.Top) }

// RoutedMotion pairs a tree pointer motion with its routed geometry.
type RoutedMotion struct {
	Motion pointer.TreeMotion `json:"motion" bson:"motion"`
	Path   pointer.MotionPath `json:"path" bson:"path"`
}

// Motions routes pointer motions between laid-out nodes, in layout space.
// Motions with an unplaced end, or whose ends coincide, are skipped; the
// lane follows the motion's position in the input slice.
func (r Result) Motions(motions []pointer.TreeMotion, nodeSize float64) []RoutedMotion {
	var out []RoutedMotion
	for i, m := range motions {
		from, ok := r.Position(m.FromID)
		if !ok {
			continue
		}
		to, ok := r.Position(m.ToID)
		if !ok {
			continue
		}
		path, ok := pointer.Route(from, to, i, nodeSize)
		if !ok {
			continue
		}
		out = append(out, RoutedMotion{Motion: m, Path: path})
	}
	return out
}
