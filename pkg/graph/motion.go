package graph

import "github.com/leetpulse/dskit/pkg/pointer"

// RoutedMotion pairs a pointer motion with its routed geometry.
type RoutedMotion struct {
	Motion pointer.Motion     `json:"motion" bson:"motion"`
	Path   pointer.MotionPath `json:"path" bson:"path"`
}

// Motions routes pointer motions over a layout result. Motions whose ends
// are not laid out, or whose ends coincide, are skipped; lane assignment
// uses the motion's position in the input slice.
func (r Result) Motions(motions []pointer.Motion, nodeSize float64) []RoutedMotion {
	var out []RoutedMotion
	for i, m := range motions {
		from, ok := r.Position(m.FromIndex)
		if !ok {
			continue
		}
		to, ok := r.Position(m.ToIndex)
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
