package pointer

import (
	"math"

	"github.com/leetpulse/dskit/pkg/geom"
)

// Motion routing constants.
const (
	// TopLanes is the number of motions drawn above the nodes before
	// switching to the bottom side.
	TopLanes = 2

	laneStep     = 12.0
	minLift      = 16.0
	maxLift      = 56.0
	liftFactor   = 0.25
	endInsetX    = 0.35
	endInsetY    = 0.45
	motionHeadLn = 6.0
	motionHeadW  = 4.0
)

// MotionPath is the routed geometry of one pointer motion.
type MotionPath struct {
	Lane   int            `json:"lane" bson:"lane"`
	Bottom bool           `json:"bottom" bson:"bottom"`
	Curve  geom.QuadCurve `json:"curve" bson:"curve"`
	Head   geom.Triangle  `json:"head" bson:"head"`
}

// Route computes the curve for the motion at position order between two
// node centers. It returns false when the ends coincide.
func Route(from, to geom.Point, order int, nodeSize float64) (MotionPath, bool) {
	if from.Eq(to) {
		return MotionPath{}, false
	}
	bottom := order >= TopLanes
	lane := order
	if bottom {
		lane = order - TopLanes
	}
	if lane < 0 {
		lane = 0
	}

	dir := 1.0
	if from.X > to.X {
		dir = -1
	}
	yOff := -nodeSize * endInsetY
	if bottom {
		yOff = nodeSize * endInsetY
	}
	start := geom.Pt(from.X+dir*nodeSize*endInsetX, from.Y+yOff)
	end := geom.Pt(to.X-dir*nodeSize*endInsetX, to.Y+yOff)

	span := math.Abs(end.X - start.X)
	lift := geom.Clamp(span*liftFactor, minLift, maxLift) + float64(lane)*laneStep
	cy := math.Min(start.Y, end.Y) - lift
	if bottom {
		cy = math.Max(start.Y, end.Y) + lift
	}
	control := geom.Pt((start.X+end.X)/2, cy)

	return MotionPath{
		Lane:   lane,
		Bottom: bottom,
		Curve:  geom.QuadCurve{Start: start, Control: control, End: end},
		Head:   geom.ArrowHead(control, end, motionHeadLn, motionHeadW),
	}, true
}

// Padding returns the extra top and bottom space a layout needs to fit
// count routed motions.
func Padding(count int, nodeSize float64) (top, bottom float64) {
	if count > 0 {
		top = nodeSize * 0.8
	}
	if count > TopLanes {
		bottom = nodeSize * 0.6
	}
	return top, bottom
}
