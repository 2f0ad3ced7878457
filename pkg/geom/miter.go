// True-miter corner solving for wall pairs meeting at a point.

package geom

import "math"

// Turn classifies how one wall's path bends into the next at a shared
// corner point.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
	TurnStraight // colinear continuation, nothing to miter
	TurnBack     // folds back on itself, nothing to miter
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnStraight:
		return "straight"
	}
	return "back"
}

// ClassifyTurn classifies the corner formed by two into-corner unit
// directions (each pointing toward the shared point along its wall).
func ClassifyTurn(intoA, intoB Point) Turn {
	cross := intoA.Cross(intoB)
	if cross > 1e-9 {
		return TurnLeft
	}
	if cross < -1e-9 {
		return TurnRight
	}
	if intoA.Dot(intoB) < 0 {
		return TurnStraight
	}
	return TurnBack
}

// CornerAngle returns the wedge angle between two into-corner unit
// directions, in radians. Pi means a straight continuation, 0 a fold-back.
func CornerAngle(intoA, intoB Point) float64 {
	return math.Acos(clampUnit(intoA.Dot(intoB)))
}

// EndExtensions is the corner solution for one wall end: signed scalars
// per physical edge, positive extending the wall outward along its own
// direction, negative retracting it.
type EndExtensions struct {
	LeftEdge  float64
	RightEdge float64
}

// CornerSolution pairs the extensions of the two walls at one corner.
type CornerSolution struct {
	A, B EndExtensions
}

// CornerWall describes one wall's participation in a corner.
type CornerWall struct {
	Direction   Point // unit direction from the wall's start to its end
	EndAtCorner bool  // true when the end point meets the corner
	Alignment   Alignment
	Thickness   float64
}

// into returns the unit direction pointing toward the corner.
func (w CornerWall) into() Point {
	if w.EndAtCorner {
		return w.Direction
	}
	return w.Direction.Scale(-1)
}

// cornerEdge is one physical wall edge positioned at the corner.
type cornerEdge struct {
	point  Point // edge line point at the corner
	dir    Point // carrier line direction
	eff    Point // direction a positive extension moves the edge end
	isLeft bool  // left or right edge of its wall
}

// edgesAt builds the wall's two edges at the corner and marks which side
// of the corner wedge each sits on. bisector points into the wedge
// interior; an edge whose offset normal opposes it is the outer edge.
func (w CornerWall) edgesAt(meeting Point, bisector Point) (outer, inner cornerEdge) {
	n := w.Direction.Perp()
	leftOff, rightOff := EdgeOffsets(w.Alignment, w.Thickness)
	eff := w.into()

	left := cornerEdge{
		point:  meeting.Add(n.Scale(leftOff)),
		dir:    w.Direction,
		eff:    eff,
		isLeft: true,
	}
	right := cornerEdge{
		point: meeting.Add(n.Scale(rightOff)),
		dir:   w.Direction,
		eff:   eff,
	}

	if n.Dot(bisector) < 0 {
		return left, right
	}
	return right, left
}

// SolveCorner computes the miter joint for two walls meeting at a point.
// Straight/back turns and corners within MinMiterAngle of degenerate
// return all-zero extensions, parallel edge pairs contribute zero, inner
// retractions are floored at zero so junctions can never open a gap, and
// everything is clamped to MiterClampFactor times the larger thickness.
// The result is always finite.
func SolveCorner(meeting Point, a, b CornerWall, turn Turn) CornerSolution {
	var sol CornerSolution
	if turn == TurnStraight || turn == TurnBack {
		return sol
	}

	intoA, intoB := a.into(), b.into()
	angle := CornerAngle(intoA, intoB)
	if angle < MinMiterAngle || angle > math.Pi-MinMiterAngle {
		return sol
	}

	// Out-of-corner directions span the wedge; their sum points into it.
	bisector := intoA.Scale(-1).Add(intoB.Scale(-1))

	outerA, innerA := a.edgesAt(meeting, bisector)
	outerB, innerB := b.edgesAt(meeting, bisector)

	clamp := MiterClampFactor * math.Max(a.Thickness, b.Thickness)

	extOuterA, extOuterB := edgePairExtension(outerA, outerB, clamp)
	extInnerA, extInnerB := edgePairExtension(innerA, innerB, clamp)

	// Inner edges butt at the shared point rather than retract; the
	// downstream boolean union absorbs the overlap.
	extInnerA = math.Max(extInnerA, 0)
	extInnerB = math.Max(extInnerB, 0)

	sol.A = assignExtensions(outerA, extOuterA, extInnerA)
	sol.B = assignExtensions(outerB, extOuterB, extInnerB)
	return sol
}

// edgePairExtension intersects two corner edges and returns each wall's
// signed extension toward the intersection, clamped to +/-limit. A
// parallel pair yields zero for both.
func edgePairExtension(ea, eb cornerEdge, limit float64) (float64, float64) {
	p, ok := lineIntersect(ea.point, ea.dir, eb.point, eb.dir)
	if !ok {
		return 0, 0
	}
	extA := clampExtension(p.Sub(ea.point).Dot(ea.eff), limit)
	extB := clampExtension(p.Sub(eb.point).Dot(eb.eff), limit)
	return extA, extB
}

func clampExtension(v, limit float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func assignExtensions(outer cornerEdge, extOuter, extInner float64) EndExtensions {
	if outer.isLeft {
		return EndExtensions{LeftEdge: extOuter, RightEdge: extInner}
	}
	return EndExtensions{LeftEdge: extInner, RightEdge: extOuter}
}
