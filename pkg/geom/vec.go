// Package geom implements the wall-network geometry engine: miter corner
// solving, opening placement, and pointer snapping for floor-plan editing.
// Every function is a pure transformation of its inputs; degenerate
// geometry degrades to policy defaults instead of errors or NaN.
package geom

import "math"

// Fixed tolerances of the engine. Downstream behavior depends on these
// exact values; do not tune them casually.
const (
	// ConnectionTolerance is the max distance between two wall endpoints
	// that still counts as a shared corner.
	ConnectionTolerance = 0.05

	// SnapTolerance is the default pointer snap radius in meters.
	SnapTolerance = 0.3

	// MinWallLength is the shortest wall the model accepts.
	MinWallLength = 0.1

	// OpeningEdgeMarginRatio and OpeningEdgeMarginAbs bound how close an
	// opening may sit to either wall end. Both apply; the stricter wins.
	OpeningEdgeMarginRatio = 0.02
	OpeningEdgeMarginAbs   = 0.05

	// OpeningOverlapBuffer is the required clearance between openings.
	OpeningOverlapBuffer = 0.02

	// MiterClampFactor bounds extensions to this multiple of the larger
	// wall thickness at a corner.
	MiterClampFactor = 3.0

	// MinMiterAngle suppresses miters for corners within this many radians
	// of colinear or anti-colinear (~15 degrees).
	MinMiterAngle = 0.26
)

// parallelEps is the cross-product threshold below which two edge lines
// are treated as parallel and left unmitered.
const parallelEps = 1e-4

// Point is a 2D point or vector in meters.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 2D cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

func (p Point) LengthSq() float64 { return p.X*p.X + p.Y*p.Y }

func (p Point) DistanceTo(q Point) float64 { return q.Sub(p).Length() }

// Perp returns the counterclockwise perpendicular (the left normal of a
// direction vector).
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Normalize returns the unit vector, or the fallback direction (1,0) for
// a zero-length input so that callers never divide by zero downstream.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{1, 0}
	}
	return Point{p.X / l, p.Y / l}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

func (s Segment) Length() float64 { return s.A.DistanceTo(s.B) }

func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// Direction returns the unit vector from A to B, (1,0) if degenerate.
func (s Segment) Direction() Point { return s.B.Sub(s.A).Normalize() }

// PointAt returns the point at parametric position t (0 = A, 1 = B).
func (s Segment) PointAt(t float64) Point {
	return s.A.Add(s.B.Sub(s.A).Scale(t))
}

// Project returns the parametric position of the perpendicular foot of p
// on the segment's carrier line. The result is not clamped to [0,1].
func (s Segment) Project(p Point) float64 {
	d := s.B.Sub(s.A)
	lsq := d.LengthSq()
	if lsq < 1e-24 {
		return 0
	}
	return p.Sub(s.A).Dot(d) / lsq
}

// Alignment names which physical edge of a wall its stored start/end
// points represent.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "center"
}

// ParseAlignment maps a name to an Alignment, defaulting to center.
func ParseAlignment(s string) Alignment {
	switch s {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	}
	return AlignCenter
}

// EdgeOffsets returns the signed offsets of the wall's left and right
// edges along its left normal, given where the stored line sits.
func EdgeOffsets(a Alignment, thickness float64) (left, right float64) {
	switch a {
	case AlignLeft:
		return 0, -thickness
	case AlignRight:
		return thickness, 0
	default:
		return thickness / 2, -thickness / 2
	}
}

// lineIntersect intersects two parametric lines p1+t*d1 and p2+u*d2.
// Returns false when the lines are parallel within parallelEps.
func lineIntersect(p1, d1, p2, d2 Point) (Point, bool) {
	cross := d1.Cross(d2)
	if math.Abs(cross) < parallelEps {
		return Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / cross
	return p1.Add(d1.Scale(t)), true
}

// clampUnit clamps v to [-1,1] before acos.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
