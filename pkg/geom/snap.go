// Pointer snapping: resolving a raw cursor point to a precise geometric
// target against the live wall network.

package geom

import "math"

// SnapType classifies what a snapped point locked onto.
type SnapType int

const (
	SnapNone SnapType = iota
	SnapEndpoint
	SnapMidpoint
	SnapPerpendicular
	SnapNearest
	SnapGrid
)

func (t SnapType) String() string {
	switch t {
	case SnapEndpoint:
		return "endpoint"
	case SnapMidpoint:
		return "midpoint"
	case SnapPerpendicular:
		return "perpendicular"
	case SnapNearest:
		return "nearest"
	case SnapGrid:
		return "grid"
	}
	return "none"
}

// SnapSettings gates each snap category individually. Orthogonal switches
// to axis-locked snapping relative to the reference point.
type SnapSettings struct {
	Endpoints     bool
	Midpoints     bool
	Perpendicular bool
	Nearest       bool
	Grid          bool
	Orthogonal    bool
}

// DefaultSnapSettings enables every free-mode category.
func DefaultSnapSettings() SnapSettings {
	return SnapSettings{
		Endpoints:     true,
		Midpoints:     true,
		Perpendicular: true,
		Nearest:       true,
		Grid:          true,
	}
}

// SnapResult is the resolved target point and its classification.
type SnapResult struct {
	Point Point
	Type  SnapType
}

// interiorMargin excludes the outer 1% of a segment from perpendicular
// and nearest snapping so segment snaps never shadow endpoint snaps.
const interiorMargin = 0.01

// Snap resolves a raw pointer position against endpoint and segment lists
// derived from the live model. Categories are evaluated in strict
// priority order: endpoint, midpoint, perpendicular foot from ref,
// nearest-on-segment, grid. With Orthogonal set (and a reference point)
// the result is instead locked exactly horizontal or vertical from ref.
// Snap holds no state; call it on every pointer sample.
func Snap(p Point, endpoints []Point, segments []Segment, tolerance, gridSize float64, settings SnapSettings, ref *Point) SnapResult {
	if settings.Orthogonal && ref != nil {
		return snapOrthogonal(p, *ref, endpoints, segments, tolerance, gridSize, settings)
	}

	if settings.Endpoints {
		if q, ok := nearestPoint(p, endpoints, tolerance); ok {
			return SnapResult{q, SnapEndpoint}
		}
	}

	if settings.Midpoints {
		mids := make([]Point, len(segments))
		for i, s := range segments {
			mids[i] = s.Midpoint()
		}
		if q, ok := nearestPoint(p, mids, tolerance); ok {
			return SnapResult{q, SnapMidpoint}
		}
	}

	if settings.Perpendicular && ref != nil {
		if q, ok := nearestFoot(p, *ref, segments, tolerance); ok {
			return SnapResult{q, SnapPerpendicular}
		}
	}

	if settings.Nearest {
		if q, ok := nearestFoot(p, p, segments, tolerance); ok {
			return SnapResult{q, SnapNearest}
		}
	}

	if settings.Grid && gridSize > 0 {
		return SnapResult{snapToGrid(p, gridSize), SnapGrid}
	}

	return SnapResult{p, SnapNone}
}

// snapOrthogonal locks the point to the axis of larger delta from ref,
// then snaps the free coordinate to an aligned endpoint or midpoint
// coordinate within tolerance, or to the grid. The locked coordinate
// always equals the reference coordinate exactly.
func snapOrthogonal(p, ref Point, endpoints []Point, segments []Segment, tolerance, gridSize float64, settings SnapSettings) SnapResult {
	horizontal := math.Abs(p.X-ref.X) >= math.Abs(p.Y-ref.Y)

	free := p.X
	if !horizontal {
		free = p.Y
	}

	coord := func(q Point) float64 {
		if horizontal {
			return q.X
		}
		return q.Y
	}
	build := func(v float64, t SnapType) SnapResult {
		if horizontal {
			return SnapResult{Point{v, ref.Y}, t}
		}
		return SnapResult{Point{ref.X, v}, t}
	}

	best := math.MaxFloat64
	bestVal := 0.0
	bestType := SnapNone

	if settings.Endpoints {
		for _, q := range endpoints {
			if d := math.Abs(coord(q) - free); d < tolerance && d < best {
				best, bestVal, bestType = d, coord(q), SnapEndpoint
			}
		}
	}
	if settings.Midpoints {
		for _, s := range segments {
			m := s.Midpoint()
			if d := math.Abs(coord(m) - free); d < tolerance && d < best {
				best, bestVal, bestType = d, coord(m), SnapMidpoint
			}
		}
	}
	if bestType != SnapNone {
		return build(bestVal, bestType)
	}

	if settings.Grid && gridSize > 0 {
		return build(math.Round(free/gridSize)*gridSize, SnapGrid)
	}
	return build(free, SnapNone)
}

// nearestPoint returns the candidate closest to p within tolerance.
func nearestPoint(p Point, candidates []Point, tolerance float64) (Point, bool) {
	best := tolerance
	var found bool
	var out Point
	for _, c := range candidates {
		if d := p.DistanceTo(c); d < best {
			best, out, found = d, c, true
		}
	}
	return out, found
}

// nearestFoot projects from onto every segment and returns the foot
// closest to p within tolerance, considering only feet strictly inside
// the segment interior.
func nearestFoot(p, from Point, segments []Segment, tolerance float64) (Point, bool) {
	best := tolerance
	var found bool
	var out Point
	for _, s := range segments {
		t := s.Project(from)
		if t <= interiorMargin || t >= 1-interiorMargin {
			continue
		}
		foot := s.PointAt(t)
		if d := p.DistanceTo(foot); d < best {
			best, out, found = d, foot, true
		}
	}
	return out, found
}

func snapToGrid(p Point, gridSize float64) Point {
	return Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}
