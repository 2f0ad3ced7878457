// Corner analysis: locating wall connections and accumulating the miter
// solutions for each end of a wall.

package geom

import "math"

// WallGeom is the geometric footprint of a wall, decoupled from any
// particular model type.
type WallGeom struct {
	Start, End Point
	Thickness  float64
	Alignment  Alignment
}

func (w WallGeom) Length() float64 { return w.Start.DistanceTo(w.End) }

// Direction returns the unit start-to-end direction, (1,0) if degenerate.
func (w WallGeom) Direction() Point { return w.End.Sub(w.Start).Normalize() }

func (w WallGeom) Segment() Segment { return Segment{w.Start, w.End} }

// CornerExtensions carries the derived miter extensions for both ends of
// a wall. It is recomputed on every query and never stored on the model.
type CornerExtensions struct {
	Start, End EndExtensions
}

// AnalyzeCorners derives the corner extensions for walls[i] against every
// other wall whose endpoint lies within tolerance of one of its ends.
// When an end connects to several walls the extension of larger absolute
// magnitude wins per edge; this deliberately approximates junctions of
// three or more walls instead of solving them jointly.
func AnalyzeCorners(walls []WallGeom, i int, tolerance float64) CornerExtensions {
	var out CornerExtensions
	if i < 0 || i >= len(walls) {
		return out
	}
	target := walls[i]

	for j, other := range walls {
		if j == i {
			continue
		}
		for _, targetEnd := range []bool{false, true} {
			meeting := target.Start
			if targetEnd {
				meeting = target.End
			}
			for _, otherEnd := range []bool{false, true} {
				op := other.Start
				if otherEnd {
					op = other.End
				}
				if meeting.DistanceTo(op) > tolerance {
					continue
				}

				a := CornerWall{
					Direction:   target.Direction(),
					EndAtCorner: targetEnd,
					Alignment:   target.Alignment,
					Thickness:   target.Thickness,
				}
				b := CornerWall{
					Direction:   other.Direction(),
					EndAtCorner: otherEnd,
					Alignment:   other.Alignment,
					Thickness:   other.Thickness,
				}
				turn := ClassifyTurn(a.into(), b.into())
				sol := SolveCorner(meeting, a, b, turn)

				if targetEnd {
					out.End = mergeExtensions(out.End, sol.A)
				} else {
					out.Start = mergeExtensions(out.Start, sol.A)
				}
			}
		}
	}
	return out
}

// mergeExtensions keeps, per edge, whichever extension has the larger
// absolute magnitude.
func mergeExtensions(cur, add EndExtensions) EndExtensions {
	if math.Abs(add.LeftEdge) > math.Abs(cur.LeftEdge) {
		cur.LeftEdge = add.LeftEdge
	}
	if math.Abs(add.RightEdge) > math.Abs(cur.RightEdge) {
		cur.RightEdge = add.RightEdge
	}
	return cur
}
