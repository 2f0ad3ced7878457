package geom

import (
	"math"
	"testing"
)

// eastWall is a wall from (0,0) to (5,0) whose end meets the corner at (5,0).
func eastWall(t float64) CornerWall {
	return CornerWall{Direction: Point{1, 0}, EndAtCorner: true, Alignment: AlignCenter, Thickness: t}
}

func TestClassifyTurn(t *testing.T) {
	tests := []struct {
		name         string
		intoA, intoB Point
		expected     Turn
	}{
		{"east then north is a right turn", Point{1, 0}, Point{0, -1}, TurnRight},
		{"east then south is a left turn", Point{1, 0}, Point{0, 1}, TurnLeft},
		{"colinear continuation", Point{1, 0}, Point{-1, 0}, TurnStraight},
		{"fold back", Point{1, 0}, Point{1, 0}, TurnBack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyTurn(tc.intoA, tc.intoB); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSolveCornerPerpendicular(t *testing.T) {
	// Wall A from (0,0) to (5,0), wall B from (5,0) to (5,3), both 0.2
	// thick, center aligned, meeting at (5,0): a 90-degree right turn.
	a := eastWall(0.2)
	b := CornerWall{Direction: Point{0, 1}, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}
	turn := ClassifyTurn(a.into(), b.into())
	if turn != TurnRight {
		t.Fatalf("Expected right turn, got %v", turn)
	}

	sol := SolveCorner(Point{5, 0}, a, b, turn)

	// Outer edge extends by half the other wall's thickness, inner edge
	// stays put. The outer side of this corner is each wall's right edge.
	if math.Abs(sol.A.RightEdge-0.1) > 1e-9 {
		t.Errorf("A outer extension: expected 0.1, got %.6f", sol.A.RightEdge)
	}
	if math.Abs(sol.A.LeftEdge) > 1e-9 {
		t.Errorf("A inner extension: expected 0, got %.6f", sol.A.LeftEdge)
	}
	if math.Abs(sol.B.RightEdge-0.1) > 1e-9 {
		t.Errorf("B outer extension: expected 0.1, got %.6f", sol.B.RightEdge)
	}
	if math.Abs(sol.B.LeftEdge) > 1e-9 {
		t.Errorf("B inner extension: expected 0, got %.6f", sol.B.LeftEdge)
	}
}

func TestSolveCornerPerpendicularMirrored(t *testing.T) {
	// Same corner mirrored across the x axis: a left turn, so the outer
	// side becomes each wall's left edge.
	a := eastWall(0.2)
	b := CornerWall{Direction: Point{0, -1}, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}
	turn := ClassifyTurn(a.into(), b.into())
	if turn != TurnLeft {
		t.Fatalf("Expected left turn, got %v", turn)
	}

	sol := SolveCorner(Point{5, 0}, a, b, turn)

	if math.Abs(sol.A.LeftEdge-0.1) > 1e-9 {
		t.Errorf("A outer extension: expected 0.1, got %.6f", sol.A.LeftEdge)
	}
	if math.Abs(sol.A.RightEdge) > 1e-9 {
		t.Errorf("A inner extension: expected 0, got %.6f", sol.A.RightEdge)
	}
	if math.Abs(sol.B.LeftEdge-0.1) > 1e-9 {
		t.Errorf("B outer extension: expected 0.1, got %.6f", sol.B.LeftEdge)
	}
}

func TestSolveCornerBothEndsMeeting(t *testing.T) {
	// B runs from (5,3) down to (5,0), so its end meets the corner. The
	// physical situation is identical to the perpendicular case; only
	// B's own left/right labeling flips.
	a := eastWall(0.2)
	b := CornerWall{Direction: Point{0, -1}, EndAtCorner: true, Alignment: AlignCenter, Thickness: 0.2}
	sol := SolveCorner(Point{5, 0}, a, b, ClassifyTurn(a.into(), b.into()))

	if math.Abs(sol.A.RightEdge-0.1) > 1e-9 {
		t.Errorf("A outer extension: expected 0.1, got %.6f", sol.A.RightEdge)
	}
	if math.Abs(sol.A.LeftEdge) > 1e-9 {
		t.Errorf("A inner extension: expected 0, got %.6f", sol.A.LeftEdge)
	}
	// For B traveling south, the outer (x=5.1) side is its left edge.
	if math.Abs(sol.B.LeftEdge-0.1) > 1e-9 {
		t.Errorf("B outer extension: expected 0.1, got %.6f", sol.B.LeftEdge)
	}
	if math.Abs(sol.B.RightEdge) > 1e-9 {
		t.Errorf("B inner extension: expected 0, got %.6f", sol.B.RightEdge)
	}
}

func TestSolveCornerDegenerateTurns(t *testing.T) {
	a := eastWall(0.2)
	tests := []struct {
		name string
		b    CornerWall
		turn Turn
	}{
		{"straight", CornerWall{Direction: Point{1, 0}, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}, TurnStraight},
		{"back", CornerWall{Direction: Point{-1, 0}, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}, TurnBack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol := SolveCorner(Point{5, 0}, a, tc.b, tc.turn)
			zero := EndExtensions{}
			if sol.A != zero || sol.B != zero {
				t.Errorf("Expected all-zero extensions, got %+v", sol)
			}
		})
	}
}

func TestSolveCornerNearDegenerateAngles(t *testing.T) {
	// Corners within ~15 degrees of colinear or anti-colinear are
	// suppressed rather than clamped.
	a := eastWall(0.2)
	for _, deg := range []float64{10, 170} {
		rad := deg * math.Pi / 180
		// Out-of-corner direction of B at the given wedge angle from A's.
		out := Point{-math.Cos(rad), math.Sin(rad)}
		b := CornerWall{Direction: out, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}

		sol := SolveCorner(Point{5, 0}, a, b, ClassifyTurn(a.into(), b.into()))
		zero := EndExtensions{}
		if sol.A != zero || sol.B != zero {
			t.Errorf("Wedge angle %.0f: expected suppression, got %+v", deg, sol)
		}
	}
}

func TestSolveCornerClampsAcuteSpikes(t *testing.T) {
	// A 16-degree wedge would extend the outer edges ~0.71m; the clamp
	// bounds it at 3x the larger thickness.
	a := eastWall(0.2)
	rad := 16 * math.Pi / 180
	out := Point{-math.Cos(rad), math.Sin(rad)}
	b := CornerWall{Direction: out, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.2}

	sol := SolveCorner(Point{5, 0}, a, b, ClassifyTurn(a.into(), b.into()))
	clamp := MiterClampFactor * 0.2

	outer := math.Max(sol.A.LeftEdge, sol.A.RightEdge)
	if math.Abs(outer-clamp) > 1e-9 {
		t.Errorf("Expected outer extension clamped to %.2f, got %.6f", clamp, outer)
	}
	if math.Min(sol.A.LeftEdge, sol.A.RightEdge) < 0 {
		t.Errorf("Inner extension should not retract, got %+v", sol.A)
	}
}

func TestSolveCornerNeverNaN(t *testing.T) {
	// Sweep a range of angles and thickness combinations; the solver must
	// stay finite everywhere.
	a := eastWall(0.3)
	for deg := 1; deg < 180; deg++ {
		rad := float64(deg) * math.Pi / 180
		out := Point{-math.Cos(rad), math.Sin(rad)}
		b := CornerWall{Direction: out, EndAtCorner: false, Alignment: AlignLeft, Thickness: 0.1}

		sol := SolveCorner(Point{2, 1}, a, b, ClassifyTurn(a.into(), b.into()))
		for _, v := range []float64{sol.A.LeftEdge, sol.A.RightEdge, sol.B.LeftEdge, sol.B.RightEdge} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("Angle %d: non-finite extension %+v", deg, sol)
			}
		}
	}
}

func TestSolveCornerUnequalThickness(t *testing.T) {
	// A 0.3 wall meeting a 0.1 wall at a right angle: each outer edge
	// extends by half of the other wall's thickness.
	a := eastWall(0.3)
	b := CornerWall{Direction: Point{0, 1}, EndAtCorner: false, Alignment: AlignCenter, Thickness: 0.1}
	sol := SolveCorner(Point{5, 0}, a, b, ClassifyTurn(a.into(), b.into()))

	if math.Abs(sol.A.RightEdge-0.05) > 1e-9 {
		t.Errorf("A outer: expected 0.05 (half of B's thickness), got %.6f", sol.A.RightEdge)
	}
	if math.Abs(sol.B.RightEdge-0.15) > 1e-9 {
		t.Errorf("B outer: expected 0.15 (half of A's thickness), got %.6f", sol.B.RightEdge)
	}
}
