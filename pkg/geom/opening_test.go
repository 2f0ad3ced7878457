package geom

import (
	"math"
	"testing"
)

func TestOpeningDistances(t *testing.T) {
	d := DistancesFor(0.5, 0.9, 5)
	if math.Abs(d.FromLeft-2.05) > 1e-9 || math.Abs(d.FromRight-2.05) > 1e-9 {
		t.Errorf("Centered opening: expected 2.05/2.05, got %+v", d)
	}

	// left + width + right always reconstructs the wall length.
	d = DistancesFor(0.3, 0.8, 4)
	if math.Abs(d.FromLeft+0.8+d.FromRight-4) > 1e-9 {
		t.Errorf("Distances do not sum to wall length: %+v", d)
	}
}

func TestPositionDistanceRoundTrip(t *testing.T) {
	positions := []float64{0.1, 0.25, 0.5, 0.77, 0.9}
	for _, p := range positions {
		for _, length := range []float64{2.5, 5, 12} {
			d := DistancesFor(p, 0.9, length)

			if got := PositionFromLeft(d.FromLeft, 0.9, length); math.Abs(got-p) > 1e-9 {
				t.Errorf("Left round trip at p=%.2f L=%.1f: got %.12f", p, length, got)
			}
			if got := PositionFromRight(d.FromRight, 0.9, length); math.Abs(got-p) > 1e-9 {
				t.Errorf("Right round trip at p=%.2f L=%.1f: got %.12f", p, length, got)
			}
		}
	}
}

func TestCanPlaceOpeningOverlap(t *testing.T) {
	// 5m wall with a 0.9m opening already at 0.30: a second 0.9m opening
	// at 0.32 lands inside the first span plus the 2cm buffer.
	existing := []OpeningSpan{{Position: 0.30, Width: 0.9}}

	if CanPlaceOpening(5, 0.32, 0.9, existing) {
		t.Errorf("Overlapping opening must be rejected")
	}
	// Far enough along the wall it fits.
	if !CanPlaceOpening(5, 0.7, 0.9, existing) {
		t.Errorf("Non-overlapping opening should be accepted")
	}
	// Just outside the first span but within the buffer: still rejected.
	if CanPlaceOpening(5, 0.482, 0.9, existing) {
		t.Errorf("Opening within the 2cm buffer must be rejected")
	}
}

func TestCanPlaceOpeningEdgeMargins(t *testing.T) {
	// 4m wall, 0.9m opening at 0.02: span starts before the wall does.
	if CanPlaceOpening(4, 0.02, 0.9, nil) {
		t.Errorf("Opening breaching the end margin must be rejected")
	}
	// Opening ending 3cm short of the wall end: inside the 5cm absolute
	// margin even though the 2% ratio (8cm) is also breached.
	if CanPlaceOpening(4, (4-0.03-0.45)/4, 0.9, nil) {
		t.Errorf("Opening within 5cm of the wall end must be rejected")
	}
	// Comfortably inside both margins.
	if !CanPlaceOpening(4, 0.5, 0.9, nil) {
		t.Errorf("Centered opening should be accepted")
	}
}

func TestCanPlaceOpeningDegenerateInputs(t *testing.T) {
	tests := []struct {
		name               string
		length, pos, width float64
	}{
		{"zero wall length", 0, 0.5, 0.9},
		{"zero width", 5, 0.5, 0},
		{"position below 0", 5, -0.1, 0.9},
		{"position above 1", 5, 1.1, 0.9},
		{"opening wider than wall", 2, 0.5, 2.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if CanPlaceOpening(tc.length, tc.pos, tc.width, nil) {
				t.Errorf("Expected rejection")
			}
		})
	}
}
