package geom

import (
	"math"
	"testing"
)

func snapFixture() ([]Point, []Segment) {
	segments := []Segment{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 6}},
	}
	endpoints := []Point{{0, 0}, {10, 0}, {10, 6}}
	return endpoints, segments
}

func TestSnapEndpointBeatsMidpoint(t *testing.T) {
	endpoints, segments := snapFixture()

	// Near the shared corner: both an endpoint and segment interiors are
	// in range; the endpoint wins.
	res := Snap(Point{10.1, 0.1}, endpoints, segments, SnapTolerance, 0.5, DefaultSnapSettings(), nil)
	if res.Type != SnapEndpoint {
		t.Fatalf("Expected endpoint snap, got %v", res.Type)
	}
	if res.Point != (Point{10, 0}) {
		t.Errorf("Expected (10,0), got %+v", res.Point)
	}
}

func TestSnapMidpoint(t *testing.T) {
	endpoints, segments := snapFixture()

	res := Snap(Point{5.05, 0.2}, endpoints, segments, SnapTolerance, 0.5, DefaultSnapSettings(), nil)
	if res.Type != SnapMidpoint {
		t.Fatalf("Expected midpoint snap, got %v", res.Type)
	}
	if res.Point != (Point{5, 0}) {
		t.Errorf("Expected (5,0), got %+v", res.Point)
	}
}

func TestSnapPerpendicularFoot(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := DefaultSnapSettings()
	settings.Midpoints = false // the foot would otherwise lose to the midpoint here

	// Reference above the horizontal wall: its perpendicular foot is
	// (3,0), and the cursor hovers near it.
	ref := Point{3, 2}
	res := Snap(Point{3.1, 0.15}, endpoints, segments, SnapTolerance, 0.5, settings, &ref)
	if res.Type != SnapPerpendicular {
		t.Fatalf("Expected perpendicular snap, got %v", res.Type)
	}
	if res.Point.DistanceTo(Point{3, 0}) > 1e-9 {
		t.Errorf("Expected foot (3,0), got %+v", res.Point)
	}
}

func TestSnapNearestOnSegment(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := DefaultSnapSettings()
	settings.Midpoints = false
	settings.Perpendicular = false

	res := Snap(Point{7, 0.2}, endpoints, segments, SnapTolerance, 0.5, settings, nil)
	if res.Type != SnapNearest {
		t.Fatalf("Expected nearest snap, got %v", res.Type)
	}
	if res.Point.DistanceTo(Point{7, 0}) > 1e-9 {
		t.Errorf("Expected (7,0), got %+v", res.Point)
	}
}

func TestSnapInteriorExclusion(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := SnapSettings{Nearest: true}

	// The projection lands within the outer 1% of the segment, which is
	// reserved for endpoint snapping.
	res := Snap(Point{0.05, 0.2}, endpoints, segments, SnapTolerance, 0, settings, nil)
	if res.Type != SnapNone {
		t.Errorf("Projection at the segment end should not snap, got %v at %+v", res.Type, res.Point)
	}
}

func TestSnapGridFallback(t *testing.T) {
	endpoints, segments := snapFixture()

	res := Snap(Point{3.3, 4.1}, endpoints, segments, SnapTolerance, 0.5, DefaultSnapSettings(), nil)
	if res.Type != SnapGrid {
		t.Fatalf("Expected grid snap, got %v", res.Type)
	}
	if res.Point != (Point{3.5, 4}) {
		t.Errorf("Expected (3.5,4), got %+v", res.Point)
	}
}

func TestSnapAllDisabled(t *testing.T) {
	endpoints, segments := snapFixture()

	p := Point{3.3, 4.1}
	res := Snap(p, endpoints, segments, SnapTolerance, 0.5, SnapSettings{}, nil)
	if res.Type != SnapNone || res.Point != p {
		t.Errorf("With everything disabled the raw point passes through, got %+v", res)
	}
}

func TestSnapOrthogonalLocksAxis(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := DefaultSnapSettings()
	settings.Orthogonal = true
	ref := Point{2, 3}

	// Larger delta on X: lock Y to the reference exactly, whatever the
	// noise on that axis.
	res := Snap(Point{7.3, 3.4}, endpoints, segments, SnapTolerance, 0.5, settings, &ref)
	if res.Point.Y != ref.Y {
		t.Errorf("Locked axis must equal the reference exactly, got %+v", res.Point)
	}

	// Larger delta on Y locks X instead.
	res = Snap(Point{2.4, 8.9}, endpoints, segments, SnapTolerance, 0.5, settings, &ref)
	if res.Point.X != ref.X {
		t.Errorf("Locked axis must equal the reference exactly, got %+v", res.Point)
	}
}

func TestSnapOrthogonalAlignsFreeAxis(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := DefaultSnapSettings()
	settings.Orthogonal = true
	ref := Point{2, 3}

	// Moving roughly horizontally toward x=10: the free coordinate aligns
	// with the endpoint column at 10, keeping the result orthogonal.
	res := Snap(Point{9.8, 3.2}, endpoints, segments, SnapTolerance, 0.5, settings, &ref)
	if res.Type != SnapEndpoint {
		t.Fatalf("Expected endpoint-aligned orthogonal snap, got %v", res.Type)
	}
	if res.Point != (Point{10, 3}) {
		t.Errorf("Expected (10,3), got %+v", res.Point)
	}
}

func TestSnapOrthogonalGridFallback(t *testing.T) {
	settings := SnapSettings{Orthogonal: true, Grid: true}
	ref := Point{2, 3}

	res := Snap(Point{5.3, 3.4}, nil, nil, SnapTolerance, 0.5, settings, &ref)
	if res.Type != SnapGrid {
		t.Fatalf("Expected grid snap, got %v", res.Type)
	}
	if res.Point != (Point{5.5, 3}) {
		t.Errorf("Expected (5.5,3), got %+v", res.Point)
	}
}

func TestSnapToleranceRespected(t *testing.T) {
	endpoints, segments := snapFixture()
	settings := SnapSettings{Endpoints: true}

	res := Snap(Point{10.5, 0.5}, endpoints, segments, 0.3, 0, settings, nil)
	if res.Type != SnapNone {
		t.Errorf("Endpoint beyond tolerance should not snap, got %v", res.Type)
	}
	if math.Abs(res.Point.X-10.5) > 1e-12 {
		t.Errorf("Unsnapped point should pass through, got %+v", res.Point)
	}
}
