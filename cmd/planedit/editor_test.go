package main

import (
	"math"
	"testing"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

func newTestEditor() *Editor {
	return &Editor{
		plan:       plan.New(""),
		settings:   geom.DefaultSnapSettings(),
		gridSize:   0.5,
		scale:      8,
		offsetX:    -2,
		offsetY:    -2,
		thickness:  0.2,
		wallHeight: 2.7,
		alignment:  geom.AlignCenter,
		selected:   -1,
	}
}

func TestViewportRoundTrip(t *testing.T) {
	ed := newTestEditor()

	cells := [][2]int{{0, 0}, {10, 5}, {40, 20}, {79, 23}}
	for _, c := range cells {
		p := ed.cellToWorld(c[0], c[1])
		cx, cy := ed.worldToCell(p)
		if cx != c[0] || cy != c[1] {
			t.Errorf("cell (%d,%d) -> %v -> (%d,%d)", c[0], c[1], p, cx, cy)
		}
	}
}

func TestNearestWall(t *testing.T) {
	ed := newTestEditor()
	if _, err := ed.plan.AddWall(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, 0.2, 2.7, geom.AlignCenter); err != nil {
		t.Fatalf("AddWall: %v", err)
	}

	idx, pos, ok := ed.nearestWall(geom.Point{X: 2, Y: 0.1})
	if !ok {
		t.Fatal("expected a wall near the point")
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
	if math.Abs(pos-2) > 1e-9 {
		t.Errorf("pos = %v, want 2", pos)
	}

	if _, _, ok := ed.nearestWall(geom.Point{X: 2, Y: 5}); ok {
		t.Error("point far from any wall should not match")
	}
}

func TestPlacePointChainsWalls(t *testing.T) {
	ed := newTestEditor()

	ed.cursor = geom.Point{X: 0, Y: 0}
	ed.updateSnap()
	ed.placePoint()
	if !ed.drawing {
		t.Fatal("first placement should start drawing")
	}

	ed.cursor = geom.Point{X: 3, Y: 0}
	ed.updateSnap()
	ed.placePoint()

	if len(ed.plan.Walls) != 1 {
		t.Fatalf("wall count = %d, want 1", len(ed.plan.Walls))
	}
	if !ed.drawing {
		t.Error("drawing should chain into the next wall")
	}
	if ed.drawStart.DistanceTo(geom.Point{X: 3, Y: 0}) > 1e-9 {
		t.Errorf("chained start = %v, want (3,0)", ed.drawStart)
	}
}

func TestPlacePointRejectsShortWall(t *testing.T) {
	ed := newTestEditor()
	ed.settings.Grid = false

	ed.cursor = geom.Point{X: 0, Y: 0}
	ed.updateSnap()
	ed.placePoint()

	ed.cursor = geom.Point{X: 0.05, Y: 0}
	ed.updateSnap()
	ed.placePoint()

	if len(ed.plan.Walls) != 0 {
		t.Errorf("wall count = %d, want 0", len(ed.plan.Walls))
	}
	if len(ed.undoStack) != 0 {
		t.Errorf("failed placement should not leave an undo entry")
	}
	if ed.messageType != MsgError {
		t.Errorf("expected an error message, got %q", ed.message)
	}
}

func TestUndoRedo(t *testing.T) {
	ed := newTestEditor()

	ed.cursor = geom.Point{X: 0, Y: 0}
	ed.updateSnap()
	ed.placePoint()
	ed.cursor = geom.Point{X: 3, Y: 0}
	ed.updateSnap()
	ed.placePoint()

	ed.undo()
	if len(ed.plan.Walls) != 0 {
		t.Fatalf("after undo: wall count = %d, want 0", len(ed.plan.Walls))
	}

	ed.redo()
	if len(ed.plan.Walls) != 1 {
		t.Fatalf("after redo: wall count = %d, want 1", len(ed.plan.Walls))
	}
}
