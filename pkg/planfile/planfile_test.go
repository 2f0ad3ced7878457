package planfile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

func samplePlan(t *testing.T) *plan.Plan {
	t.Helper()

	p := plan.New("test-room")
	a, err := p.AddWall(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, 0.2, 2.7, geom.AlignCenter)
	if err != nil {
		t.Fatalf("AddWall: %v", err)
	}
	if _, err := p.AddWall(geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 4}, 0.2, 2.7, geom.AlignCenter); err != nil {
		t.Fatalf("AddWall: %v", err)
	}

	if err := p.AddOpening(a.ID, plan.NewDoor(0.5, 0.9, 2.1)); err != nil {
		t.Fatalf("AddOpening: %v", err)
	}
	if err := p.AddOpening(a.ID, plan.NewWindow(0.84, 0.6, 1.2, 0.9)); err != nil {
		t.Fatalf("AddOpening: %v", err)
	}

	if err := p.SetOutline([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4}, {X: 0, Y: 4}}); err != nil {
		t.Fatalf("SetOutline: %v", err)
	}

	return p
}

func plansEqual(t *testing.T, want, got *plan.Plan) {
	t.Helper()

	if got.Name != want.Name {
		t.Errorf("name = %q, want %q", got.Name, want.Name)
	}
	if len(got.Walls) != len(want.Walls) {
		t.Fatalf("wall count = %d, want %d", len(got.Walls), len(want.Walls))
	}
	if len(got.Outline) != len(want.Outline) {
		t.Fatalf("outline count = %d, want %d", len(got.Outline), len(want.Outline))
	}

	for i := range want.Walls {
		w, g := want.Walls[i], got.Walls[i]
		if g.ID != w.ID {
			t.Errorf("wall %d: id = %q, want %q", i, g.ID, w.ID)
		}
		if g.Start.DistanceTo(w.Start) > 1e-9 || g.End.DistanceTo(w.End) > 1e-9 {
			t.Errorf("wall %d: endpoints %v-%v, want %v-%v", i, g.Start, g.End, w.Start, w.End)
		}
		if math.Abs(g.Thickness-w.Thickness) > 1e-9 {
			t.Errorf("wall %d: thickness = %v, want %v", i, g.Thickness, w.Thickness)
		}
		if g.Alignment != w.Alignment {
			t.Errorf("wall %d: alignment = %v, want %v", i, g.Alignment, w.Alignment)
		}
		if len(g.Openings) != len(w.Openings) {
			t.Fatalf("wall %d: opening count = %d, want %d", i, len(g.Openings), len(w.Openings))
		}
		for j := range w.Openings {
			o, og := w.Openings[j], g.Openings[j]
			if og.Kind != o.Kind || math.Abs(og.Position-o.Position) > 1e-9 ||
				math.Abs(og.Width-o.Width) > 1e-9 || math.Abs(og.Sill-o.Sill) > 1e-9 {
				t.Errorf("wall %d opening %d: got %+v, want %+v", i, j, og, o)
			}
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := samplePlan(t)

	data, err := ToJSON(p, true)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	plansEqual(t, p, back)
}

func TestJSONUnknownAlignmentDefaultsToCenter(t *testing.T) {
	data := []byte(`{"walls":[{"id":"w1","start":[0,0],"end":[3,0],"thickness":0.2,"height":2.7,"alignment":"sideways"}]}`)

	p, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if p.Walls[0].Alignment != geom.AlignCenter {
		t.Errorf("alignment = %v, want center", p.Walls[0].Alignment)
	}
}

func TestJSONBadInput(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestPlanFileRoundTrip(t *testing.T) {
	p := samplePlan(t)

	var buf bytes.Buffer
	if err := WritePlan(&buf, p); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}

	back, err := ReadPlanBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadPlanBytes: %v", err)
	}

	plansEqual(t, p, back)
}

func TestPlanFileBadArchive(t *testing.T) {
	if _, err := ReadPlanBytes([]byte("not a zip")); err == nil {
		t.Error("expected error for non-zip input")
	}
}

func TestMetaRoundTrip(t *testing.T) {
	p := samplePlan(t)

	text := GenerateMeta(p)
	meta, err := ParseMeta(text)
	if err != nil {
		t.Fatalf("ParseMeta: %v", err)
	}

	if meta.Version != 1 {
		t.Errorf("version = %d, want 1", meta.Version)
	}
	if meta.Name != "test-room" {
		t.Errorf("name = %q, want test-room", meta.Name)
	}
	if meta.WallCount != 2 {
		t.Errorf("walls = %d, want 2", meta.WallCount)
	}
	if meta.Units != "m" {
		t.Errorf("units = %q, want m", meta.Units)
	}
}

func TestGenerateSVG(t *testing.T) {
	p := samplePlan(t)

	svg := GenerateSVG(p, DefaultSVGOptions())

	for _, want := range []string{"<svg", "</svg>", `class="wall"`, `class="opening-door"`, `class="opening-window"`, `class="outline"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	// Two walls, one outline polygon, two opening polygons.
	if got := strings.Count(svg, "<polygon"); got != 5 {
		t.Errorf("polygon count = %d, want 5", got)
	}
}

func TestGenerateSVGTitle(t *testing.T) {
	p := samplePlan(t)

	opts := DefaultSVGOptions()
	opts.Title = "Ground <Floor>"
	svg := GenerateSVG(p, opts)

	if !strings.Contains(svg, "Ground &lt;Floor&gt;") {
		t.Error("title not escaped into SVG")
	}
}

func TestGenerateSVGEmptyPlan(t *testing.T) {
	svg := GenerateSVG(plan.New("empty"), DefaultSVGOptions())

	if !strings.Contains(svg, "</svg>") {
		t.Error("empty plan should still produce a well-formed document")
	}
}

func TestGenerateDXF(t *testing.T) {
	p := samplePlan(t)

	dxf := GenerateDXF(p)

	for _, want := range []string{"SECTION", "ENTITIES", "LWPOLYLINE", "WALLS", "DOORS", "WINDOWS", "OUTLINE", "EOF"} {
		if !strings.Contains(dxf, want) {
			t.Errorf("DXF missing %q", want)
		}
	}

	// Two wall polylines, two opening polylines, one outline.
	if got := strings.Count(dxf, "LWPOLYLINE"); got != 5 {
		t.Errorf("LWPOLYLINE count = %d, want 5", got)
	}
}

func TestRenderPNG(t *testing.T) {
	p := samplePlan(t)

	var buf bytes.Buffer
	opts := DefaultPNGOptions()
	opts.Width = 200
	opts.Height = 150
	if err := RenderPNG(p, &buf, opts); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	// PNG magic bytes.
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}
