package planfile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// GenerateDXF converts a plan to a minimal ASCII DXF drawing.
// Walls become closed LWPOLYLINE entities on the WALLS layer, opening
// cuts go on DOORS/WINDOWS, and the room outline on OUTLINE.
func GenerateDXF(p *plan.Plan) string {
	var sb strings.Builder

	sb.WriteString("0\nSECTION\n2\nHEADER\n")
	sb.WriteString("9\n$ACADVER\n1\nAC1009\n")
	sb.WriteString("9\n$INSUNITS\n70\n6\n") // metres
	sb.WriteString("0\nENDSEC\n")

	sb.WriteString("0\nSECTION\n2\nTABLES\n")
	sb.WriteString("0\nTABLE\n2\nLAYER\n70\n4\n")
	writeDXFLayer(&sb, "WALLS", 7)
	writeDXFLayer(&sb, "DOORS", 3)
	writeDXFLayer(&sb, "WINDOWS", 5)
	writeDXFLayer(&sb, "OUTLINE", 8)
	sb.WriteString("0\nENDTAB\n")
	sb.WriteString("0\nENDSEC\n")

	sb.WriteString("0\nSECTION\n2\nENTITIES\n")

	for i := range p.Walls {
		w := &p.Walls[i]
		ext := p.CornerExtensions(i)
		writeDXFPolyline(&sb, "WALLS", geom.WallOutline(w.Geom(), ext), true)

		dir := w.Direction()
		left := dir.Perp()
		leftOff, rightOff := geom.EdgeOffsets(w.Alignment, w.Thickness)

		for _, o := range w.Openings {
			layer := "DOORS"
			if o.Kind == plan.KindWindow {
				layer = "WINDOWS"
			}
			x0 := o.Position*w.Length() - o.Width/2
			x1 := o.Position*w.Length() + o.Width/2
			writeDXFPolyline(&sb, layer, []geom.Point{
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(rightOff)),
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(rightOff)),
			}, true)
		}
	}

	if len(p.Outline) >= 3 {
		writeDXFPolyline(&sb, "OUTLINE", p.Outline, true)
	}

	sb.WriteString("0\nENDSEC\n")
	sb.WriteString("0\nEOF\n")

	return sb.String()
}

func writeDXFLayer(sb *strings.Builder, name string, colour int) {
	sb.WriteString("0\nLAYER\n")
	sb.WriteString(fmt.Sprintf("2\n%s\n", name))
	sb.WriteString("70\n0\n")
	sb.WriteString(fmt.Sprintf("62\n%d\n", colour))
	sb.WriteString("6\nCONTINUOUS\n")
}

func writeDXFPolyline(sb *strings.Builder, layer string, pts []geom.Point, closed bool) {
	if len(pts) < 2 {
		return
	}

	sb.WriteString("0\nLWPOLYLINE\n")
	sb.WriteString(fmt.Sprintf("8\n%s\n", layer))
	sb.WriteString(fmt.Sprintf("90\n%d\n", len(pts)))
	if closed {
		sb.WriteString("70\n1\n")
	} else {
		sb.WriteString("70\n0\n")
	}
	for _, pt := range pts {
		sb.WriteString(fmt.Sprintf("10\n%.4f\n20\n%.4f\n", pt.X, pt.Y))
	}
}
