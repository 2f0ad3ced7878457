// Package diagram renders floor plans as gonum plots and ASCII art.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// ExportPlanDiagram exports a floor plan diagram to an image file.
// The format follows the file extension (.png, .svg, .pdf).
func ExportPlanDiagram(pl *plan.Plan, filename string) error {
	p := plot.New()
	if pl.Name != "" {
		p.Title.Text = pl.Name
	} else {
		p.Title.Text = "Floor Plan"
	}
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	// Plan coordinates grow downward, plots grow upward. Flip Y so the
	// drawing matches the editor.
	if min, max, ok := pl.Bounds(); ok {
		p.Y.Min = max.Y + 0.5
		p.Y.Max = min.Y - 0.5
		p.X.Min = min.X - 0.5
		p.X.Max = max.X + 0.5
	}

	// Room outline
	if len(pl.Outline) >= 3 {
		outline := make(plotter.XYs, len(pl.Outline)+1)
		for i, v := range pl.Outline {
			outline[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		outline[len(pl.Outline)] = outline[0]

		line, err := plotter.NewLine(outline)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = color.Gray{Y: 150}
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
	}

	// Walls as filled mitered polygons
	for i := range pl.Walls {
		w := &pl.Walls[i]
		ext := pl.CornerExtensions(i)
		outline := geom.WallOutline(w.Geom(), ext)

		pts := make(plotter.XYs, len(outline))
		for j, v := range outline {
			pts[j] = plotter.XY{X: v.X, Y: v.Y}
		}

		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 90, G: 90, B: 90, A: 255}
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
	}

	// Openings over the walls
	for i := range pl.Walls {
		w := &pl.Walls[i]
		dir := w.Direction()
		left := dir.Perp()
		leftOff, rightOff := geom.EdgeOffsets(w.Alignment, w.Thickness)

		for _, o := range w.Openings {
			fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			edge := color.RGBA{R: 141, G: 110, B: 99, A: 255}
			if o.Kind == plan.KindWindow {
				fill = color.RGBA{R: 227, G: 242, B: 253, A: 255}
				edge = color.RGBA{R: 21, G: 101, B: 192, A: 255}
			}

			x0 := o.Position*w.Length() - o.Width/2
			x1 := o.Position*w.Length() + o.Width/2
			corners := []geom.Point{
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(rightOff)),
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(rightOff)),
			}
			pts := make(plotter.XYs, len(corners))
			for j, v := range corners {
				pts[j] = plotter.XY{X: v.X, Y: v.Y}
			}

			poly, err := plotter.NewPolygon(pts)
			if err != nil {
				return err
			}
			poly.Color = fill
			poly.LineStyle.Color = edge
			poly.LineStyle.Width = vg.Points(1)
			p.Add(poly)
		}
	}

	// Wall endpoints
	endpoints := pl.Endpoints()
	if len(endpoints) > 0 {
		pts := make(plotter.XYs, len(endpoints))
		for j, v := range endpoints {
			pts[j] = plotter.XY{X: v.X, Y: v.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 200, G: 60, B: 60, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	// Dimension labels at wall midpoints
	for i := range pl.Walls {
		w := &pl.Walls[i]
		mid := w.Segment().Midpoint()
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: mid.X, Y: mid.Y}},
			Labels: []string{fmt.Sprintf("%.2fm", w.Length())},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
