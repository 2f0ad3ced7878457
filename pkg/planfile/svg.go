package planfile

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width    int     // canvas width in pixels
	Height   int     // canvas height in pixels
	Title    string  // diagram title
	FontSize int     // base font size for labels
	Padding  int     // padding around edges
	Grid     float64 // grid spacing in metres (0 = no grid)
	Labels   bool    // draw wall dimension labels
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:    800,
		Height:   600,
		FontSize: 12,
		Padding:  40,
		Grid:     1.0,
		Labels:   true,
	}
}

// GenerateSVG renders a plan to SVG without external dependencies.
// Walls are drawn as mitered outlines with openings cut in.
func GenerateSVG(p *plan.Plan, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}
	if opts.Padding == 0 {
		opts.Padding = 40
	}

	min, max, _ := p.Bounds()
	contentW := max.X - min.X
	contentH := max.Y - min.Y
	if contentW < 1 {
		cx := (min.X + max.X) / 2
		min.X, max.X = cx-0.5, cx+0.5
		contentW = 1
	}
	if contentH < 1 {
		cy := (min.Y + max.Y) / 2
		min.Y, max.Y = cy-0.5, cy+0.5
		contentH = 1
	}

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = 30
	}
	availW := float64(opts.Width - 2*opts.Padding)
	availH := float64(opts.Height-2*opts.Padding) - titleSpace

	scale := math.Min(availW/contentW, availH/contentH)
	offsetX := float64(opts.Padding) + (availW-contentW*scale)/2 - min.X*scale
	offsetY := float64(opts.Padding) + titleSpace + (availH-contentH*scale)/2 - min.Y*scale

	// World metres to canvas pixels.
	toPx := func(pt geom.Point) (float64, float64) {
		return pt.X*scale + offsetX, pt.Y*scale + offsetY
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<style>
  .wall { fill: #444; stroke: #111; stroke-width: 1; }
  .opening-door { fill: white; stroke: #8d6e63; stroke-width: 1; }
  .opening-window { fill: #e3f2fd; stroke: #1565c0; stroke-width: 1; }
  .outline { fill: none; stroke: #999; stroke-width: 1; stroke-dasharray: 6 3; }
  .grid { stroke: #eee; stroke-width: 0.5; }
  .dim-label { font-family: sans-serif; font-size: %dpx; fill: #555; text-anchor: middle; }
  .title { font-family: sans-serif; font-size: %dpx; font-weight: bold; text-anchor: middle; }
</style>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.FontSize-2, opts.FontSize+4))

	// Background
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>
`, opts.Width, opts.Height))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="22" class="title">%s</text>
`, opts.Width/2, html.EscapeString(opts.Title)))
	}

	// Grid lines under everything else
	if opts.Grid > 0 {
		startX := math.Ceil(min.X/opts.Grid) * opts.Grid
		for gx := startX; gx <= max.X; gx += opts.Grid {
			x1, y1 := toPx(geom.Point{X: gx, Y: min.Y})
			x2, y2 := toPx(geom.Point{X: gx, Y: max.Y})
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="grid"/>
`, x1, y1, x2, y2))
		}
		startY := math.Ceil(min.Y/opts.Grid) * opts.Grid
		for gy := startY; gy <= max.Y; gy += opts.Grid {
			x1, y1 := toPx(geom.Point{X: min.X, Y: gy})
			x2, y2 := toPx(geom.Point{X: max.X, Y: gy})
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="grid"/>
`, x1, y1, x2, y2))
		}
	}

	// Room outline
	if len(p.Outline) >= 3 {
		var pts []string
		for _, pt := range p.Outline {
			x, y := toPx(pt)
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString(fmt.Sprintf(`<polygon points="%s" class="outline"/>
`, strings.Join(pts, " ")))
	}

	// Walls as mitered outlines
	for i := range p.Walls {
		w := &p.Walls[i]
		ext := p.CornerExtensions(i)
		outline := geom.WallOutline(w.Geom(), ext)

		var pts []string
		for _, pt := range outline {
			x, y := toPx(pt)
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString(fmt.Sprintf(`<polygon points="%s" class="wall"/>
`, strings.Join(pts, " ")))
	}

	// Openings drawn over the walls
	for i := range p.Walls {
		w := &p.Walls[i]
		dir := w.Direction()
		left := dir.Perp()
		leftOff, rightOff := geom.EdgeOffsets(w.Alignment, w.Thickness)

		for _, o := range w.Openings {
			class := "opening-door"
			if o.Kind == plan.KindWindow {
				class = "opening-window"
			}

			x0 := o.Position*w.Length() - o.Width/2
			x1 := o.Position*w.Length() + o.Width/2
			corners := []geom.Point{
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(rightOff)),
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(rightOff)),
			}
			var pts []string
			for _, pt := range corners {
				x, y := toPx(pt)
				pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
			}
			sb.WriteString(fmt.Sprintf(`<polygon points="%s" class="%s"/>
`, strings.Join(pts, " "), class))
		}
	}

	// Dimension labels
	if opts.Labels {
		for i := range p.Walls {
			w := &p.Walls[i]
			mid := w.Segment().Midpoint()
			x, y := toPx(mid)
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="dim-label">%.2fm</text>
`, x, y-6, w.Length()))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
