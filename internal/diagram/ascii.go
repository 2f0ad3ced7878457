package diagram

import (
	"fmt"
	"strings"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// DrawASCIIPlan creates an ASCII representation of a floor plan,
// sized to fit the given character grid.
func DrawASCIIPlan(pl *plan.Plan, widthChars, heightChars int) string {
	if widthChars < 10 {
		widthChars = 10
	}
	if heightChars < 5 {
		heightChars = 5
	}

	min, max, ok := pl.Bounds()
	if !ok {
		return "  (empty plan)\n"
	}

	contentW := max.X - min.X
	contentH := max.Y - min.Y
	if contentW < 0.1 {
		contentW = 0.1
	}
	if contentH < 0.1 {
		contentH = 0.1
	}

	// Terminal cells are roughly twice as tall as wide.
	scaleX := float64(widthChars-1) / contentW
	scaleY := float64(heightChars-1) / contentH

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = make([]rune, widthChars)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toCell := func(p geom.Point) (int, int) {
		cx := int((p.X - min.X) * scaleX)
		cy := int((p.Y - min.Y) * scaleY)
		if cx < 0 {
			cx = 0
		}
		if cx >= widthChars {
			cx = widthChars - 1
		}
		if cy < 0 {
			cy = 0
		}
		if cy >= heightChars {
			cy = heightChars - 1
		}
		return cx, cy
	}

	plot := func(a, b geom.Point, ch rune) {
		length := a.DistanceTo(b)
		steps := int(length*scaleX) + int(length*scaleY) + 2
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			cx, cy := toCell(a.Add(b.Sub(a).Scale(t)))
			grid[cy][cx] = ch
		}
	}

	// Walls first, openings drawn over them
	for i := range pl.Walls {
		w := &pl.Walls[i]
		plot(w.Start, w.End, '#')
	}

	for i := range pl.Walls {
		w := &pl.Walls[i]
		dir := w.Direction()
		for _, o := range w.Openings {
			ch := '+'
			if o.Kind == plan.KindWindow {
				ch = 'o'
			}
			a := w.Start.Add(dir.Scale(o.Position*w.Length() - o.Width/2))
			b := w.Start.Add(dir.Scale(o.Position*w.Length() + o.Width/2))
			plot(a, b, ch)
		}
	}

	// Endpoints on top
	for _, ep := range pl.Endpoints() {
		cx, cy := toCell(ep)
		grid[cy][cx] = '*'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  # wall   + door   o window   *  endpoint   (%.1fm x %.1fm)\n",
		contentW, contentH))

	return sb.String()
}
