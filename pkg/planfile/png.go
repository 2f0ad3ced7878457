// Native PNG rendering for floor plans.
// Mirrors the SVG renderer output using Go's image packages.

package planfile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width    int
	Height   int
	Padding  int
	FontSize int
	Grid     float64
	Labels   bool
	Title    string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:    800,
		Height:   600,
		Padding:  40,
		FontSize: 12,
		Grid:     1.0,
		Labels:   true,
	}
}

// Colors used in rendering
var (
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorWall    = color.RGBA{68, 68, 68, 255}     // #444
	colorWallBdr = color.RGBA{17, 17, 17, 255}     // #111
	colorDoor    = color.RGBA{141, 110, 99, 255}   // #8d6e63
	colorWindow  = color.RGBA{227, 242, 253, 255}  // #e3f2fd
	colorWinBdr  = color.RGBA{21, 101, 192, 255}   // #1565c0
	colorGridLn  = color.RGBA{238, 238, 238, 255}  // #eee
	colorLabel   = color.RGBA{85, 85, 85, 255}     // #555
	colorOutline = color.RGBA{153, 153, 153, 255}  // #999
)

// renderContext holds rendering parameters including scale
type renderContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	fontSize  float64
	face      font.Face
}

func newRenderContext(img *image.RGBA, scale int, fontSize int) *renderContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // should never happen with embedded font
	}

	size := float64(fontSize * scale)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone, // No hinting - we'll supersample instead
	})
	if err != nil {
		panic(err)
	}

	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 1.5,
		fontSize:  size,
		face:      face,
	}
}

// RenderPNG renders a plan to PNG format.
// Uses 4x supersampling for smoother output.
func RenderPNG(p *plan.Plan, w io.Writer, opts PNGOptions) error {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	scale := 4
	largeOpts := opts
	largeOpts.Width = opts.Width * scale
	largeOpts.Height = opts.Height * scale
	largeOpts.Padding = opts.Padding * scale

	largeImg := renderPNGInternal(p, largeOpts, scale)

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func renderPNGInternal(p *plan.Plan, opts PNGOptions, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	ctx := newRenderContext(img, scale, opts.FontSize)

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, colorWhite)
		}
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
		titleSpace = 30 * ctx.scale
	}
	availW := float64(opts.Width - 2*opts.Padding)
	availH := float64(opts.Height-2*opts.Padding) - titleSpace

	fit := math.Min(availW/contentW, availH/contentH)
	offsetX := float64(opts.Padding) + (availW-contentW*fit)/2 - min.X*fit
	offsetY := float64(opts.Padding) + titleSpace + (availH-contentH*fit)/2 - min.Y*fit

	toPx := func(pt geom.Point) (float64, float64) {
		return pt.X*fit + offsetX, pt.Y*fit + offsetY
	}

	if opts.Title != "" {
		drawTextCentered(ctx, opts.Width/2, int(18*ctx.scale), opts.Title, colorWallBdr)
	}

	// Grid
	if opts.Grid > 0 {
		startX := math.Ceil(min.X/opts.Grid) * opts.Grid
		for gx := startX; gx <= max.X; gx += opts.Grid {
			x1, y1 := toPx(geom.Point{X: gx, Y: min.Y})
			x2, y2 := toPx(geom.Point{X: gx, Y: max.Y})
			drawLine(ctx, x1, y1, x2, y2, colorGridLn)
		}
		startY := math.Ceil(min.Y/opts.Grid) * opts.Grid
		for gy := startY; gy <= max.Y; gy += opts.Grid {
			x1, y1 := toPx(geom.Point{X: min.X, Y: gy})
			x2, y2 := toPx(geom.Point{X: max.X, Y: gy})
			drawLine(ctx, x1, y1, x2, y2, colorGridLn)
		}
	}

	// Room outline
	if len(p.Outline) >= 3 {
		for i := range p.Outline {
			a := p.Outline[i]
			b := p.Outline[(i+1)%len(p.Outline)]
			x1, y1 := toPx(a)
			x2, y2 := toPx(b)
			drawDashedLine(ctx, x1, y1, x2, y2, colorOutline)
		}
	}

	// Walls as mitered filled polygons
	for i := range p.Walls {
		w := &p.Walls[i]
		ext := p.CornerExtensions(i)
		outline := geom.WallOutline(w.Geom(), ext)

		poly := make([][2]float64, len(outline))
		for j, pt := range outline {
			x, y := toPx(pt)
			poly[j] = [2]float64{x, y}
		}
		fillPolygon(ctx, poly, colorWall)
		strokePolygon(ctx, poly, colorWallBdr)
	}

	// Openings over the walls
	for i := range p.Walls {
		w := &p.Walls[i]
		dir := w.Direction()
		left := dir.Perp()
		leftOff, rightOff := geom.EdgeOffsets(w.Alignment, w.Thickness)

		for _, o := range w.Openings {
			fill, stroke := colorWhite, colorDoor
			if o.Kind == plan.KindWindow {
				fill, stroke = colorWindow, colorWinBdr
			}

			x0 := o.Position*w.Length() - o.Width/2
			x1 := o.Position*w.Length() + o.Width/2
			corners := []geom.Point{
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(leftOff)),
				w.Start.Add(dir.Scale(x1)).Add(left.Scale(rightOff)),
				w.Start.Add(dir.Scale(x0)).Add(left.Scale(rightOff)),
			}
			poly := make([][2]float64, len(corners))
			for j, pt := range corners {
				x, y := toPx(pt)
				poly[j] = [2]float64{x, y}
			}
			fillPolygon(ctx, poly, fill)
			strokePolygon(ctx, poly, stroke)
		}
	}

	// Dimension labels
	if opts.Labels {
		for i := range p.Walls {
			w := &p.Walls[i]
			mid := w.Segment().Midpoint()
			x, y := toPx(mid)
			label := fmt.Sprintf("%.2fm", w.Length())
			drawTextCentered(ctx, int(x), int(y-6*ctx.scale), label, colorLabel)
		}
	}

	return img
}

// fillPolygon fills a polygon using even-odd scanline filling.
func fillPolygon(ctx *renderContext, poly [][2]float64, c color.Color) {
	if len(poly) < 3 {
		return
	}

	minY, maxY := poly[0][1], poly[0][1]
	for _, p := range poly {
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y) + 0.5

		var xs []float64
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if (a[1] <= fy && b[1] > fy) || (b[1] <= fy && a[1] > fy) {
				t := (fy - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				ctx.img.Set(x, y, c)
			}
		}
	}
}

// strokePolygon draws the polygon edges.
func strokePolygon(ctx *renderContext, poly [][2]float64, c color.Color) {
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		drawLine(ctx, a[0], a[1], b[0], b[1], c)
	}
}

// drawLine draws a line between two points with thickness from context.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	thickness := ctx.lineWidth

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawDashedLine draws a dashed line using fixed on/off runs.
func drawDashedLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		return
	}

	dash := 6.0 * ctx.scale
	gap := 3.0 * ctx.scale
	nx := dx / dist
	ny := dy / dist

	for pos := 0.0; pos < dist; pos += dash + gap {
		end := math.Min(pos+dash, dist)
		drawLine(ctx, x1+nx*pos, y1+ny*pos, x1+nx*end, y1+ny*end, c)
	}
}

// drawTextCentered draws text centered at the given position using Go Regular font.
func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	metrics := ctx.face.Metrics()
	ascent := metrics.Ascent.Ceil()

	baselineY := y + int(float64(ascent)*0.15)

	point := fixed.Point26_6{
		X: fixed.I(x - width/2),
		Y: fixed.I(baselineY),
	}

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  point,
	}
	d.DrawString(text)
}
