package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// Styles
var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWallSel  = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleDoor     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWindow   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGrid     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleRubber   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 162, 200)) // Lilac
	styleSnap     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleCursor   = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo  = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgOK    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorNavy)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleInput    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h)

	switch ed.mode {
	case ModeInput:
		ed.drawInputBox(w, h)
	case ModeHelp:
		ed.drawHelpOverlay(w, h)
	}

	ed.drawStatusBar(w, h)
}

func (ed *Editor) drawCanvas(w, h int) {
	canvasH := h - 2 // status bar and help line

	// Grid dots
	if ed.settings.Grid && ed.gridSize > 0 {
		startX := math.Ceil(ed.offsetX/ed.gridSize) * ed.gridSize
		endX := ed.offsetX + float64(w)/ed.scale
		for gx := startX; gx <= endX; gx += ed.gridSize {
			startY := math.Ceil(ed.offsetY/ed.gridSize) * ed.gridSize
			endY := ed.offsetY + float64(canvasH)/(ed.scale/2)
			for gy := startY; gy <= endY; gy += ed.gridSize {
				cx, cy := ed.worldToCell(geom.Point{X: gx, Y: gy})
				if cy < canvasH {
					ed.screen.SetContent(cx, cy, '·', nil, styleGrid)
				}
			}
		}
	}

	// Walls
	for i := range ed.plan.Walls {
		wall := &ed.plan.Walls[i]
		style := styleWall
		if i == ed.selected {
			style = styleWallSel
		}
		ed.plotSegment(wall.Start, wall.End, '█', style, canvasH)
	}

	// Openings over walls
	for i := range ed.plan.Walls {
		wall := &ed.plan.Walls[i]
		dir := wall.Direction()
		for _, o := range wall.Openings {
			ch := '▒'
			style := styleDoor
			if o.Kind == plan.KindWindow {
				ch = '░'
				style = styleWindow
			}
			a := wall.Start.Add(dir.Scale(o.Position*wall.Length() - o.Width/2))
			b := wall.Start.Add(dir.Scale(o.Position*wall.Length() + o.Width/2))
			ed.plotSegment(a, b, ch, style, canvasH)
		}
	}

	// Endpoints
	for _, ep := range ed.plan.Endpoints() {
		cx, cy := ed.worldToCell(ep)
		if cy < canvasH {
			ed.screen.SetContent(cx, cy, '◆', nil, styleEndpoint)
		}
	}

	// Rubber band while drawing
	if ed.drawing {
		ed.plotSegment(ed.drawStart, ed.snapped.Point, '·', styleRubber, canvasH)
		sx, sy := ed.worldToCell(ed.drawStart)
		if sy < canvasH {
			ed.screen.SetContent(sx, sy, '◉', nil, styleRubber)
		}
	}

	// Snap marker and raw cursor
	cx, cy := ed.worldToCell(ed.cursor)
	if cy < canvasH {
		ed.screen.SetContent(cx, cy, ' ', nil, styleCursor)
	}
	if ed.snapped.Type != geom.SnapNone {
		sx, sy := ed.worldToCell(ed.snapped.Point)
		if sy < canvasH {
			ed.screen.SetContent(sx, sy, '✛', nil, styleSnap)
		}
	}
}

// plotSegment rasterizes a world segment onto the canvas.
func (ed *Editor) plotSegment(a, b geom.Point, ch rune, style tcell.Style, canvasH int) {
	x1, y1 := ed.worldToCell(a)
	x2, y2 := ed.worldToCell(b)

	dx := x2 - x1
	dy := y2 - y1
	steps := maxInt(absInt(dx), absInt(dy))
	if steps == 0 {
		if y1 >= 0 && y1 < canvasH && x1 >= 0 {
			ed.screen.SetContent(x1, y1, ch, nil, style)
		}
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := x1 + int(float64(dx)*t+0.5)
		cy := y1 + int(float64(dy)*t+0.5)
		if cy >= 0 && cy < canvasH && cx >= 0 {
			ed.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

func (ed *Editor) drawStatusBar(w, h int) {
	// Help line above the status bar
	help := ed.helpString()
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, h-2, ' ', nil, styleDefault)
	}
	ed.drawString(1, h-2, truncate(help, w-2), styleHelp)

	// Status bar
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}

	name := ed.filename
	if name == "" {
		name = "(untitled)"
	}
	if ed.modified {
		name += " *"
	}

	left := fmt.Sprintf(" %s | %s | %.2fm %s | snap:%s%s | %s",
		ed.modeString(), name, ed.thickness, ed.alignment,
		ed.snapFlags(), ed.orthoFlag(), ed.snapped.Type)
	ed.drawString(0, h-1, truncate(left, w), styleStatus)

	if ed.message != "" {
		style := styleMsgInfo
		switch ed.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgOK
		}
		msg := truncate(ed.message, w/2)
		ed.drawString(w-len(msg)-1, h-1, msg, style)
	}
}

func (ed *Editor) snapFlags() string {
	flags := ""
	appendFlag := func(on bool, ch string) {
		if on {
			flags += ch
		} else {
			flags += "-"
		}
	}
	appendFlag(ed.settings.Endpoints, "E")
	appendFlag(ed.settings.Midpoints, "M")
	appendFlag(ed.settings.Perpendicular, "P")
	appendFlag(ed.settings.Nearest, "N")
	appendFlag(ed.settings.Grid, "G")
	return flags
}

func (ed *Editor) orthoFlag() string {
	if ed.settings.Orthogonal {
		return "+O"
	}
	return ""
}

func (ed *Editor) modeString() string {
	switch ed.mode {
	case ModeCanvas:
		if ed.drawing {
			return "DRAW"
		}
		return "CANVAS"
	case ModeMoveEnd:
		return "MOVE"
	case ModeInput:
		return "INPUT"
	case ModeHelp:
		return "HELP"
	}
	return "?"
}

func (ed *Editor) helpString() string {
	switch ed.mode {
	case ModeMoveEnd:
		return "arrows: move endpoint | Enter: commit | Esc: cancel"
	default:
		if ed.drawing {
			return "Enter/click: place far end | Esc: cancel wall | 1-5/o: snap toggles"
		}
		return "Enter/click: start wall | d/w: door/window | Tab: select | m: move end | ?: help | q: quit"
	}
}

var helpLines = []string{
	"Drawing",
	"  Enter, Space, click   start a wall / place its far end",
	"  Esc                   cancel the pending wall",
	"  arrows                move cursor (Alt+arrows for 5cm steps)",
	"",
	"Openings (placed on the wall nearest the cursor)",
	"  d                     add a 0.90m door",
	"  w                     add a 1.20m window",
	"",
	"Editing",
	"  Tab                   cycle wall selection",
	"  x, Delete             delete the selected wall",
	"  m                     grab and move the nearest wall endpoint",
	"  a                     cycle alignment (also applies to selection)",
	"  [ ]                   wall thickness down / up",
	"  n                     rename the plan",
	"",
	"Snapping",
	"  1                     toggle endpoint snap",
	"  2                     toggle midpoint snap",
	"  3                     toggle perpendicular snap",
	"  4                     toggle nearest-point snap",
	"  5                     toggle grid snap",
	"  o                     toggle orthogonal (axis lock) mode",
	"",
	"View",
	"  + -                   zoom in / out (also mouse wheel)",
	"  H J K L               pan",
	"  c                     center on the plan",
	"",
	"Files",
	"  Ctrl+S                save (.plan)",
	"  Ctrl+Z, Ctrl+Y        undo / redo",
	"  q                     quit",
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	boxW := 64
	boxH := h - 4
	if boxH > len(helpLines)+4 {
		boxH = len(helpLines) + 4
	}
	startX := (w - boxW) / 2
	startY := (h - boxH) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	ed.drawTitledBox(startX, startY, boxW, boxH, "planedit help")

	visible := boxH - 4
	if ed.helpScrollOffset > len(helpLines)-visible {
		ed.helpScrollOffset = len(helpLines) - visible
	}
	if ed.helpScrollOffset < 0 {
		ed.helpScrollOffset = 0
	}

	for i := 0; i < visible && ed.helpScrollOffset+i < len(helpLines); i++ {
		ed.drawString(startX+2, startY+2+i, truncate(helpLines[ed.helpScrollOffset+i], boxW-4), styleDefault)
	}

	ed.drawString(startX+2, startY+boxH-2, "arrows scroll, Esc closes", styleHelp)
}

func (ed *Editor) drawInputBox(w, h int) {
	boxW := 50
	boxH := 5
	startX := (w - boxW) / 2
	startY := (h - boxH) / 2

	ed.drawTitledBox(startX, startY, boxW, boxH, "")
	ed.drawString(startX+2, startY+1, ed.inputPrompt, styleDefault)
	ed.drawString(startX+2, startY+2, ed.inputBuffer+"_", styleInput)
}

// drawTitledBox draws a bordered box with optional title
func (ed *Editor) drawTitledBox(x, y, w, h int, title string) {
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	if title != "" {
		titleX := x + (w-len(title)-2)/2
		ed.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		ed.drawString(titleX+1, y, title, styleTitle)
		ed.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	for row := 1; row < h-1; row++ {
		ed.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			ed.screen.SetContent(x+col, y+row, ' ', nil, styleDefault)
		}
		ed.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		ed.screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
