// Command planedit is a TUI editor for floor plans.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
	"github.com/ha1tch/plan-toolkit/pkg/planfile"
)

// Mode represents editor mode
type Mode int

const (
	ModeCanvas Mode = iota
	ModeMoveEnd // keyboard-driven endpoint movement
	ModeInput
	ModeHelp
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgError
	MsgSuccess
)

// Editor holds all editor state
type Editor struct {
	screen   tcell.Screen
	plan     *plan.Plan
	filename string
	modified bool
	mode     Mode

	message     string
	messageType MessageType

	// Cursor in world coordinates, and its snapped resolution
	cursor  geom.Point
	snapped geom.SnapResult

	// Snap configuration
	settings geom.SnapSettings
	gridSize float64

	// Viewport: world position of the canvas origin and cells per metre.
	// Terminal cells are about twice as tall as wide, so the vertical
	// scale is half the horizontal one.
	offsetX float64
	offsetY float64
	scale   float64

	// Wall drawing state
	drawing   bool
	drawStart geom.Point

	// Pending wall parameters
	thickness  float64
	wallHeight float64
	alignment  geom.Alignment

	// Selection
	selected int // wall index, -1 = none

	// Endpoint move state
	moveWallID string
	moveEnd    plan.WallEnd
	moveOrig   geom.Point

	// Undo/Redo
	undoStack []*plan.Plan
	redoStack []*plan.Plan

	// Input state
	inputBuffer string
	inputPrompt string
	inputAction func(string)

	// Help scroll state
	helpScrollOffset int
}

func main() {
	ed := &Editor{
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

	// Check command line
	if len(os.Args) > 1 {
		ed.filename = os.Args[1]
		if err := ed.loadFile(ed.filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ed.filename, err)
			os.Exit(1)
		}
	}

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	ed.screen = screen
	ed.updateSnap()

	ed.run()

	screen.Fini()
}

func (ed *Editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		}
	}
}

func (ed *Editor) loadFile(path string) error {
	p, err := planfile.ReadPlanFile(path)
	if err != nil {
		return err
	}
	ed.plan = p
	ed.selected = -1
	ed.centerView()
	return nil
}

func (ed *Editor) save() {
	if ed.filename == "" {
		ed.promptInput("Save as: ", func(s string) {
			if s == "" {
				return
			}
			if !strings.HasSuffix(s, ".plan") {
				s += ".plan"
			}
			ed.filename = s
			ed.save()
		})
		return
	}
	if err := planfile.WritePlanFile(ed.filename, ed.plan); err != nil {
		ed.showMessage("Save failed: "+err.Error(), MsgError)
		return
	}
	ed.modified = false
	ed.showMessage("Saved "+ed.filename, MsgSuccess)
}

// centerView positions the viewport over the plan contents.
func (ed *Editor) centerView() {
	min, max, ok := ed.plan.Bounds()
	if !ok {
		ed.offsetX, ed.offsetY = -2, -2
		return
	}
	w, h := 80, 24
	if ed.screen != nil {
		w, h = ed.screen.Size()
	}
	ed.offsetX = (min.X+max.X)/2 - float64(w)/(2*ed.scale)
	ed.offsetY = (min.Y+max.Y)/2 - float64(h)/ed.scale
}

// cellToWorld converts a screen cell to world coordinates.
func (ed *Editor) cellToWorld(cx, cy int) geom.Point {
	return geom.Point{
		X: ed.offsetX + float64(cx)/ed.scale,
		Y: ed.offsetY + float64(cy)/(ed.scale/2),
	}
}

// worldToCell converts world coordinates to a screen cell.
func (ed *Editor) worldToCell(p geom.Point) (int, int) {
	cx := int((p.X-ed.offsetX)*ed.scale + 0.5)
	cy := int((p.Y-ed.offsetY)*(ed.scale/2) + 0.5)
	return cx, cy
}

// updateSnap reresolves the cursor against the current geometry.
func (ed *Editor) updateSnap() {
	var ref *geom.Point
	if ed.drawing {
		ref = &ed.drawStart
	} else if ed.mode == ModeMoveEnd {
		ref = &ed.moveOrig
	}
	ed.snapped = geom.Snap(ed.cursor, ed.plan.Endpoints(), ed.plan.Segments(),
		geom.SnapTolerance, ed.gridSize, ed.settings, ref)
}

func (ed *Editor) pushUndo() {
	ed.undoStack = append(ed.undoStack, ed.plan.Clone())
	ed.redoStack = nil
}

func (ed *Editor) undo() {
	if len(ed.undoStack) == 0 {
		ed.showMessage("Nothing to undo", MsgInfo)
		return
	}
	ed.redoStack = append(ed.redoStack, ed.plan)
	ed.plan = ed.undoStack[len(ed.undoStack)-1]
	ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]
	ed.selected = -1
	ed.modified = true
	ed.updateSnap()
	ed.showMessage("Undone", MsgInfo)
}

func (ed *Editor) redo() {
	if len(ed.redoStack) == 0 {
		ed.showMessage("Nothing to redo", MsgInfo)
		return
	}
	ed.undoStack = append(ed.undoStack, ed.plan)
	ed.plan = ed.redoStack[len(ed.redoStack)-1]
	ed.redoStack = ed.redoStack[:len(ed.redoStack)-1]
	ed.selected = -1
	ed.modified = true
	ed.updateSnap()
	ed.showMessage("Redone", MsgInfo)
}

func (ed *Editor) showMessage(msg string, t MessageType) {
	ed.message = msg
	ed.messageType = t
}

func (ed *Editor) promptInput(prompt string, action func(string)) {
	ed.inputPrompt = prompt
	ed.inputBuffer = ""
	ed.inputAction = action
	ed.mode = ModeInput
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlS:
		ed.save()
		return false
	case tcell.KeyCtrlZ:
		ed.undo()
		return false
	case tcell.KeyCtrlY:
		ed.redo()
		return false
	}

	switch ed.mode {
	case ModeCanvas:
		return ed.handleCanvasKey(ev)
	case ModeMoveEnd:
		return ed.handleMoveEndKey(ev)
	case ModeInput:
		return ed.handleInputKey(ev)
	case ModeHelp:
		return ed.handleHelpKey(ev)
	}
	return false
}

func (ed *Editor) handleCanvasKey(ev *tcell.EventKey) bool {
	step := ed.gridSize
	if ev.Modifiers()&tcell.ModAlt != 0 {
		step = 0.05 // fine movement
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		ed.cursor.X -= step
		ed.updateSnap()
	case tcell.KeyRight:
		ed.cursor.X += step
		ed.updateSnap()
	case tcell.KeyUp:
		ed.cursor.Y -= step
		ed.updateSnap()
	case tcell.KeyDown:
		ed.cursor.Y += step
		ed.updateSnap()
	case tcell.KeyEnter:
		ed.placePoint()
	case tcell.KeyEscape:
		if ed.drawing {
			ed.drawing = false
			ed.updateSnap()
			ed.showMessage("Wall cancelled", MsgInfo)
		} else if ed.selected >= 0 {
			ed.selected = -1
		} else {
			return ed.confirmQuit()
		}
	case tcell.KeyTab:
		ed.cycleSelection()
	case tcell.KeyDelete, tcell.KeyBackspace2:
		ed.deleteSelected()
	case tcell.KeyRune:
		return ed.handleCanvasRune(ev.Rune())
	}
	return false
}

func (ed *Editor) handleCanvasRune(r rune) bool {
	switch r {
	case ' ':
		ed.placePoint()
	case 'q':
		return ed.confirmQuit()
	case '?':
		ed.helpScrollOffset = 0
		ed.mode = ModeHelp

	// Snap toggles
	case '1':
		ed.settings.Endpoints = !ed.settings.Endpoints
		ed.snapToggleMessage("Endpoint snap", ed.settings.Endpoints)
	case '2':
		ed.settings.Midpoints = !ed.settings.Midpoints
		ed.snapToggleMessage("Midpoint snap", ed.settings.Midpoints)
	case '3':
		ed.settings.Perpendicular = !ed.settings.Perpendicular
		ed.snapToggleMessage("Perpendicular snap", ed.settings.Perpendicular)
	case '4':
		ed.settings.Nearest = !ed.settings.Nearest
		ed.snapToggleMessage("Nearest snap", ed.settings.Nearest)
	case '5':
		ed.settings.Grid = !ed.settings.Grid
		ed.snapToggleMessage("Grid snap", ed.settings.Grid)
	case 'o':
		ed.settings.Orthogonal = !ed.settings.Orthogonal
		ed.snapToggleMessage("Orthogonal mode", ed.settings.Orthogonal)

	// Wall parameters
	case 'a':
		ed.cycleAlignment()
	case '[':
		if ed.thickness > 0.05 {
			ed.thickness -= 0.05
		}
		ed.showMessage(fmt.Sprintf("Thickness %.2fm", ed.thickness), MsgInfo)
	case ']':
		ed.thickness += 0.05
		ed.showMessage(fmt.Sprintf("Thickness %.2fm", ed.thickness), MsgInfo)

	// Openings
	case 'd':
		ed.addOpening(plan.NewDoor(0, 0.9, 2.1))
	case 'w':
		ed.addOpening(plan.NewWindow(0, 1.2, 1.2, 0.9))

	// Editing
	case 'm':
		ed.startMoveEnd()
	case 'x':
		ed.deleteSelected()
	case 'n':
		ed.promptInput("Plan name: ", func(s string) {
			ed.plan.Name = s
			ed.modified = true
		})

	// View
	case '+', '=':
		if ed.scale < 40 {
			ed.scale *= 1.25
		}
	case '-':
		if ed.scale > 2 {
			ed.scale /= 1.25
		}
	case 'c':
		ed.centerView()
	case 'H':
		ed.offsetX -= 8 / ed.scale
	case 'L':
		ed.offsetX += 8 / ed.scale
	case 'K':
		ed.offsetY -= 8 / ed.scale
	case 'J':
		ed.offsetY += 8 / ed.scale
	}
	return false
}

func (ed *Editor) snapToggleMessage(name string, on bool) {
	if on {
		ed.showMessage(name+" on", MsgInfo)
	} else {
		ed.showMessage(name+" off", MsgInfo)
	}
	ed.updateSnap()
}

func (ed *Editor) cycleAlignment() {
	switch ed.alignment {
	case geom.AlignCenter:
		ed.alignment = geom.AlignLeft
	case geom.AlignLeft:
		ed.alignment = geom.AlignRight
	default:
		ed.alignment = geom.AlignCenter
	}
	if ed.selected >= 0 && ed.selected < len(ed.plan.Walls) {
		ed.pushUndo()
		ed.plan.SetAlignment(ed.plan.Walls[ed.selected].ID, ed.alignment)
		ed.modified = true
	}
	ed.showMessage("Alignment "+ed.alignment.String(), MsgInfo)
}

// placePoint starts a wall at the snapped point, or commits the pending
// wall ending there.
func (ed *Editor) placePoint() {
	if !ed.drawing {
		ed.drawing = true
		ed.drawStart = ed.snapped.Point
		ed.updateSnap()
		ed.showMessage("Wall started - move and place the far end", MsgInfo)
		return
	}

	ed.pushUndo()
	_, err := ed.plan.AddWall(ed.drawStart, ed.snapped.Point, ed.thickness, ed.wallHeight, ed.alignment)
	if err != nil {
		ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]
		ed.showMessage(err.Error(), MsgError)
		return
	}
	ed.modified = true
	// Chain: the next wall starts where this one ended
	ed.drawStart = ed.snapped.Point
	ed.updateSnap()
	ed.showMessage("Wall added", MsgSuccess)
}

// addOpening drops an opening on the wall nearest to the cursor, at the
// projected position.
func (ed *Editor) addOpening(o plan.Opening) {
	idx, pos, ok := ed.nearestWall(ed.snapped.Point)
	if !ok {
		ed.showMessage("No wall near cursor", MsgError)
		return
	}

	o.Position = pos / ed.plan.Walls[idx].Length()
	ed.pushUndo()
	if err := ed.plan.AddOpening(ed.plan.Walls[idx].ID, o); err != nil {
		ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]
		ed.showMessage(err.Error(), MsgError)
		return
	}
	ed.modified = true
	ed.showMessage(fmt.Sprintf("%s added at %.2fm", o.Kind, pos), MsgSuccess)
}

// nearestWall returns the wall closest to p within the snap tolerance,
// along with the projected distance along it in meters.
func (ed *Editor) nearestWall(p geom.Point) (int, float64, bool) {
	best := -1
	bestDist := geom.SnapTolerance
	bestPos := 0.0
	for i := range ed.plan.Walls {
		seg := ed.plan.Walls[i].Segment()
		t := seg.Project(p)
		closest := seg.PointAt(t)
		d := p.DistanceTo(closest)
		if d < bestDist {
			best = i
			bestDist = d
			bestPos = t * seg.Length()
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestPos, true
}

func (ed *Editor) cycleSelection() {
	if len(ed.plan.Walls) == 0 {
		ed.selected = -1
		return
	}
	ed.selected = (ed.selected + 1) % len(ed.plan.Walls)
	w := &ed.plan.Walls[ed.selected]
	ed.showMessage(fmt.Sprintf("Wall %d: %.2fm, %.2fm thick, %s, %d openings",
		ed.selected, w.Length(), w.Thickness, w.Alignment, len(w.Openings)), MsgInfo)
}

func (ed *Editor) deleteSelected() {
	if ed.selected < 0 || ed.selected >= len(ed.plan.Walls) {
		ed.showMessage("No wall selected (Tab to select)", MsgError)
		return
	}
	ed.pushUndo()
	ed.plan.RemoveWall(ed.plan.Walls[ed.selected].ID)
	ed.selected = -1
	ed.modified = true
	ed.updateSnap()
	ed.showMessage("Wall deleted", MsgSuccess)
}

// startMoveEnd grabs the wall endpoint nearest to the cursor.
func (ed *Editor) startMoveEnd() {
	best := -1
	bestEnd := plan.AtStart
	bestDist := geom.SnapTolerance
	for i := range ed.plan.Walls {
		if d := ed.cursor.DistanceTo(ed.plan.Walls[i].Start); d < bestDist {
			best, bestEnd, bestDist = i, plan.AtStart, d
		}
		if d := ed.cursor.DistanceTo(ed.plan.Walls[i].End); d < bestDist {
			best, bestEnd, bestDist = i, plan.AtEnd, d
		}
	}
	if best < 0 {
		ed.showMessage("No endpoint near cursor", MsgError)
		return
	}

	w := &ed.plan.Walls[best]
	ed.moveWallID = w.ID
	ed.moveEnd = bestEnd
	if bestEnd == plan.AtStart {
		ed.moveOrig = w.Start
		ed.cursor = w.Start
	} else {
		ed.moveOrig = w.End
		ed.cursor = w.End
	}
	ed.mode = ModeMoveEnd
	ed.updateSnap()
	ed.showMessage("Move endpoint - Enter commits, Esc cancels", MsgInfo)
}

func (ed *Editor) handleMoveEndKey(ev *tcell.EventKey) bool {
	step := ed.gridSize
	if ev.Modifiers()&tcell.ModAlt != 0 {
		step = 0.05
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		ed.cursor.X -= step
		ed.updateSnap()
	case tcell.KeyRight:
		ed.cursor.X += step
		ed.updateSnap()
	case tcell.KeyUp:
		ed.cursor.Y -= step
		ed.updateSnap()
	case tcell.KeyDown:
		ed.cursor.Y += step
		ed.updateSnap()
	case tcell.KeyEnter:
		ed.pushUndo()
		if err := ed.plan.MoveWallEnd(ed.moveWallID, ed.moveEnd, ed.snapped.Point); err != nil {
			ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]
			ed.showMessage(err.Error(), MsgError)
			return false
		}
		ed.modified = true
		ed.mode = ModeCanvas
		ed.updateSnap()
		ed.showMessage("Endpoint moved", MsgSuccess)
	case tcell.KeyEscape:
		ed.mode = ModeCanvas
		ed.cursor = ed.moveOrig
		ed.updateSnap()
		ed.showMessage("Move cancelled", MsgInfo)
	}
	return false
}

func (ed *Editor) handleInputKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		action := ed.inputAction
		buf := ed.inputBuffer
		ed.mode = ModeCanvas
		ed.inputAction = nil
		if action != nil {
			action(buf)
		}
	case tcell.KeyEscape:
		ed.mode = ModeCanvas
		ed.inputAction = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(ed.inputBuffer) > 0 {
			ed.inputBuffer = ed.inputBuffer[:len(ed.inputBuffer)-1]
		}
	case tcell.KeyRune:
		ed.inputBuffer += string(ev.Rune())
	}
	return false
}

func (ed *Editor) handleHelpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		if ed.helpScrollOffset > 0 {
			ed.helpScrollOffset--
		}
	case tcell.KeyDown:
		ed.helpScrollOffset++
	case tcell.KeyEscape, tcell.KeyEnter:
		ed.mode = ModeCanvas
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == '?' {
			ed.mode = ModeCanvas
		}
	}
	return false
}

func (ed *Editor) confirmQuit() bool {
	if !ed.modified {
		return true
	}
	ed.promptInput("Unsaved changes. Quit anyway? (y/n): ", func(s string) {
		if strings.ToLower(s) == "y" {
			ed.screen.Fini()
			os.Exit(0)
		}
	})
	return false
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()

	switch ev.Buttons() {
	case tcell.ButtonNone:
		ed.cursor = ed.cellToWorld(cx, cy)
		ed.updateSnap()
	case tcell.Button1:
		ed.cursor = ed.cellToWorld(cx, cy)
		ed.updateSnap()
		if ed.mode == ModeCanvas {
			ed.placePoint()
		}
	case tcell.Button2:
		if ed.drawing {
			ed.drawing = false
			ed.updateSnap()
			ed.showMessage("Wall cancelled", MsgInfo)
		}
	case tcell.WheelUp:
		if ed.scale < 40 {
			ed.scale *= 1.1
		}
	case tcell.WheelDown:
		if ed.scale > 2 {
			ed.scale /= 1.1
		}
	}
}
