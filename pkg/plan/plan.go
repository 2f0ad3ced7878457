package plan

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
)

// Validation failure classes. Both are rejected atomically before any
// mutation; degenerate geometry inside pkg/geom is never an error.
var (
	ErrInvalidGeometry  = errors.New("invalid geometry")
	ErrOpeningPlacement = errors.New("opening does not fit")
	ErrUnknownWall      = errors.New("unknown wall")
)

// WallEnd selects one end of a wall.
type WallEnd int

const (
	AtStart WallEnd = iota
	AtEnd
)

// Plan is the in-memory wall network. The geometry engine only reads
// from it; all mutation goes through the validated methods below, each of
// which either fully succeeds or leaves the plan untouched.
type Plan struct {
	Name    string
	Walls   []Wall
	Outline []geom.Point // optional floor outline polygon
}

// New creates an empty plan.
func New(name string) *Plan {
	return &Plan{Name: name}
}

// AddWall creates a wall from start to end and appends it. Walls shorter
// than the minimum length are rejected.
func (p *Plan) AddWall(start, end geom.Point, thickness, height float64, align geom.Alignment) (*Wall, error) {
	w := Wall{
		ID:        uuid.NewString(),
		Start:     start,
		End:       end,
		Thickness: thickness,
		Height:    height,
		Alignment: align,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	p.Walls = append(p.Walls, w)
	return &p.Walls[len(p.Walls)-1], nil
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	c := &Plan{Name: p.Name}
	c.Walls = make([]Wall, len(p.Walls))
	for i := range p.Walls {
		c.Walls[i] = p.Walls[i]
		c.Walls[i].Openings = append([]Opening(nil), p.Walls[i].Openings...)
	}
	c.Outline = append([]geom.Point(nil), p.Outline...)
	return c
}

// Wall returns the wall with the given id, or nil.
func (p *Plan) Wall(id string) *Wall {
	for i := range p.Walls {
		if p.Walls[i].ID == id {
			return &p.Walls[i]
		}
	}
	return nil
}

// RemoveWall deletes a wall and, with it, its openings. Reports whether
// the wall existed.
func (p *Plan) RemoveWall(id string) bool {
	for i := range p.Walls {
		if p.Walls[i].ID == id {
			p.Walls = append(p.Walls[:i], p.Walls[i+1:]...)
			return true
		}
	}
	return false
}

// MoveWallEnd moves one end of a wall, rejecting moves that would shrink
// it below the minimum length.
func (p *Plan) MoveWallEnd(id string, end WallEnd, to geom.Point) error {
	w := p.Wall(id)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWall, id)
	}
	moved := *w
	if end == AtStart {
		moved.Start = to
	} else {
		moved.End = to
	}
	if err := moved.Validate(); err != nil {
		return err
	}
	*w = moved
	return nil
}

// SetThickness changes a wall's thickness. Opening positions are
// normalized and therefore unaffected.
func (p *Plan) SetThickness(id string, thickness float64) error {
	w := p.Wall(id)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWall, id)
	}
	if thickness <= 0 {
		return fmt.Errorf("%w: wall thickness %.3f must be positive", ErrInvalidGeometry, thickness)
	}
	w.Thickness = thickness
	return nil
}

// SetAlignment changes which physical edge the stored line represents.
func (p *Plan) SetAlignment(id string, align geom.Alignment) error {
	w := p.Wall(id)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWall, id)
	}
	w.Alignment = align
	return nil
}

// AddOpening places an opening on a host wall after validating its span
// against the end margins and the existing openings.
func (p *Plan) AddOpening(wallID string, o Opening) error {
	w := p.Wall(wallID)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWall, wallID)
	}
	if err := o.validate(); err != nil {
		return err
	}
	if !geom.CanPlaceOpening(w.Length(), o.Position, o.Width, w.spans("")) {
		return fmt.Errorf("%w: %s at %.3f on wall %s", ErrOpeningPlacement, o.Kind, o.Position, wallID)
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	w.Openings = append(w.Openings, o)
	return nil
}

// MoveOpening repositions an existing opening, checked against every
// other opening on the host wall.
func (p *Plan) MoveOpening(wallID, openingID string, position float64) error {
	w := p.Wall(wallID)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWall, wallID)
	}
	for i := range w.Openings {
		if w.Openings[i].ID != openingID {
			continue
		}
		o := w.Openings[i]
		if !geom.CanPlaceOpening(w.Length(), position, o.Width, w.spans(openingID)) {
			return fmt.Errorf("%w: %s to %.3f on wall %s", ErrOpeningPlacement, o.Kind, position, wallID)
		}
		w.Openings[i].Position = position
		return nil
	}
	return fmt.Errorf("%w: opening %s on wall %s", ErrUnknownWall, openingID, wallID)
}

// RemoveOpening deletes an opening from its host wall.
func (p *Plan) RemoveOpening(wallID, openingID string) bool {
	w := p.Wall(wallID)
	if w == nil {
		return false
	}
	for i := range w.Openings {
		if w.Openings[i].ID == openingID {
			w.Openings = append(w.Openings[:i], w.Openings[i+1:]...)
			return true
		}
	}
	return false
}

// SetOutline replaces the floor outline polygon. Outlines with fewer
// than three points are rejected.
func (p *Plan) SetOutline(points []geom.Point) error {
	if len(points) < 3 {
		return fmt.Errorf("%w: outline needs at least 3 points, got %d", ErrInvalidGeometry, len(points))
	}
	p.Outline = append([]geom.Point(nil), points...)
	return nil
}

// Endpoints returns every wall endpoint, freshly derived for snapping.
func (p *Plan) Endpoints() []geom.Point {
	out := make([]geom.Point, 0, 2*len(p.Walls))
	for i := range p.Walls {
		out = append(out, p.Walls[i].Start, p.Walls[i].End)
	}
	return out
}

// Segments returns every wall's reference segment.
func (p *Plan) Segments() []geom.Segment {
	out := make([]geom.Segment, len(p.Walls))
	for i := range p.Walls {
		out[i] = p.Walls[i].Segment()
	}
	return out
}

// WallGeoms returns the geometric footprint of every wall.
func (p *Plan) WallGeoms() []geom.WallGeom {
	out := make([]geom.WallGeom, len(p.Walls))
	for i := range p.Walls {
		out[i] = p.Walls[i].Geom()
	}
	return out
}

// CornerExtensions derives the miter extensions for the i-th wall from
// the current geometry. Nothing is cached; the result can never drift
// out of sync with neighbor edits.
func (p *Plan) CornerExtensions(i int) geom.CornerExtensions {
	return geom.AnalyzeCorners(p.WallGeoms(), i, geom.ConnectionTolerance)
}

// Profile builds the extrusion profile for a wall: the mitered outline in
// wall-local coordinates plus its opening list.
func (p *Plan) Profile(id string) (geom.Profile, error) {
	for i := range p.Walls {
		if p.Walls[i].ID != id {
			continue
		}
		w := &p.Walls[i]
		openings := make([]geom.ProfileOpening, len(w.Openings))
		for j, o := range w.Openings {
			openings[j] = geom.ProfileOpening{
				Position: o.Position,
				Width:    o.Width,
				Height:   o.Height,
				Sill:     o.Sill,
			}
		}
		return geom.WallProfile(w.Geom(), p.CornerExtensions(i), openings), nil
	}
	return geom.Profile{}, fmt.Errorf("%w: %s", ErrUnknownWall, id)
}

// Validate checks every wall in the plan.
func (p *Plan) Validate() error {
	for i := range p.Walls {
		if err := p.Walls[i].Validate(); err != nil {
			return fmt.Errorf("wall %s: %w", p.Walls[i].ID, err)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all wall endpoints.
// Reports false for an empty plan.
func (p *Plan) Bounds() (min, max geom.Point, ok bool) {
	if len(p.Walls) == 0 {
		return geom.Point{}, geom.Point{}, false
	}
	min = p.Walls[0].Start
	max = min
	for i := range p.Walls {
		for _, pt := range []geom.Point{p.Walls[i].Start, p.Walls[i].End} {
			if pt.X < min.X {
				min.X = pt.X
			}
			if pt.Y < min.Y {
				min.Y = pt.Y
			}
			if pt.X > max.X {
				max.X = pt.X
			}
			if pt.Y > max.Y {
				max.Y = pt.Y
			}
		}
	}
	return min, max, true
}
