// Package plan provides the floor-plan model: walls, their openings, and
// the validated mutations the editor applies to them. Corner geometry is
// never stored here; it is derived on demand through pkg/geom.
package plan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
)

// OpeningKind tags an opening as a door or a window.
type OpeningKind string

const (
	KindDoor   OpeningKind = "door"
	KindWindow OpeningKind = "window"
)

// Opening is a door or window span carried by a host wall.
type Opening struct {
	ID       string
	Kind     OpeningKind
	Position float64 // normalized along the host wall, 0 = start
	Width    float64 // meters
	Height   float64 // meters
	Sill     float64 // sill height above the floor, 0 for doors
}

// NewDoor creates a door opening at a normalized position.
func NewDoor(position, width, height float64) Opening {
	return Opening{
		ID:       uuid.NewString(),
		Kind:     KindDoor,
		Position: position,
		Width:    width,
		Height:   height,
	}
}

// NewWindow creates a window opening at a normalized position.
func NewWindow(position, width, height, sill float64) Opening {
	return Opening{
		ID:       uuid.NewString(),
		Kind:     KindWindow,
		Position: position,
		Width:    width,
		Height:   height,
		Sill:     sill,
	}
}

// Span is the opening's footprint for placement checks.
func (o Opening) Span() geom.OpeningSpan {
	return geom.OpeningSpan{Position: o.Position, Width: o.Width}
}

// Distances derives the meter distances from the opening to both wall
// ends. They always satisfy left + width + right = wallLength.
func (o Opening) Distances(wallLength float64) geom.OpeningDistances {
	return geom.DistancesFor(o.Position, o.Width, wallLength)
}

func (o Opening) validate() error {
	if o.Position < 0 || o.Position > 1 {
		return fmt.Errorf("%w: opening position %.3f outside [0,1]", ErrInvalidGeometry, o.Position)
	}
	if o.Width <= 0 {
		return fmt.Errorf("%w: opening width %.3f must be positive", ErrInvalidGeometry, o.Width)
	}
	if o.Height <= 0 {
		return fmt.Errorf("%w: opening height %.3f must be positive", ErrInvalidGeometry, o.Height)
	}
	if o.Sill < 0 {
		return fmt.Errorf("%w: opening sill %.3f must not be negative", ErrInvalidGeometry, o.Sill)
	}
	return nil
}

// Wall is one wall segment of the plan. Start and End are the stored
// reference line, whose relation to the physical edges is given by
// Alignment.
type Wall struct {
	ID        string
	Start     geom.Point
	End       geom.Point
	Thickness float64 // meters
	Height    float64 // meters, for extrusion
	Alignment geom.Alignment
	Openings  []Opening
}

func (w *Wall) Length() float64 { return w.Start.DistanceTo(w.End) }

func (w *Wall) Direction() geom.Point { return w.End.Sub(w.Start).Normalize() }

func (w *Wall) Segment() geom.Segment { return geom.Segment{A: w.Start, B: w.End} }

// Geom is the wall's footprint for the geometry engine.
func (w *Wall) Geom() geom.WallGeom {
	return geom.WallGeom{
		Start:     w.Start,
		End:       w.End,
		Thickness: w.Thickness,
		Alignment: w.Alignment,
	}
}

// spans collects the footprints of all openings except the one with
// skipID (pass "" to keep all).
func (w *Wall) spans(skipID string) []geom.OpeningSpan {
	out := make([]geom.OpeningSpan, 0, len(w.Openings))
	for _, o := range w.Openings {
		if o.ID == skipID {
			continue
		}
		out = append(out, o.Span())
	}
	return out
}

// Validate checks the wall invariants.
func (w *Wall) Validate() error {
	if w.Length() < geom.MinWallLength {
		return fmt.Errorf("%w: wall length %.3f below minimum %.2f",
			ErrInvalidGeometry, w.Length(), geom.MinWallLength)
	}
	if w.Thickness <= 0 {
		return fmt.Errorf("%w: wall thickness %.3f must be positive", ErrInvalidGeometry, w.Thickness)
	}
	if w.Height <= 0 {
		return fmt.Errorf("%w: wall height %.3f must be positive", ErrInvalidGeometry, w.Height)
	}
	for _, o := range w.Openings {
		if err := o.validate(); err != nil {
			return err
		}
	}
	return nil
}
