// Wall profile generation: the per-wall output contract handed to the
// extrusion/mesh collaborator.

package geom

// ProfileOpening is an opening span in the form the mesh collaborator
// consumes for boolean cuts.
type ProfileOpening struct {
	Position float64 // normalized along the wall
	Width    float64
	Height   float64
	Sill     float64
}

// Profile is a wall's extrusion input: a quadrilateral outline in
// wall-local coordinates (x along the wall from its start point, y across
// along the left normal) with corners adjusted by the miter extensions,
// plus the wall's openings.
type Profile struct {
	Outline  []Point
	Openings []ProfileOpening
}

// WallProfile builds the profile for a wall given its derived corner
// extensions. With zero extensions the outline is the plain
// alignment-offset rectangle.
func WallProfile(w WallGeom, ext CornerExtensions, openings []ProfileOpening) Profile {
	length := w.Length()
	leftOff, rightOff := EdgeOffsets(w.Alignment, w.Thickness)

	outline := []Point{
		{-ext.Start.LeftEdge, leftOff},
		{length + ext.End.LeftEdge, leftOff},
		{length + ext.End.RightEdge, rightOff},
		{-ext.Start.RightEdge, rightOff},
	}
	return Profile{Outline: outline, Openings: openings}
}

// WallOutline is WallProfile's quadrilateral transformed into world
// coordinates, for renderers and exporters.
func WallOutline(w WallGeom, ext CornerExtensions) []Point {
	profile := WallProfile(w, ext, nil)
	dir := w.Direction()
	n := dir.Perp()

	out := make([]Point, len(profile.Outline))
	for i, p := range profile.Outline {
		out[i] = w.Start.Add(dir.Scale(p.X)).Add(n.Scale(p.Y))
	}
	return out
}
