// Opening placement arithmetic and validation along a host wall.

package geom

import "math"

// OpeningSpan is an opening's footprint along its host wall: a normalized
// center position in [0,1] and a width in meters.
type OpeningSpan struct {
	Position float64
	Width    float64
}

// OpeningDistances are the meter distances from an opening to the two
// wall ends. FromLeft + width + FromRight equals the wall length.
type OpeningDistances struct {
	FromLeft  float64
	FromRight float64
}

// DistancesFor converts a normalized position and width into edge
// distances along a wall of the given length.
func DistancesFor(position, width, wallLength float64) OpeningDistances {
	center := position * wallLength
	return OpeningDistances{
		FromLeft:  center - width/2,
		FromRight: wallLength - center - width/2,
	}
}

// PositionFromLeft is the exact inverse of DistancesFor for the left
// distance.
func PositionFromLeft(distance, width, wallLength float64) float64 {
	if wallLength <= 0 {
		return 0
	}
	return (distance + width/2) / wallLength
}

// PositionFromRight is the exact inverse of DistancesFor for the right
// distance.
func PositionFromRight(distance, width, wallLength float64) float64 {
	if wallLength <= 0 {
		return 0
	}
	return (wallLength - distance - width/2) / wallLength
}

// edgeMargin is the stricter of the ratio and absolute end margins.
func edgeMargin(wallLength float64) float64 {
	return math.Max(OpeningEdgeMarginRatio*wallLength, OpeningEdgeMarginAbs)
}

// CanPlaceOpening reports whether an opening of the given normalized
// position and width fits on a wall of the given length: inside [0,1],
// clear of both end margins, and clear of every existing span by the
// overlap buffer. Purely advisory; the caller applies the position only
// on true.
func CanPlaceOpening(wallLength, position, width float64, existing []OpeningSpan) bool {
	if wallLength <= 0 || width <= 0 {
		return false
	}
	if position < 0 || position > 1 {
		return false
	}

	d := DistancesFor(position, width, wallLength)
	margin := edgeMargin(wallLength)
	if d.FromLeft < margin || d.FromRight < margin {
		return false
	}

	// Overlap is checked in normalized-position space with the buffer
	// converted to a ratio of the wall length.
	buffer := OpeningOverlapBuffer / wallLength
	half := width / (2 * wallLength)
	lo, hi := position-half, position+half

	for _, span := range existing {
		sHalf := span.Width / (2 * wallLength)
		sLo, sHi := span.Position-sHalf, span.Position+sHalf
		if lo < sHi+buffer && hi > sLo-buffer {
			return false
		}
	}
	return true
}
