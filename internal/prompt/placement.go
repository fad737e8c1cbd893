package prompt

// Source is a uniform random source over [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

const (
	// PlacementMin and PlacementMax bound the evasive control's position,
	// in percent of the viewport. Keeping away from the edges means the
	// control is never clipped.
	PlacementMin = 20.0
	PlacementMax = 80.0
)

// Placement is a viewport-relative position in percent.
// X is measured against the viewport width, Y against its height.
type Placement struct {
	X float64
	Y float64
}

// Place draws a new position for the evasive control.
// Consecutive placements are not checked for distinctness.
func Place(src Source) Placement {
	return Placement{
		X: uniform(src, PlacementMin, PlacementMax),
		Y: uniform(src, PlacementMin, PlacementMax),
	}
}

// uniform maps a [0,1) draw onto [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	v := lo + src.Float64()*(hi-lo)
	// guard against rounding landing exactly on hi
	if v >= hi {
		v = lo
	}
	return v
}
