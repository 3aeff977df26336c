package scan

import (
	"math"
	"time"
)

// Frame is one full angular sweep of distance readings, indexed from the
// robot's forward direction. Readings are distances in meters; values at or
// below the analyzer's validity floor (including zero and NaN sentinels for
// "no return") carry no obstacle information.
type Frame struct {
	// Ranges holds the distance readings in angular order.
	Ranges []float64
	// CapturedAt is when the sensor produced the sweep.
	CapturedAt time.Time
}

// Len returns the number of readings in the frame.
func (f *Frame) Len() int {
	return len(f.Ranges)
}

// Analyzer reduces a frame to the nearest obstacle distance across the four
// fixed guard zones: a wrap-around front cone, a rear zone, and two side
// zones centered a quarter sweep to either side.
type Analyzer struct {
	// HalfWidth is the number of samples on each side of a zone center.
	HalfWidth int
	// MinValid is the reading below or at which a sample is discarded as a
	// sensor artifact.
	MinValid float64
}

// NearestObstacle returns the minimum valid reading across all guard zones.
// The second return value reports whether any valid reading was found; a
// false value means "insufficient data", never "clear".
func (a Analyzer) NearestObstacle(f *Frame) (float64, bool) {
	n := f.Len()
	if n == 0 {
		return 0, false
	}

	var (
		nearest float64
		found   bool
	)

	consider := func(lo, hi int) {
		// Clamp to the frame; zone windows may exceed short sweeps.
		if lo < 0 {
			lo = 0
		}

		if hi > n {
			hi = n
		}

		for i := lo; i < hi; i++ {
			r := f.Ranges[i]
			if r <= a.MinValid || math.IsNaN(r) {
				continue
			}

			if !found || r < nearest {
				nearest, found = r, true
			}
		}
	}

	w := a.HalfWidth

	// Front cone wraps around the start of the sweep.
	consider(0, w)
	consider(n-w, n)

	// Rear and side zones.
	consider(n/2-w, n/2+w)
	consider(n/4-w, n/4+w)
	consider(3*n/4-w, 3*n/4+w)

	return nearest, found
}
