package game

import "math"

// Viewport is the visible play area in logical units.
type Viewport struct {
	W, H float64
}

// Center returns the middle of the viewport.
func (v Viewport) Center() (float64, float64) {
	return v.W / 2, v.H / 2
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Viewport smaller than the entity; pin to the low edge.
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// normalize returns the unit vector of (x, y). A zero vector stays zero.
func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		l = 1
	}
	return x / l, y / l
}

// circlesOverlap reports whether two circles overlap. Touching is not a hit.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return dist(x1, y1, x2, y2) < r1+r2
}
