package timeline

import "math"

// Snap quantizes t to the nearest multiple of grid. A non-positive
// grid disables snapping and returns t unchanged.
func Snap(t, grid float64) float64 {
	if grid <= 0 {
		return t
	}
	return math.Round(t/grid) * grid
}
