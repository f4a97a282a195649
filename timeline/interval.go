package timeline

import "math"

// Interval is the time span shared by every entity placed on a track.
// All times are seconds; conversion to pixels happens only at render
// time, so a zoom change never rewrites stored values.
type Interval struct {
	Start    float64 `json:"start_time"`
	Duration float64 `json:"duration"`
}

// End returns the derived end time of the interval.
func (iv Interval) End() float64 {
	return iv.Start + iv.Duration
}

// Constraints carries the editing rules for one entity kind. The drag
// machine and the document mutations are parameterized by a Constraints
// value instead of baking per-kind constants into the logic.
type Constraints struct {
	MinSpan    float64 // hard floor for Duration, seconds
	Grid       float64 // grid size for snapping, seconds
	SnapToGrid bool
}

// Editing rules for the two track entity kinds. Captions are not
// snapped; that asymmetry matches the shipped editor behavior.
var (
	CaptionConstraints = Constraints{MinSpan: 0.5}
	OverlayConstraints = Constraints{MinSpan: 0.25, Grid: 0.25, SnapToGrid: true}
)

func (c Constraints) snap(t float64) float64 {
	if !c.SnapToGrid {
		return t
	}
	return Snap(t, c.Grid)
}

// Clamp coerces an interval into the nearest valid one. Invalid input
// is never rejected; the result always satisfies Start >= 0 and
// Duration >= MinSpan.
func (c Constraints) Clamp(iv Interval) Interval {
	if iv.Start < 0 {
		iv.Start = 0
	}
	if iv.Duration < c.MinSpan {
		iv.Duration = c.MinSpan
	}
	return iv
}

// Move shifts the whole interval by delta seconds. The span is
// preserved exactly; only the start is clamped (and snapped, for
// entity kinds that snap).
func (c Constraints) Move(origin Interval, delta float64) Interval {
	start := c.snap(math.Max(0, origin.Start+delta))
	if start < 0 {
		start = 0
	}
	return Interval{Start: start, Duration: origin.Duration}
}

// ResizeStart drags the left edge by delta seconds. The start is
// clamped so at least MinSpan remains, then the duration is recomputed
// against the original end.
func (c Constraints) ResizeStart(origin Interval, delta float64) Interval {
	start := c.snap(math.Max(0, origin.Start+delta))
	if maxStart := origin.End() - c.MinSpan; start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	dur := c.snap(origin.End() - start)
	if dur < c.MinSpan {
		dur = c.MinSpan
	}
	return Interval{Start: start, Duration: dur}
}

// ResizeEnd drags the right edge by delta seconds. The start never
// moves; the duration is floored at MinSpan.
func (c Constraints) ResizeEnd(origin Interval, delta float64) Interval {
	dur := c.snap(math.Max(c.MinSpan, origin.Duration+delta))
	if dur < c.MinSpan {
		dur = c.MinSpan
	}
	return Interval{Start: origin.Start, Duration: dur}
}

// DefaultSpan is the span given to an entity inserted at the playhead:
// up to 3 seconds, clamped to the remaining video but never below half
// a second.
func DefaultSpan(currentTime, totalDuration float64) float64 {
	return math.Min(3, math.Max(0.5, totalDuration-currentTime))
}
