package timeline

import "math"

// TimeToPixel converts a time in seconds to a horizontal pixel offset
// for the given zoom scale (pixels per second).
func TimeToPixel(t, scale float64) float64 {
	return t * scale
}

// PixelToTime converts an absolute pointer position back to a time on
// the track. trackOrigin is the left edge of the track in the same
// coordinate space as px; scrollOffset is the horizontal scroll of the
// containing viewport. The result is never negative.
func PixelToTime(px, scale, trackOrigin, scrollOffset float64) float64 {
	if scale <= 0 {
		return 0
	}
	return math.Max(0, (px-trackOrigin+scrollOffset)/scale)
}
