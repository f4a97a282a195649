package timeline

import "github.com/google/uuid"

// TextStyle holds the rendering options for a text overlay.
type TextStyle struct {
	FontFamily        string  `json:"font_family"`
	FontSize          int     `json:"font_size"`
	FontWeight        string  `json:"font_weight"`
	Color             string  `json:"color"`
	BackgroundColor   string  `json:"background_color,omitempty"`
	BackgroundPadding int     `json:"background_padding,omitempty"`
	TextAlign         string  `json:"text_align"`
	Opacity           float64 `json:"opacity"`
}

// DefaultTextStyle returns the style given to a newly added overlay.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontFamily: "Inter",
		FontSize:   36,
		FontWeight: "bold",
		Color:      "#FFFFFF",
		TextAlign:  "center",
		Opacity:    1,
	}
}

// OverlayPosition is the overlay anchor, in percent of the frame.
type OverlayPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextOverlay is a free-floating, possibly multi-line text block on
// the overlay track. Unlike captions it stores its duration directly.
type TextOverlay struct {
	ID        string          `json:"id"`
	StartTime float64         `json:"start_time"`
	Duration  float64         `json:"duration"`
	Text      string          `json:"text"`
	Position  OverlayPosition `json:"position"`
	Style     TextStyle       `json:"style"`
}

// NewTextOverlay creates an overlay with a fresh id at the given span,
// centered in the frame, coerced into a valid interval.
func NewTextOverlay(start, duration float64) TextOverlay {
	iv := OverlayConstraints.Clamp(Interval{Start: start, Duration: duration})
	return TextOverlay{
		ID:        uuid.NewString(),
		StartTime: iv.Start,
		Duration:  iv.Duration,
		Text:      "Your text here",
		Position:  OverlayPosition{X: 50, Y: 50},
		Style:     DefaultTextStyle(),
	}
}

// Interval returns the overlay span in the canonical form.
func (o TextOverlay) Interval() Interval {
	return Interval{Start: o.StartTime, Duration: o.Duration}
}

// SetInterval writes a canonical interval back to the overlay.
func (o *TextOverlay) SetInterval(iv Interval) {
	o.StartTime = iv.Start
	o.Duration = iv.Duration
}
