package timeline

import "github.com/google/uuid"

// CaptionStyle holds the rendering options for caption text. A single
// document-wide style is the default; individual segments may carry an
// override.
type CaptionStyle struct {
	FontFamily      string  `json:"font_family"`
	FontSize        int     `json:"font_size"`
	FontWeight      string  `json:"font_weight"`
	Color           string  `json:"color"`
	BackgroundColor string  `json:"background_color,omitempty"`
	Position        string  `json:"position"` // top, middle, bottom
	TextAlign       string  `json:"text_align"`
	Opacity         float64 `json:"opacity"`
}

// DefaultCaptionStyle returns the document-wide caption style applied
// to segments without an override.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		FontFamily: "Inter",
		FontSize:   28,
		FontWeight: "bold",
		Color:      "#FFFFFF",
		Position:   "bottom",
		TextAlign:  "center",
		Opacity:    1,
	}
}

// CaptionSegment is a subtitle placed on the caption track. The wire
// format keeps the start/end representation the stored documents use;
// Interval/SetInterval convert to and from the canonical
// duration-based form the editing operations work on.
type CaptionSegment struct {
	ID        string        `json:"id"`
	StartTime float64       `json:"start_time"`
	EndTime   float64       `json:"end_time"`
	Text      string        `json:"text"`
	Style     *CaptionStyle `json:"style,omitempty"`
}

// NewCaptionSegment creates a segment with a fresh id, coerced into a
// valid interval.
func NewCaptionSegment(start, end float64, text string) CaptionSegment {
	cs := CaptionSegment{
		ID:   uuid.NewString(),
		Text: text,
	}
	cs.SetInterval(CaptionConstraints.Clamp(Interval{Start: start, Duration: end - start}))
	return cs
}

// Interval returns the segment's span in the canonical form.
func (cs CaptionSegment) Interval() Interval {
	return Interval{Start: cs.StartTime, Duration: cs.EndTime - cs.StartTime}
}

// SetInterval writes a canonical interval back into the stored
// start/end representation.
func (cs *CaptionSegment) SetInterval(iv Interval) {
	cs.StartTime = iv.Start
	cs.EndTime = iv.End()
}

// Span returns the segment duration in seconds.
func (cs CaptionSegment) Span() float64 {
	return cs.EndTime - cs.StartTime
}
