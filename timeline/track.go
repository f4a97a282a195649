package timeline

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	// MinBlockWidth keeps very short intervals clickable. Presentation
	// only; the underlying times are untouched.
	MinBlockWidth = 40.0
	// MinIndicatorWidth is the floor for a transition indicator.
	MinIndicatorWidth = 24.0

	captionLabelMax = 25
	overlayLabelMax = 20
)

// Block is one positioned entity on a track, ready to render.
type Block struct {
	ID       string  `json:"id"`
	Left     float64 `json:"left"`
	Width    float64 `json:"width"`
	Label    string  `json:"label"`
	Detail   string  `json:"detail"`
	Selected bool    `json:"selected"`
}

// TransitionMarker is the indicator rendered at a clip boundary.
type TransitionMarker struct {
	ClipIndex int     `json:"clip_index"`
	Left      float64 `json:"left"`
	Width     float64 `json:"width"`
	Active    bool    `json:"active"`
	Label     string  `json:"label,omitempty"`
}

// CaptionBlocks projects the caption list onto track positions at the
// given scale, sorted by start time.
func CaptionBlocks(captions []CaptionSegment, scale float64, selectedID string) []Block {
	sorted := make([]CaptionSegment, len(captions))
	copy(sorted, captions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })

	blocks := make([]Block, 0, len(sorted))
	for _, cs := range sorted {
		blocks = append(blocks, Block{
			ID:       cs.ID,
			Left:     TimeToPixel(cs.StartTime, scale),
			Width:    math.Max(TimeToPixel(cs.Span(), scale), MinBlockWidth),
			Label:    blockLabel(cs.Text, captionLabelMax),
			Detail:   FormatSpan(cs.Span()),
			Selected: cs.ID == selectedID,
		})
	}
	return blocks
}

// OverlayBlocks projects the overlay list onto track positions at the
// given scale, in list order.
func OverlayBlocks(overlays []TextOverlay, scale float64, selectedID string) []Block {
	blocks := make([]Block, 0, len(overlays))
	for _, o := range overlays {
		label := o.Text
		if idx := strings.IndexByte(label, '\n'); idx >= 0 {
			label = label[:idx]
		}
		blocks = append(blocks, Block{
			ID:       o.ID,
			Left:     TimeToPixel(o.StartTime, scale),
			Width:    math.Max(TimeToPixel(o.Duration, scale), MinBlockWidth),
			Label:    blockLabel(label, overlayLabelMax),
			Detail:   FormatSpan(o.Duration),
			Selected: o.ID == selectedID,
		})
	}
	return blocks
}

// TransitionMarkers places one indicator at every boundary between
// adjacent clips. The last clip gets none.
func TransitionMarkers(clips []EditorClip, scale float64) []TransitionMarker {
	if len(clips) < 2 {
		return nil
	}
	markers := make([]TransitionMarker, 0, len(clips)-1)
	for i := 0; i < len(clips)-1; i++ {
		m := TransitionMarker{
			ClipIndex: i,
			Left:      TimeToPixel(clips[i].EndTime(), scale),
			Width:     MinIndicatorWidth,
		}
		if tr := clips[i].TransitionOut; tr != nil && tr.Type != TransitionNone {
			m.Active = true
			m.Width = math.Max(TimeToPixel(tr.Duration, scale), MinIndicatorWidth)
			if info, ok := TransitionInfoFor(tr.Type); ok {
				m.Label = fmt.Sprintf("%s (%.1fs)", info.Label, tr.Duration)
			}
		}
		markers = append(markers, m)
	}
	return markers
}

// FormatSpan renders a span the way track blocks display it: "m:ss"
// past a minute, plain seconds below.
func FormatSpan(seconds float64) string {
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	if mins > 0 {
		return fmt.Sprintf("%d:%02d", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

func blockLabel(text string, max int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "Empty"
	}
	if len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max] + "..."
}
