package timeline

import "sort"

// DocumentVersion is the schema version written into new documents.
const DocumentVersion = 1

// DocumentSettings holds output options stored with a project.
type DocumentSettings struct {
	AspectRatio string `json:"aspect_ratio,omitempty"`
	Resolution  string `json:"resolution,omitempty"`
}

// Document is the editable state of one project: the clip sequence and
// both annotation tracks. It is what gets persisted as the project's
// JSONB payload. All mutations coerce their inputs into valid state
// rather than rejecting them; updates against an unknown id are
// no-ops.
type Document struct {
	Clips        []EditorClip     `json:"clips"`
	Captions     []CaptionSegment `json:"captions"`
	Overlays     []TextOverlay    `json:"overlays"`
	CaptionStyle CaptionStyle     `json:"caption_style"`
	Settings     DocumentSettings `json:"settings,omitempty"`
	Version      int              `json:"version"`
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() *Document {
	return &Document{
		Clips:        []EditorClip{},
		Captions:     []CaptionSegment{},
		Overlays:     []TextOverlay{},
		CaptionStyle: DefaultCaptionStyle(),
		Version:      DocumentVersion,
	}
}

// TotalDuration is the summed playable length of the clip sequence.
func (d *Document) TotalDuration() float64 {
	var total float64
	for _, c := range d.Clips {
		total += c.EffectiveDuration()
	}
	return total
}

// CaptionPatch is a partial caption update; nil fields are untouched.
type CaptionPatch struct {
	StartTime *float64      `json:"start_time,omitempty"`
	EndTime   *float64      `json:"end_time,omitempty"`
	Text      *string       `json:"text,omitempty"`
	Style     *CaptionStyle `json:"style,omitempty"`
}

// OverlayPatch is a partial overlay update; nil fields are untouched.
type OverlayPatch struct {
	StartTime *float64         `json:"start_time,omitempty"`
	Duration  *float64         `json:"duration,omitempty"`
	Text      *string          `json:"text,omitempty"`
	Position  *OverlayPosition `json:"position,omitempty"`
	Style     *TextStyle       `json:"style,omitempty"`
}

// AddCaption appends a caption, coerced into a valid interval, and
// returns the stored value.
func (d *Document) AddCaption(cs CaptionSegment) CaptionSegment {
	cs.SetInterval(CaptionConstraints.Clamp(cs.Interval()))
	d.Captions = append(d.Captions, cs)
	return cs
}

// UpdateCaption applies a patch to the caption with the given id. The
// resulting interval is clamped. Reports whether the caption existed.
func (d *Document) UpdateCaption(id string, patch CaptionPatch) bool {
	for i := range d.Captions {
		if d.Captions[i].ID != id {
			continue
		}
		cs := &d.Captions[i]
		if patch.StartTime != nil {
			cs.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			cs.EndTime = *patch.EndTime
		}
		if patch.Text != nil {
			cs.Text = *patch.Text
		}
		if patch.Style != nil {
			cs.Style = patch.Style
		}
		cs.SetInterval(CaptionConstraints.Clamp(cs.Interval()))
		return true
	}
	return false
}

// DeleteCaption removes the caption with the given id.
func (d *Document) DeleteCaption(id string) bool {
	for i := range d.Captions {
		if d.Captions[i].ID == id {
			d.Captions = append(d.Captions[:i], d.Captions[i+1:]...)
			return true
		}
	}
	return false
}

// DuplicateCaption copies a caption under a fresh id, placed directly
// after the original with the same span.
func (d *Document) DuplicateCaption(id string) (CaptionSegment, bool) {
	for _, cs := range d.Captions {
		if cs.ID == id {
			dup := NewCaptionSegment(cs.EndTime, cs.EndTime+cs.Span(), cs.Text)
			dup.Style = cs.Style
			d.Captions = append(d.Captions, dup)
			return dup, true
		}
	}
	return CaptionSegment{}, false
}

// SortedCaptions returns a copy of the caption list ordered by start
// time, the order both the track and the side panel list in.
func (d *Document) SortedCaptions() []CaptionSegment {
	out := make([]CaptionSegment, len(d.Captions))
	copy(out, d.Captions)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// AddOverlay appends an overlay, coerced into a valid interval, and
// returns the stored value.
func (d *Document) AddOverlay(o TextOverlay) TextOverlay {
	o.SetInterval(OverlayConstraints.Clamp(o.Interval()))
	d.Overlays = append(d.Overlays, o)
	return o
}

// UpdateOverlay applies a patch to the overlay with the given id. The
// resulting interval is clamped. Reports whether the overlay existed.
func (d *Document) UpdateOverlay(id string, patch OverlayPatch) bool {
	for i := range d.Overlays {
		if d.Overlays[i].ID != id {
			continue
		}
		o := &d.Overlays[i]
		if patch.StartTime != nil {
			o.StartTime = *patch.StartTime
		}
		if patch.Duration != nil {
			o.Duration = *patch.Duration
		}
		if patch.Text != nil {
			o.Text = *patch.Text
		}
		if patch.Position != nil {
			o.Position = *patch.Position
		}
		if patch.Style != nil {
			o.Style = *patch.Style
		}
		o.SetInterval(OverlayConstraints.Clamp(o.Interval()))
		return true
	}
	return false
}

// DeleteOverlay removes the overlay with the given id.
func (d *Document) DeleteOverlay(id string) bool {
	for i := range d.Overlays {
		if d.Overlays[i].ID == id {
			d.Overlays = append(d.Overlays[:i], d.Overlays[i+1:]...)
			return true
		}
	}
	return false
}

// DuplicateOverlay copies an overlay under a fresh id, placed directly
// after the original with the same span and style.
func (d *Document) DuplicateOverlay(id string) (TextOverlay, bool) {
	for _, o := range d.Overlays {
		if o.ID == id {
			dup := NewTextOverlay(o.StartTime+o.Duration, o.Duration)
			dup.Text = o.Text
			dup.Position = o.Position
			dup.Style = o.Style
			d.Overlays = append(d.Overlays, dup)
			return dup, true
		}
	}
	return TextOverlay{}, false
}

// CaptionByID returns the caption with the given id.
func (d *Document) CaptionByID(id string) (CaptionSegment, bool) {
	for _, cs := range d.Captions {
		if cs.ID == id {
			return cs, true
		}
	}
	return CaptionSegment{}, false
}

// OverlayByID returns the overlay with the given id.
func (d *Document) OverlayByID(id string) (TextOverlay, bool) {
	for _, o := range d.Overlays {
		if o.ID == id {
			return o, true
		}
	}
	return TextOverlay{}, false
}

// AppendClip places a clip at the end of the sequence and returns the
// stored value. StartTime is assigned, not taken from the input: clips
// are laid out back to back.
func (d *Document) AppendClip(c EditorClip) EditorClip {
	c.StartTime = d.TotalDuration()
	c.TransitionOut = nil
	d.Clips = append(d.Clips, c)
	return c
}

// RemoveClip deletes the clip at index. The transition into the
// removed clip is cleared along with the clip's own outbound one, and
// the remaining clips are re-laid out back to back.
func (d *Document) RemoveClip(index int) bool {
	if index < 0 || index >= len(d.Clips) {
		return false
	}
	if index > 0 {
		d.Clips[index-1].TransitionOut = nil
	}
	d.Clips = append(d.Clips[:index], d.Clips[index+1:]...)
	d.relayout()
	return true
}

// SetClipTrims updates a clip's trim points. Trims are coerced so the
// clip keeps a playable length, the sequence is re-laid out, and the
// transitions at both adjacent boundaries are re-clamped against the
// new effective durations.
func (d *Document) SetClipTrims(index int, trimStart, trimEnd float64) bool {
	if index < 0 || index >= len(d.Clips) {
		return false
	}
	c := &d.Clips[index]
	if trimStart < 0 {
		trimStart = 0
	}
	if trimEnd < 0 {
		trimEnd = 0
	}
	if c.SourceDuration-trimStart-trimEnd < MinClipDuration {
		return false
	}
	c.TrimStart = trimStart
	c.TrimEnd = trimEnd
	d.relayout()

	for _, i := range []int{index - 1, index} {
		if CanHaveTransition(i, len(d.Clips)) {
			if tr := d.Clips[i].TransitionOut; tr != nil && tr.Type != TransitionNone {
				SetTransitionDuration(d.Clips, i, tr.Duration)
			}
		}
	}
	return true
}

// relayout reassigns clip start times so the sequence is contiguous.
func (d *Document) relayout() {
	var pos float64
	for i := range d.Clips {
		d.Clips[i].StartTime = pos
		pos += d.Clips[i].EffectiveDuration()
	}
}

// SetTransition configures the transition after the clip at index, and
// SetTransitionDuration re-clamps it; both delegate to the boundary
// policy. See CanHaveTransition for the index constraint.
func (d *Document) SetTransition(index int, typ TransitionType) {
	SetTransition(d.Clips, index, typ)
}

// SetTransitionDuration adjusts the configured transition's duration.
func (d *Document) SetTransitionDuration(index int, duration float64) {
	SetTransitionDuration(d.Clips, index, duration)
}
