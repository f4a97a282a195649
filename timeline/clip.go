package timeline

// MinClipDuration is the shortest playable length a trim edit may
// leave behind.
const MinClipDuration = 0.1

// EditorClip is one video clip on the sequence. Trim points are
// non-destructive offsets into the source media; the clip's playable
// length is derived, never stored.
type EditorClip struct {
	ID           string  `json:"id"`
	MediaFileID  string  `json:"media_file_id"`
	SourceURL    string  `json:"source_url"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	FileName     string  `json:"file_name"`

	SourceDuration float64 `json:"source_duration"` // original media length, seconds
	StartTime      float64 `json:"start_time"`      // position on the timeline, seconds
	TrimStart      float64 `json:"trim_start"`
	TrimEnd        float64 `json:"trim_end"`

	// TransitionOut is the transition into the following clip. Owned by
	// the earlier clip of the pair; the last clip never carries one.
	TransitionOut *ClipTransition `json:"transition_out,omitempty"`
}

// EffectiveDuration is the playable length of the clip after trimming.
func (c EditorClip) EffectiveDuration() float64 {
	return c.SourceDuration - c.TrimStart - c.TrimEnd
}

// EndTime is the clip's end position on the timeline.
func (c EditorClip) EndTime() float64 {
	return c.StartTime + c.EffectiveDuration()
}

// ClipTransition is the transition configured at a clip boundary.
type ClipTransition struct {
	Type     TransitionType `json:"type"`
	Duration float64        `json:"duration"`
}
