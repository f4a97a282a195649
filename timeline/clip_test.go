package timeline

import "testing"

func TestEditorClip_EffectiveDuration(t *testing.T) {
	tests := []struct {
		name string
		clip EditorClip
		want float64
	}{
		{"untrimmed", EditorClip{SourceDuration: 10}, 10},
		{"trimmed both ends", EditorClip{SourceDuration: 10, TrimStart: 2, TrimEnd: 3}, 5},
		{"trim start only", EditorClip{SourceDuration: 8, TrimStart: 1.5}, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clip.EffectiveDuration(); !almostEqual(got, tt.want) {
				t.Errorf("EffectiveDuration() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestEditorClip_EndTime(t *testing.T) {
	c := EditorClip{StartTime: 4, SourceDuration: 10, TrimEnd: 2}
	if got := c.EndTime(); !almostEqual(got, 12) {
		t.Errorf("EndTime() = %g, want 12", got)
	}
}

func TestDocument_AppendClip(t *testing.T) {
	doc := NewDocument()
	doc.AppendClip(EditorClip{ID: "a", SourceDuration: 4})
	b := doc.AppendClip(EditorClip{ID: "b", SourceDuration: 6, StartTime: 99, TransitionOut: &ClipTransition{Type: TransitionFade, Duration: 1}})

	if !almostEqual(b.StartTime, 4) {
		t.Errorf("appended clip starts at %g, want end of sequence", b.StartTime)
	}
	if b.TransitionOut != nil {
		t.Error("appended clip kept an outbound transition")
	}
}

func TestDocument_RemoveClip(t *testing.T) {
	doc := NewDocument()
	doc.Clips = threeClips(4, 6, 5)
	doc.SetTransition(0, TransitionFade)
	doc.SetTransition(1, TransitionWipeLeft)

	// removing the middle clip drops the transition into it
	if !doc.RemoveClip(1) {
		t.Fatal("remove failed")
	}
	if len(doc.Clips) != 2 {
		t.Fatalf("clips = %d, want 2", len(doc.Clips))
	}
	if doc.Clips[0].TransitionOut != nil {
		t.Error("transition into removed clip survived")
	}
	// sequence re-laid out back to back
	if !almostEqual(doc.Clips[1].StartTime, 4) {
		t.Errorf("second clip starts at %g, want 4", doc.Clips[1].StartTime)
	}

	if doc.RemoveClip(5) {
		t.Error("out-of-range remove succeeded")
	}
}

func TestDocument_SetClipTrims(t *testing.T) {
	doc := NewDocument()
	doc.Clips = threeClips(10, 10, 10)
	doc.SetTransition(0, TransitionFade)
	doc.SetTransitionDuration(0, 2.0)

	// trimming clip 1 down to 2s shrinks the boundaries next to it
	if !doc.SetClipTrims(1, 4, 4) {
		t.Fatal("trim failed")
	}
	if got := doc.Clips[0].TransitionOut.Duration; !almostEqual(got, 1.0) {
		t.Errorf("transition duration = %g, want re-clamped to 1.0", got)
	}
	if !almostEqual(doc.Clips[2].StartTime, 12) {
		t.Errorf("clip 2 starts at %g, want 12 after relayout", doc.Clips[2].StartTime)
	}

	// negative trims are coerced
	doc.SetClipTrims(1, -1, 0)
	if doc.Clips[1].TrimStart != 0 {
		t.Errorf("trim start = %g, want coerced to 0", doc.Clips[1].TrimStart)
	}

	// a trim that leaves nothing playable is refused
	if doc.SetClipTrims(2, 6, 6) {
		t.Error("unplayable trim accepted")
	}
}
