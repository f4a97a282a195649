package timeline

import "testing"

func threeClips(durations ...float64) []EditorClip {
	clips := make([]EditorClip, len(durations))
	var pos float64
	for i, d := range durations {
		clips[i] = EditorClip{
			ID:             string(rune('a' + i)),
			SourceDuration: d,
			StartTime:      pos,
		}
		pos += d
	}
	return clips
}

func TestMaxTransitionDuration(t *testing.T) {
	tests := []struct {
		name string
		a, b EditorClip
		want float64
	}{
		{"hard cap wins", EditorClip{SourceDuration: 8}, EditorClip{SourceDuration: 10}, 2.0},
		{"cap limited 4s and 6s", EditorClip{SourceDuration: 4}, EditorClip{SourceDuration: 6}, 2.0},
		{"short first clip", EditorClip{SourceDuration: 3}, EditorClip{SourceDuration: 10}, 1.5},
		{"short second clip", EditorClip{SourceDuration: 10}, EditorClip{SourceDuration: 1}, 0.5},
		{"trims shorten the bound", EditorClip{SourceDuration: 10, TrimStart: 4, TrimEnd: 4}, EditorClip{SourceDuration: 10}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxTransitionDuration(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("MaxTransitionDuration() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSetTransition(t *testing.T) {
	clips := threeClips(4, 6, 5)

	SetTransition(clips, 0, TransitionFade)
	tr := clips[0].TransitionOut
	if tr == nil {
		t.Fatal("transition not set")
	}
	if tr.Type != TransitionFade {
		t.Errorf("type = %s, want fade", tr.Type)
	}
	if !almostEqual(tr.Duration, DefaultTransitionDuration) {
		t.Errorf("duration = %g, want default %g", tr.Duration, DefaultTransitionDuration)
	}

	// switching type keeps the configured duration
	SetTransitionDuration(clips, 0, 1.2)
	SetTransition(clips, 0, TransitionWipeLeft)
	if got := clips[0].TransitionOut.Duration; !almostEqual(got, 1.2) {
		t.Errorf("duration after type switch = %g, want 1.2", got)
	}

	// none clears the object entirely
	SetTransition(clips, 0, TransitionNone)
	if clips[0].TransitionOut != nil {
		t.Error("transition not cleared by none")
	}
}

func TestSetTransitionDuration_Clamp(t *testing.T) {
	// clip A effective 4.0s, clip B effective 6.0s: max = min(2, 3, 2) = 2
	clips := threeClips(4, 6, 5)
	SetTransition(clips, 0, TransitionFade)

	SetTransitionDuration(clips, 0, 5.0)
	if got := clips[0].TransitionOut.Duration; !almostEqual(got, 2.0) {
		t.Errorf("duration = %g, want clamped to 2.0", got)
	}

	SetTransitionDuration(clips, 0, 0.01)
	if got := clips[0].TransitionOut.Duration; !almostEqual(got, MinTransitionDuration) {
		t.Errorf("duration = %g, want floored to %g", got, MinTransitionDuration)
	}
}

func TestSetTransitionDuration_TracksTrims(t *testing.T) {
	clips := threeClips(10, 10, 10)
	SetTransition(clips, 0, TransitionFade)
	SetTransitionDuration(clips, 0, 2.0)

	// trimming clip B down to 2s shrinks the bound to 1s on the next
	// duration change
	clips[1].TrimEnd = 8
	SetTransitionDuration(clips, 0, 2.0)
	if got := clips[0].TransitionOut.Duration; !almostEqual(got, 1.0) {
		t.Errorf("duration = %g, want re-clamped to 1.0", got)
	}
}

func TestSetTransitionDuration_NoopWithoutTransition(t *testing.T) {
	clips := threeClips(4, 6, 5)
	SetTransitionDuration(clips, 0, 1.0)
	if clips[0].TransitionOut != nil {
		t.Error("duration change created a transition out of nothing")
	}
}

func TestCanHaveTransition(t *testing.T) {
	tests := []struct {
		index int
		count int
		want  bool
	}{
		{0, 3, true},
		{1, 3, true},
		{2, 3, false}, // last clip
		{3, 3, false},
		{-1, 3, false},
		{0, 1, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := CanHaveTransition(tt.index, tt.count); got != tt.want {
			t.Errorf("CanHaveTransition(%d, %d) = %v, want %v", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestSetTransition_LastClipIgnored(t *testing.T) {
	clips := threeClips(4, 6, 5)
	SetTransition(clips, 2, TransitionFade)
	if clips[2].TransitionOut != nil {
		t.Error("last clip accepted a transition")
	}
}

func TestTransitionCatalog(t *testing.T) {
	catalog := TransitionTypes()
	if len(catalog) != 22 {
		t.Fatalf("catalog size = %d, want 22", len(catalog))
	}

	seen := map[TransitionType]bool{}
	for _, info := range catalog {
		if seen[info.Type] {
			t.Errorf("duplicate catalog entry %s", info.Type)
		}
		seen[info.Type] = true

		if info.Type == TransitionNone {
			t.Error("none must not be a catalog entry")
		}
		if info.Label == "" || info.Description == "" || info.Icon == "" {
			t.Errorf("%s: incomplete metadata", info.Type)
		}

		byCat := TransitionsByCategory(info.Category)
		found := false
		for _, c := range byCat {
			if c.Type == info.Type {
				found = true
			}
		}
		if !found {
			t.Errorf("%s missing from its category %s", info.Type, info.Category)
		}
	}

	var total int
	for _, cat := range TransitionCategories {
		total += len(TransitionsByCategory(cat))
	}
	if total != len(catalog) {
		t.Errorf("categories cover %d entries, want %d", total, len(catalog))
	}

	if _, ok := TransitionInfoFor(TransitionRadial); !ok {
		t.Error("lookup failed for radial")
	}
	if _, ok := TransitionInfoFor(TransitionNone); ok {
		t.Error("lookup succeeded for none")
	}
}
