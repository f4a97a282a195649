package timeline

import (
	"encoding/json"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestDocument_CaptionLifecycle(t *testing.T) {
	doc := NewDocument()

	cs := doc.AddCaption(NewCaptionSegment(2, 5, "hello"))
	if cs.ID == "" {
		t.Fatal("caption has no id")
	}

	if !doc.UpdateCaption(cs.ID, CaptionPatch{Text: ptr("edited")}) {
		t.Fatal("update reported missing caption")
	}
	got, _ := doc.CaptionByID(cs.ID)
	if got.Text != "edited" {
		t.Errorf("text = %q, want edited", got.Text)
	}

	dup, ok := doc.DuplicateCaption(cs.ID)
	if !ok {
		t.Fatal("duplicate failed")
	}
	if dup.ID == cs.ID {
		t.Error("duplicate shares the original id")
	}
	if !almostEqual(dup.StartTime, got.EndTime) {
		t.Errorf("duplicate starts at %g, want right after original (%g)", dup.StartTime, got.EndTime)
	}
	if !almostEqual(dup.Span(), got.Span()) {
		t.Errorf("duplicate span = %g, want %g", dup.Span(), got.Span())
	}

	if !doc.DeleteCaption(cs.ID) {
		t.Fatal("delete failed")
	}
	if _, ok := doc.CaptionByID(cs.ID); ok {
		t.Error("caption still present after delete")
	}
	if len(doc.Captions) != 1 {
		t.Errorf("captions = %d, want only the duplicate", len(doc.Captions))
	}
}

func TestDocument_UpdateCaptionClamps(t *testing.T) {
	doc := NewDocument()
	cs := doc.AddCaption(NewCaptionSegment(2, 5, "x"))

	// pushing end below start+floor must coerce, not reject
	doc.UpdateCaption(cs.ID, CaptionPatch{EndTime: ptr(2.1)})
	got, _ := doc.CaptionByID(cs.ID)
	if !almostEqual(got.Span(), 0.5) {
		t.Errorf("span = %g, want floored to 0.5", got.Span())
	}

	doc.UpdateCaption(cs.ID, CaptionPatch{StartTime: ptr(-3.0)})
	got, _ = doc.CaptionByID(cs.ID)
	if got.StartTime < 0 {
		t.Errorf("start = %g, want non-negative", got.StartTime)
	}
}

func TestDocument_UnknownIDsAreNoops(t *testing.T) {
	doc := NewDocument()
	doc.AddCaption(NewCaptionSegment(0, 2, "x"))
	doc.AddOverlay(NewTextOverlay(0, 2))

	if doc.UpdateCaption("ghost", CaptionPatch{Text: ptr("y")}) {
		t.Error("update succeeded for unknown caption")
	}
	if doc.DeleteCaption("ghost") {
		t.Error("delete succeeded for unknown caption")
	}
	if _, ok := doc.DuplicateCaption("ghost"); ok {
		t.Error("duplicate succeeded for unknown caption")
	}
	if doc.UpdateOverlay("ghost", OverlayPatch{Text: ptr("y")}) {
		t.Error("update succeeded for unknown overlay")
	}
	if len(doc.Captions) != 1 || len(doc.Overlays) != 1 {
		t.Error("no-op mutations changed the document")
	}
}

func TestDocument_OverlayLifecycle(t *testing.T) {
	doc := NewDocument()

	o := doc.AddOverlay(NewTextOverlay(1, 0.1)) // below the 0.25 floor
	if !almostEqual(o.Duration, 0.25) {
		t.Errorf("duration = %g, want floored at insert", o.Duration)
	}

	doc.UpdateOverlay(o.ID, OverlayPatch{Duration: ptr(0.05)})
	got, _ := doc.OverlayByID(o.ID)
	if !almostEqual(got.Duration, 0.25) {
		t.Errorf("duration = %g, want floored on update", got.Duration)
	}

	doc.UpdateOverlay(o.ID, OverlayPatch{Position: &OverlayPosition{X: 10, Y: 90}})
	got, _ = doc.OverlayByID(o.ID)
	if got.Position.X != 10 || got.Position.Y != 90 {
		t.Errorf("position = %+v", got.Position)
	}

	if !doc.DeleteOverlay(o.ID) {
		t.Fatal("delete failed")
	}
}

func TestDocument_TotalDuration(t *testing.T) {
	doc := NewDocument()
	doc.Clips = []EditorClip{
		{SourceDuration: 10, TrimStart: 1, TrimEnd: 2}, // 7
		{SourceDuration: 5},                            // 5
	}
	if got := doc.TotalDuration(); !almostEqual(got, 12) {
		t.Errorf("TotalDuration() = %g, want 12", got)
	}
}

func TestDocument_SortedCaptions(t *testing.T) {
	doc := NewDocument()
	doc.AddCaption(NewCaptionSegment(5, 6, "late"))
	doc.AddCaption(NewCaptionSegment(1, 2, "early"))

	sorted := doc.SortedCaptions()
	if sorted[0].Text != "early" || sorted[1].Text != "late" {
		t.Errorf("sort order wrong: [%s %s]", sorted[0].Text, sorted[1].Text)
	}
	// the document's own list is left alone
	if doc.Captions[0].Text != "late" {
		t.Error("SortedCaptions mutated the document")
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Clips = threeClips(4, 6, 5)
	doc.SetTransition(0, TransitionFade)
	doc.AddCaption(NewCaptionSegment(0, 2, "hi"))
	doc.AddOverlay(NewTextOverlay(1, 2))

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(back.Clips) != 3 || len(back.Captions) != 1 || len(back.Overlays) != 1 {
		t.Fatalf("round trip lost entities: %d/%d/%d", len(back.Clips), len(back.Captions), len(back.Overlays))
	}
	if back.Clips[0].TransitionOut == nil || back.Clips[0].TransitionOut.Type != TransitionFade {
		t.Error("transition lost in round trip")
	}
	if back.Version != DocumentVersion {
		t.Errorf("version = %d, want %d", back.Version, DocumentVersion)
	}
}
