package timeline

import "math"

// TransitionType identifies one of the supported clip transitions. The
// set is closed; display metadata lives in the catalog below rather
// than on the type itself.
type TransitionType string

const (
	TransitionNone TransitionType = "none"

	TransitionFade      TransitionType = "fade"
	TransitionFadeBlack TransitionType = "fadeblack"
	TransitionFadeWhite TransitionType = "fadewhite"
	TransitionDissolve  TransitionType = "dissolve"

	TransitionWipeLeft  TransitionType = "wipeleft"
	TransitionWipeRight TransitionType = "wiperight"
	TransitionWipeUp    TransitionType = "wipeup"
	TransitionWipeDown  TransitionType = "wipedown"

	TransitionSlideLeft  TransitionType = "slideleft"
	TransitionSlideRight TransitionType = "slideright"
	TransitionSlideUp    TransitionType = "slideup"
	TransitionSlideDown  TransitionType = "slidedown"

	TransitionCircleCrop  TransitionType = "circlecrop"
	TransitionRectCrop    TransitionType = "rectcrop"
	TransitionCircleOpen  TransitionType = "circleopen"
	TransitionCircleClose TransitionType = "circleclose"

	TransitionPixelize    TransitionType = "pixelize"
	TransitionRadial      TransitionType = "radial"
	TransitionSmoothLeft  TransitionType = "smoothleft"
	TransitionSmoothRight TransitionType = "smoothright"
	TransitionSmoothUp    TransitionType = "smoothup"
	TransitionSmoothDown  TransitionType = "smoothdown"
)

// TransitionCategory groups transition kinds for the picker UI.
type TransitionCategory string

const (
	CategoryBasic   TransitionCategory = "basic"
	CategoryWipe    TransitionCategory = "wipe"
	CategorySlide   TransitionCategory = "slide"
	CategoryShape   TransitionCategory = "shape"
	CategorySpecial TransitionCategory = "special"
)

// TransitionCategories lists the categories in display order.
var TransitionCategories = []TransitionCategory{
	CategoryBasic, CategoryWipe, CategorySlide, CategoryShape, CategorySpecial,
}

// TransitionInfo is the display metadata for one transition kind.
type TransitionInfo struct {
	Type        TransitionType     `json:"type"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Category    TransitionCategory `json:"category"`
	Icon        string             `json:"icon"`
}

// transitionCatalog enumerates every selectable transition. "none" is
// deliberately absent: clearing a transition removes the object.
var transitionCatalog = []TransitionInfo{
	{TransitionFade, "Fade", "Crossfade between clips", CategoryBasic, "◐"},
	{TransitionFadeBlack, "Fade Black", "Fade out to black, then in", CategoryBasic, "◐"},
	{TransitionFadeWhite, "Fade White", "Fade out to white, then in", CategoryBasic, "◐"},
	{TransitionDissolve, "Dissolve", "Dissolve with a noise pattern", CategoryBasic, "◐"},

	{TransitionWipeLeft, "Wipe Left", "Wipe from right to left", CategoryWipe, "◧"},
	{TransitionWipeRight, "Wipe Right", "Wipe from left to right", CategoryWipe, "◧"},
	{TransitionWipeUp, "Wipe Up", "Wipe from bottom to top", CategoryWipe, "◫"},
	{TransitionWipeDown, "Wipe Down", "Wipe from top to bottom", CategoryWipe, "◫"},

	{TransitionSlideLeft, "Slide Left", "Next clip slides in from the right", CategorySlide, "⟷"},
	{TransitionSlideRight, "Slide Right", "Next clip slides in from the left", CategorySlide, "⟷"},
	{TransitionSlideUp, "Slide Up", "Next clip slides in from below", CategorySlide, "⟷"},
	{TransitionSlideDown, "Slide Down", "Next clip slides in from above", CategorySlide, "⟷"},

	{TransitionCircleCrop, "Circle Crop", "Shrink to a circle, then expand", CategoryShape, "⊚"},
	{TransitionRectCrop, "Rect Crop", "Shrink to a rectangle, then expand", CategoryShape, "▣"},
	{TransitionCircleOpen, "Circle Open", "Circle opens to reveal the next clip", CategoryShape, "⊚"},
	{TransitionCircleClose, "Circle Close", "Circle closes over the current clip", CategoryShape, "⊚"},

	{TransitionPixelize, "Pixelize", "Pixelate out, then back in", CategorySpecial, "▤"},
	{TransitionRadial, "Radial", "Clock-style radial sweep", CategorySpecial, "◎"},
	{TransitionSmoothLeft, "Smooth Left", "Smeared horizontal sweep left", CategorySpecial, "⟷"},
	{TransitionSmoothRight, "Smooth Right", "Smeared horizontal sweep right", CategorySpecial, "⟷"},
	{TransitionSmoothUp, "Smooth Up", "Smeared vertical sweep up", CategorySpecial, "⟷"},
	{TransitionSmoothDown, "Smooth Down", "Smeared vertical sweep down", CategorySpecial, "⟷"},
}

const (
	// MaxTransitionCap is the hard upper bound on transition duration.
	MaxTransitionCap = 2.0
	// MinTransitionDuration is the shortest selectable duration.
	MinTransitionDuration = 0.1
	// DefaultTransitionDuration is used when a transition is first set.
	DefaultTransitionDuration = 0.5
)

// TransitionTypes returns the full catalog in display order.
func TransitionTypes() []TransitionInfo {
	out := make([]TransitionInfo, len(transitionCatalog))
	copy(out, transitionCatalog)
	return out
}

// TransitionsByCategory returns the catalog entries for one category.
func TransitionsByCategory(cat TransitionCategory) []TransitionInfo {
	var out []TransitionInfo
	for _, info := range transitionCatalog {
		if info.Category == cat {
			out = append(out, info)
		}
	}
	return out
}

// TransitionInfoFor looks up the metadata for a transition kind.
func TransitionInfoFor(t TransitionType) (TransitionInfo, bool) {
	for _, info := range transitionCatalog {
		if info.Type == t {
			return info, true
		}
	}
	return TransitionInfo{}, false
}

// CanHaveTransition reports whether the clip at index may carry an
// outbound transition. The last clip (and anything out of range)
// cannot: transitions exist only between adjacent clips.
func CanHaveTransition(index, clipCount int) bool {
	return index >= 0 && index < clipCount-1
}

// MaxTransitionDuration bounds a transition at the boundary between a
// and b: half of either clip's playable length, capped at two seconds.
func MaxTransitionDuration(a, b EditorClip) float64 {
	return math.Min(math.Min(a.EffectiveDuration()/2, b.EffectiveDuration()/2), MaxTransitionCap)
}

// SetTransition configures the transition after clips[index]. Setting
// TransitionNone clears it. Any other kind keeps the currently
// configured duration (or the default) clamped to the boundary's
// maximum. Out-of-range indices are ignored.
func SetTransition(clips []EditorClip, index int, typ TransitionType) {
	if !CanHaveTransition(index, len(clips)) {
		return
	}
	if typ == TransitionNone {
		clips[index].TransitionOut = nil
		return
	}

	duration := DefaultTransitionDuration
	if cur := clips[index].TransitionOut; cur != nil && cur.Duration > 0 {
		duration = cur.Duration
	}
	clips[index].TransitionOut = &ClipTransition{
		Type:     typ,
		Duration: clampTransitionDuration(duration, clips[index], clips[index+1]),
	}
}

// SetTransitionDuration re-clamps the configured duration against the
// boundary's current maximum, which tracks upstream trim edits. A
// boundary with no transition is left untouched.
func SetTransitionDuration(clips []EditorClip, index int, duration float64) {
	if !CanHaveTransition(index, len(clips)) {
		return
	}
	cur := clips[index].TransitionOut
	if cur == nil || cur.Type == TransitionNone {
		return
	}
	cur.Duration = clampTransitionDuration(duration, clips[index], clips[index+1])
}

func clampTransitionDuration(d float64, a, b EditorClip) float64 {
	if d < MinTransitionDuration {
		d = MinTransitionDuration
	}
	return math.Min(d, MaxTransitionDuration(a, b))
}
