package timeline

// DragMode distinguishes the three pointer manipulations a track block
// supports.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	}
	return "unknown"
}

// Hooks are the host-provided lifecycle callbacks for a drag session.
// All of them are optional and fire-and-forget; the host typically
// pauses playback on drag start and resumes on drag end.
type Hooks struct {
	OnSelect    func(id string)
	OnDragStart func()
	OnDragEnd   func()
}

// LookupFunc resolves an entity id to its current interval. It returns
// false when the entity is no longer in the host's list, for example
// when it was deleted by another code path mid-drag.
type LookupFunc func(id string) (Interval, bool)

// UpdateFunc delivers a clamped candidate interval to the host. The
// host owns the entity list; the session never mutates it directly.
type UpdateFunc func(id string, iv Interval)

// Session is the pointer interaction state machine for one track. It
// is Idle until Begin succeeds, Dragging until End, Cancel or Release,
// and emits one update per Move call with no coalescing. Every emitted
// interval satisfies the track's constraints; clamping happens before
// emission, so the host never observes an invalid state even
// transiently.
//
// A Session is single-threaded by design: pointer events arrive in
// delivery order on the UI goroutine, matching the event model of the
// editor front end.
type Session struct {
	constraints Constraints
	scale       float64
	lookup      LookupFunc
	update      UpdateFunc
	hooks       Hooks

	active         bool
	id             string
	mode           DragMode
	pointerOriginX float64
	origin         Interval
}

// NewSession creates an idle session for one track. scale is pixels
// per second at the current zoom level.
func NewSession(c Constraints, scale float64, lookup LookupFunc, update UpdateFunc, hooks Hooks) *Session {
	return &Session{
		constraints: c,
		scale:       scale,
		lookup:      lookup,
		update:      update,
		hooks:       hooks,
	}
}

// SetScale updates the pixels-per-second factor when the host zooms.
// Stored entity times are seconds, so no rescaling of state is needed.
func (s *Session) SetScale(scale float64) {
	s.scale = scale
}

// Begin starts a drag on pointer-down. It snapshots the entity's
// current interval as the origin for all subsequent deltas, selects
// the entity and fires the host's drag-start hook. It reports false,
// leaving the session idle, when the entity cannot be found.
func (s *Session) Begin(id string, mode DragMode, pointerX float64) bool {
	origin, ok := s.lookup(id)
	if !ok {
		return false
	}

	if s.hooks.OnDragStart != nil {
		s.hooks.OnDragStart()
	}
	if s.hooks.OnSelect != nil {
		s.hooks.OnSelect(id)
	}

	s.active = true
	s.id = id
	s.mode = mode
	s.pointerOriginX = pointerX
	s.origin = origin
	return true
}

// Move recomputes the candidate interval for the current pointer
// position and emits it. Deltas are always taken against the origin
// snapshot, not the previous emission, so floating point error does
// not accumulate across a drag. A Move while idle, or after the
// dragged entity disappeared from the host list, is a silent no-op.
func (s *Session) Move(pointerX float64) {
	if !s.active || s.scale <= 0 {
		return
	}
	if _, ok := s.lookup(s.id); !ok {
		return
	}

	delta := (pointerX - s.pointerOriginX) / s.scale

	var candidate Interval
	switch s.mode {
	case DragMove:
		candidate = s.constraints.Move(s.origin, delta)
	case DragResizeStart:
		candidate = s.constraints.ResizeStart(s.origin, delta)
	case DragResizeEnd:
		candidate = s.constraints.ResizeEnd(s.origin, delta)
	default:
		return
	}

	s.update(s.id, candidate)
}

// End commits the drag on pointer-up. The host already holds the last
// emitted state; End only returns the machine to Idle and fires the
// drag-end hook.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.active = false
	s.id = ""
	if s.hooks.OnDragEnd != nil {
		s.hooks.OnDragEnd()
	}
}

// Cancel aborts the drag and restores the origin interval. The shipped
// editor has no abort gesture; this transition exists so a host can
// bind one (Escape) without reimplementing the restore.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	if _, ok := s.lookup(s.id); ok {
		s.update(s.id, s.origin)
	}
	s.End()
}

// Release tears the session down unconditionally. Safe to call in any
// state, including mid-drag on component unmount; it guarantees the
// drag-end hook fires so the host can undo drag-start side effects.
func (s *Session) Release() {
	s.End()
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Dragging returns the id of the entity under manipulation, or false
// when idle.
func (s *Session) Dragging() (string, bool) {
	return s.id, s.active
}

// Mode returns the current drag mode. Meaningful only while Active.
func (s *Session) Mode() DragMode {
	return s.mode
}
