package dial

// State is the drag lifecycle state.
type State int

const (
	// Idle means no pointer is held on the dial.
	Idle State = iota
	// Dragging means a pointer went down on the dial and has not been
	// released.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// PointerKind enumerates pointer event types.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	// PointerCancel is raised when the platform aborts a pointer; it ends a
	// drag like PointerUp.
	PointerCancel
)

// PointerEvent is one pointer sample. X and Y are in the dial's local frame
// when passed to a Widget.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	X, Y float64
}

// PointerHandler receives pointer events from a Region.
type PointerHandler func(PointerEvent)

// Region is a capture area broader than the dial, the way a window is in a
// browser. Moves and releases delivered to it reach every active listener,
// wherever the pointer is.
type Region struct {
	handlers []regionEntry
	nextID   int
}

type regionEntry struct {
	id int
	fn PointerHandler
}

// NewRegion returns an empty capture region.
func NewRegion() *Region { return &Region{} }

// Listen registers fn until the returned release func is called. Release is
// idempotent.
func (r *Region) Listen(fn PointerHandler) (release func()) {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, regionEntry{id: id, fn: fn})
	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, h := range r.handlers {
			if h.id == id {
				r.handlers = append(r.handlers[:i:i], r.handlers[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of active listeners.
func (r *Region) Len() int { return len(r.handlers) }

// Dispatch delivers ev to every listener registered before the call.
func (r *Region) Dispatch(ev PointerEvent) {
	snapshot := r.handlers
	for _, h := range snapshot {
		h.fn(ev)
	}
}

type effect int

const (
	effectNone effect = iota
	effectCommit
	effectCommitCapture
	effectRelease
)

// transition is the drag state machine. hit reports whether a down event
// landed inside the dial; owner is the pointer id driving the current drag.
func transition(s State, ev PointerEvent, hit bool, owner int) (State, effect) {
	switch s {
	case Idle:
		if ev.Kind == PointerDown && hit {
			return Dragging, effectCommitCapture
		}
	case Dragging:
		if ev.ID != owner {
			return Dragging, effectNone
		}
		switch ev.Kind {
		case PointerMove:
			return Dragging, effectCommit
		case PointerUp, PointerCancel:
			return Idle, effectRelease
		}
	}
	return s, effectNone
}

// tracker drives the drag lifecycle for one dial. Move and release
// listening on the capture region is held only while dragging.
type tracker struct {
	state   State
	owner   int
	region  *Region
	release func()
	hit     func(x, y float64) bool
	commit  func(x, y float64)
	onState func(State)
}

func newTracker(region *Region, hit func(x, y float64) bool, commit func(x, y float64)) *tracker {
	return &tracker{region: region, hit: hit, commit: commit}
}

// State returns the current lifecycle state.
func (t *tracker) State() State { return t.state }

// Down handles a pointer-down on the dial element.
func (t *tracker) Down(ev PointerEvent) {
	ev.Kind = PointerDown
	t.apply(ev, t.hit(ev.X, ev.Y))
}

func (t *tracker) onRegion(ev PointerEvent) {
	if ev.Kind == PointerDown {
		return
	}
	t.apply(ev, false)
}

func (t *tracker) apply(ev PointerEvent, hit bool) {
	next, eff := transition(t.state, ev, hit, t.owner)
	// Capture and state change happen before commit so listeners that feed
	// events back in see the drag in progress.
	switch eff {
	case effectCommitCapture:
		t.owner = ev.ID
		t.release = t.region.Listen(t.onRegion)
	case effectRelease:
		if t.release != nil {
			t.release()
			t.release = nil
		}
	}
	if next != t.state {
		t.state = next
		if t.onState != nil {
			t.onState(next)
		}
	}
	if eff == effectCommit || eff == effectCommitCapture {
		t.commit(ev.X, ev.Y)
	}
}
