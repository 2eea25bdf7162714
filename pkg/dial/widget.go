package dial

import (
	"log/slog"
)

// FieldName is the form field name a widget publishes under.
const FieldName = "yearDial"

// Option customises a Widget at construction.
type Option func(*Widget)

// WithGeometry overrides the default layout.
func WithGeometry(g Geometry) Option {
	return func(w *Widget) { w.geom = g }
}

// WithLogger sets the logger used for construction warnings and drag
// lifecycle traces.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.log = l
		}
	}
}

// Widget is a radial input control for an integer in [Min, Max].
type Widget struct {
	cfg    Config
	geom   Geometry
	mapper Mapper
	scene  *Scene
	root   *Node
	region *Region
	drag   *tracker
	log    *slog.Logger

	value int
	seq   uint64
}

// New builds a widget. A range with Min >= Max is rejected; an initial value
// outside the range is clamped.
func New(cfg Config, opts ...Option) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cfg.Min, cfg.Max)
	if err != nil {
		return nil, err
	}
	w := &Widget{
		cfg:    cfg,
		geom:   DefaultGeometry(),
		mapper: mapper,
		root:   NewNode(),
		region: NewRegion(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.value = cfg.Clamp(cfg.Value)
	if w.value != cfg.Value {
		w.log.Warn("initial dial value out of range, clamped",
			"value", cfg.Value, "min", cfg.Min, "max", cfg.Max, "clamped", w.value)
	}

	w.scene = NewScene(cfg, w.geom, mapper)
	w.scene.Render(w.value)

	w.drag = newTracker(w.region, w.scene.Contains, w.commitPointer)
	w.drag.onState = func(s State) {
		w.log.Debug("dial drag state", "state", s.String(), "value", w.value)
	}
	return w, nil
}

// Value returns the current value.
func (w *Widget) Value() int { return w.value }

// SetValue updates the value programmatically. The value is clamped into
// range and rendered, but no input event is dispatched.
func (w *Widget) SetValue(v int) {
	w.value = w.cfg.Clamp(v)
	w.scene.Render(w.value)
}

// Config returns the construction configuration.
func (w *Widget) Config() Config { return w.cfg }

// Name returns the form field name.
func (w *Widget) Name() string { return FieldName }

// Mapper returns the angle mapper for the widget's range.
func (w *Widget) Mapper() Mapper { return w.mapper }

// Scene exposes the visual tree for rendering backends. Callers must treat
// it as read-only.
func (w *Widget) Scene() *Scene { return w.scene }

// Root returns the element hosts attach listeners to.
func (w *Widget) Root() *Node { return w.root }

// Region returns the capture region that receives moves and releases.
func (w *Widget) Region() *Region { return w.region }

// State returns the drag state.
func (w *Widget) State() State { return w.drag.State() }

// PointerDown delivers a pointer-down on the dial element. Points outside
// the hit region are ignored.
func (w *Widget) PointerDown(ev PointerEvent) { w.drag.Down(ev) }

// HandlePointer routes ev the way a browser would: downs go to the dial
// element, everything else to the capture region.
func (w *Widget) HandlePointer(ev PointerEvent) {
	if ev.Kind == PointerDown {
		w.PointerDown(ev)
		return
	}
	w.region.Dispatch(ev)
}

func (w *Widget) commitPointer(x, y float64) {
	w.value = w.mapper.PointerToValue(x, y)
	w.scene.Render(w.value)
	w.seq++
	w.root.Dispatch(InputEvent{Name: FieldName, Value: w.value, Seq: w.seq})
}
