package dial

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []InputEvent
	seen   []int
	w      *Widget
}

func (r *recorder) listen(ev InputEvent) {
	r.events = append(r.events, ev)
	if r.w != nil {
		r.seen = append(r.seen, r.w.Value())
	}
}

func newTestWidget(t *testing.T, cfg Config) (*Widget, *recorder) {
	t.Helper()
	w, err := New(cfg)
	require.NoError(t, err)
	rec := &recorder{w: w}
	w.Root().AddListener(rec.listen)
	return w, rec
}

func pointAt(angle, r float64) (float64, float64) {
	return r * math.Cos(angle), r * math.Sin(angle)
}

func TestWidgetInitialValue(t *testing.T) {
	w, rec := newTestWidget(t, Config{Min: 2000, Max: 2024, Value: 2015, Label: "Release year"})
	assert.Equal(t, 2015, w.Value())
	assert.Equal(t, Idle, w.State())
	assert.Empty(t, rec.events)

	x, y := w.Mapper().Point(2015, 50)
	assert.InDelta(t, x, w.Scene().Knob.Center.X, 1e-9)
	assert.InDelta(t, y, w.Scene().Knob.Center.Y, 1e-9)
	assert.InDelta(t, w.Mapper().ValueToAngle(2015), math.Atan2(w.Scene().Knob.Center.Y, w.Scene().Knob.Center.X), 1e-9)
	assert.Equal(t, "2015", w.Scene().Label.Content)
	assert.Equal(t, FieldName, w.Name())
}

func TestWidgetPointerDownAtMaxAngle(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	x, y := pointAt(w.Mapper().ValueToAngle(2024), 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})

	assert.Equal(t, 2024, w.Value())
	require.Len(t, rec.events, 1)
	assert.Equal(t, 2024, rec.events[0].Value)
	assert.Equal(t, []int{2024}, rec.seen)
	assert.Equal(t, Dragging, w.State())
}

func TestWidgetPointerDownInDeadGapClampsToMin(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	x, y := pointAt(-math.Pi, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})

	assert.Equal(t, 2000, w.Value())
	require.Len(t, rec.events, 1)
	assert.Equal(t, "2000", w.Scene().Label.Content)
}

func TestWidgetDragSequenceCommitsEveryEvent(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	m := w.Mapper()

	values := []int{2003, 2010, 2010, 2021}
	for i, v := range values {
		x, y := m.Point(v, 40)
		kind := PointerMove
		if i == 0 {
			kind = PointerDown
		}
		w.HandlePointer(PointerEvent{Kind: kind, X: x, Y: y})
	}

	require.Len(t, rec.events, 4)
	for i, ev := range rec.events {
		assert.Equal(t, values[i], ev.Value)
		assert.Equal(t, uint64(i+1), ev.Seq)
	}
	assert.Equal(t, values, rec.seen)
	assert.Equal(t, 2021, w.Value())
}

func TestWidgetMovesOutsideDialStillCount(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	x, y := w.Mapper().Point(2012, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})

	fx, fy := w.Mapper().Point(2020, 5000)
	require.False(t, w.Scene().Contains(fx, fy))
	w.HandlePointer(PointerEvent{Kind: PointerMove, X: fx, Y: fy})

	require.Len(t, rec.events, 2)
	assert.Equal(t, 2020, w.Value())
}

func TestWidgetReleaseStopsUpdates(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	m := w.Mapper()

	for drag := 0; drag < 3; drag++ {
		x, y := m.Point(2005, 50)
		w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})
		require.Equal(t, 1, w.Region().Len())
		x, y = m.Point(2006, 50)
		w.HandlePointer(PointerEvent{Kind: PointerUp, X: x, Y: y})
		require.Equal(t, 0, w.Region().Len())
		require.Equal(t, Idle, w.State())
	}
	require.Len(t, rec.events, 3)

	x, y := m.Point(2022, 50)
	w.HandlePointer(PointerEvent{Kind: PointerMove, X: x, Y: y})
	assert.Len(t, rec.events, 3)
	assert.Equal(t, 2005, w.Value())
}

func TestWidgetCancelEndsDrag(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: 10, Y: 0})
	w.HandlePointer(PointerEvent{Kind: PointerCancel})
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 0, w.Region().Len())

	w.HandlePointer(PointerEvent{Kind: PointerMove, X: -10, Y: -10})
	assert.Len(t, rec.events, 1)
}

func TestWidgetIgnoresSecondPointerDuringDrag(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	m := w.Mapper()
	x, y := m.Point(2004, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, ID: 1, X: x, Y: y})

	x, y = m.Point(2018, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, ID: 2, X: x, Y: y})
	w.HandlePointer(PointerEvent{Kind: PointerMove, ID: 2, X: x, Y: y})
	w.HandlePointer(PointerEvent{Kind: PointerUp, ID: 2, X: x, Y: y})
	assert.Equal(t, Dragging, w.State())
	assert.Equal(t, 2004, w.Value())

	w.HandlePointer(PointerEvent{Kind: PointerMove, ID: 1, X: x, Y: y})
	assert.Equal(t, 2018, w.Value())
	assert.Len(t, rec.events, 2)
}

func TestWidgetDownOutsideHitRegionIgnored(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: 200, Y: 0})
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 2015, w.Value())
	assert.Empty(t, rec.events)
}

func TestWidgetNotificationsBubbleToHost(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	form := NewNode()
	form.Append(w.Root())

	var hostSaw []int
	remove := form.AddListener(func(ev InputEvent) {
		hostSaw = append(hostSaw, w.Value())
		assert.Equal(t, FieldName, ev.Name)
	})

	x, y := w.Mapper().Point(2001, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})
	remove()
	w.HandlePointer(PointerEvent{Kind: PointerMove, X: x, Y: y})

	assert.Equal(t, []int{2001}, hostSaw)
	assert.Len(t, rec.events, 2)
}

func TestWidgetSetValueDoesNotNotify(t *testing.T) {
	w, rec := newTestWidget(t, DefaultConfig())
	w.SetValue(2020)
	assert.Equal(t, 2020, w.Value())
	assert.Equal(t, "2020", w.Scene().Label.Content)

	w.SetValue(3000)
	assert.Equal(t, 2024, w.Value())
	assert.Empty(t, rec.events)
}

func TestNewClampsOutOfRangeValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w, err := New(Config{Min: 2000, Max: 2024, Value: 1999}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2000, w.Value())
	assert.Contains(t, buf.String(), "clamped")

	w, err = New(Config{Min: 2000, Max: 2024, Value: 2100}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2024, w.Value())
}

func TestNewRejectsInvalidRange(t *testing.T) {
	_, err := New(Config{Min: 10, Max: 10, Value: 10})
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = New(Config{Min: 11, Max: 10, Value: 10})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestWithGeometryScalesKnobRadius(t *testing.T) {
	g := DefaultGeometry()
	g.Radius = 100
	w, err := New(DefaultConfig(), WithGeometry(g))
	require.NoError(t, err)
	x, y := w.Mapper().Point(2015, 100)
	assert.InDelta(t, x, w.Scene().Knob.Center.X, 1e-9)
	assert.InDelta(t, y, w.Scene().Knob.Center.Y, 1e-9)
}

func TestWidgetReleaseFromInsideListener(t *testing.T) {
	w, err := New(DefaultConfig())
	require.NoError(t, err)

	var states []State
	w.Root().AddListener(func(ev InputEvent) {
		states = append(states, w.State())
		if ev.Seq == 1 {
			w.HandlePointer(PointerEvent{Kind: PointerUp})
		}
	})

	x, y := w.Mapper().Point(2010, 50)
	w.HandlePointer(PointerEvent{Kind: PointerDown, X: x, Y: y})
	assert.Equal(t, []State{Dragging}, states)
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 0, w.Region().Len())

	w.HandlePointer(PointerEvent{Kind: PointerMove, X: 0, Y: 50})
	assert.Len(t, states, 1)
	assert.Equal(t, 2010, w.Value())
}
