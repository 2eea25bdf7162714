package render

import (
	"image/color"
	"testing"

	"yeardial/pkg/dial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWidget(t *testing.T) *dial.Widget {
	t.Helper()
	w, err := dial.New(dial.DefaultConfig())
	require.NoError(t, err)
	return w
}

func TestLayoutRoundTrip(t *testing.T) {
	w := newWidget(t)
	l := NewLayout(w.Scene(), 3, 10, 20)
	assert.Equal(t, 420, l.W)
	assert.Equal(t, 480, l.H)

	for _, p := range []dial.Point{{X: 0, Y: 0}, {X: -70, Y: 70}, {X: 12.5, Y: -33}} {
		sx, sy := l.ToScreen(p)
		x, y := l.ToLocal(sx, sy)
		assert.InDelta(t, p.X, x, 1e-9)
		assert.InDelta(t, p.Y, y, 1e-9)
	}

	sx, sy := l.ToScreen(dial.Point{})
	assert.Equal(t, 10+210.0, sx)
	assert.Equal(t, 20+270.0, sy)
}

func TestLayoutDefaultsScale(t *testing.T) {
	w := newWidget(t)
	l := NewLayout(w.Scene(), 0, 0, 0)
	assert.Equal(t, 1.0, l.Scale)
}

func TestRasterizeDrawsKnobAtValue(t *testing.T) {
	w := newWidget(t)
	img := Rasterize(w.Scene(), 2)
	l := NewLayout(w.Scene(), 2, 0, 0)
	require.Equal(t, l.W, img.Bounds().Dx())
	require.Equal(t, l.H, img.Bounds().Dy())

	kx, ky := l.ToScreen(w.Scene().Knob.Center)
	assert.Equal(t, w.Scene().Knob.Fill, img.RGBAAt(int(kx), int(ky)))

	w.SetValue(2000)
	img = Rasterize(w.Scene(), 2)
	assert.NotEqual(t, w.Scene().Knob.Fill, img.RGBAAt(int(kx), int(ky)))
	kx, ky = l.ToScreen(w.Scene().Knob.Center)
	assert.Equal(t, w.Scene().Knob.Fill, img.RGBAAt(int(kx), int(ky)))
}

func TestRasterizeRingFillAndStroke(t *testing.T) {
	w := newWidget(t)
	img := Rasterize(w.Scene(), 2)
	l := NewLayout(w.Scene(), 2, 0, 0)

	fx, fy := l.ToScreen(dial.Point{X: 0, Y: 30})
	assert.Equal(t, w.Scene().Ring.Fill, img.RGBAAt(int(fx), int(fy)))

	sx, sy := l.ToScreen(dial.Point{X: -59.5, Y: 0})
	assert.Equal(t, w.Scene().Ring.Stroke, img.RGBAAt(int(sx), int(sy)))

	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, l.H-1))
}

func TestRasterizeDrawsTicks(t *testing.T) {
	w := newWidget(t)
	img := Rasterize(w.Scene(), 4)
	l := NewLayout(w.Scene(), 4, 0, 0)

	for _, tick := range w.Scene().Ticks {
		mid := dial.Point{X: (tick.From.X + tick.To.X) / 2, Y: (tick.From.Y + tick.To.Y) / 2}
		x, y := l.ToScreen(mid)
		assert.Equal(t, tick.Color, img.RGBAAt(int(x), int(y)))
	}
}

func TestRasterizeDrawsLabelText(t *testing.T) {
	w := newWidget(t)
	img := Rasterize(w.Scene(), 1)
	l := NewLayout(w.Scene(), 1, 0, 0)

	cx, cy := l.ToScreen(dial.Point{})
	label := w.Scene().Label.Color
	found := false
	for y := int(cy) - 8; y <= int(cy)+8 && !found; y++ {
		for x := int(cx) - 16; x <= int(cx)+16; x++ {
			if img.RGBAAt(x, y) == label {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "label pixels near the centre")
}
