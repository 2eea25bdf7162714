package render

import (
	"image"
	"image/color"
	"math"

	"yeardial/pkg/dial"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterize draws scene into a new RGBA image at the given scale. The
// background is transparent.
func Rasterize(scene *dial.Scene, scale float64) *image.RGBA {
	l := NewLayout(scene, scale, 0, 0)
	img := image.NewRGBA(image.Rect(0, 0, l.W, l.H))
	DrawScene(img, scene, l)
	return img
}

// DrawScene paints scene onto dst using layout l, in the order ring, ticks,
// label, knob, caption.
func DrawScene(dst *image.RGBA, scene *dial.Scene, l Layout) {
	fillCircle(dst, l, scene.Ring)
	for _, tick := range scene.Ticks {
		strokeLine(dst, l, tick)
	}
	drawText(dst, l, scene.Label)
	fillCircle(dst, l, scene.Knob)
	drawText(dst, l, scene.Caption)
}

func fillCircle(dst *image.RGBA, l Layout, c dial.Circle) {
	cx, cy := l.ToScreen(c.Center)
	r := c.R * l.Scale
	if r <= 0 {
		return
	}
	stroke := math.Max(1, l.Scale)
	bounds := image.Rect(int(cx-r)-1, int(cy-r)-1, int(cx+r)+2, int(cy+r)+2).Intersect(dst.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			switch {
			case d > r:
				continue
			case c.Stroke.A != 0 && d > r-stroke:
				blend(dst, x, y, c.Stroke)
			default:
				blend(dst, x, y, c.Fill)
			}
		}
	}
}

func strokeLine(dst *image.RGBA, l Layout, ln dial.Line) {
	x1, y1 := l.ToScreen(ln.From)
	x2, y2 := l.ToScreen(ln.To)
	half := math.Max(0.5, ln.Width*l.Scale/2)
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq <= 1e-8 {
		return
	}
	bounds := image.Rect(
		int(math.Min(x1, x2)-half)-1, int(math.Min(y1, y2)-half)-1,
		int(math.Max(x1, x2)+half)+2, int(math.Max(y1, y2)+half)+2,
	).Intersect(dst.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			t := clamp01(((px-x1)*dx + (py-y1)*dy) / lenSq)
			d := math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
			if d <= half {
				blend(dst, x, y, ln.Color)
			}
		}
	}
}

func drawText(dst *image.RGBA, l Layout, t dial.Text) {
	if t.Content == "" {
		return
	}
	face := basicfont.Face7x13
	cx, cy := l.ToScreen(t.At)
	width := font.MeasureString(face, t.Content).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	x := int(math.Round(cx)) - width/2
	y := int(math.Round(cy)) + (ascent-descent)/2

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.Color), Face: face}
	d.Dot = fixed.P(x, y)
	d.DrawString(t.Content)
	if t.Bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(t.Content)
	}
}

// blend composites src over the pixel at (x, y).
func blend(dst *image.RGBA, x, y int, src color.RGBA) {
	if src.A == 0xff {
		dst.SetRGBA(x, y, src)
		return
	}
	under := dst.RGBAAt(x, y)
	a := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	dst.SetRGBA(x, y, color.RGBA{
		R: mix(src.R, under.R),
		G: mix(src.G, under.G),
		B: mix(src.B, under.B),
		A: uint8(math.Round(float64(src.A) + float64(under.A)*(1-a))),
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
