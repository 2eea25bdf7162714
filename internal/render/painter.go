//go:build ebiten

package render

import (
	"image/color"
	"math"

	"yeardial/pkg/dial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Painter draws a dial scene onto an ebiten image.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter allocates the shared 1x1 image used for line strokes.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw paints scene onto screen using layout l.
func (p *Painter) Draw(screen *ebiten.Image, scene *dial.Scene, l Layout) {
	p.drawCircle(screen, l, scene.Ring)
	for _, tick := range scene.Ticks {
		p.drawLine(screen, l, tick)
	}
	p.drawText(screen, l, scene.Label)
	p.drawCircle(screen, l, scene.Knob)
	p.drawText(screen, l, scene.Caption)
}

func (p *Painter) drawCircle(screen *ebiten.Image, l Layout, c dial.Circle) {
	cx, cy := l.ToScreen(c.Center)
	r := float32(c.R * l.Scale)
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, c.Fill, true)
	if c.Stroke.A != 0 {
		stroke := float32(math.Max(1, l.Scale))
		vector.StrokeCircle(screen, float32(cx), float32(cy), r-stroke/2, stroke, c.Stroke, true)
	}
}

func (p *Painter) drawLine(screen *ebiten.Image, l Layout, ln dial.Line) {
	x1, y1 := l.ToScreen(ln.From)
	x2, y2 := l.ToScreen(ln.To)
	thickness := math.Max(1, ln.Width*l.Scale)
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	col := ln.Color
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}

func (p *Painter) drawText(screen *ebiten.Image, l Layout, t dial.Text) {
	if t.Content == "" {
		return
	}
	face := basicfont.Face7x13
	cx, cy := l.ToScreen(t.At)
	bounds := text.BoundString(face, t.Content)
	x := int(math.Round(cx)) - bounds.Dx()/2
	y := int(math.Round(cy)) + bounds.Dy()/2
	text.Draw(screen, t.Content, face, x, y, t.Color)
	if t.Bold {
		text.Draw(screen, t.Content, face, x+1, y, t.Color)
	}
}
