//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"yeardial/internal/render"
	"yeardial/internal/ui"
	"yeardial/pkg/dial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const margin = 12

// Game hosts a dial widget inside an ebiten window.
type Game struct {
	widget  *dial.Widget
	form    *dial.Node
	painter *render.Painter
	sampler *ui.Sampler
	layout  render.Layout
	log     *slog.Logger

	background color.Color
	samples    []ui.Sample
	title      string
}

// New constructs a Game for the provided widget.
func New(w *dial.Widget, scale int, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		widget:     w,
		form:       dial.NewNode(),
		painter:    render.NewPainter(),
		sampler:    ui.NewSampler(),
		layout:     render.NewLayout(w.Scene(), float64(scale), margin, margin),
		log:        log,
		background: color.White,
		title:      w.Config().Label,
	}
	g.form.Append(w.Root())
	g.form.AddListener(g.onInput)
	g.setTitle(w.Value())
	return g
}

// WindowSize returns the outer window size needed for the dial.
func (g *Game) WindowSize() (int, int) {
	return g.layout.W + 2*margin, g.layout.H + 2*margin
}

func (g *Game) onInput(ev dial.InputEvent) {
	g.log.Debug("dial input", "name", ev.Name, "value", ev.Value, "seq", ev.Seq)
	g.setTitle(ev.Value)
}

func (g *Game) setTitle(v int) {
	ebiten.SetWindowTitle(fmt.Sprintf("yeardial - %s: %d", g.title, v))
}

// Update translates pointer input into widget events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("dial closed", "value", g.widget.Value())
		return ebiten.Termination
	}

	g.samples = ui.PollEbiten(g.samples[:0])
	for _, ev := range g.sampler.Next(g.samples) {
		ev.X, ev.Y = g.layout.ToLocal(ev.X, ev.Y)
		g.widget.HandlePointer(ev)
	}
	return nil
}

// Draw renders the current dial state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.widget.Scene(), g.layout)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
