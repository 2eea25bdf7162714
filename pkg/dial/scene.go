package dial

import (
	"image/color"
	"strconv"
)

// Geometry describes the static layout of the dial in local units. The
// origin of the local frame is the centre of the dial.
type Geometry struct {
	Width, Height float64
	Radius        float64
	KnobRadius    float64
	RingPadding   float64
	TickInset     float64
	TickStep      int
	CaptionGap    float64
	LabelSize     float64
}

// DefaultGeometry returns the 140x140 layout with a radius of 50.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:       140,
		Height:      140,
		Radius:      50,
		KnobRadius:  6,
		RingPadding: 10,
		TickInset:   4,
		TickStep:    5,
		CaptionGap:  8,
		LabelSize:   16,
	}
}

// Point is a position in the dial's local frame.
type Point struct {
	X, Y float64
}

// Circle is a filled and optionally stroked disc.
type Circle struct {
	Center Point
	R      float64
	Fill   color.RGBA
	Stroke color.RGBA
}

// Line is a straight stroke between two points.
type Line struct {
	From, To Point
	Width    float64
	Color    color.RGBA
}

// Text is a run of text centred on At.
type Text struct {
	At      Point
	Content string
	Size    float64
	Bold    bool
	Color   color.RGBA
}

// Scene is the visual tree of a dial. It carries no state of its own: the
// knob and label are a projection of the last value passed to Render.
type Scene struct {
	Width, Height float64

	Caption Text
	Ring    Circle
	Ticks   []Line
	Label   Text
	Knob    Circle

	mapper Mapper
	radius float64
}

var (
	ringFill   = color.RGBA{R: 0xf5, G: 0xf5, B: 0xff, A: 0xff}
	ringStroke = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	tickColor  = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	knobColor  = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	textColor  = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// NewScene builds the visual tree for cfg. Ticks are sampled every
// geom.TickStep units across the mapper's range and never change afterwards.
func NewScene(cfg Config, geom Geometry, mapper Mapper) *Scene {
	step := geom.TickStep
	if step <= 0 {
		step = 1
	}
	outer := geom.Radius + geom.RingPadding
	inner := geom.Radius + geom.TickInset

	s := &Scene{
		Width:  geom.Width,
		Height: geom.Height,
		Caption: Text{
			At:      Point{X: 0, Y: -geom.Height/2 - geom.CaptionGap},
			Content: cfg.Label,
			Size:    12,
			Bold:    true,
			Color:   textColor,
		},
		Ring: Circle{R: outer, Fill: ringFill, Stroke: ringStroke},
		Label: Text{
			Size:  geom.LabelSize,
			Bold:  true,
			Color: textColor,
		},
		Knob:   Circle{R: geom.KnobRadius, Fill: knobColor, Stroke: knobColor},
		mapper: mapper,
		radius: geom.Radius,
	}

	min, max := mapper.Bounds()
	s.Ticks = make([]Line, 0, (max-min)/step+1)
	for v := min; ; v += step {
		x1, y1 := mapper.Point(v, inner)
		x2, y2 := mapper.Point(v, outer)
		s.Ticks = append(s.Ticks, Line{
			From:  Point{X: x1, Y: y1},
			To:    Point{X: x2, Y: y2},
			Width: 1,
			Color: tickColor,
		})
		if max-v < step {
			break
		}
	}
	return s
}

// Render moves the knob to v and updates the label. It only mutates
// existing elements and may be called any number of times.
func (s *Scene) Render(v int) {
	x, y := s.mapper.Point(v, s.radius)
	s.Knob.Center = Point{X: x, Y: y}
	s.Label.Content = strconv.Itoa(v)
}

// Contains reports whether the local point (x, y) lies inside the dial's
// box, which is its pointer-down hit region.
func (s *Scene) Contains(x, y float64) bool {
	hw, hh := s.Width/2, s.Height/2
	return x >= -hw && x <= hw && y >= -hh && y <= hh
}
