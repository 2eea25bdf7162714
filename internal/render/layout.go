package render

import "yeardial/pkg/dial"

// captionBand is the space reserved above the dial box for the caption, in
// local units.
const captionBand = 20

// Layout maps the dial's local frame onto pixel coordinates.
type Layout struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	OriginX float64
	OriginY float64
	W, H    int
}

// NewLayout places scene at (offsetX, offsetY) on screen, scaled by scale.
func NewLayout(scene *dial.Scene, scale, offsetX, offsetY float64) Layout {
	if scale <= 0 {
		scale = 1
	}
	w := scene.Width * scale
	h := (scene.Height + captionBand) * scale
	return Layout{
		Scale:   scale,
		OffsetX: offsetX,
		OffsetY: offsetY,
		OriginX: offsetX + w/2,
		OriginY: offsetY + (captionBand+scene.Height/2)*scale,
		W:       int(w + 0.5),
		H:       int(h + 0.5),
	}
}

// ToScreen converts a local point to pixel coordinates.
func (l Layout) ToScreen(p dial.Point) (float64, float64) {
	return l.OriginX + p.X*l.Scale, l.OriginY + p.Y*l.Scale
}

// ToLocal converts pixel coordinates to the dial's local frame.
func (l Layout) ToLocal(px, py float64) (float64, float64) {
	return (px - l.OriginX) / l.Scale, (py - l.OriginY) / l.Scale
}
