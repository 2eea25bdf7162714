//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PollEbiten snapshots the mouse and every active touch for this frame,
// appending to buf.
func PollEbiten(buf []Sample) []Sample {
	mx, my := ebiten.CursorPosition()
	buf = append(buf, Sample{
		ID:      MouseID,
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		buf = append(buf, Sample{ID: int(id) + 1, X: float64(tx), Y: float64(ty), Pressed: true})
	}
	return buf
}
