package main

import (
	"fmt"
	"strconv"
	"strings"

	"yeardial/pkg/dial"
)

// parseDrag turns "x,y;x,y;..." into a pointer-down at the first point,
// moves through the rest and a release at the last.
func parseDrag(path string) ([]dial.PointerEvent, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	var events []dial.PointerEvent
	for i, pair := range strings.Split(path, ";") {
		xy := strings.Split(strings.TrimSpace(pair), ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("drag point %d %q: expected x,y", i, pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %d x: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %d y: %w", i, err)
		}
		kind := dial.PointerMove
		if i == 0 {
			kind = dial.PointerDown
		}
		events = append(events, dial.PointerEvent{Kind: kind, X: x, Y: y})
	}
	last := events[len(events)-1]
	return append(events, dial.PointerEvent{Kind: dial.PointerUp, X: last.X, Y: last.Y}), nil
}
