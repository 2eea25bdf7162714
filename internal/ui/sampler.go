package ui

import (
	"sort"

	"yeardial/pkg/dial"
)

// MouseID is the pointer id reserved for the mouse. Touch ids are offset by
// one so they never collide with it.
const MouseID = 0

// Sample is the state of one pointer in a single frame, in screen pixels.
type Sample struct {
	ID      int
	X, Y    float64
	Pressed bool
}

// Sampler turns per-frame pointer snapshots into discrete pointer events.
type Sampler struct {
	held map[int]Sample
}

// NewSampler returns a sampler with no pointers held.
func NewSampler() *Sampler {
	return &Sampler{held: map[int]Sample{}}
}

// Next diffs frame against the previous frame. Pointers that are missing
// from frame or not pressed count as released. Events are ordered by
// pointer id: releases, then moves, then presses.
func (s *Sampler) Next(frame []Sample) []dial.PointerEvent {
	current := make(map[int]Sample, len(frame))
	for _, smp := range frame {
		if smp.Pressed {
			current[smp.ID] = smp
		}
	}

	var ups, moves, downs []dial.PointerEvent
	for id, prev := range s.held {
		cur, ok := current[id]
		if !ok {
			ups = append(ups, dial.PointerEvent{Kind: dial.PointerUp, ID: id, X: prev.X, Y: prev.Y})
			continue
		}
		if cur.X != prev.X || cur.Y != prev.Y {
			moves = append(moves, dial.PointerEvent{Kind: dial.PointerMove, ID: id, X: cur.X, Y: cur.Y})
		}
	}
	for id, cur := range current {
		if _, ok := s.held[id]; !ok {
			downs = append(downs, dial.PointerEvent{Kind: dial.PointerDown, ID: id, X: cur.X, Y: cur.Y})
		}
	}
	s.held = current

	byID(ups)
	byID(moves)
	byID(downs)
	out := make([]dial.PointerEvent, 0, len(ups)+len(moves)+len(downs))
	out = append(out, ups...)
	out = append(out, moves...)
	return append(out, downs...)
}

// Held reports whether pointer id is currently pressed.
func (s *Sampler) Held(id int) bool {
	_, ok := s.held[id]
	return ok
}

func byID(evs []dial.PointerEvent) {
	sort.Slice(evs, func(i, j int) bool { return evs[i].ID < evs[j].ID })
}
