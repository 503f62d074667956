package explorer

import (
	"image"

	"github.com/marben/dist_fractal/palette"
)

// State is everything the user can change. It is a plain value: events
// produce a new State, nothing is shared.
type State struct {
	// Selected is the chosen parameter in parameter-map pixels.
	Selected image.Point
	MaxIter  int
	Palette  int
}

// Event is a discrete user action.
type Event interface {
	event()
}

// Move shifts the selection by a number of pixels.
type Move struct{ DX, DY int }

// Select jumps to a pixel of the parameter map.
type Select struct{ At image.Point }

// CyclePalette moves through the named palettes, wrapping around.
type CyclePalette struct{ Delta int }

// AdjustIterations changes the iteration budget.
type AdjustIterations struct{ Delta int }

func (Move) event()             {}
func (Select) event()           {}
func (CyclePalette) event()     {}
func (AdjustIterations) event() {}

// Change reports which parts of a State an event modified.
type Change uint8

const (
	ChangedSelection Change = 1 << iota
	ChangedIterations
	ChangedPalette
)

// Any reports whether anything changed.
func (c Change) Any() bool { return c != 0 }

// Recompute reports whether the state map has to be evaluated again.
func (c Change) Recompute() bool {
	return c&(ChangedSelection|ChangedIterations) != 0
}

// Apply returns s updated by ev. The selection is kept inside bounds and
// the iteration budget never drops below 1.
func Apply(s State, ev Event, bounds image.Rectangle) (State, Change) {
	next := s
	switch ev := ev.(type) {
	case Move:
		next.Selected = clamp(s.Selected.Add(image.Pt(ev.DX, ev.DY)), bounds)
	case Select:
		next.Selected = clamp(ev.At, bounds)
	case CyclePalette:
		n := palette.Count()
		next.Palette = ((s.Palette+ev.Delta)%n + n) % n
	case AdjustIterations:
		next.MaxIter = max(1, s.MaxIter+ev.Delta)
	}

	var c Change
	if next.Selected != s.Selected {
		c |= ChangedSelection
	}
	if next.MaxIter != s.MaxIter {
		c |= ChangedIterations
	}
	if next.Palette != s.Palette {
		c |= ChangedPalette
	}
	return next, c
}

// clamp moves p to the nearest pixel inside r.
func clamp(p image.Point, r image.Rectangle) image.Point {
	if r.Empty() {
		return r.Min
	}
	p.X = min(max(p.X, r.Min.X), r.Max.X-1)
	p.Y = min(max(p.Y, r.Min.Y), r.Max.Y-1)
	return p
}
