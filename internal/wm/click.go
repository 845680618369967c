package wm

import "github.com/wundara/folio-desktop/internal/model"

// DefaultClickThreshold is how far, in pixels, the pointer may travel
// between press and release and still count as a click.
const DefaultClickThreshold float32 = 4

// ClickGuard tells a click apart from a drag on elements that support both.
type ClickGuard struct {
	Threshold float32

	pressed bool
	origin  model.Point
	moved   bool
}

// NewClickGuard creates a guard; non-positive thresholds use the default
func NewClickGuard(threshold float32) *ClickGuard {
	if threshold <= 0 {
		threshold = DefaultClickThreshold
	}
	return &ClickGuard{Threshold: threshold}
}

// Press records the pointer-down position
func (g *ClickGuard) Press(pointer model.Point) {
	g.pressed = true
	g.origin = pointer
	g.moved = false
}

// Track records a pointer move; once past the threshold the gesture stays
// a drag even if the pointer returns to the origin.
func (g *ClickGuard) Track(pointer model.Point) {
	if !g.pressed || g.moved {
		return
	}
	d := pointer.Sub(g.origin)
	if d.X*d.X+d.Y*d.Y > g.threshold()*g.threshold() {
		g.moved = true
	}
}

// Release ends the gesture and reports whether it was a click
func (g *ClickGuard) Release() bool {
	if !g.pressed {
		return false
	}
	g.pressed = false
	return !g.moved
}

// Moved reports whether the current or last gesture crossed the threshold
func (g *ClickGuard) Moved() bool {
	return g.moved
}

func (g *ClickGuard) threshold() float32 {
	if g.Threshold <= 0 {
		return DefaultClickThreshold
	}
	return g.Threshold
}
