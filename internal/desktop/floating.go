package desktop

import (
	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/wm"
)

// Floating returns the decorative floating element and its current state.
// The second result is false when the portfolio declares none.
func (d *Desktop) Floating() (model.FloatingElement, model.DragState, bool) {
	if d.floating == nil {
		return model.FloatingElement{}, model.DragState{}, false
	}
	return *d.portfolio.Floating, d.floating.State(), true
}

// PressFloating starts a move, or a resize when pointer hits the
// bottom-right handle.
func (d *Desktop) PressFloating(pointer model.Point) wm.Gesture {
	if d.floating == nil {
		d.log.Warn("missing drag target", "id", "floating")
		return wm.GestureNone
	}
	return d.floating.Press(pointer)
}

// MoveFloating applies a pointer move to the floating element
func (d *Desktop) MoveFloating(pointer model.Point) bool {
	if d.floating == nil {
		return false
	}
	return d.floating.Move(pointer, d.bounds)
}

// ReleaseFloating ends the floating element's gesture
func (d *Desktop) ReleaseFloating() wm.Release {
	if d.floating == nil {
		return wm.Release{}
	}
	return d.floating.Release()
}
