package wm

import "github.com/wundara/folio-desktop/internal/model"

// Dragger implements the pointer-down / move / up contract for one
// movable element. The entity footprint and viewport bounds are passed to
// every Move rather than measured.
type Dragger struct {
	dragging bool
	offset   model.Point
	position model.Point
}

// Begin captures the offset between the pointer and the entity's top-left
// corner. It returns false if a gesture is already in progress.
func (d *Dragger) Begin(pointer, entityPos model.Point) bool {
	if d.dragging {
		return false
	}
	d.dragging = true
	d.offset = pointer.Sub(entityPos)
	d.position = entityPos
	return true
}

// Move returns the clamped top-left for the new pointer position. The
// second result is false when no drag is active.
func (d *Dragger) Move(pointer model.Point, size model.Size, b Bounds) (model.Point, bool) {
	if !d.dragging {
		return d.position, false
	}
	d.position = b.Clamp(pointer.Sub(d.offset), size)
	return d.position, true
}

// End finishes the gesture and returns the final position. The second
// result is false when there was nothing to end.
func (d *Dragger) End() (model.Point, bool) {
	if !d.dragging {
		return d.position, false
	}
	d.dragging = false
	return d.position, true
}

// Dragging reports whether a gesture is in progress
func (d *Dragger) Dragging() bool {
	return d.dragging
}

// Offset returns the pointer offset captured by Begin
func (d *Dragger) Offset() model.Point {
	return d.offset
}
