package wm

import "github.com/wundara/folio-desktop/internal/model"

// Resize gesture limits.
const (
	ResizeHandleSize   float32 = 20
	MinResizeDimension float32 = 100
)

// Resizer tracks a bottom-right corner resize gesture.
type Resizer struct {
	active bool
	grab   model.Point // corner minus pointer at press
	size   model.Size
}

// HitsHandle reports whether pointer lies in the bottom-right handle of
// the entity at pos with size.
func HitsHandle(pointer, pos model.Point, size model.Size) bool {
	right := pos.X + size.Width
	bottom := pos.Y + size.Height
	return pointer.X > right-ResizeHandleSize && pointer.X <= right &&
		pointer.Y > bottom-ResizeHandleSize && pointer.Y <= bottom
}

// Begin starts a resize from pointer. It returns false if one is in progress.
func (r *Resizer) Begin(pointer, pos model.Point, size model.Size) bool {
	if r.active {
		return false
	}
	r.active = true
	r.grab = model.Point{
		X: pos.X + size.Width - pointer.X,
		Y: pos.Y + size.Height - pointer.Y,
	}
	r.size = size
	return true
}

// Move returns the new size so the corner follows the pointer, floored at
// MinResizeDimension on each axis.
func (r *Resizer) Move(pointer, pos model.Point) (model.Size, bool) {
	if !r.active {
		return r.size, false
	}
	w := pointer.X + r.grab.X - pos.X
	h := pointer.Y + r.grab.Y - pos.Y
	r.size = model.Size{
		Width:  max(MinResizeDimension, w),
		Height: max(MinResizeDimension, h),
	}
	return r.size, true
}

// End finishes the gesture
func (r *Resizer) End() (model.Size, bool) {
	if !r.active {
		return r.size, false
	}
	r.active = false
	return r.size, true
}

// Active reports whether a resize is in progress
func (r *Resizer) Active() bool {
	return r.active
}
