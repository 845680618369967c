package wm

import "github.com/wundara/folio-desktop/internal/model"

// Gesture is what a pointer-down on an entity started.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureMove
	GestureResize
)

// String returns the gesture name
func (g Gesture) String() string {
	switch g {
	case GestureMove:
		return "move"
	case GestureResize:
		return "resize"
	default:
		return "none"
	}
}

// Release summarises a finished gesture.
type Release struct {
	Gesture  Gesture
	Position model.Point
	Size     model.Size
	Clicked  bool // pointer stayed within the click threshold
}

// Entity is a free-floating movable element (image icon, decorative
// floating element). Windows use a Dragger directly because their
// position lives in the Registry.
type Entity struct {
	position  model.Point
	size      model.Size
	resizable bool
	locked    bool

	gesture Gesture
	drag    Dragger
	resize  Resizer
	guard   *ClickGuard
}

// NewEntity creates an entity at pos with footprint size
func NewEntity(pos model.Point, size model.Size, resizable bool, clickThreshold float32) *Entity {
	return &Entity{
		position:  pos,
		size:      size,
		resizable: resizable,
		guard:     NewClickGuard(clickThreshold),
	}
}

// SetLocked disables new move gestures; presses still register for clicks
func (e *Entity) SetLocked(locked bool) {
	e.locked = locked
}

// Locked reports whether moving is disabled
func (e *Entity) Locked() bool {
	return e.locked
}

// Press handles pointer-down at pointer and returns the gesture started.
// Resizable entities start a resize inside the bottom-right handle.
func (e *Entity) Press(pointer model.Point) Gesture {
	if e.gesture != GestureNone {
		return e.gesture
	}
	e.guard.Press(pointer)
	switch {
	case e.resizable && HitsHandle(pointer, e.position, e.size):
		e.resize.Begin(pointer, e.position, e.size)
		e.gesture = GestureResize
	case e.locked:
		e.gesture = GestureNone
	default:
		e.drag.Begin(pointer, e.position)
		e.gesture = GestureMove
	}
	return e.gesture
}

// Move applies a pointer move and reports whether the entity changed
func (e *Entity) Move(pointer model.Point, b Bounds) bool {
	e.guard.Track(pointer)
	switch e.gesture {
	case GestureMove:
		pos, ok := e.drag.Move(pointer, e.size, b)
		if !ok || pos == e.position {
			return false
		}
		e.position = pos
		return true
	case GestureResize:
		size, ok := e.resize.Move(pointer, e.position)
		if !ok || size == e.size {
			return false
		}
		e.size = size
		return true
	}
	return false
}

// Release ends the gesture
func (e *Entity) Release() Release {
	r := Release{Gesture: e.gesture, Clicked: e.guard.Release()}
	switch e.gesture {
	case GestureMove:
		e.drag.End()
	case GestureResize:
		e.resize.End()
	}
	e.gesture = GestureNone
	r.Position = e.position
	r.Size = e.size
	return r
}

// Gesture returns the gesture in progress
func (e *Entity) Gesture() Gesture {
	return e.gesture
}

// Position returns the top-left corner
func (e *Entity) Position() model.Point {
	return e.position
}

// SetPosition moves the entity outside of a gesture
func (e *Entity) SetPosition(pos model.Point) {
	e.position = pos
}

// Size returns the footprint
func (e *Entity) Size() model.Size {
	return e.size
}

// SetSize updates the footprint, for example after the view measured it
func (e *Entity) SetSize(size model.Size) {
	e.size = size
}

// State returns the entity as a DragState
func (e *Entity) State() model.DragState {
	s := model.DragState{
		Position: e.position,
		Dragging: e.gesture != GestureNone,
		Origin:   e.drag.Offset(),
	}
	if e.resizable {
		size := e.size
		s.Size = &size
	}
	return s
}
