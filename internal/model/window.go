package model

// WindowEntry is one open content window.
type WindowEntry struct {
	ID         string
	Title      string
	Content    Content
	StackOrder int // higher is frontmost
	Position   Point
	Size       *Size // nil means the view picks its default size
}

// HasSize reports whether the entry carries an explicit size
func (w WindowEntry) HasSize() bool {
	return w.Size != nil
}

// DragState is the position and drag status of any movable element.
type DragState struct {
	Position Point
	Size     *Size
	Dragging bool
	Origin   Point // pointer offset from the top-left corner at drag start
}
