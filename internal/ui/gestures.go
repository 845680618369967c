package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection is the dominant direction of a finished swipe
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 50.0
)

// SwipeHandler turns a start and end position into a swipe direction
type SwipeHandler struct {
	onSwipe   func(SwipeDirection)
	threshold float32

	tracking bool
	start    fyne.Position
}

// NewSwipeHandler creates a swipe handler
func NewSwipeHandler(onSwipe func(SwipeDirection)) *SwipeHandler {
	return &SwipeHandler{
		onSwipe:   onSwipe,
		threshold: DefaultSwipeThreshold,
	}
}

// Begin records the gesture start
func (sh *SwipeHandler) Begin(pos fyne.Position) {
	sh.tracking = true
	sh.start = pos
}

// End classifies the gesture and fires the callback for real swipes
func (sh *SwipeHandler) End(pos fyne.Position) SwipeDirection {
	if !sh.tracking {
		return SwipeNone
	}
	sh.tracking = false

	dir := classifySwipe(pos.X-sh.start.X, pos.Y-sh.start.Y, sh.threshold)
	if dir != SwipeNone && sh.onSwipe != nil {
		sh.onSwipe(dir)
	}
	return dir
}

// Cancel drops the gesture in progress
func (sh *SwipeHandler) Cancel() {
	sh.tracking = false
}

// Tracking reports whether a gesture is in progress
func (sh *SwipeHandler) Tracking() bool {
	return sh.tracking
}

// classifySwipe determines the direction of a movement, or SwipeNone when it
// is shorter than threshold
func classifySwipe(dx, dy, threshold float32) SwipeDirection {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx*absDx+absDy*absDy < threshold*threshold {
		return SwipeNone
	}

	if absDx > absDy {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

// SwipeArea wraps content and reports swipes made with the mouse (drag) or
// a finger (touch)
type SwipeArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *SwipeHandler
	last    fyne.Position
}

// NewSwipeArea creates a swipe-sensitive wrapper around content
func NewSwipeArea(content fyne.CanvasObject, onSwipe func(SwipeDirection)) *SwipeArea {
	sa := &SwipeArea{
		content: content,
		handler: NewSwipeHandler(onSwipe),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer implements fyne.Widget
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// Dragged implements fyne.Draggable
func (sa *SwipeArea) Dragged(ev *fyne.DragEvent) {
	if !sa.handler.Tracking() {
		sa.handler.Begin(ev.Position.SubtractXY(ev.Dragged.DX, ev.Dragged.DY))
	}
	sa.last = ev.Position
}

// DragEnd implements fyne.Draggable
func (sa *SwipeArea) DragEnd() {
	sa.handler.End(sa.last)
}

// TouchDown implements mobile.Touchable
func (sa *SwipeArea) TouchDown(ev *mobile.TouchEvent) {
	sa.handler.Begin(ev.Position)
}

// TouchUp implements mobile.Touchable
func (sa *SwipeArea) TouchUp(ev *mobile.TouchEvent) {
	sa.handler.End(ev.Position)
}

// TouchCancel implements mobile.Touchable
func (sa *SwipeArea) TouchCancel(*mobile.TouchEvent) {
	sa.handler.Cancel()
}
