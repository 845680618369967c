package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/content"
	"github.com/wundara/folio-desktop/internal/model"
)

// windowFrame is one open content window: a title bar with a close
// button over the rendered content.
type windowFrame struct {
	widget.BaseWidget

	surface *Surface
	id      string

	titleBar *titleBar
	body     fyne.CanvasObject

	// set by a mouse press so the tap that follows does not focus again
	mouseFocused bool
}

func newWindowFrame(s *Surface, entry model.WindowEntry) *windowFrame {
	w := &windowFrame{
		surface: s,
		id:      entry.ID,
		body:    s.renderer.Render(content.Resolve(entry)),
	}
	w.titleBar = newTitleBar(w, entry.Title)
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget
func (w *windowFrame) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	bg.StrokeColor = theme.Color(ColorNameWindowFrame)
	bg.StrokeWidth = WindowBorder
	bg.CornerRadius = WindowRadius

	inner := container.NewBorder(w.titleBar, nil, nil, nil, container.NewPadded(w.body))
	return widget.NewSimpleRenderer(container.NewStack(bg, inner))
}

// MouseDown implements desktop.Mouseable; any press brings the window to
// front
func (w *windowFrame) MouseDown(*desktop.MouseEvent) {
	w.mouseFocused = true
	w.surface.focusWindow(w.id)
}

// MouseUp implements desktop.Mouseable
func (w *windowFrame) MouseUp(*desktop.MouseEvent) {}

// Tapped implements fyne.Tappable for touch input
func (w *windowFrame) Tapped(*fyne.PointEvent) {
	if w.mouseFocused {
		w.mouseFocused = false
		return
	}
	w.surface.focusWindow(w.id)
}

// titleBar is the drag handle of a window
type titleBar struct {
	widget.BaseWidget

	frame    *windowFrame
	title    *widget.Label
	close    *widget.Button
	dragging bool
}

func newTitleBar(frame *windowFrame, title string) *titleBar {
	t := &titleBar{frame: frame}
	t.title = widget.NewLabel(truncateCells(title, WindowTitleMax))
	t.title.Alignment = fyne.TextAlignCenter
	t.title.TextStyle = fyne.TextStyle{Bold: true}
	t.close = widget.NewButton(IconClose, func() {
		frame.surface.closeWindow(frame.id)
	})
	t.close.Importance = widget.DangerImportance
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget
func (t *titleBar) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(ColorNameTitleBar))
	bg.CornerRadius = WindowRadius
	bar := container.NewBorder(nil, nil, t.close, nil, t.title)
	return widget.NewSimpleRenderer(container.NewStack(bg, bar))
}

// MinSize keeps the bar at least TitleBarHeight tall
func (t *titleBar) MinSize() fyne.Size {
	t.ExtendBaseWidget(t)
	min := t.BaseWidget.MinSize()
	return fyne.NewSize(min.Width, fyne.Max(min.Height, TitleBarHeight))
}

// Dragged implements fyne.Draggable. The first event of a gesture starts
// the window drag from where the pointer went down.
func (t *titleBar) Dragged(ev *fyne.DragEvent) {
	s := t.frame.surface
	if !t.dragging {
		start := ev.AbsolutePosition.SubtractXY(ev.Dragged.DX, ev.Dragged.DY)
		if !s.beginWindowDrag(t.frame.id, toPoint(start)) {
			return
		}
		t.dragging = true
	}
	s.moveWindowDrag(toPoint(ev.AbsolutePosition), toModelSize(t.frame.Size()))
}

// DragEnd implements fyne.Draggable
func (t *titleBar) DragEnd() {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.frame.surface.endWindowDrag()
}
