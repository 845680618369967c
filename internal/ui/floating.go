package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/wm"
)

// floatingElement is the decorative image that can be moved anywhere on
// the desktop and resized from its bottom-right corner.
type floatingElement struct {
	widget.BaseWidget

	surface *Surface
	image   *canvas.Image
	handle  *canvas.Rectangle
	pressed bool
}

func newFloatingElement(s *Surface, src string) *floatingElement {
	f := &floatingElement{surface: s}
	f.image = canvas.NewImageFromResource(s.assets.Image(src))
	f.image.FillMode = canvas.ImageFillContain
	f.handle = canvas.NewRectangle(color.NRGBA{R: 128, G: 128, B: 128, A: 96})
	f.handle.CornerRadius = 2
	f.ExtendBaseWidget(f)
	return f
}

// CreateRenderer implements fyne.Widget
func (f *floatingElement) CreateRenderer() fyne.WidgetRenderer {
	return &floatingRenderer{f: f}
}

func (f *floatingElement) press(abs fyne.Position) {
	if f.pressed {
		return
	}
	f.pressed = f.surface.pressFloating(toPoint(abs)) != wm.GestureNone
}

func (f *floatingElement) release() {
	if !f.pressed {
		return
	}
	f.pressed = false
	f.surface.releaseFloating()
}

// MouseDown implements desktop.Mouseable
func (f *floatingElement) MouseDown(ev *desktop.MouseEvent) {
	f.press(ev.AbsolutePosition)
}

// MouseUp implements desktop.Mouseable
func (f *floatingElement) MouseUp(*desktop.MouseEvent) {
	f.release()
}

// Dragged implements fyne.Draggable
func (f *floatingElement) Dragged(ev *fyne.DragEvent) {
	if !f.pressed {
		f.press(ev.AbsolutePosition.SubtractXY(ev.Dragged.DX, ev.Dragged.DY))
	}
	f.surface.moveFloating(toPoint(ev.AbsolutePosition))
}

// DragEnd implements fyne.Draggable
func (f *floatingElement) DragEnd() {
	f.release()
}

// Cursor implements desktop.Cursorable
func (f *floatingElement) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

type floatingRenderer struct {
	f *floatingElement
}

func (r *floatingRenderer) Layout(size fyne.Size) {
	r.f.image.Resize(size)
	r.f.image.Move(fyne.NewPos(0, 0))
	h := fyne.NewSize(wm.ResizeHandleSize, wm.ResizeHandleSize)
	r.f.handle.Resize(h)
	r.f.handle.Move(fyne.NewPos(size.Width-h.Width, size.Height-h.Height))
}

func (r *floatingRenderer) MinSize() fyne.Size {
	return fyne.NewSize(wm.MinResizeDimension, wm.MinResizeDimension)
}

func (r *floatingRenderer) Refresh() {
	r.f.image.Refresh()
	r.f.handle.Refresh()
}

func (r *floatingRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.f.image, r.f.handle}
}

func (r *floatingRenderer) Destroy() {}
