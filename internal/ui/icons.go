package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/model"
)

// desktopIcon is a fixed icon that opens its window on tap
type desktopIcon struct {
	widget.BaseWidget

	surface *Surface
	icon    model.DesktopIcon
	image   *canvas.Image
	label   *widget.Label
}

func newDesktopIcon(s *Surface, icon model.DesktopIcon) *desktopIcon {
	di := &desktopIcon{surface: s, icon: icon}
	di.image = canvas.NewImageFromResource(s.assets.Icon(icon.Icon))
	di.image.FillMode = canvas.ImageFillContain
	di.image.SetMinSize(fyne.NewSize(DesktopIconSize, DesktopIconSize))
	di.label = iconLabel(icon.Name, DesktopIconLabelMax)
	di.ExtendBaseWidget(di)
	return di
}

// CreateRenderer implements fyne.Widget
func (di *desktopIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(container.NewCenter(di.image), di.label))
}

// Tapped implements fyne.Tappable
func (di *desktopIcon) Tapped(*fyne.PointEvent) {
	di.surface.activateIcon(di.icon.ID)
}

func iconLabel(name string, maxCells int) *widget.Label {
	l := widget.NewLabel(truncateCells(name, maxCells))
	l.Alignment = fyne.TextAlignCenter
	l.SizeName = theme.SizeNameCaptionText
	return l
}

// imageIcon is a draggable image file on the desktop. A press that stays
// within the click threshold opens the image; anything longer is a drag.
type imageIcon struct {
	widget.BaseWidget

	surface *Surface
	id      string
	thumb   *canvas.Image
	label   *widget.Label
	pressed bool
}

func newImageIcon(s *Surface, img model.DesktopImage) *imageIcon {
	ii := &imageIcon{surface: s, id: img.ID}
	ii.thumb = canvas.NewImageFromResource(s.assets.Image(img.ThumbnailPath))
	ii.thumb.FillMode = canvas.ImageFillContain
	ii.thumb.SetMinSize(fyne.NewSize(ImageThumbSize, ImageThumbSize))
	ii.label = iconLabel(img.Name, ImageIconLabelMax)
	ii.ExtendBaseWidget(ii)
	return ii
}

// CreateRenderer implements fyne.Widget
func (ii *imageIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(container.NewCenter(ii.thumb), ii.label))
}

// setLocked dims the icon while its window is open
func (ii *imageIcon) setLocked(locked bool) {
	if locked {
		ii.thumb.Translucency = 0.5
	} else {
		ii.thumb.Translucency = 0
	}
	ii.thumb.Refresh()
}

func (ii *imageIcon) press(abs fyne.Position) {
	if ii.pressed {
		return
	}
	ii.pressed = ii.surface.pressImage(ii.id, toPoint(abs))
}

func (ii *imageIcon) release() {
	if !ii.pressed {
		return
	}
	ii.pressed = false
	ii.surface.releaseImage(ii.id)
}

// MouseDown implements desktop.Mouseable
func (ii *imageIcon) MouseDown(ev *desktop.MouseEvent) {
	ii.press(ev.AbsolutePosition)
}

// MouseUp implements desktop.Mouseable
func (ii *imageIcon) MouseUp(*desktop.MouseEvent) {
	ii.release()
}

// Dragged implements fyne.Draggable
func (ii *imageIcon) Dragged(ev *fyne.DragEvent) {
	if !ii.pressed {
		ii.press(ev.AbsolutePosition.SubtractXY(ev.Dragged.DX, ev.Dragged.DY))
	}
	ii.surface.moveImage(ii.id, toPoint(ev.AbsolutePosition))
}

// DragEnd implements fyne.Draggable
func (ii *imageIcon) DragEnd() {
	ii.release()
}

// TouchDown implements mobile.Touchable
func (ii *imageIcon) TouchDown(ev *mobile.TouchEvent) {
	ii.press(ev.AbsolutePosition)
}

// TouchUp implements mobile.Touchable
func (ii *imageIcon) TouchUp(*mobile.TouchEvent) {
	ii.release()
}

// TouchCancel implements mobile.Touchable
func (ii *imageIcon) TouchCancel(*mobile.TouchEvent) {
	ii.release()
}
