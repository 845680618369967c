package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/content"
)

// GalleryView shows one image at a time with previous/next controls.
// Swiping left or right on the image navigates as well.
type GalleryView struct {
	widget.BaseWidget

	gallery *content.Gallery
	assets  *AssetLoader

	image   *canvas.Image
	counter *widget.Label
	body    fyne.CanvasObject
}

// NewGalleryView creates a gallery over images
func NewGalleryView(images []string, assets *AssetLoader) *GalleryView {
	gv := &GalleryView{
		gallery: content.NewGallery(images),
		assets:  assets,
	}
	gv.ExtendBaseWidget(gv)

	if gv.gallery.Empty() {
		gv.body = container.NewCenter(widget.NewLabel(content.MessageEmptyGallery))
		return gv
	}

	gv.image = canvas.NewImage(nil)
	gv.image.FillMode = canvas.ImageFillContain
	gv.counter = widget.NewLabel("")
	gv.counter.Alignment = fyne.TextAlignCenter

	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), gv.Previous)
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), gv.Next)
	prev.Importance = widget.LowImportance
	next.Importance = widget.LowImportance

	swipe := NewSwipeArea(gv.image, func(dir SwipeDirection) {
		switch dir {
		case SwipeLeft:
			gv.Next()
		case SwipeRight:
			gv.Previous()
		}
	})

	gv.body = container.NewBorder(nil, gv.counter, prev, next, swipe)
	gv.show()
	return gv
}

// CreateRenderer implements fyne.Widget
func (gv *GalleryView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gv.body)
}

// Previous shows the previous image, wrapping to the last
func (gv *GalleryView) Previous() {
	gv.gallery.Previous()
	gv.show()
}

// Next shows the next image, wrapping to the first
func (gv *GalleryView) Next() {
	gv.gallery.Next()
	gv.show()
}

// Index returns the current image index
func (gv *GalleryView) Index() int {
	return gv.gallery.Index()
}

func (gv *GalleryView) show() {
	src, ok := gv.gallery.Current()
	if !ok {
		return
	}
	gv.image.Resource = gv.assets.Image(src)
	gv.image.Refresh()
	gv.counter.SetText(gv.gallery.Counter())
}
