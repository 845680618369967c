package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/model"
)

// dock is the centred strip of links and app shortcuts at the bottom of
// the desktop.
type dock struct {
	widget.BaseWidget

	items []*dockItem
}

func newDock(s *Surface, items []model.DockItem) *dock {
	d := &dock{}
	for _, item := range items {
		d.items = append(d.items, newDockItem(s, item))
	}
	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer implements fyne.Widget
func (d *dock) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(ColorNameDock))
	bg.CornerRadius = DockRadius

	row := container.NewHBox()
	for _, item := range d.items {
		row.Add(item)
	}
	padded := container.New(layout.NewCustomPaddedLayout(DockPadding/2, DockPadding/2, DockPadding, DockPadding), row)
	return widget.NewSimpleRenderer(container.NewStack(bg, padded))
}

// dockItem is one tappable dock icon
type dockItem struct {
	widget.BaseWidget

	surface *Surface
	item    model.DockItem
	icon    *canvas.Image
}

func newDockItem(s *Surface, item model.DockItem) *dockItem {
	di := &dockItem{surface: s, item: item}
	di.icon = canvas.NewImageFromResource(s.assets.Icon(item.Icon))
	di.icon.FillMode = canvas.ImageFillContain
	di.icon.SetMinSize(fyne.NewSize(DockIconSize, DockIconSize))
	di.ExtendBaseWidget(di)
	return di
}

// CreateRenderer implements fyne.Widget
func (di *dockItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(di.icon)
}

// Tapped implements fyne.Tappable
func (di *dockItem) Tapped(*fyne.PointEvent) {
	di.surface.activateDockItem(di.item.ID)
}
