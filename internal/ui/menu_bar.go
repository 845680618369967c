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

// menuBar is the strip along the top of the desktop: finder icon and
// owner name on the left, music, settings and the clock on the right.
type menuBar struct {
	widget.BaseWidget

	finder   *canvas.Image
	owner    *widget.Label
	clock    *widget.Label
	music    *widget.Button
	settings *widget.Button
}

func newMenuBar(s *Surface, bar model.MenuBar, onMusic, onSettings func()) *menuBar {
	mb := &menuBar{}

	mb.finder = canvas.NewImageFromResource(s.assets.Icon(bar.FinderIcon))
	mb.finder.FillMode = canvas.ImageFillContain
	mb.finder.SetMinSize(fyne.NewSize(MenuBarHeight-6, MenuBarHeight-6))

	mb.owner = widget.NewLabel(truncateCells(bar.OwnerName, MenuBarTitleMax))
	mb.owner.TextStyle = fyne.TextStyle{Bold: true}

	mb.clock = widget.NewLabel("")

	if onMusic != nil {
		mb.music = widget.NewButton(IconMusic, onMusic)
		mb.music.Importance = widget.LowImportance
	}
	mb.settings = widget.NewButton(IconSettings, onSettings)
	mb.settings.Importance = widget.LowImportance

	mb.ExtendBaseWidget(mb)
	return mb
}

// CreateRenderer implements fyne.Widget
func (mb *menuBar) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(ColorNameMenuBar))

	right := container.NewHBox()
	if mb.music != nil {
		right.Add(mb.music)
	}
	right.Add(mb.settings)
	right.Add(mb.clock)

	row := container.NewHBox(mb.finder, mb.owner, layout.NewSpacer(), right)
	return widget.NewSimpleRenderer(container.NewStack(bg, row))
}

// SetTime updates the clock text
func (mb *menuBar) SetTime(text string) {
	mb.clock.SetText(text)
}

// musicAnchor is where the controls popup opens, just under the music
// button
func (mb *menuBar) musicAnchor() fyne.Position {
	if mb.music == nil {
		return fyne.NewPos(0, MenuBarHeight)
	}
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(mb.music)
	return fyne.NewPos(max(0, pos.X+mb.music.Size().Width-MusicPopupWidth), MenuBarHeight)
}
