package ui

import (
	"fyne.io/fyne/v2"

	"github.com/wundara/folio-desktop/internal/model"
)

func toPoint(p fyne.Position) model.Point {
	return model.Point{X: p.X, Y: p.Y}
}

func toPosition(p model.Point) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

func toModelSize(s fyne.Size) model.Size {
	return model.Size{Width: s.Width, Height: s.Height}
}

func toFyneSize(s model.Size) fyne.Size {
	return fyne.NewSize(s.Width, s.Height)
}
