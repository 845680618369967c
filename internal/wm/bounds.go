package wm

import "github.com/wundara/folio-desktop/internal/model"

// Desktop chrome sizes.
const (
	DefaultMenuBarHeight float32 = 24
	DefaultDockHeight    float32 = 80
)

// Bounds is the draggable region: the viewport minus the menu bar on top
// and the dock at the bottom.
type Bounds struct {
	DesktopWidth  float32
	DesktopHeight float32
	MenuBarHeight float32
	DockHeight    float32
}

// NewBounds creates bounds for a viewport with the default chrome sizes
func NewBounds(width, height float32) Bounds {
	return Bounds{
		DesktopWidth:  width,
		DesktopHeight: height,
		MenuBarHeight: DefaultMenuBarHeight,
		DockHeight:    DefaultDockHeight,
	}
}

// Clamp keeps an entity of the given size inside the region. When the
// entity is larger than the region the top-left limit wins.
func (b Bounds) Clamp(pos model.Point, size model.Size) model.Point {
	return model.Point{
		X: clamp(pos.X, 0, b.DesktopWidth-size.Width),
		Y: clamp(pos.Y, b.MenuBarHeight, b.DesktopHeight-size.Height-b.DockHeight),
	}
}

// Contains reports whether pos is a position Clamp could have produced
func (b Bounds) Contains(pos model.Point, size model.Size) bool {
	return b.Clamp(pos, size) == pos
}

// clamp applies max(lo, min(v, hi)); lo wins when hi < lo.
func clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
