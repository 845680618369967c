package desktop

import (
	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/wm"
)

// ImageIcon is the render state of one image icon
type ImageIcon struct {
	Image  model.DesktopImage
	State  model.DragState
	Locked bool
}

func (d *Desktop) placeImages() {
	for _, img := range d.portfolio.DesktopImages {
		pos := d.randomImagePosition()
		if img.Position != nil {
			pos = *img.Position
		}
		icon := &imageIcon{
			image:  img,
			entity: wm.NewEntity(pos, ImageIconSize, false, d.clickThreshold),
		}
		d.images = append(d.images, icon)
		d.imageIndex[img.ID] = icon
	}
}

func (d *Desktop) randomImagePosition() model.Point {
	return model.NewPoint(
		spread(d.rng.Float32(), imageIconMinX, d.bounds.DesktopWidth-imageIconRightMargin),
		spread(d.rng.Float32(), imageIconMinY, d.bounds.DesktopHeight-imageIconBottomMargin),
	)
}

// spread maps f in [0,1) onto [lo,hi). A collapsed range yields lo.
func spread(f, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + f*(hi-lo)
}

// Images returns the image icons in declaration order
func (d *Desktop) Images() []ImageIcon {
	out := make([]ImageIcon, 0, len(d.images))
	for _, icon := range d.images {
		out = append(out, icon.snapshot())
	}
	return out
}

// Image returns image icon id
func (d *Desktop) Image(id string) (ImageIcon, bool) {
	icon, ok := d.imageIndex[id]
	if !ok {
		return ImageIcon{}, false
	}
	return icon.snapshot(), true
}

// PressImage starts a gesture on image icon id. Presses on an icon whose
// window is open are accepted but never move it.
func (d *Desktop) PressImage(id string, pointer model.Point) bool {
	icon, ok := d.imageIndex[id]
	if !ok {
		d.log.Warn("missing drag target", "id", id)
		return false
	}
	icon.entity.Press(pointer)
	return true
}

// MoveImage applies a pointer move to image icon id
func (d *Desktop) MoveImage(id string, pointer model.Point) bool {
	icon, ok := d.imageIndex[id]
	if !ok {
		return false
	}
	return icon.entity.Move(pointer, d.bounds)
}

// ReleaseImage ends the gesture on image icon id. A press that stayed
// within the click threshold opens the image window.
func (d *Desktop) ReleaseImage(id string) (opened bool) {
	icon, ok := d.imageIndex[id]
	if !ok {
		return false
	}
	r := icon.entity.Release()
	if !r.Clicked {
		d.ImageDragEnd(id, r.Position)
		return false
	}
	return d.ActivateImage(id)
}

// ImageDragEnd records the final position of a dragged image icon
func (d *Desktop) ImageDragEnd(id string, pos model.Point) {
	icon, ok := d.imageIndex[id]
	if !ok {
		return
	}
	icon.entity.SetPosition(pos)
	d.log.Debug("image icon moved", "id", id, "position", pos.String())
}

func (icon *imageIcon) snapshot() ImageIcon {
	return ImageIcon{
		Image:  icon.image,
		State:  icon.entity.State(),
		Locked: icon.entity.Locked(),
	}
}
