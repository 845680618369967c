package desktop

import (
	"math/rand/v2"
	"time"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/wm"
)

const (
	// BaseStackOrder is the counter value before the first window opens
	BaseStackOrder = 100

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

var (
	// DefaultWindowSize is used for windows whose entry carries no size
	DefaultWindowSize = model.Size{Width: 480, Height: 360}

	// ImageWindowSize is the size of windows opened from image icons
	ImageWindowSize = model.Size{Width: 640, Height: 360}

	// ImageIconSize is the footprint of an image icon (thumbnail and label)
	ImageIconSize = model.Size{Width: 80, Height: 96}
)

// Placement ranges for new windows and image icons.
const (
	iconWindowMinX  = 100
	iconWindowSpanX = 200
	iconWindowMinY  = 80
	iconWindowSpanY = 100

	imageIconMinX         = 50
	imageIconRightMargin  = 130
	imageIconMinY         = 100
	imageIconBottomMargin = 200
)

// Desktop is the state of one desktop screen. Like the Registry it is
// owned by the UI goroutine.
type Desktop struct {
	portfolio *model.Portfolio
	registry  *wm.Registry
	counter   *wm.StackCounter
	bounds    wm.Bounds

	log            *logger.Logger
	rng            *rand.Rand
	opener         LinkOpener
	clickThreshold float32

	windowDrag   wm.Dragger
	windowDragID string

	images     []*imageIcon
	imageIndex map[string]*imageIcon
	floating   *wm.Entity

	onUpdate func(wm.Change)
}

type imageIcon struct {
	image  model.DesktopImage
	entity *wm.Entity
}

// New builds the desktop for p and opens its auto-open widgets in
// declaration order.
func New(p *model.Portfolio, opts ...Option) *Desktop {
	if p == nil {
		p = &model.Portfolio{}
	}
	now := uint64(time.Now().UnixNano())
	d := &Desktop{
		portfolio:      p,
		bounds:         wm.NewBounds(DefaultViewportWidth, DefaultViewportHeight),
		log:            logger.Nop(),
		rng:            rand.New(rand.NewPCG(now, now>>32)),
		clickThreshold: wm.DefaultClickThreshold,
		imageIndex:     make(map[string]*imageIcon),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.counter == nil {
		d.counter = wm.NewStackCounter(BaseStackOrder)
	}
	d.registry = wm.NewRegistry(d.counter)
	d.registry.SetUpdateCallback(d.handleChange)

	d.placeImages()
	if f := p.Floating; f != nil {
		d.floating = wm.NewEntity(f.InitialPosition, f.InitialSize, true, d.clickThreshold)
	}

	for _, w := range p.AutoOpenWidgets {
		d.registry.Open(w.ID, w.Title, w.Content, w.InitialPosition, w.InitialSize)
	}
	return d
}

// SetUpdateCallback registers fn to run after every window change
func (d *Desktop) SetUpdateCallback(fn func(wm.Change)) {
	d.onUpdate = fn
}

// Portfolio returns the descriptor the desktop was built from
func (d *Desktop) Portfolio() *model.Portfolio {
	return d.portfolio
}

// Registry exposes the window registry
func (d *Desktop) Registry() *wm.Registry {
	return d.registry
}

// Bounds returns the clamp bounds for the current viewport
func (d *Desktop) Bounds() wm.Bounds {
	return d.bounds
}

// SetViewport updates the bounds used by every subsequent drag
func (d *Desktop) SetViewport(width, height float32) {
	d.bounds.DesktopWidth = width
	d.bounds.DesktopHeight = height
}

// Windows returns the open windows back to front
func (d *Desktop) Windows() []model.WindowEntry {
	return d.registry.Ordered()
}

// ActivateIcon opens the window of desktop icon id at a random position,
// or brings it to front when it is already open.
func (d *Desktop) ActivateIcon(id string) bool {
	icon, ok := d.portfolio.Icon(id)
	if !ok {
		d.log.Warn("unknown desktop icon", "id", id)
		return false
	}
	if d.registry.Focus(id) {
		return true
	}
	pos := model.NewPoint(
		iconWindowMinX+d.rng.Float32()*iconWindowSpanX,
		iconWindowMinY+d.rng.Float32()*iconWindowSpanY,
	)
	d.registry.Open(icon.ID, icon.Title, icon.Content, pos, nil)
	return true
}

// ActivateImage opens the full-size view of image icon id
func (d *Desktop) ActivateImage(id string) bool {
	img, ok := d.portfolio.Image(id)
	if !ok {
		d.log.Warn("unknown desktop image", "id", id)
		return false
	}
	if d.registry.Focus(id) {
		return true
	}
	icon := d.imageIndex[id]
	pos := d.bounds.Clamp(icon.entity.Position().Add(ImageIconSize.Width, 0), ImageWindowSize)
	size := ImageWindowSize
	d.registry.Open(img.ID, img.Name, model.ImageContent{Src: img.FullImagePath}, pos, &size)
	return true
}

// FocusWindow brings window id to front
func (d *Desktop) FocusWindow(id string) bool {
	return d.registry.Focus(id)
}

// CloseWindow removes window id, ending any drag on it
func (d *Desktop) CloseWindow(id string) bool {
	if d.windowDragID == id {
		d.windowDrag.End()
		d.windowDragID = ""
	}
	return d.registry.Close(id)
}

// BeginWindowDrag starts dragging window id by its title bar. The window is
// brought to front. Unknown ids are logged and ignored.
func (d *Desktop) BeginWindowDrag(id string, pointer model.Point) bool {
	entry, ok := d.registry.Get(id)
	if !ok {
		d.log.Warn("missing drag target", "id", id)
		return false
	}
	if d.windowDrag.Dragging() {
		return false
	}
	d.registry.Focus(id)
	d.windowDrag.Begin(pointer, entry.Position)
	d.windowDragID = id
	return true
}

// MoveWindowDrag moves the dragged window. size is the window's current
// footprint; a zero size falls back to the entry's size.
func (d *Desktop) MoveWindowDrag(pointer model.Point, size model.Size) bool {
	if !d.windowDrag.Dragging() {
		return false
	}
	if size.IsZero() {
		size = d.windowSize(d.windowDragID)
	}
	pos, ok := d.windowDrag.Move(pointer, size, d.bounds)
	if !ok {
		return false
	}
	return d.registry.Reposition(d.windowDragID, pos)
}

// EndWindowDrag finishes the window drag and returns the dragged id
func (d *Desktop) EndWindowDrag() (string, bool) {
	if _, ok := d.windowDrag.End(); !ok {
		return "", false
	}
	id := d.windowDragID
	d.windowDragID = ""
	return id, true
}

// DraggingWindow returns the id of the window being dragged
func (d *Desktop) DraggingWindow() (string, bool) {
	return d.windowDragID, d.windowDrag.Dragging()
}

func (d *Desktop) windowSize(id string) model.Size {
	entry, ok := d.registry.Get(id)
	if ok && entry.HasSize() {
		return *entry.Size
	}
	return DefaultWindowSize
}

func (d *Desktop) handleChange(c wm.Change) {
	if c.Type == wm.ChangeOpened || c.Type == wm.ChangeClosed {
		if icon, ok := d.imageIndex[c.Entry.ID]; ok {
			icon.entity.SetLocked(c.Type == wm.ChangeOpened)
		}
	}
	if d.onUpdate != nil {
		d.onUpdate(c)
	}
}
