package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/wundara/folio-desktop/internal/desktop"
	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/wm"
)

// MinCanvasSize is the smallest desktop the layout reports
var MinCanvasSize = fyne.NewSize(320, 240)

// Surface is the Fyne rendering of a desktop.Desktop. It owns one widget
// per icon, image, window and the floating element, and places them from
// the desktop state every time the state or the canvas size changes.
type Surface struct {
	desk     *desktop.Desktop
	assets   *AssetLoader
	renderer *ContentRenderer
	log      *logger.Logger

	root       *fyne.Container
	background *canvas.Rectangle
	menuBar    *menuBar
	dock       *dock
	icons      []*desktopIcon
	images     []*imageIcon
	imageIndex map[string]*imageIcon
	windows    map[string]*windowFrame
	floating   *floatingElement
	size       fyne.Size
}

// SurfaceOptions are the collaborators a Surface needs besides the desktop
type SurfaceOptions struct {
	Assets     *AssetLoader
	Renderer   *ContentRenderer
	Logger     *logger.Logger
	OnMusic    func()
	OnSettings func()
}

// NewSurface builds the widgets for desk and subscribes to its changes
func NewSurface(desk *desktop.Desktop, opts SurfaceOptions) *Surface {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &Surface{
		desk:       desk,
		assets:     opts.Assets,
		renderer:   opts.Renderer,
		log:        opts.Logger,
		imageIndex: make(map[string]*imageIcon),
		windows:    make(map[string]*windowFrame),
	}
	p := desk.Portfolio()

	s.background = canvas.NewRectangle(theme.Color(ColorNameDesktop))
	s.menuBar = newMenuBar(s, p.MenuBar, opts.OnMusic, opts.OnSettings)
	s.dock = newDock(s, p.DockItems)

	for _, icon := range p.DesktopIcons {
		s.icons = append(s.icons, newDesktopIcon(s, icon))
	}
	for _, icon := range desk.Images() {
		ii := newImageIcon(s, icon.Image)
		s.images = append(s.images, ii)
		s.imageIndex[icon.Image.ID] = ii
	}
	if f, _, ok := desk.Floating(); ok {
		s.floating = newFloatingElement(s, f.Src)
	}
	for _, entry := range desk.Windows() {
		s.windows[entry.ID] = newWindowFrame(s, entry)
	}

	s.root = container.New(&surfaceLayout{s: s})
	s.restack()
	desk.SetUpdateCallback(s.onChange)
	return s
}

// Content returns the canvas object to put in the application window
func (s *Surface) Content() fyne.CanvasObject {
	return s.root
}

// SetTime updates the menu bar clock
func (s *Surface) SetTime(text string) {
	s.menuBar.SetTime(text)
}

// MusicAnchor is the position of the music controls popup
func (s *Surface) MusicAnchor() fyne.Position {
	return s.menuBar.musicAnchor()
}

// WindowIDs returns the ids of the rendered windows back to front
func (s *Surface) WindowIDs() []string {
	var ids []string
	for _, entry := range s.desk.Windows() {
		if _, ok := s.windows[entry.ID]; ok {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

func (s *Surface) onChange(c wm.Change) {
	switch c.Type {
	case wm.ChangeOpened:
		s.windows[c.Entry.ID] = newWindowFrame(s, c.Entry)
		if ii, ok := s.imageIndex[c.Entry.ID]; ok {
			ii.setLocked(true)
		}
		s.restack()
	case wm.ChangeClosed:
		delete(s.windows, c.Entry.ID)
		if ii, ok := s.imageIndex[c.Entry.ID]; ok {
			ii.setLocked(false)
		}
		s.restack()
	case wm.ChangeFocused:
		s.restack()
	case wm.ChangeMoved, wm.ChangeResized:
		if w, ok := s.windows[c.Entry.ID]; ok {
			s.placeWindow(w, c.Entry)
		}
	}
}

// restack rebuilds the child order: background, icons, images, then
// windows and the floating element by stack order, then the chrome.
func (s *Surface) restack() {
	objects := []fyne.CanvasObject{s.background}
	for _, icon := range s.icons {
		objects = append(objects, icon)
	}
	for _, img := range s.images {
		objects = append(objects, img)
	}

	type stacked struct {
		order int
		obj   fyne.CanvasObject
	}
	var layer []stacked
	for _, entry := range s.desk.Windows() {
		if w, ok := s.windows[entry.ID]; ok {
			layer = append(layer, stacked{entry.StackOrder, w})
		}
	}
	if s.floating != nil {
		f, _, _ := s.desk.Floating()
		layer = append(layer, stacked{f.StackOrder, s.floating})
	}
	sort.SliceStable(layer, func(i, j int) bool { return layer[i].order < layer[j].order })
	for _, l := range layer {
		objects = append(objects, l.obj)
	}

	objects = append(objects, s.menuBar, s.dock)
	s.root.Objects = objects
	s.root.Refresh()
}

func (s *Surface) placeWindow(w *windowFrame, entry model.WindowEntry) {
	size := desktop.DefaultWindowSize
	if entry.HasSize() {
		size = *entry.Size
	}
	// Windows never grow past the desktop area of a small canvas
	if s.size.Width > 0 {
		size.Width = min(size.Width, s.size.Width)
		size.Height = min(size.Height, max(TitleBarHeight, s.size.Height-MenuBarHeight-DockHeight))
	}
	w.Resize(toFyneSize(size))
	w.Move(toPosition(entry.Position))
}

func (s *Surface) placeImage(id string) {
	ii, ok := s.imageIndex[id]
	if !ok {
		return
	}
	icon, ok := s.desk.Image(id)
	if !ok {
		return
	}
	ii.Resize(toFyneSize(desktop.ImageIconSize))
	ii.Move(toPosition(icon.State.Position))
}

func (s *Surface) placeFloating() {
	if s.floating == nil {
		return
	}
	f, state, _ := s.desk.Floating()
	size := f.InitialSize
	if state.Size != nil {
		size = *state.Size
	}
	s.floating.Resize(toFyneSize(size))
	s.floating.Move(toPosition(state.Position))
}

func (s *Surface) layout(size fyne.Size) {
	s.size = size
	s.desk.SetViewport(size.Width, size.Height)

	s.background.Resize(size)
	s.background.Move(fyne.NewPos(0, 0))

	s.menuBar.Resize(fyne.NewSize(size.Width, MenuBarHeight))
	s.menuBar.Move(fyne.NewPos(0, 0))

	dockSize := s.dock.MinSize()
	s.dock.Resize(dockSize)
	s.dock.Move(fyne.NewPos((size.Width-dockSize.Width)/2, size.Height-DockBottomInset-dockSize.Height))

	for _, icon := range s.icons {
		h := icon.MinSize().Height
		icon.Resize(fyne.NewSize(DesktopIconWidth, h))
		icon.Move(toPosition(icon.icon.Position))
	}
	for _, img := range s.images {
		s.placeImage(img.id)
	}
	for _, entry := range s.desk.Windows() {
		if w, ok := s.windows[entry.ID]; ok {
			s.placeWindow(w, entry)
		}
	}
	s.placeFloating()
}

// Interaction entry points used by the widgets. All run on the UI
// goroutine.

func (s *Surface) activateIcon(id string) {
	s.desk.ActivateIcon(id)
}

func (s *Surface) activateDockItem(id string) {
	s.desk.ActivateDockItem(id)
}

func (s *Surface) focusWindow(id string) {
	s.desk.FocusWindow(id)
}

func (s *Surface) closeWindow(id string) {
	s.desk.CloseWindow(id)
}

func (s *Surface) beginWindowDrag(id string, pointer model.Point) bool {
	return s.desk.BeginWindowDrag(id, pointer)
}

func (s *Surface) moveWindowDrag(pointer model.Point, size model.Size) {
	s.desk.MoveWindowDrag(pointer, size)
}

func (s *Surface) endWindowDrag() {
	if id, ok := s.desk.EndWindowDrag(); ok {
		s.log.Debug("window moved", "id", id)
	}
}

func (s *Surface) pressImage(id string, pointer model.Point) bool {
	return s.desk.PressImage(id, pointer)
}

func (s *Surface) moveImage(id string, pointer model.Point) {
	if s.desk.MoveImage(id, pointer) {
		s.placeImage(id)
	}
}

func (s *Surface) releaseImage(id string) {
	s.desk.ReleaseImage(id)
	s.placeImage(id)
}

func (s *Surface) pressFloating(pointer model.Point) wm.Gesture {
	return s.desk.PressFloating(pointer)
}

func (s *Surface) moveFloating(pointer model.Point) {
	if s.desk.MoveFloating(pointer) {
		s.placeFloating()
	}
}

func (s *Surface) releaseFloating() {
	r := s.desk.ReleaseFloating()
	if r.Gesture != wm.GestureNone {
		s.log.Debug("floating element released", "gesture", r.Gesture.String(), "position", r.Position.String())
	}
	s.placeFloating()
}

// surfaceLayout hands the canvas size to the desktop and places every
// child from the desktop state.
type surfaceLayout struct {
	s *Surface
}

func (l *surfaceLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	l.s.layout(size)
}

func (l *surfaceLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return MinCanvasSize
}
