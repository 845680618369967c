package model

// DesktopIcon is a fixed icon that opens a content window.
type DesktopIcon struct {
	ID       string
	Name     string
	Icon     string
	Position Point
	Title    string
	Content  Content
}

// AutoOpenWidget is a window opened when the desktop starts.
type AutoOpenWidget struct {
	ID              string
	Title           string
	Content         Content
	InitialPosition Point
	InitialSize     *Size
}

// DesktopImage is a freestanding draggable image file icon.
type DesktopImage struct {
	ID            string
	Name          string
	ThumbnailPath string
	FullImagePath string
	Position      *Point // nil means "place randomly once at startup"
}

// DockItemKind distinguishes external links from named app actions.
type DockItemKind string

const (
	DockLink DockItemKind = "link"
	DockApp  DockItemKind = "app"
)

// DockItem is one entry in the dock.
type DockItem struct {
	ID       string
	Name     string
	Icon     string
	Kind     DockItemKind
	URL      string
	External bool
	Action   string
}

// FloatingElement is the optional decorative, resizable floating image.
type FloatingElement struct {
	ID              string
	Src             string
	InitialPosition Point
	InitialSize     Size
	StackOrder      int
}

// MusicTrack configures the menu bar music player.
type MusicTrack struct {
	Src        string
	ArtworkSrc string
	Title      string
	AutoPlay   bool
	Loop       bool
}

// MenuBar holds the static parts of the menu bar.
type MenuBar struct {
	OwnerName  string
	FinderIcon string
}

// Portfolio is the whole read-only desktop description.
type Portfolio struct {
	MenuBar         MenuBar
	DesktopIcons    []DesktopIcon
	AutoOpenWidgets []AutoOpenWidget
	DesktopImages   []DesktopImage
	DockItems       []DockItem
	Floating        *FloatingElement
	Music           *MusicTrack
}

// Icon returns the desktop icon with the given id
func (p *Portfolio) Icon(id string) (DesktopIcon, bool) {
	for _, icon := range p.DesktopIcons {
		if icon.ID == id {
			return icon, true
		}
	}
	return DesktopIcon{}, false
}

// Image returns the desktop image with the given id
func (p *Portfolio) Image(id string) (DesktopImage, bool) {
	for _, img := range p.DesktopImages {
		if img.ID == id {
			return img, true
		}
	}
	return DesktopImage{}, false
}

// DockItem returns the dock item with the given id
func (p *Portfolio) DockItem(id string) (DockItem, bool) {
	for _, item := range p.DockItems {
		if item.ID == id {
			return item, true
		}
	}
	return DockItem{}, false
}
