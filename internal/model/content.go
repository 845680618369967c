package model

// ContentKind is the descriptor tag naming what a window renders.
type ContentKind string

const (
	KindText        ContentKind = "text"
	KindProjectList ContentKind = "projectList"
	KindWorkList    ContentKind = "workList"
	KindMoodboard   ContentKind = "moodboard"
	KindImage       ContentKind = "image"
	KindGallery     ContentKind = "photoGallery"
	KindVideo       ContentKind = "video"
)

// String returns the descriptor tag
func (k ContentKind) String() string {
	return string(k)
}

// VideoSource tells a locally hosted file apart from an embedded player.
type VideoSource string

const (
	VideoLocal  VideoSource = "local"
	VideoOnline VideoSource = "online"
)

// ContentVisitor has one method per content case. Every implementation
// must handle every case, so adding a kind fails to compile until all
// visitors are updated.
type ContentVisitor interface {
	VisitText(TextContent)
	VisitProjectList(ProjectListContent)
	VisitWorkList(WorkListContent)
	VisitMoodboard(MoodboardContent)
	VisitImage(ImageContent)
	VisitGallery(GalleryContent)
	VisitVideo(VideoContent)
	VisitUnknown(UnknownContent)
}

// Content is the closed set of things a window can show. The unexported
// method keeps implementations inside this package.
type Content interface {
	Kind() ContentKind
	Accept(v ContentVisitor)
	sealed()
}

// TextContent is a single paragraph of text.
type TextContent struct {
	Body string
}

// Project is one entry in a project list.
type Project struct {
	ID           string
	Title        string
	Description  string
	Deliverables []string
	Images       []string
	Link         string
}

// ProjectListContent is a titled list of projects.
type ProjectListContent struct {
	Title string
	Items []Project
}

// WorkExample is one entry in a work list; it always carries images.
type WorkExample struct {
	ID          string
	Title       string
	Description string
	Images      []string
}

// WorkListContent is a titled list of work examples.
type WorkListContent struct {
	Title string
	Items []WorkExample
}

// MoodboardContent is an unordered image grid.
type MoodboardContent struct {
	Title  string
	Images []string
}

// ImageContent is a single full-size image.
type ImageContent struct {
	Src string
}

// GalleryContent is a swipeable ordered sequence of images.
type GalleryContent struct {
	Images []string
}

// VideoContent is either a local file (Path) or an embedded player (URL).
type VideoContent struct {
	Source VideoSource
	Path   string
	URL    string
}

// UnknownContent preserves a descriptor tag nothing knows how to render.
type UnknownContent struct {
	Type string
}

func (TextContent) Kind() ContentKind        { return KindText }
func (ProjectListContent) Kind() ContentKind { return KindProjectList }
func (WorkListContent) Kind() ContentKind    { return KindWorkList }
func (MoodboardContent) Kind() ContentKind   { return KindMoodboard }
func (ImageContent) Kind() ContentKind       { return KindImage }
func (GalleryContent) Kind() ContentKind     { return KindGallery }
func (VideoContent) Kind() ContentKind       { return KindVideo }
func (u UnknownContent) Kind() ContentKind   { return ContentKind(u.Type) }

func (c TextContent) Accept(v ContentVisitor)        { v.VisitText(c) }
func (c ProjectListContent) Accept(v ContentVisitor) { v.VisitProjectList(c) }
func (c WorkListContent) Accept(v ContentVisitor)    { v.VisitWorkList(c) }
func (c MoodboardContent) Accept(v ContentVisitor)   { v.VisitMoodboard(c) }
func (c ImageContent) Accept(v ContentVisitor)       { v.VisitImage(c) }
func (c GalleryContent) Accept(v ContentVisitor)     { v.VisitGallery(c) }
func (c VideoContent) Accept(v ContentVisitor)       { v.VisitVideo(c) }
func (c UnknownContent) Accept(v ContentVisitor)     { v.VisitUnknown(c) }

func (TextContent) sealed()        {}
func (ProjectListContent) sealed() {}
func (WorkListContent) sealed()    {}
func (MoodboardContent) sealed()   {}
func (ImageContent) sealed()       {}
func (GalleryContent) sealed()     {}
func (VideoContent) sealed()       {}
func (UnknownContent) sealed()     {}

// MediaPaths returns every asset path referenced by c, in display order.
// Video URLs are not media paths.
func MediaPaths(c Content) []string {
	if c == nil {
		return nil
	}
	var m mediaMapper
	m.fn = func(path string) string {
		m.seen = append(m.seen, path)
		return path
	}
	c.Accept(&m)
	return m.seen
}

// MapMedia returns a copy of c with fn applied to every asset path.
func MapMedia(c Content, fn func(string) string) Content {
	if c == nil {
		return nil
	}
	m := mediaMapper{fn: fn}
	c.Accept(&m)
	return m.out
}

// mediaMapper rewrites the asset paths of whichever case it visits.
type mediaMapper struct {
	fn   func(string) string
	out  Content
	seen []string
}

func (m *mediaMapper) mapAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = m.fn(s)
	}
	return out
}

func (m *mediaMapper) VisitText(c TextContent) {
	m.out = c
}

func (m *mediaMapper) VisitProjectList(c ProjectListContent) {
	items := make([]Project, len(c.Items))
	for i, p := range c.Items {
		p.Images = m.mapAll(p.Images)
		items[i] = p
	}
	c.Items = items
	m.out = c
}

func (m *mediaMapper) VisitWorkList(c WorkListContent) {
	items := make([]WorkExample, len(c.Items))
	for i, w := range c.Items {
		w.Images = m.mapAll(w.Images)
		items[i] = w
	}
	c.Items = items
	m.out = c
}

func (m *mediaMapper) VisitMoodboard(c MoodboardContent) {
	c.Images = m.mapAll(c.Images)
	m.out = c
}

func (m *mediaMapper) VisitImage(c ImageContent) {
	c.Src = m.fn(c.Src)
	m.out = c
}

func (m *mediaMapper) VisitGallery(c GalleryContent) {
	c.Images = m.mapAll(c.Images)
	m.out = c
}

func (m *mediaMapper) VisitVideo(c VideoContent) {
	if c.Path != "" {
		c.Path = m.fn(c.Path)
	}
	m.out = c
}

func (m *mediaMapper) VisitUnknown(c UnknownContent) {
	m.out = c
}
