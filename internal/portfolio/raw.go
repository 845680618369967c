package portfolio

import (
	"github.com/wundara/folio-desktop/internal/model"
)

// The raw types mirror the descriptor file. Keys follow the camelCase
// naming of the portfolio.json format so existing files load as-is.

type rawPortfolio struct {
	MenuBar         rawMenuBar    `yaml:"menuBar"`
	DesktopIcons    []rawIcon     `yaml:"desktopIcons"`
	AutoOpenWidgets []rawWidget   `yaml:"autoOpenWidgets"`
	DesktopImages   []rawImage    `yaml:"randomDesktopImages"`
	DockItems       []rawDockItem `yaml:"dockItems"`
	FloatingGif     *rawFloating  `yaml:"floatingGif"`
	Music           *rawMusic     `yaml:"music"`
}

type rawMenuBar struct {
	OwnerName  string `yaml:"ownerName"`
	FinderIcon string `yaml:"finderIcon"`
}

type rawContent struct {
	Type    string    `yaml:"type"`
	Title   string    `yaml:"title"`
	Content string    `yaml:"content"`
	Items   []rawItem `yaml:"items"`
	Images  []string  `yaml:"images"`
	Src     string    `yaml:"src"`
}

type rawItem struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Deliverables []string `yaml:"deliverables"`
	Images       []string `yaml:"images"`
	Image        []string `yaml:"image"`
	Link         string   `yaml:"link"`
}

type rawIcon struct {
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Icon          string      `yaml:"icon"`
	Position      model.Point `yaml:"position"`
	WindowContent *rawContent `yaml:"windowContent"`
}

type rawWidget struct {
	ID              string      `yaml:"id"`
	Title           string      `yaml:"title"`
	Type            string      `yaml:"type"`
	VideoType       string      `yaml:"videoType"`
	VideoPath       string      `yaml:"videoPath"`
	VideoURL        string      `yaml:"videoUrl"`
	Content         *rawContent `yaml:"content"`
	InitialPosition model.Point `yaml:"initialPosition"`
	InitialSize     *model.Size `yaml:"initialSize"`
}

type rawImage struct {
	ID            string       `yaml:"id"`
	Name          string       `yaml:"name"`
	ThumbnailPath string       `yaml:"thumbnailPath"`
	FullImagePath string       `yaml:"fullImagePath"`
	Position      *model.Point `yaml:"position"`
}

type rawDockItem struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Type     string `yaml:"type"`
	URL      string `yaml:"url"`
	External bool   `yaml:"external"`
	Action   string `yaml:"action"`
}

type rawFloating struct {
	ID              string      `yaml:"id"`
	Src             string      `yaml:"src"`
	InitialPosition model.Point `yaml:"initialPosition"`
	InitialSize     model.Size  `yaml:"initialSize"`
	ZIndex          int         `yaml:"zIndex"`
}

type rawMusic struct {
	Src        string `yaml:"src"`
	ArtworkSrc string `yaml:"artworkSrc"`
	Title      string `yaml:"title"`
	AutoPlay   *bool  `yaml:"autoPlay"`
	Loop       *bool  `yaml:"loop"`
}

// toContent converts a tagged raw content block into the closed variant.
// Unrecognised tags are kept as UnknownContent so the view can fall back.
func (c *rawContent) toContent() model.Content {
	if c == nil {
		return model.UnknownContent{}
	}
	switch model.ContentKind(c.Type) {
	case model.KindText:
		return model.TextContent{Body: c.Content}
	case model.KindProjectList:
		items := make([]model.Project, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, model.Project{
				ID:           it.ID,
				Title:        it.Title,
				Description:  it.Description,
				Deliverables: it.Deliverables,
				Images:       it.images(),
				Link:         it.Link,
			})
		}
		return model.ProjectListContent{Title: c.Title, Items: items}
	case model.KindWorkList:
		items := make([]model.WorkExample, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, model.WorkExample{
				ID:          it.ID,
				Title:       it.Title,
				Description: it.Description,
				Images:      it.images(),
			})
		}
		return model.WorkListContent{Title: c.Title, Items: items}
	case model.KindMoodboard:
		return model.MoodboardContent{Title: c.Title, Images: c.Images}
	case model.KindImage:
		return model.ImageContent{Src: c.Src}
	case model.KindGallery:
		return model.GalleryContent{Images: c.Images}
	default:
		return model.UnknownContent{Type: c.Type}
	}
}

func (it rawItem) images() []string {
	if len(it.Images) > 0 {
		return it.Images
	}
	return it.Image
}

// toContent resolves a widget's content. The outer type "video" takes
// precedence over any inner content block.
func (w rawWidget) toContent() model.Content {
	if model.ContentKind(w.Type) == model.KindVideo {
		return model.VideoContent{
			Source: model.VideoSource(w.VideoType),
			Path:   w.VideoPath,
			URL:    w.VideoURL,
		}
	}
	return w.Content.toContent()
}
