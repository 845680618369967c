package content

import "github.com/wundara/folio-desktop/internal/model"

// Strategy names how a window body is rendered.
type Strategy int

const (
	StrategyFallback Strategy = iota
	StrategyText
	StrategyProjectList
	StrategyWorkList
	StrategyMoodboard
	StrategyImage
	StrategyGallery
	StrategyLocalVideo
	StrategyEmbeddedVideo
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategyText:
		return "text"
	case StrategyProjectList:
		return "projectList"
	case StrategyWorkList:
		return "workList"
	case StrategyMoodboard:
		return "moodboard"
	case StrategyImage:
		return "image"
	case StrategyGallery:
		return "gallery"
	case StrategyLocalVideo:
		return "localVideo"
	case StrategyEmbeddedVideo:
		return "embeddedVideo"
	default:
		return "fallback"
	}
}

// Headings and fallback messages shown by the view.
const (
	HeadingProjects  = "Projects"
	HeadingWork      = "Work Examples"
	HeadingMoodboard = "Moodboard"

	MessageUnknownContent = "Content type not recognized."
	MessageUnknownVideo   = "Video content type not recognized or path/URL missing."
	MessageEmptyGallery   = "No photos to display."
	LinkLabelProject      = "View Project"
)

// View is a resolved window body: the strategy plus the payload that
// strategy needs. Only the fields relevant to Strategy are set.
type View struct {
	Strategy Strategy
	Title    string
	Heading  string
	Text     string
	Projects []model.Project
	Work     []model.WorkExample
	Images   []string
	Source   string // image src, local video path or embedded player URL
}

// Resolve maps an entry to its view. It never fails: anything it cannot
// render becomes StrategyFallback with a message in Text.
func Resolve(entry model.WindowEntry) View {
	if entry.Content == nil {
		return View{Strategy: StrategyFallback, Title: entry.Title, Text: MessageUnknownContent}
	}
	r := &resolver{view: View{Title: entry.Title}}
	entry.Content.Accept(r)
	return r.view
}

type resolver struct {
	view View
}

func (r *resolver) VisitText(c model.TextContent) {
	r.view.Strategy = StrategyText
	r.view.Text = c.Body
}

func (r *resolver) VisitProjectList(c model.ProjectListContent) {
	r.view.Strategy = StrategyProjectList
	r.view.Heading = HeadingProjects
	r.view.Projects = c.Items
}

func (r *resolver) VisitWorkList(c model.WorkListContent) {
	r.view.Strategy = StrategyWorkList
	r.view.Heading = HeadingWork
	r.view.Work = c.Items
}

func (r *resolver) VisitMoodboard(c model.MoodboardContent) {
	r.view.Strategy = StrategyMoodboard
	r.view.Heading = HeadingMoodboard
	r.view.Images = c.Images
}

func (r *resolver) VisitImage(c model.ImageContent) {
	r.view.Strategy = StrategyImage
	r.view.Source = c.Src
}

func (r *resolver) VisitGallery(c model.GalleryContent) {
	r.view.Strategy = StrategyGallery
	r.view.Images = c.Images
	if len(c.Images) == 0 {
		r.view.Text = MessageEmptyGallery
	}
}

func (r *resolver) VisitVideo(c model.VideoContent) {
	switch {
	case c.Source == model.VideoLocal && c.Path != "":
		r.view.Strategy = StrategyLocalVideo
		r.view.Source = c.Path
	case c.Source == model.VideoOnline && c.URL != "":
		r.view.Strategy = StrategyEmbeddedVideo
		r.view.Source = c.URL
	default:
		r.fallback(MessageUnknownVideo)
	}
}

func (r *resolver) VisitUnknown(model.UnknownContent) {
	r.fallback(MessageUnknownContent)
}

func (r *resolver) fallback(msg string) {
	r.view.Strategy = StrategyFallback
	r.view.Text = msg
}
