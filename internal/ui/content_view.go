package ui

import (
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/content"
	"github.com/wundara/folio-desktop/internal/portfolio"
)

// ContentActions are the side effects a window body can trigger
type ContentActions struct {
	OpenURL  func(*url.URL) error
	OpenFile func(path string) error
	Reveal   func(path string) error
	Notify   func(message string)
}

// ContentRenderer turns a resolved content.View into Fyne objects
type ContentRenderer struct {
	assets  *AssetLoader
	loc     *Localization
	actions ContentActions
}

// NewContentRenderer creates a renderer
func NewContentRenderer(assets *AssetLoader, loc *Localization, actions ContentActions) *ContentRenderer {
	return &ContentRenderer{assets: assets, loc: loc, actions: actions}
}

// Render builds the window body for v
func (r *ContentRenderer) Render(v content.View) fyne.CanvasObject {
	switch v.Strategy {
	case content.StrategyText:
		return container.NewVScroll(wrappedLabel(v.Text))
	case content.StrategyProjectList:
		return r.projectList(v)
	case content.StrategyWorkList:
		return r.workList(v)
	case content.StrategyMoodboard:
		return r.moodboard(v)
	case content.StrategyImage:
		return r.image(v.Source)
	case content.StrategyGallery:
		return NewGalleryView(v.Images, r.assets)
	case content.StrategyLocalVideo:
		return r.localVideo(v.Source)
	case content.StrategyEmbeddedVideo:
		return r.embeddedVideo(v.Source)
	default:
		return container.NewCenter(widget.NewLabel(v.Text))
	}
}

func wrappedLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

func heading(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	l.SizeName = theme.SizeNameHeadingText
	return l
}

func (r *ContentRenderer) projectList(v content.View) fyne.CanvasObject {
	box := container.NewVBox(heading(v.Heading))
	for _, p := range v.Projects {
		title := widget.NewLabel(p.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}
		box.Add(title)
		if p.Description != "" {
			box.Add(wrappedLabel(p.Description))
		}
		if len(p.Deliverables) > 0 {
			box.Add(wrappedLabel(r.loc.GetText(KeyDeliverables) + ": " + strings.Join(p.Deliverables, MiddleDotSeparator)))
		}
		if len(p.Images) > 0 {
			box.Add(r.imageStrip(p.Images))
		}
		if link := parseLink(p.Link); link != nil {
			box.Add(widget.NewHyperlink(content.LinkLabelProject, link))
		}
		box.Add(widget.NewSeparator())
	}
	return container.NewVScroll(box)
}

func (r *ContentRenderer) workList(v content.View) fyne.CanvasObject {
	box := container.NewVBox(heading(v.Heading))
	for _, w := range v.Work {
		title := widget.NewLabel(w.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}
		box.Add(title)
		if w.Description != "" {
			box.Add(wrappedLabel(w.Description))
		}
		box.Add(r.imageStrip(w.Images))
		box.Add(widget.NewSeparator())
	}
	return container.NewVScroll(box)
}

func (r *ContentRenderer) imageStrip(images []string) fyne.CanvasObject {
	row := container.NewHBox()
	for _, src := range images {
		img := canvas.NewImageFromResource(r.assets.Image(src))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(ProjectImageHeight*4/3, ProjectImageHeight))
		row.Add(img)
	}
	return container.NewHScroll(row)
}

func (r *ContentRenderer) moodboard(v content.View) fyne.CanvasObject {
	grid := container.NewGridWrap(fyne.NewSize(MoodboardTileSize, MoodboardTileSize))
	for _, src := range v.Images {
		img := canvas.NewImageFromResource(r.assets.Image(src))
		img.FillMode = canvas.ImageFillContain
		grid.Add(img)
	}
	return container.NewBorder(heading(v.Heading), nil, nil, nil, container.NewVScroll(grid))
}

func (r *ContentRenderer) image(src string) fyne.CanvasObject {
	img := canvas.NewImageFromResource(r.assets.Image(src))
	img.FillMode = canvas.ImageFillContain
	if portfolio.IsURL(src) || r.actions.Reveal == nil {
		return img
	}
	reveal := widget.NewButtonWithIcon(r.loc.GetText(KeyShowInFolder), theme.FolderOpenIcon(), func() {
		r.run(KeyErrorOpeningFile, func() error { return r.actions.Reveal(src) })
	})
	reveal.Importance = widget.LowImportance
	return container.NewBorder(nil, container.NewHBox(reveal), nil, nil, img)
}

func (r *ContentRenderer) localVideo(path string) fyne.CanvasObject {
	icon := widget.NewIcon(theme.MediaVideoIcon())
	name := widget.NewLabel(filepath.Base(path))
	name.Alignment = fyne.TextAlignCenter

	open := widget.NewButtonWithIcon(r.loc.GetText(KeyOpenInPlayer), theme.MediaPlayIcon(), func() {
		if portfolio.IsURL(path) {
			r.openLink(path)
			return
		}
		r.run(KeyErrorOpeningFile, func() error { return r.actions.OpenFile(path) })
	})
	open.Importance = widget.HighImportance

	buttons := container.NewHBox(open)
	if !portfolio.IsURL(path) && r.actions.Reveal != nil {
		buttons.Add(widget.NewButtonWithIcon(r.loc.GetText(KeyShowInFolder), theme.FolderOpenIcon(), func() {
			r.run(KeyErrorOpeningFile, func() error { return r.actions.Reveal(path) })
		}))
	}
	return container.NewCenter(container.NewVBox(icon, name, container.NewCenter(buttons)))
}

func (r *ContentRenderer) embeddedVideo(raw string) fyne.CanvasObject {
	icon := widget.NewIcon(theme.MediaVideoIcon())
	link := parseLink(raw)
	if link == nil {
		return container.NewCenter(widget.NewLabel(content.MessageUnknownVideo))
	}
	return container.NewCenter(container.NewVBox(
		icon,
		widget.NewHyperlink(r.loc.GetText(KeyWatchVideo), link),
		widget.NewLabel(link.Host),
	))
}

func (r *ContentRenderer) openLink(raw string) {
	link := parseLink(raw)
	if link == nil || r.actions.OpenURL == nil {
		return
	}
	r.run(KeyErrorOpeningLink, func() error { return r.actions.OpenURL(link) })
}

func (r *ContentRenderer) run(errKey string, action func() error) {
	if err := action(); err != nil && r.actions.Notify != nil {
		r.actions.Notify(r.loc.GetText(errKey) + ": " + err.Error())
	}
}

// parseLink returns nil for empty or unparsable links
func parseLink(raw string) *url.URL {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil
	}
	return u
}
