package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wundara/folio-desktop/internal/model"
)

// GeneratedIDPrefix marks ids the loader had to invent.
const GeneratedIDPrefix = "gen-"

// ErrNotFound is returned when the descriptor file does not exist.
var ErrNotFound = errors.New("portfolio descriptor not found")

//go:embed default.yaml
var defaultDescriptor []byte

// Load reads and converts the descriptor at path. JSON files load too:
// they are valid YAML.
func Load(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read portfolio %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio %s: %w", path, err)
	}
	return p, nil
}

// Default returns the embedded sample portfolio
func Default() (*model.Portfolio, error) {
	return Parse(defaultDescriptor)
}

// Parse converts descriptor bytes into a Portfolio
func Parse(data []byte) (*model.Portfolio, error) {
	var raw rawPortfolio
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	return raw.convert(), nil
}

func (raw *rawPortfolio) convert() *model.Portfolio {
	p := &model.Portfolio{
		MenuBar: model.MenuBar{
			OwnerName:  raw.MenuBar.OwnerName,
			FinderIcon: raw.MenuBar.FinderIcon,
		},
	}

	for _, icon := range raw.DesktopIcons {
		title := icon.Name
		if icon.WindowContent != nil && icon.WindowContent.Title != "" {
			title = icon.WindowContent.Title
		}
		p.DesktopIcons = append(p.DesktopIcons, model.DesktopIcon{
			ID:       ensureID(icon.ID),
			Name:     icon.Name,
			Icon:     icon.Icon,
			Position: icon.Position,
			Title:    title,
			Content:  icon.WindowContent.toContent(),
		})
	}

	for _, w := range raw.AutoOpenWidgets {
		p.AutoOpenWidgets = append(p.AutoOpenWidgets, model.AutoOpenWidget{
			ID:              ensureID(w.ID),
			Title:           w.Title,
			Content:         w.toContent(),
			InitialPosition: w.InitialPosition,
			InitialSize:     w.InitialSize,
		})
	}

	for _, img := range raw.DesktopImages {
		p.DesktopImages = append(p.DesktopImages, model.DesktopImage{
			ID:            ensureID(img.ID),
			Name:          img.Name,
			ThumbnailPath: img.ThumbnailPath,
			FullImagePath: img.FullImagePath,
			Position:      img.Position,
		})
	}

	for _, item := range raw.DockItems {
		p.DockItems = append(p.DockItems, model.DockItem{
			ID:       ensureID(item.ID),
			Name:     item.Name,
			Icon:     item.Icon,
			Kind:     model.DockItemKind(item.Type),
			URL:      item.URL,
			External: item.External,
			Action:   item.Action,
		})
	}

	if f := raw.FloatingGif; f != nil {
		p.Floating = &model.FloatingElement{
			ID:              ensureID(f.ID),
			Src:             f.Src,
			InitialPosition: f.InitialPosition,
			InitialSize:     f.InitialSize,
			StackOrder:      f.ZIndex,
		}
	}

	if m := raw.Music; m != nil {
		p.Music = &model.MusicTrack{
			Src:        m.Src,
			ArtworkSrc: m.ArtworkSrc,
			Title:      m.Title,
			AutoPlay:   boolOr(m.AutoPlay, true),
			Loop:       boolOr(m.Loop, true),
		}
		if p.Music.Title == "" {
			p.Music.Title = DefaultMusicTitle
		}
	}

	return p
}

// DefaultMusicTitle is shown when the descriptor names no track title.
const DefaultMusicTitle = "Music Player"

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// ensureID keeps explicit ids and generates a time-ordered one otherwise
func ensureID(id string) string {
	if id != "" {
		return id
	}
	u, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(GeneratedIDPrefix+"%d", time.Now().UnixNano())
	}
	return GeneratedIDPrefix + u.String()
}
