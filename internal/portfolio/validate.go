package portfolio

import (
	"errors"
	"fmt"

	"github.com/wundara/folio-desktop/internal/model"
)

// Validate checks the invariants the desktop relies on. All problems are
// reported together.
func Validate(p *model.Portfolio) error {
	if p == nil {
		return errors.New("portfolio is nil")
	}

	var errs []error
	seen := make(map[string]string)
	claim := func(kind, id string) {
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("%s %q reuses an id already used by a %s", kind, id, prev))
			return
		}
		seen[id] = kind
	}

	// Icons, widgets and image files share the window id space.
	for _, icon := range p.DesktopIcons {
		claim("desktop icon", icon.ID)
		if icon.Content == nil || icon.Content.Kind() == "" {
			errs = append(errs, fmt.Errorf("desktop icon %q has no window content", icon.ID))
		}
	}
	for _, w := range p.AutoOpenWidgets {
		claim("widget", w.ID)
		if v, ok := w.Content.(model.VideoContent); ok && v.Path == "" && v.URL == "" {
			errs = append(errs, fmt.Errorf("video widget %q has neither videoPath nor videoUrl", w.ID))
		}
		if w.InitialSize != nil && (w.InitialSize.Width <= 0 || w.InitialSize.Height <= 0) {
			errs = append(errs, fmt.Errorf("widget %q has a non-positive initial size", w.ID))
		}
	}
	for _, img := range p.DesktopImages {
		claim("image", img.ID)
		if img.FullImagePath == "" {
			errs = append(errs, fmt.Errorf("image %q has no fullImagePath", img.ID))
		}
	}

	dockSeen := make(map[string]bool)
	for _, item := range p.DockItems {
		if dockSeen[item.ID] {
			errs = append(errs, fmt.Errorf("dock item %q is declared twice", item.ID))
		}
		dockSeen[item.ID] = true
		switch item.Kind {
		case model.DockLink:
			if item.URL == "" {
				errs = append(errs, fmt.Errorf("dock link %q has no url", item.ID))
			}
		case model.DockApp:
			if item.Action == "" {
				errs = append(errs, fmt.Errorf("dock app %q has no action", item.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("dock item %q has unknown type %q", item.ID, item.Kind))
		}
	}

	if f := p.Floating; f != nil {
		if f.Src == "" {
			errs = append(errs, fmt.Errorf("floating element %q has no src", f.ID))
		}
		if f.InitialSize.Width <= 0 || f.InitialSize.Height <= 0 {
			errs = append(errs, fmt.Errorf("floating element %q has a non-positive size", f.ID))
		}
	}

	return errors.Join(errs...)
}
