package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/portfolio"
)

// AssetLoader resolves media references to Fyne resources. Results are
// cached for the life of the desktop; missing assets fall back to a
// placeholder icon so a broken path never blocks a window from opening.
type AssetLoader struct {
	log   *logger.Logger
	cache map[string]fyne.Resource
	load  func(ref string) (fyne.Resource, error)
}

// NewAssetLoader creates a loader that reads files and http(s) URLs
func NewAssetLoader(log *logger.Logger) *AssetLoader {
	if log == nil {
		log = logger.Nop()
	}
	return &AssetLoader{
		log:   log,
		cache: make(map[string]fyne.Resource),
		load:  loadResource,
	}
}

func loadResource(ref string) (fyne.Resource, error) {
	if portfolio.IsURL(ref) {
		return fyne.LoadResourceFromURLString(ref)
	}
	return fyne.LoadResourceFromPath(ref)
}

// Resource returns the resource for ref, or fallback when it cannot be
// loaded
func (al *AssetLoader) Resource(ref string, fallback fyne.Resource) fyne.Resource {
	if ref == "" {
		return fallback
	}
	if res, ok := al.cache[ref]; ok {
		return res
	}
	res, err := al.load(ref)
	if err != nil {
		al.log.Warn("failed to load asset", "ref", ref, "error", err.Error())
		res = fallback
	}
	al.cache[ref] = res
	return res
}

// Image returns the resource for an image reference
func (al *AssetLoader) Image(ref string) fyne.Resource {
	return al.Resource(ref, theme.BrokenImageIcon())
}

// Icon returns the resource for an icon reference, with a generic file
// icon as placeholder
func (al *AssetLoader) Icon(ref string) fyne.Resource {
	return al.Resource(ref, theme.FileIcon())
}
