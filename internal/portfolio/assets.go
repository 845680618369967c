package portfolio

import (
	"path/filepath"
	"strings"

	"github.com/wundara/folio-desktop/internal/model"
)

// IsURL reports whether ref points at a remote resource
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// AssetPath applies base to a single media reference. Remote URLs and
// empty references pass through unchanged.
func AssetPath(base, ref string) string {
	if ref == "" || base == "" || IsURL(ref) {
		return ref
	}
	if IsURL(base) {
		return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
	}
	return filepath.Join(base, filepath.FromSlash(strings.TrimLeft(ref, "/")))
}

// WithAssetBase returns a copy of p with base applied uniformly to every
// media path it references.
func WithAssetBase(p *model.Portfolio, base string) *model.Portfolio {
	return MapAssets(p, func(ref string) string { return AssetPath(base, ref) })
}

// WithLocalCopies returns a copy of p in which every reference found in
// copies is replaced by its local path
func WithLocalCopies(p *model.Portfolio, copies map[string]string) *model.Portfolio {
	return MapAssets(p, func(ref string) string {
		if local, ok := copies[ref]; ok {
			return local
		}
		return ref
	})
}

// RemoteAssets lists the distinct http(s) media references of p in
// declaration order
func RemoteAssets(p *model.Portfolio) []string {
	seen := make(map[string]bool)
	var refs []string
	MapAssets(p, func(ref string) string {
		if IsURL(ref) && !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
		return ref
	})
	return refs
}

// MapAssets returns a copy of p with fn applied to every media reference:
// icons, thumbnails, images, local video paths, the floating element and
// the music files. Links and embedded player URLs are not media.
func MapAssets(p *model.Portfolio, fn func(string) string) *model.Portfolio {
	if p == nil {
		return nil
	}
	fix := func(ref string) string {
		if ref == "" {
			return ref
		}
		return fn(ref)
	}

	out := &model.Portfolio{
		MenuBar: model.MenuBar{
			OwnerName:  p.MenuBar.OwnerName,
			FinderIcon: fix(p.MenuBar.FinderIcon),
		},
	}

	for _, icon := range p.DesktopIcons {
		icon.Icon = fix(icon.Icon)
		icon.Content = model.MapMedia(icon.Content, fix)
		out.DesktopIcons = append(out.DesktopIcons, icon)
	}
	for _, w := range p.AutoOpenWidgets {
		w.Content = model.MapMedia(w.Content, fix)
		out.AutoOpenWidgets = append(out.AutoOpenWidgets, w)
	}
	for _, img := range p.DesktopImages {
		img.ThumbnailPath = fix(img.ThumbnailPath)
		img.FullImagePath = fix(img.FullImagePath)
		out.DesktopImages = append(out.DesktopImages, img)
	}
	for _, item := range p.DockItems {
		item.Icon = fix(item.Icon)
		out.DockItems = append(out.DockItems, item)
	}
	if p.Floating != nil {
		f := *p.Floating
		f.Src = fix(f.Src)
		out.Floating = &f
	}
	if p.Music != nil {
		m := *p.Music
		m.Src = fix(m.Src)
		m.ArtworkSrc = fix(m.ArtworkSrc)
		out.Music = &m
	}
	return out
}
