package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/wundara/folio-desktop/internal/config"
)

// DesktopTheme is a compact theme with the desktop's chrome colours. A
// fixed variant overrides the system light/dark preference.
type DesktopTheme struct {
	variant config.ThemeVariant
}

// Custom colour names used by the desktop chrome
const (
	ColorNameMenuBar     fyne.ThemeColorName = "folioMenuBar"
	ColorNameDock        fyne.ThemeColorName = "folioDock"
	ColorNameTitleBar    fyne.ThemeColorName = "folioTitleBar"
	ColorNameWindowFrame fyne.ThemeColorName = "folioWindowFrame"
	ColorNameDesktop     fyne.ThemeColorName = "folioDesktop"
)

// NewDesktopTheme creates the theme for variant
func NewDesktopTheme(variant config.ThemeVariant) fyne.Theme {
	return &DesktopTheme{variant: variant}
}

func (t *DesktopTheme) resolve(variant fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeDark:
		return theme.VariantDark
	case config.ThemeLight:
		return theme.VariantLight
	default:
		return variant
	}
}

// Color returns theme colors
func (t *DesktopTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.resolve(variant)
	dark := variant == theme.VariantDark

	switch name {
	case ColorNameMenuBar:
		if dark {
			return color.NRGBA{R: 30, G: 30, B: 30, A: 220}
		}
		return color.NRGBA{R: 245, G: 245, B: 245, A: 220}
	case ColorNameDock:
		if dark {
			return color.NRGBA{R: 40, G: 40, B: 40, A: 180}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 160}
	case ColorNameTitleBar:
		if dark {
			return color.RGBA{R: 58, G: 58, B: 60, A: 255}
		}
		return color.RGBA{R: 232, G: 232, B: 232, A: 255}
	case ColorNameWindowFrame:
		if dark {
			return color.RGBA{R: 80, G: 80, B: 80, A: 255}
		}
		return color.RGBA{R: 190, G: 190, B: 190, A: 255}
	case ColorNameDesktop:
		return color.RGBA{R: 58, G: 110, B: 165, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 95, B: 87, A: 255} // close button red
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 30, G: 30, B: 30, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DesktopTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DesktopTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DesktopTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
