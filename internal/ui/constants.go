package ui

import (
	"fyne.io/fyne/v2"

	"github.com/wundara/folio-desktop/internal/desktop"
	"github.com/wundara/folio-desktop/internal/wm"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// AppID identifies the application to Fyne preferences
const AppID = "com.wundara.folio-desktop"

// Icons (emojis/symbols)
const (
	IconClose    = "×"
	IconMusic    = "♫"
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	EllipsisTail       = "…"
	TimeSeparator      = " / "
)

// Chrome sizing
const (
	MenuBarHeight = wm.DefaultMenuBarHeight
	DockHeight    = wm.DefaultDockHeight

	TitleBarHeight float32 = 28
	WindowBorder   float32 = 1
	WindowRadius   float32 = 8

	DockIconSize    float32 = 48
	DockPadding     float32 = 10
	DockBottomInset float32 = 8
	DockRadius      float32 = 16

	DesktopIconSize     float32 = 56
	DesktopIconWidth    float32 = 90
	DesktopIconLabelMax         = 14 // cells

	ImageThumbSize    float32 = 64
	ImageIconLabelMax         = 12 // cells

	WindowTitleMax = 48 // cells

	MusicPopupWidth    float32 = 280
	MusicArtworkSize   float32 = 56
	MenuBarTitleMax            = 24 // cells
	MoodboardTileSize  float32 = 140
	ProjectImageHeight float32 = 160
)

// InitialCanvasSize is the application window size at launch
var InitialCanvasSize = fyne.NewSize(desktop.DefaultViewportWidth, desktop.DefaultViewportHeight)
