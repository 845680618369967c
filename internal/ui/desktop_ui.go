package ui

import (
	"context"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/audio"
	"github.com/wundara/folio-desktop/internal/clock"
	"github.com/wundara/folio-desktop/internal/config"
	"github.com/wundara/folio-desktop/internal/desktop"
	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/platform"
)

// Options configure a DesktopUI
type Options struct {
	Logger  *logger.Logger
	Player  *audio.Player // nil when the portfolio has no music
	Source  string        // descriptor path, logged at startup
	Version string
}

// DesktopUI is the application window hosting one desktop
type DesktopUI struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	log      *logger.Logger

	desk    *desktop.Desktop
	surface *Surface
	player  *audio.Player
	music   *musicControls
	clock   *clock.Clock
	cancel  context.CancelFunc
	version string
}

// NewDesktopUI creates the application window for desk
func NewDesktopUI(app fyne.App, desk *desktop.Desktop, settings *config.Settings, opts Options) *DesktopUI {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	ui := &DesktopUI{
		app:      app,
		settings: settings,
		loc:      loc,
		log:      opts.Logger,
		desk:     desk,
		player:   opts.Player,
	}

	ui.version = opts.Version
	ui.window = app.NewWindow(ui.title())
	ui.window.Resize(InitialCanvasSize)

	assets := NewAssetLoader(ui.log)
	renderer := NewContentRenderer(assets, loc, ContentActions{
		OpenURL:  app.OpenURL,
		OpenFile: platform.OpenFileWithDefaultApp,
		Reveal:   platform.RevealInFileManager,
		Notify:   ui.notify,
	})

	surfaceOpts := SurfaceOptions{
		Assets:     assets,
		Renderer:   renderer,
		Logger:     ui.log,
		OnSettings: ui.onShowSettings,
	}
	if ui.player != nil {
		surfaceOpts.OnMusic = ui.onToggleMusic
	}
	ui.surface = NewSurface(desk, surfaceOpts)

	if ui.player != nil {
		ui.music = newMusicControls(ui.player, assets, loc, settings.SetMusicVolume)
		ui.player.SetChangeCallback(ui.onPlayerChange)
	}

	ui.clock = clock.New(func(text string) {
		fyne.Do(func() {
			ui.surface.SetTime(text)
			if ui.player != nil {
				ui.player.Refresh()
			}
		})
	})

	ui.window.SetContent(ui.surface.Content())
	ui.createMenu()
	ui.window.SetOnClosed(ui.shutdown)

	ui.log.Info("desktop ready",
		"source", opts.Source,
		"windows", len(desk.Windows()),
		"music", ui.player != nil,
	)
	return ui
}

func (ui *DesktopUI) title() string {
	if ui.version == "" {
		return ui.loc.GetText(KeyAppTitle)
	}
	return fmt.Sprintf("%s v%s", ui.loc.GetText(KeyAppTitle), ui.version)
}

// Window returns the application window
func (ui *DesktopUI) Window() fyne.Window {
	return ui.window
}

// Surface returns the desktop surface
func (ui *DesktopUI) Surface() *Surface {
	return ui.surface
}

// ShowAndRun starts the clock and the music, then runs the application
// until the window is closed
func (ui *DesktopUI) ShowAndRun() {
	ui.app.Lifecycle().SetOnStarted(ui.start)
	ui.window.ShowAndRun()
}

func (ui *DesktopUI) start() {
	ctx, cancel := context.WithCancel(context.Background())
	ui.cancel = cancel
	ui.clock.Start(ctx)
	if ui.player != nil {
		ui.player.Autoplay()
	}
}

func (ui *DesktopUI) shutdown() {
	if ui.cancel != nil {
		ui.cancel()
	}
	ui.clock.Stop()
	if ui.player != nil {
		if err := ui.player.Close(); err != nil {
			ui.log.Error("failed to close music player", err)
		}
	}
}

// createMenu creates the application menu
func (ui *DesktopUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.loc.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.loc.GetText(KeyLanguage))
	for code, name := range ui.loc.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.loc.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.loc.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the chrome language
func (ui *DesktopUI) onLanguageChange(langCode string) {
	ui.loc.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.window.SetTitle(ui.title())
	ui.createMenu()
	if ui.player != nil {
		ui.music.Sync(ui.player.State())
	}
}

func (ui *DesktopUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.loc, func() {
		ui.app.Settings().SetTheme(NewDesktopTheme(ui.settings.GetThemeVariant()))
		if ui.player != nil {
			ui.player.RestoreVolume(ui.settings.GetMusicVolume())
		}
		ui.notify(ui.loc.GetText(KeySettingsSaved))
	})
}

func (ui *DesktopUI) onToggleMusic() {
	ui.music.Toggle()
}

func (ui *DesktopUI) onPlayerChange(s audio.State) {
	ui.music.Sync(s)
	ui.music.Show(ui.window.Canvas(), ui.surface.MusicAnchor(), s.ControlsVisible)
}

// notify shows a short message over the desktop
func (ui *DesktopUI) notify(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// NewLinkOpener opens dock links with the system browser through app
func NewLinkOpener(app fyne.App) desktop.LinkOpener {
	return desktop.LinkOpenerFunc(func(raw string, _ bool) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid link %q: %w", raw, err)
		}
		return app.OpenURL(u)
	})
}
