package cli

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/wundara/folio-desktop/internal/audio"
	"github.com/wundara/folio-desktop/internal/config"
	"github.com/wundara/folio-desktop/internal/desktop"
	"github.com/wundara/folio-desktop/internal/download"
	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/platform"
	"github.com/wundara/folio-desktop/internal/portfolio"
	"github.com/wundara/folio-desktop/internal/ui"
)

// PrefetchTimeout bounds how long startup waits for remote assets
const PrefetchTimeout = 15 * time.Second

// runDesktop opens the desktop window and blocks until it is closed
func runDesktop(cmd *cobra.Command, opts Options, version string) error {
	log, err := newLogger(opts)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	log.Info("folio-desktop starting", "version", version)

	a := app.NewWithID(ui.AppID)
	settings := config.NewSettings(a)
	a.Settings().SetTheme(ui.NewDesktopTheme(settings.GetThemeVariant()))

	p, source, err := choosePortfolio(opts, settings, log)
	if err != nil {
		return err
	}
	if source != EmbeddedSource {
		settings.SetLastPortfolio(source)
	}
	p = prefetchAssets(cmd.Context(), p, log)

	desk := desktop.New(p,
		desktop.WithLogger(log),
		desktop.WithViewport(ui.InitialCanvasSize.Width, ui.InitialCanvasSize.Height),
		desktop.WithClickThreshold(settings.GetClickThreshold()),
		desktop.WithLinkOpener(ui.NewLinkOpener(a)),
	)

	player := newPlayer(p.Music, settings, log)

	ui.NewDesktopUI(a, desk, settings, ui.Options{
		Logger:  log,
		Player:  player,
		Source:  source,
		Version: version,
	}).ShowAndRun()

	log.Info("folio-desktop stopped")
	return nil
}

// choosePortfolio loads the --portfolio descriptor, else the one used last
// time, else the embedded sample. A remembered descriptor that no longer
// loads falls back to the sample instead of failing.
func choosePortfolio(opts Options, settings *config.Settings, log *logger.Logger) (*model.Portfolio, string, error) {
	if opts.PortfolioPath != "" {
		return loadPortfolio(opts.PortfolioPath, opts.AssetBase)
	}

	if last := settings.GetLastPortfolio(); last != "" {
		p, source, err := loadPortfolio(last, opts.AssetBase)
		if err == nil {
			return p, source, nil
		}
		log.Warn("remembered portfolio failed to load", "path", last, "error", err.Error())
	}
	return loadPortfolio("", opts.AssetBase)
}

func newPlayer(track *model.MusicTrack, settings *config.Settings, log *logger.Logger) *audio.Player {
	if track == nil {
		return nil
	}
	t := *track
	t.AutoPlay = t.AutoPlay && settings.GetMusicAutoplay()

	player := audio.NewPlayer(t, audio.NewBeepEngine(t.Src, t.Loop), log)
	player.RestoreVolume(settings.GetMusicVolume())
	return player
}

// prefetchAssets downloads the remote media of p into the user cache and
// points p at the local copies. Assets that fail stay remote.
func prefetchAssets(ctx context.Context, p *model.Portfolio, log *logger.Logger) *model.Portfolio {
	urls := portfolio.RemoteAssets(p)
	if len(urls) == 0 {
		return p
	}
	dir, err := platform.AssetCacheDir()
	if err != nil {
		log.Warn("asset cache unavailable", "error", err.Error())
		return p
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, PrefetchTimeout)
	defer cancel()

	started := time.Now()
	copies, err := download.Prefetch(ctx, dir, urls, download.WithLogger(log))
	if err != nil {
		log.Warn("asset prefetch incomplete", "error", err.Error())
	}
	log.Info("assets prefetched",
		"remote", len(urls),
		"cached", len(copies),
		"elapsed", time.Since(started).String(),
	)
	return portfolio.WithLocalCopies(p, copies)
}
