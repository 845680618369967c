package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/audio"
)

// Slider resolution
const (
	volumeSteps   = 100
	positionSteps = 1000
)

// musicControls is the popup opened from the menu bar music button. It
// mirrors the player state and forwards every control to the player.
type musicControls struct {
	player *audio.Player
	loc    *Localization

	playPause *widget.Button
	mute      *widget.Button
	volume    *widget.Slider
	position  *widget.Slider
	time      *widget.Label
	content   fyne.CanvasObject
	popup     *widget.PopUp

	// syncing is set while widgets are updated from player state so their
	// callbacks do not feed the value back
	syncing bool

	onVolume func(level float64)
}

func newMusicControls(player *audio.Player, assets *AssetLoader, loc *Localization, onVolume func(float64)) *musicControls {
	mc := &musicControls{player: player, loc: loc, onVolume: onVolume}
	track := player.Track()

	artwork := canvas.NewImageFromResource(assets.Icon(track.ArtworkSrc))
	artwork.FillMode = canvas.ImageFillContain
	artwork.SetMinSize(fyne.NewSize(MusicArtworkSize, MusicArtworkSize))

	title := widget.NewLabel(truncateCells(track.Title, MenuBarTitleMax))
	title.TextStyle = fyne.TextStyle{Bold: true}

	mc.playPause = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), player.TogglePlayPause)
	mc.mute = widget.NewButtonWithIcon("", theme.VolumeMuteIcon(), player.ToggleMute)

	mc.volume = widget.NewSlider(0, volumeSteps)
	mc.volume.OnChanged = func(v float64) {
		if mc.syncing {
			return
		}
		player.SetVolume(v / volumeSteps)
	}
	mc.volume.OnChangeEnded = func(v float64) {
		if mc.onVolume != nil {
			mc.onVolume(v / volumeSteps)
		}
	}

	mc.position = widget.NewSlider(0, positionSteps)
	mc.position.OnChangeEnded = func(v float64) {
		if mc.syncing {
			return
		}
		d := player.State().Duration
		if d <= 0 {
			return
		}
		_ = player.Seek(time.Duration(float64(d) * v / positionSteps))
	}
	mc.time = widget.NewLabel("")

	header := container.NewBorder(nil, nil, artwork, nil, title)
	buttons := container.NewHBox(mc.playPause, mc.mute)
	mc.content = container.NewVBox(
		header,
		container.NewBorder(nil, nil, buttons, nil, mc.volume),
		container.NewBorder(nil, nil, nil, mc.time, mc.position),
	)
	mc.Sync(player.State())
	return mc
}

// Sync updates the widgets from s
func (mc *musicControls) Sync(s audio.State) {
	mc.syncing = true
	defer func() { mc.syncing = false }()

	if s.Playing {
		mc.playPause.SetIcon(theme.MediaPauseIcon())
		mc.playPause.SetText(mc.loc.GetText(KeyPause))
	} else {
		mc.playPause.SetIcon(theme.MediaPlayIcon())
		mc.playPause.SetText(mc.loc.GetText(KeyPlay))
	}
	if s.Muted {
		mc.mute.SetIcon(theme.VolumeMuteIcon())
		mc.mute.SetText(mc.loc.GetText(KeyUnmute))
	} else {
		mc.mute.SetIcon(theme.VolumeUpIcon())
		mc.mute.SetText(mc.loc.GetText(KeyMute))
	}

	mc.volume.SetValue(s.Volume * volumeSteps)
	if s.Duration > 0 {
		mc.position.SetValue(float64(s.Position) / float64(s.Duration) * positionSteps)
	} else {
		mc.position.SetValue(0)
	}
	mc.time.SetText(audio.FormatTime(s.Position) + TimeSeparator + audio.FormatTime(s.Duration))
}

// Toggle flips the popup visibility through the player. A popup that was
// dismissed by a tap outside counts as hidden.
func (mc *musicControls) Toggle() {
	if mc.player.State().ControlsVisible && (mc.popup == nil || !mc.popup.Visible()) {
		mc.player.HideControls()
	}
	mc.player.ToggleControls()
}

// Show opens or closes the popup to match visible
func (mc *musicControls) Show(c fyne.Canvas, at fyne.Position, visible bool) {
	if !visible {
		if mc.popup != nil {
			mc.popup.Hide()
		}
		return
	}
	if mc.popup == nil {
		mc.popup = widget.NewPopUp(mc.content, c)
	} else if mc.popup.Visible() {
		return
	}
	mc.popup.Resize(fyne.NewSize(MusicPopupWidth, mc.content.MinSize().Height))
	mc.popup.ShowAtPosition(at)
}
