package audio

import (
	"fmt"
	"time"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/model"
)

const (
	// DefaultVolume is the initial level and the level restored when
	// unmuting at zero volume
	DefaultVolume = 0.5

	// MuteThreshold is the level below which the track counts as muted
	MuteThreshold = 0.001
)

// Engine plays a single track. Implementations are driven from the UI
// goroutine only.
type Engine interface {
	Play() error
	Pause()
	SetVolume(level float64)
	SetMuted(muted bool)
	Seek(pos time.Duration) error
	Position() time.Duration
	Duration() time.Duration
	Close() error
}

// State is the player as the menu bar shows it
type State struct {
	Playing         bool
	Muted           bool
	Volume          float64
	Position        time.Duration
	Duration        time.Duration
	ControlsVisible bool
}

// Player holds the menu-bar music player state on top of an Engine.
type Player struct {
	engine   Engine
	track    model.MusicTrack
	log      *logger.Logger
	state    State
	onChange func(State)
}

// NewPlayer creates a stopped, muted player for track
func NewPlayer(track model.MusicTrack, engine Engine, log *logger.Logger) *Player {
	if log == nil {
		log = logger.Nop()
	}
	engine.SetVolume(DefaultVolume)
	engine.SetMuted(true)
	return &Player{
		engine: engine,
		track:  track,
		log:    log,
		state:  State{Muted: true, Volume: DefaultVolume},
	}
}

// SetChangeCallback registers fn to run after every state change
func (p *Player) SetChangeCallback(fn func(State)) {
	p.onChange = fn
}

// Track returns the track descriptor
func (p *Player) Track() model.MusicTrack {
	return p.track
}

// State returns the current state
func (p *Player) State() State {
	return p.state
}

// Autoplay starts the track muted if the descriptor asks for it. A failure
// to start leaves the player stopped and muted.
func (p *Player) Autoplay() bool {
	if !p.track.AutoPlay {
		return false
	}
	p.engine.SetMuted(true)
	p.state.Muted = true
	if err := p.engine.Play(); err != nil {
		p.log.Warn("autoplay was prevented", "src", p.track.Src, "error", err.Error())
		p.state.Playing = false
		p.changed()
		return false
	}
	p.state.Playing = true
	p.changed()
	return true
}

// TogglePlayPause pauses a playing track or starts a paused one. Starting
// playback unmutes.
func (p *Player) TogglePlayPause() {
	if p.state.Playing {
		p.engine.Pause()
		p.state.Playing = false
		p.changed()
		return
	}
	if p.state.Muted {
		p.state.Muted = false
		p.engine.SetMuted(false)
	}
	if err := p.engine.Play(); err != nil {
		p.log.Error("failed to play", err, "src", p.track.Src)
		p.changed()
		return
	}
	p.state.Playing = true
	p.changed()
}

// ToggleMute flips the mute flag. Unmuting at zero volume restores
// DefaultVolume.
func (p *Player) ToggleMute() {
	p.state.Muted = !p.state.Muted
	p.engine.SetMuted(p.state.Muted)
	if !p.state.Muted && p.state.Volume < MuteThreshold {
		p.state.Volume = DefaultVolume
		p.engine.SetVolume(DefaultVolume)
	}
	p.changed()
}

// SetVolume sets the level in [0,1]; levels under MuteThreshold mute.
func (p *Player) SetVolume(level float64) {
	level = min(1, max(0, level))
	p.state.Volume = level
	p.state.Muted = level < MuteThreshold
	p.engine.SetVolume(level)
	p.engine.SetMuted(p.state.Muted)
	p.changed()
}

// RestoreVolume applies a remembered level without changing the mute flag
func (p *Player) RestoreVolume(level float64) {
	if level < MuteThreshold {
		return
	}
	p.state.Volume = min(1, level)
	p.engine.SetVolume(p.state.Volume)
	p.changed()
}

// Seek moves playback to pos, clamped to the track
func (p *Player) Seek(pos time.Duration) error {
	pos = max(0, pos)
	if d := p.engine.Duration(); d > 0 {
		pos = min(pos, d)
	}
	if err := p.engine.Seek(pos); err != nil {
		return fmt.Errorf("failed to seek to %s: %w", FormatTime(pos), err)
	}
	p.state.Position = pos
	p.changed()
	return nil
}

// Refresh pulls position and duration from the engine. A non-looping
// track that reached its end stops and rewinds.
func (p *Player) Refresh() {
	p.state.Position = p.engine.Position()
	p.state.Duration = p.engine.Duration()
	if p.state.Playing && !p.track.Loop && p.state.Duration > 0 && p.state.Position >= p.state.Duration {
		p.engine.Pause()
		if err := p.engine.Seek(0); err != nil {
			p.log.Debug("rewind failed", "error", err.Error())
		}
		p.state.Playing = false
		p.state.Position = 0
	}
	p.changed()
}

// ToggleControls shows or hides the controls popup
func (p *Player) ToggleControls() {
	p.state.ControlsVisible = !p.state.ControlsVisible
	p.changed()
}

// HideControls closes the controls popup, as a click outside it does
func (p *Player) HideControls() {
	if !p.state.ControlsVisible {
		return
	}
	p.state.ControlsVisible = false
	p.changed()
}

// Close releases the engine
func (p *Player) Close() error {
	p.state.Playing = false
	return p.engine.Close()
}

func (p *Player) changed() {
	if p.onChange != nil {
		p.onChange(p.state)
	}
}

// FormatTime renders d as MM:SS. Negative durations render as 00:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		return "00:00"
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
