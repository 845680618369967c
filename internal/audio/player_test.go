package audio

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/model"
)

type fakeEngine struct {
	playErr  error
	playing  bool
	muted    bool
	level    float64
	position time.Duration
	duration time.Duration
	closed   bool
}

func (f *fakeEngine) Play() error {
	if f.playErr != nil {
		return f.playErr
	}
	f.playing = true
	return nil
}

func (f *fakeEngine) Pause()                       { f.playing = false }
func (f *fakeEngine) SetVolume(level float64)      { f.level = level }
func (f *fakeEngine) SetMuted(muted bool)          { f.muted = muted }
func (f *fakeEngine) Position() time.Duration      { return f.position }
func (f *fakeEngine) Duration() time.Duration      { return f.duration }
func (f *fakeEngine) Close() error                 { f.closed = true; return nil }
func (f *fakeEngine) Seek(pos time.Duration) error { f.position = pos; return nil }

func newTestPlayer(t *testing.T, track model.MusicTrack) (*Player, *fakeEngine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := logger.NewLogger(logger.WithWriter(&buf), logger.WithoutFile(), logger.WithLevel(zerolog.DebugLevel))
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	engine := &fakeEngine{}
	return NewPlayer(track, engine, log), engine, &buf
}

func TestNewPlayer_Defaults(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})
	s := p.State()
	if s.Playing || !s.Muted || s.Volume != DefaultVolume {
		t.Errorf("initial state = %+v", s)
	}
	if !engine.muted || engine.level != DefaultVolume {
		t.Errorf("engine not initialised: %+v", engine)
	}
}

func TestAutoplay(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3", AutoPlay: true})
	if !p.Autoplay() {
		t.Fatal("autoplay should start")
	}
	s := p.State()
	if !s.Playing || !s.Muted {
		t.Errorf("autoplay should play muted, got %+v", s)
	}
	if !engine.playing || !engine.muted {
		t.Errorf("engine = %+v", engine)
	}
}

func TestAutoplay_Disabled(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})
	if p.Autoplay() || engine.playing {
		t.Error("autoplay disabled should not start the engine")
	}
}

func TestAutoplay_RejectedReverts(t *testing.T) {
	p, engine, buf := newTestPlayer(t, model.MusicTrack{Src: "a.mp3", AutoPlay: true})
	engine.playErr = errors.New("no audio device")

	if p.Autoplay() {
		t.Fatal("autoplay should report failure")
	}
	s := p.State()
	if s.Playing || !s.Muted {
		t.Errorf("rejected autoplay should leave stopped and muted, got %+v", s)
	}
	if !strings.Contains(buf.String(), "autoplay was prevented") {
		t.Error("rejection should be logged as a warning")
	}
}

func TestTogglePlayPause_Unmutes(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})

	p.TogglePlayPause()
	s := p.State()
	if !s.Playing || s.Muted {
		t.Errorf("play should unmute, got %+v", s)
	}
	if engine.muted {
		t.Error("engine should be unmuted")
	}

	p.TogglePlayPause()
	if p.State().Playing || engine.playing {
		t.Error("second toggle should pause")
	}
	if p.State().Muted {
		t.Error("pause should not re-mute")
	}
}

func TestToggleMute_RestoresVolume(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})

	p.SetVolume(0)
	if !p.State().Muted {
		t.Fatal("zero volume should mute")
	}

	p.ToggleMute()
	s := p.State()
	if s.Muted || s.Volume != DefaultVolume {
		t.Errorf("unmute at zero should restore default volume, got %+v", s)
	}
	if engine.level != DefaultVolume || engine.muted {
		t.Errorf("engine = %+v", engine)
	}

	p.ToggleMute()
	if !p.State().Muted || p.State().Volume != DefaultVolume {
		t.Error("muting should keep the level")
	}
}

func TestSetVolume(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})

	tests := []struct {
		in        float64
		volume    float64
		wantMuted bool
	}{
		{0.8, 0.8, false},
		{0.0005, 0.0005, true},
		{1.7, 1, false},
		{-1, 0, true},
	}
	for _, tt := range tests {
		p.SetVolume(tt.in)
		s := p.State()
		if s.Volume != tt.volume || s.Muted != tt.wantMuted {
			t.Errorf("SetVolume(%v) = %v muted=%v, expected %v muted=%v", tt.in, s.Volume, s.Muted, tt.volume, tt.wantMuted)
		}
		if engine.muted != tt.wantMuted {
			t.Errorf("SetVolume(%v): engine muted = %v", tt.in, engine.muted)
		}
	}
}

func TestSeekAndRefresh(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3", Loop: true})
	engine.duration = 3 * time.Minute

	if err := p.Seek(5 * time.Minute); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if engine.position != 3*time.Minute {
		t.Errorf("seek should clamp to duration, got %s", engine.position)
	}

	engine.position = 42 * time.Second
	p.Refresh()
	s := p.State()
	if s.Position != 42*time.Second || s.Duration != 3*time.Minute {
		t.Errorf("refresh = %+v", s)
	}
}

func TestRefresh_StopsAtEndWithoutLoop(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})
	p.TogglePlayPause()

	engine.duration = time.Minute
	engine.position = time.Minute
	p.Refresh()

	s := p.State()
	if s.Playing || s.Position != 0 {
		t.Errorf("finished track should stop and rewind, got %+v", s)
	}
	if engine.playing || engine.position != 0 {
		t.Errorf("engine = %+v", engine)
	}
}

func TestControlsPopup(t *testing.T) {
	p, _, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})
	var changes int
	p.SetChangeCallback(func(State) { changes++ })

	p.HideControls()
	if changes != 0 {
		t.Error("hiding hidden controls should not notify")
	}
	p.ToggleControls()
	if !p.State().ControlsVisible {
		t.Error("controls should be visible")
	}
	p.HideControls()
	if p.State().ControlsVisible || changes != 2 {
		t.Errorf("controls visible=%v changes=%d", p.State().ControlsVisible, changes)
	}
}

func TestClose(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})
	if err := p.Close(); err != nil || !engine.closed {
		t.Errorf("Close = %v, engine closed = %v", err, engine.closed)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{-time.Second, "00:00"},
		{0, "00:00"},
		{150 * time.Second, "02:30"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{61 * time.Minute, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.expected {
			t.Errorf("FormatTime(%s) = %s, expected %s", tt.in, got, tt.expected)
		}
	}
}

func TestGain(t *testing.T) {
	if _, silent := Gain(0.0001); !silent {
		t.Error("level under threshold should be silent")
	}
	if g, silent := Gain(1); silent || g != 0 {
		t.Errorf("full level = %v silent=%v", g, silent)
	}
	if g, _ := Gain(0.5); math.Abs(g+1) > 1e-9 {
		t.Errorf("half level gain = %v, expected -1", g)
	}
}

func TestRestoreVolume_KeepsMute(t *testing.T) {
	p, engine, _ := newTestPlayer(t, model.MusicTrack{Src: "a.mp3"})

	p.RestoreVolume(0.7)
	s := p.State()
	if s.Volume != 0.7 || !s.Muted {
		t.Errorf("restore should keep muted, got %+v", s)
	}
	if engine.level != 0.7 {
		t.Errorf("engine level = %v", engine.level)
	}

	p.RestoreVolume(0)
	if p.State().Volume != 0.7 {
		t.Error("restoring a silent level should be ignored")
	}
}
