package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/wundara/folio-desktop/internal/portfolio"
)

// Speaker settings shared by every engine in the process.
const (
	SampleRate      beep.SampleRate = 44100
	BufferDuration                  = 100 * time.Millisecond
	ResampleQuality                 = 4
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// ErrUnsupportedFormat is returned for files that are neither MP3 nor WAV
var ErrUnsupportedFormat = errors.New("unsupported audio format")

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(BufferDuration))
	})
	return speakerErr
}

// BeepEngine plays an MP3 or WAV track through the system speaker. The
// track is decoded on the first Play.
type BeepEngine struct {
	src  string
	loop bool

	stream beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume

	level float64
	muted bool
}

// NewBeepEngine creates an engine for the track at src, a file path or an
// http(s) URL
func NewBeepEngine(src string, loop bool) *BeepEngine {
	return &BeepEngine{src: src, loop: loop, level: DefaultVolume, muted: true}
}

func (e *BeepEngine) load() error {
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}

	rc, err := openSource(e.src)
	if err != nil {
		return err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(e.src)) {
	case ".mp3":
		stream, format, err = mp3.Decode(rc)
	case ".wav":
		stream, format, err = wav.Decode(rc)
	default:
		rc.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.src)
	}
	if err != nil {
		rc.Close()
		return fmt.Errorf("failed to decode %s: %w", e.src, err)
	}

	var s beep.Streamer = stream
	if e.loop {
		s = beep.Loop(-1, stream)
	}
	if format.SampleRate != SampleRate {
		s = beep.Resample(ResampleQuality, format.SampleRate, SampleRate, s)
	}

	e.stream = stream
	e.format = format
	e.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	e.volume = &effects.Volume{Streamer: e.ctrl, Base: 2}
	e.applyVolume()
	speaker.Play(e.volume)
	return nil
}

func openSource(src string) (io.ReadCloser, error) {
	if portfolio.IsURL(src) {
		resp, err := http.Get(src)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src, err)
	}
	return f, nil
}

// Play starts or resumes playback
func (e *BeepEngine) Play() error {
	if e.ctrl == nil {
		if err := e.load(); err != nil {
			return err
		}
	}
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause halts playback
func (e *BeepEngine) Pause() {
	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
}

// SetVolume sets the linear level in [0,1]
func (e *BeepEngine) SetVolume(level float64) {
	e.level = level
	e.applyVolume()
}

// SetMuted silences output without losing the level
func (e *BeepEngine) SetMuted(muted bool) {
	e.muted = muted
	e.applyVolume()
}

func (e *BeepEngine) applyVolume() {
	if e.volume == nil {
		return
	}
	gain, silent := Gain(e.level)
	speaker.Lock()
	e.volume.Volume = gain
	e.volume.Silent = silent || e.muted
	speaker.Unlock()
}

// Gain maps a linear level onto effects.Volume's base-2 exponent
func Gain(level float64) (gain float64, silent bool) {
	if level < MuteThreshold {
		return 0, true
	}
	return math.Log2(min(level, 1)), false
}

// Seek moves the playhead
func (e *BeepEngine) Seek(pos time.Duration) error {
	if e.stream == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	n := min(e.format.SampleRate.N(pos), e.stream.Len())
	if err := e.stream.Seek(n); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// Position returns the playhead
func (e *BeepEngine) Position() time.Duration {
	if e.stream == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return e.format.SampleRate.D(e.stream.Position())
}

// Duration returns the track length
func (e *BeepEngine) Duration() time.Duration {
	if e.stream == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return e.format.SampleRate.D(e.stream.Len())
}

// Close stops playback and releases the decoder
func (e *BeepEngine) Close() error {
	if e.stream == nil {
		return nil
	}
	speaker.Lock()
	e.ctrl.Streamer = nil
	speaker.Unlock()
	err := e.stream.Close()
	e.stream = nil
	e.ctrl = nil
	e.volume = nil
	return err
}
