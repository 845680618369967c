package desktop

import (
	"math/rand/v2"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/wm"
)

// LinkOpener opens dock links outside the desktop
type LinkOpener interface {
	OpenLink(url string, external bool) error
}

// LinkOpenerFunc adapts a plain function to LinkOpener
type LinkOpenerFunc func(url string, external bool) error

// OpenLink calls f
func (f LinkOpenerFunc) OpenLink(url string, external bool) error {
	return f(url, external)
}

// Option configures a Desktop
type Option func(*Desktop)

// WithLogger sets the logger used for absorbed failures
func WithLogger(l *logger.Logger) Option {
	return func(d *Desktop) {
		if l != nil {
			d.log = l
		}
	}
}

// WithRand sets the random source for window and icon placement
func WithRand(r *rand.Rand) Option {
	return func(d *Desktop) {
		if r != nil {
			d.rng = r
		}
	}
}

// WithViewport sets the initial desktop dimensions
func WithViewport(width, height float32) Option {
	return func(d *Desktop) {
		d.bounds = wm.NewBounds(width, height)
	}
}

// WithClickThreshold sets how far the pointer may travel before a press on
// an image icon stops counting as a click
func WithClickThreshold(px float32) Option {
	return func(d *Desktop) {
		d.clickThreshold = px
	}
}

// WithLinkOpener sets the handler for dock links
func WithLinkOpener(o LinkOpener) Option {
	return func(d *Desktop) {
		d.opener = o
	}
}

// WithStackCounter shares a stack counter with the desktop's registry
func WithStackCounter(c *wm.StackCounter) Option {
	return func(d *Desktop) {
		d.counter = c
	}
}
