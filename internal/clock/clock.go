package clock

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultInterval = time.Second
	Format          = "15:04" // 24-hour HH:MM
)

// Option configures a Clock
type Option func(*Clock)

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithNow overrides the time source
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		if now != nil {
			c.now = now
		}
	}
}

// Clock periodically reports the formatted wall-clock time. The callback
// runs on the clock's own goroutine except for the first, synchronous tick.
type Clock struct {
	interval time.Duration
	now      func() time.Time
	onTick   func(string)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped clock that reports through onTick
func New(onTick func(string), opts ...Option) *Clock {
	c := &Clock{
		interval: DefaultInterval,
		now:      time.Now,
		onTick:   onTick,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FormatTime renders t as HH:MM
func FormatTime(t time.Time) string {
	return t.Format(Format)
}

// Now returns the current formatted time
func (c *Clock) Now() string {
	return FormatTime(c.now())
}

// Start emits the current time immediately and then once per interval
// until ctx is cancelled or Stop is called. Starting a running clock is a
// no-op.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	c.emit()

	go func() {
		defer close(done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.emit()
			}
		}
	}()
}

// Stop cancels the ticker and waits for its goroutine to exit
func (c *Clock) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the ticker goroutine is active
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

func (c *Clock) emit() {
	if c.onTick != nil {
		c.onTick(c.Now())
	}
}
