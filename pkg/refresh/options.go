package refresh

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a controller at construction time.
type Option func(*Component)

// WithLogger sets the logger used for state transition diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Component) {
		c.log = logger
	}
}

// WithScheduler sets the queue deferred work is posted to.
func WithScheduler(s Scheduler) Option {
	return func(c *Component) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithAnimator sets the animator used for inset, offset and alpha changes.
func WithAnimator(a Animator) Option {
	return func(c *Component) {
		if a != nil {
			c.animator = a
		}
	}
}

// WithAnimationDurations overrides the fast and slow animation durations.
func WithAnimationDurations(fast, slow time.Duration) Option {
	return func(c *Component) {
		if fast > 0 {
			c.fastAnimation = fast
		}
		if slow > 0 {
			c.slowAnimation = slow
		}
	}
}

// WithTimeStore sets where the header records its last refresh time.
func WithTimeStore(store TimeStore) Option {
	return func(c *Component) {
		c.store = store
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Component) {
		if now != nil {
			c.now = now
		}
	}
}

// WithStateHook registers a function called after every state transition.
func WithStateHook(hook func(old, next State)) Option {
	return func(c *Component) {
		c.stateHook = hook
	}
}

// WithAutomaticallyChangeAlpha makes the alpha follow the pulling percent.
func WithAutomaticallyChangeAlpha(enabled bool) Option {
	return func(c *Component) {
		c.SetAutomaticallyChangeAlpha(enabled)
	}
}

// WithExtent sets the height (or width for horizontal edges) of the accessory.
func WithExtent(extent float64) Option {
	return func(c *Component) {
		if extent > 0 {
			c.extent = extent
		}
	}
}
