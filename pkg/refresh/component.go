package refresh

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultFastAnimation = 250 * time.Millisecond
	DefaultSlowAnimation = 400 * time.Millisecond
)

// Callback is invoked once per entry into StateRefreshing.
type Callback func()

// RefreshTarget receives refresh requests when a controller is built with a
// target instead of a closure.
type RefreshTarget interface {
	Refresh(sender Controller)
}

// Controller is implemented by every edge controller.
type Controller interface {
	Observer
	// OnStateChanged runs after the state moved from old to next. It is never
	// called with old == next.
	OnStateChanged(old, next State)
	Base() *Component
}

// AttachObserver is implemented by controllers that reserve space or lay
// themselves out when they are attached to or detached from a surface.
type AttachObserver interface {
	OnAttach(s Surface)
	OnDetach(s Surface)
}

// Component holds the bookkeeping shared by all edge controllers: state,
// pulling percent, alpha, the inset baseline and the refresh callback.
type Component struct {
	owner Controller
	edge  string

	surface Surface
	frame   Rect
	extent  float64
	alpha   float64
	hidden  bool

	state          State
	pullingPercent float64
	autoAlpha      bool
	originalInset  Insets
	needsDisplay   bool

	callback Callback
	target   RefreshTarget

	fastAnimation time.Duration
	slowAnimation time.Duration
	scheduler     Scheduler
	animator      Animator
	store         TimeStore
	now           func() time.Time
	stateHook     func(old, next State)
	log           zerolog.Logger
}

func (c *Component) init(owner Controller, edge string, extent float64, opts []Option) {
	c.owner = owner
	c.edge = edge
	c.extent = extent
	c.alpha = 1
	c.state = StateIdle
	c.fastAnimation = DefaultFastAnimation
	c.slowAnimation = DefaultSlowAnimation
	c.scheduler = MainQueue()
	c.animator = Immediate
	c.now = time.Now
	c.log = zerolog.Nop()

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.log = c.log.With().Str("edge", edge).Logger()
}

// Base returns the component itself.
func (c *Component) Base() *Component { return c }

// Edge names the edge the controller is attached to.
func (c *Component) Edge() string { return c.edge }

// State returns the current state.
func (c *Component) State() State { return c.state }

// SetState moves the state machine. Setting the current state is a no-op.
func (c *Component) SetState(state State) {
	old := c.state
	if old == state {
		return
	}
	c.state = state
	c.log.Debug().Stringer("from", old).Stringer("to", state).Msg("state transition")

	if c.owner != nil {
		c.owner.OnStateChanged(old, state)
	}
	if c.stateHook != nil {
		c.stateHook(old, state)
	}
}

// IsRefreshing reports whether the state is refreshing or willRefresh.
func (c *Component) IsRefreshing() bool { return c.state.IsRefreshing() }

// PullingPercent is the revealed fraction of the accessory.
func (c *Component) PullingPercent() float64 { return c.pullingPercent }

// SetPullingPercent records the revealed fraction and syncs alpha unless a
// refresh is running.
func (c *Component) SetPullingPercent(percent float64) {
	c.pullingPercent = percent
	if c.IsRefreshing() {
		return
	}
	if c.autoAlpha {
		c.alpha = percent
	}
}

// AutomaticallyChangeAlpha reports whether alpha follows the pulling percent.
func (c *Component) AutomaticallyChangeAlpha() bool { return c.autoAlpha }

// SetAutomaticallyChangeAlpha toggles alpha linkage. Disabling it restores
// full opacity.
func (c *Component) SetAutomaticallyChangeAlpha(enabled bool) {
	c.autoAlpha = enabled
	if c.IsRefreshing() {
		return
	}
	if enabled {
		c.alpha = c.pullingPercent
	} else {
		c.alpha = 1
	}
}

// Alpha is the opacity the host should draw the accessory with.
func (c *Component) Alpha() float64 { return c.alpha }

// Frame is the accessory's frame in surface coordinates.
func (c *Component) Frame() Rect { return c.frame }

// Hidden reports whether the accessory is hidden.
func (c *Component) Hidden() bool { return c.hidden }

// SetHidden hides or shows the accessory.
func (c *Component) SetHidden(hidden bool) { c.hidden = hidden }

// Surface returns the attached surface, or nil.
func (c *Component) Surface() Surface { return c.surface }

// Metrics returns geometry helpers for the attached surface.
func (c *Component) Metrics() Metrics { return MetricsOf(c.surface) }

// OriginalInset is the inset baseline captured at the last relevant offset
// notification.
func (c *Component) OriginalInset() Insets { return c.originalInset }

// FastAnimation and SlowAnimation are the configured durations.
func (c *Component) FastAnimation() time.Duration { return c.fastAnimation }
func (c *Component) SlowAnimation() time.Duration { return c.slowAnimation }

// SetCallback installs a closure and drops any target.
func (c *Component) SetCallback(cb Callback) {
	c.callback = cb
	c.target = nil
}

// SetTarget installs a target and drops any closure.
func (c *Component) SetTarget(target RefreshTarget) {
	c.target = target
	c.callback = nil
}

// Attach binds the controller to a surface and subscribes to its
// notifications. Attaching to another surface detaches from the current one.
func (c *Component) Attach(s Surface) {
	if s == nil || c.surface == s {
		return
	}
	if c.surface != nil {
		c.Detach()
	}

	c.surface = s
	c.originalInset = c.Metrics().Inset()
	s.AddObserver(c.owner)
	if hook, ok := c.owner.(AttachObserver); ok {
		hook.OnAttach(s)
	}
	c.log.Debug().Msg("attached")

	if c.needsDisplay {
		c.scheduler.Post(c.display)
	}
}

// Detach unsubscribes from the surface and releases any reserved inset.
func (c *Component) Detach() {
	s := c.surface
	if s == nil {
		return
	}
	if hook, ok := c.owner.(AttachObserver); ok {
		hook.OnDetach(s)
	}
	s.RemoveObserver(c.owner)
	c.surface = nil
	c.log.Debug().Msg("detached")
}

// IsAttached reports whether the controller has a surface.
func (c *Component) IsAttached() bool { return c.surface != nil }

// display resolves a refresh requested before the controller was attached.
func (c *Component) display() {
	c.needsDisplay = false
	if c.state == StateWillRefresh && c.surface != nil {
		c.SetState(StateRefreshing)
	}
}

// BeginRefreshing enters the refreshing state, or willRefresh when the
// controller is not attached yet.
func (c *Component) BeginRefreshing() {
	c.animator.Animate(c.fastAnimation, func() {
		c.alpha = 1
	}, nil)
	c.SetPullingPercent(1)

	if c.surface != nil {
		c.SetState(StateRefreshing)
		return
	}
	if c.state != StateRefreshing {
		c.SetState(StateWillRefresh)
		c.needsDisplay = true
	}
}

// EndRefreshing returns to idle on the next tick.
func (c *Component) EndRefreshing() {
	c.scheduler.Post(func() {
		c.SetState(StateIdle)
	})
}

// ExecuteRefreshingCallback invokes the callback or target on the next tick.
func (c *Component) ExecuteRefreshingCallback() {
	c.scheduler.Post(func() {
		c.log.Debug().Msg("refresh callback")
		switch {
		case c.callback != nil:
			c.callback()
		case c.target != nil:
			c.target.Refresh(c.owner)
		}
	})
}

// OnStateChanged fires the callback on entry into refreshing.
func (c *Component) OnStateChanged(_, next State) {
	if next == StateRefreshing {
		c.ExecuteRefreshingCallback()
	}
}

func (c *Component) OnOffsetChanged(OffsetChange)       {}
func (c *Component) OnContentSizeChanged(SizeChange)    {}
func (c *Component) OnGestureStateChanged(GestureState) {}

// height is the vertical extent of the accessory.
func (c *Component) height() float64 { return c.frame.Size.Height }

// width is the horizontal extent of the accessory.
func (c *Component) width() float64 { return c.frame.Size.Width }

var _ Controller = (*Component)(nil)
