package refresh

// UnlimitedTriggers disables the auto-trigger budget.
const UnlimitedTriggers = -1

// AutoFooter begins refreshing by itself once it has scrolled into view.
type AutoFooter struct {
	Footer

	automaticallyRefresh bool
	triggerPercent       float64
	autoTriggerTimes     int
	leftTriggerTimes     int
	triggerByDrag        bool
}

// NewAutoFooter builds an auto footer that invokes cb when a refresh begins.
func NewAutoFooter(cb Callback, opts ...Option) *AutoFooter {
	a := newAutoFooter(opts)
	a.callback = cb
	return a
}

// NewAutoFooterWithTarget builds an auto footer that notifies target.
func NewAutoFooterWithTarget(target RefreshTarget, opts ...Option) *AutoFooter {
	a := newAutoFooter(opts)
	a.target = target
	return a
}

func newAutoFooter(opts []Option) *AutoFooter {
	a := &AutoFooter{
		automaticallyRefresh: true,
		triggerPercent:       1,
		autoTriggerTimes:     1,
		leftTriggerTimes:     1,
	}
	a.initFooter(a, "autoFooter", true, opts)
	return a
}

// AutomaticallyRefresh reports whether the footer triggers on appearance.
func (a *AutoFooter) AutomaticallyRefresh() bool { return a.automaticallyRefresh }

func (a *AutoFooter) SetAutomaticallyRefresh(enabled bool) { a.automaticallyRefresh = enabled }

// TriggerAutomaticallyRefreshPercent is how much of the footer must be
// revealed before it triggers.
func (a *AutoFooter) TriggerAutomaticallyRefreshPercent() float64 { return a.triggerPercent }

func (a *AutoFooter) SetTriggerAutomaticallyRefreshPercent(percent float64) {
	a.triggerPercent = percent
}

// AutoTriggerTimes is the drag-trigger budget per gesture; UnlimitedTriggers
// removes the cap.
func (a *AutoFooter) AutoTriggerTimes() int { return a.autoTriggerTimes }

// SetAutoTriggerTimes changes the budget and refills it.
func (a *AutoFooter) SetAutoTriggerTimes(times int) {
	a.autoTriggerTimes = times
	a.ResetTriggerTimes()
}

// LeftTriggerTimes is what remains of the budget.
func (a *AutoFooter) LeftTriggerTimes() int { return a.leftTriggerTimes }

// ResetTriggerTimes refills the budget.
func (a *AutoFooter) ResetTriggerTimes() {
	a.leftTriggerTimes = a.autoTriggerTimes
}

func (a *AutoFooter) unlimitedTrigger() bool {
	return a.autoTriggerTimes < 0
}

// BeginRefreshing starts a refresh unless it was triggered by a drag and the
// budget is spent.
func (a *AutoFooter) BeginRefreshing() {
	if a.triggerByDrag && a.leftTriggerTimes <= 0 && !a.unlimitedTrigger() {
		a.triggerByDrag = false
		a.log.Debug().Msg("auto trigger budget exhausted")
		return
	}
	a.Component.BeginRefreshing()
}

// SetHidden toggles visibility; hiding also resets the state to idle.
func (a *AutoFooter) SetHidden(hidden bool) {
	if hidden && !a.hidden {
		a.SetState(StateIdle)
	}
	a.Footer.SetHidden(hidden)
}

func (a *AutoFooter) OnOffsetChanged(change OffsetChange) {
	if a.state != StateIdle || !a.automaticallyRefresh || a.frame.Origin.Y == 0 || a.surface == nil {
		return
	}

	m := a.Metrics()
	inset := m.Inset()
	height := a.height()
	// content shorter than the viewport is handled when the gesture ends
	if inset.Top+m.ContentHeight() <= m.Height() {
		return
	}
	threshold := m.ContentHeight() - m.Height() + height*a.triggerPercent + inset.Bottom - height
	if m.OffsetY() < threshold {
		return
	}
	// bouncing back
	if change.New.Y <= change.Old.Y {
		return
	}

	if m.IsDragging() {
		a.triggerByDrag = true
	}
	a.BeginRefreshing()
}

func (a *AutoFooter) OnGestureStateChanged(state GestureState) {
	if a.state != StateIdle || a.surface == nil {
		return
	}

	m := a.Metrics()
	inset := m.Inset()
	switch state {
	case GestureEnded:
		if inset.Top+m.ContentHeight() <= m.Height() && m.OffsetY() >= -inset.Top {
			a.triggerByDrag = true
			a.BeginRefreshing()
		} else if m.OffsetY() >= m.ContentHeight()+inset.Bottom-m.Height() {
			a.triggerByDrag = true
			a.BeginRefreshing()
		}
	case GestureBegan:
		a.ResetTriggerTimes()
	}
}

func (a *AutoFooter) OnStateChanged(old, next State) {
	switch next {
	case StateRefreshing:
		a.ExecuteRefreshingCallback()
	case StateIdle, StateNoMoreData:
		if a.triggerByDrag {
			if !a.unlimitedTrigger() {
				a.leftTriggerTimes--
			}
			a.triggerByDrag = false
		}

		m := a.Metrics()
		if old == StateRefreshing && m.PagingEnabled() {
			offset := m.Offset()
			offset.Y -= m.InsetBottom()
			a.animator.Animate(a.slowAnimation, func() {
				m.SetOffset(offset)
			}, nil)
		}
	}
}

var (
	_ Controller     = (*AutoFooter)(nil)
	_ AttachObserver = (*AutoFooter)(nil)
)
