package refresh

// DefaultFooterHeight is the height footers are built with.
const DefaultFooterHeight = 50.0

// Footer sits just past the end of the content. The plain footer reserves
// its own height in the bottom inset while it is attached and visible, and
// leaves trigger policy to the caller.
type Footer struct {
	Component

	reservesInset      bool
	ignoredBottomInset float64
	endAnimationBegin  func()
	endCompletion      func()
}

// NewFooter builds a plain footer that invokes cb when a refresh begins.
func NewFooter(cb Callback, opts ...Option) *Footer {
	f := &Footer{}
	f.initFooter(f, "footer", true, opts)
	f.callback = cb
	return f
}

// NewFooterWithTarget builds a plain footer that notifies target.
func NewFooterWithTarget(target RefreshTarget, opts ...Option) *Footer {
	f := &Footer{}
	f.initFooter(f, "footer", true, opts)
	f.target = target
	return f
}

func (f *Footer) initFooter(owner Controller, edge string, reservesInset bool, opts []Option) {
	f.reservesInset = reservesInset
	f.init(owner, edge, DefaultFooterHeight, opts)
	f.frame.Size.Height = f.extent
}

// IgnoredBottomInset is the part of the bottom inset the host wants excluded
// from footer placement.
func (f *Footer) IgnoredBottomInset() float64 { return f.ignoredBottomInset }

func (f *Footer) SetIgnoredBottomInset(v float64) {
	f.ignoredBottomInset = v
	f.place()
}

// SetEndRefreshingAnimationBegin runs fn when the collapse animation starts.
func (f *Footer) SetEndRefreshingAnimationBegin(fn func()) { f.endAnimationBegin = fn }

// SetEndRefreshingCompletion runs fn after the collapse animation ends.
func (f *Footer) SetEndRefreshingCompletion(fn func()) { f.endCompletion = fn }

// EndRefreshingWithNoMoreData moves to noMoreData on the next tick.
func (f *Footer) EndRefreshingWithNoMoreData() {
	f.scheduler.Post(func() {
		f.SetState(StateNoMoreData)
	})
}

// ResetNoMoreData moves back to idle on the next tick.
func (f *Footer) ResetNoMoreData() {
	f.scheduler.Post(func() {
		f.SetState(StateIdle)
	})
}

// SetHidden toggles visibility, releasing or reserving the bottom inset.
func (f *Footer) SetHidden(hidden bool) {
	wasHidden := f.hidden
	f.hidden = hidden
	if !f.reservesInset || f.surface == nil || wasHidden == hidden {
		return
	}

	m := f.Metrics()
	if hidden {
		m.SetInsetBottom(m.InsetBottom() - f.height())
		return
	}
	m.SetInsetBottom(m.InsetBottom() + f.height())
	f.place()
}

func (f *Footer) OnAttach(Surface) {
	f.frame.Size.Width = f.Metrics().Width()
	if f.reservesInset && !f.hidden {
		m := f.Metrics()
		m.SetInsetBottom(m.InsetBottom() + f.height())
	}
	f.place()
}

func (f *Footer) OnDetach(Surface) {
	if f.reservesInset && !f.hidden {
		m := f.Metrics()
		m.SetInsetBottom(m.InsetBottom() - f.height())
	}
}

func (f *Footer) OnContentSizeChanged(SizeChange) {
	f.place()
}

// place pins the footer just past the content end.
func (f *Footer) place() {
	if f.surface == nil {
		return
	}
	f.frame.Origin.Y = f.Metrics().ContentHeight() + f.ignoredBottomInset
}

var (
	_ Controller     = (*Footer)(nil)
	_ AttachObserver = (*Footer)(nil)
)
