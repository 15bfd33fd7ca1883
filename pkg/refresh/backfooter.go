package refresh

import "math"

// BackFooter is revealed by dragging past the content end and refreshes on
// release. While refreshing it widens the bottom inset so it stays visible.
type BackFooter struct {
	Footer

	lastRefreshCount int
	lastBottomDelta  float64
}

// NewBackFooter builds a back footer that invokes cb when a refresh begins.
func NewBackFooter(cb Callback, opts ...Option) *BackFooter {
	b := newBackFooter(opts)
	b.callback = cb
	return b
}

// NewBackFooterWithTarget builds a back footer that notifies target.
func NewBackFooterWithTarget(target RefreshTarget, opts ...Option) *BackFooter {
	b := newBackFooter(opts)
	b.target = target
	return b
}

func newBackFooter(opts []Option) *BackFooter {
	b := &BackFooter{}
	b.initFooter(b, "backFooter", false, opts)
	return b
}

func (b *BackFooter) OnAttach(Surface) {
	b.frame.Size.Width = b.Metrics().Width()
	b.OnContentSizeChanged(SizeChange{})
}

// LastRefreshCount is the item count recorded when the last refresh began.
// OnDetach gives back the bottom inset held open by a refresh in progress.
func (b *BackFooter) OnDetach(s Surface) {
	b.Footer.OnDetach(s)
	b.restoreInset()
}

// restoreInset reverses the bottom inset added when the refresh opened.
func (b *BackFooter) restoreInset() {
	if b.lastBottomDelta == 0 {
		return
	}
	m := b.Metrics()
	m.SetInsetBottom(m.InsetBottom() - b.lastBottomDelta)
	b.lastBottomDelta = 0
}

func (b *BackFooter) LastRefreshCount() int { return b.lastRefreshCount }

// HappenOffsetY is the offset at which the footer starts to show, the zero
// point of the pulling percent.
func (b *BackFooter) HappenOffsetY() float64 {
	if deltaH := b.contentBreakHeight(); deltaH > 0 {
		return deltaH - b.originalInset.Top
	}
	return -b.originalInset.Top
}

// contentBreakHeight is how far the content overflows the usable viewport;
// negative when the content is shorter.
func (b *BackFooter) contentBreakHeight() float64 {
	m := b.Metrics()
	h := m.Height() - b.originalInset.Bottom - b.originalInset.Top
	return m.ContentHeight() - h
}

func (b *BackFooter) OnOffsetChanged(OffsetChange) {
	if b.state == StateRefreshing {
		return
	}

	m := b.Metrics()
	b.originalInset = m.Inset()

	currentOffsetY := m.OffsetY()
	happenOffsetY := b.HappenOffsetY()
	if currentOffsetY <= happenOffsetY {
		return
	}
	height := b.height()
	if height <= 0 {
		return
	}

	percent := (currentOffsetY - happenOffsetY) / height
	if b.state == StateNoMoreData {
		b.SetPullingPercent(percent)
		return
	}

	switch {
	case m.IsDragging():
		b.SetPullingPercent(percent)
		normal2pullingOffsetY := happenOffsetY + height
		if b.state == StateIdle && currentOffsetY > normal2pullingOffsetY {
			b.SetState(StatePulling)
		} else if b.state == StatePulling && currentOffsetY <= normal2pullingOffsetY {
			b.SetState(StateIdle)
		}
	case b.state == StatePulling:
		b.BeginRefreshing()
	case percent < 1:
		b.SetPullingPercent(percent)
	}
}

func (b *BackFooter) OnContentSizeChanged(change SizeChange) {
	if b.surface == nil {
		return
	}
	m := b.Metrics()

	contentHeight := change.New.Height
	if contentHeight == 0 {
		contentHeight = m.ContentHeight()
	}
	contentHeight += b.ignoredBottomInset
	scrollHeight := m.Height() - b.originalInset.Top - b.originalInset.Bottom + b.ignoredBottomInset

	b.frame.Origin.Y = math.Max(contentHeight, scrollHeight)
}

func (b *BackFooter) OnStateChanged(old, next State) {
	m := b.Metrics()

	switch next {
	case StateIdle, StateNoMoreData:
		if old != StateRefreshing {
			return
		}
		offset := m.Offset()
		b.animator.Animate(b.slowAnimation, func() {
			if b.endAnimationBegin != nil {
				b.endAnimationBegin()
			}
			b.restoreInset()
			if b.autoAlpha {
				b.alpha = 0
			}
		}, func(bool) {
			b.SetPullingPercent(0)
			if b.endCompletion != nil {
				b.endCompletion()
			}
		})

		// new rows arrived: keep the reader where they are and let the
		// content reflow under the collapsed footer
		if b.contentBreakHeight() > 0 && m.TotalItemCount() != b.lastRefreshCount {
			m.SetOffset(offset)
		}

	case StateRefreshing:
		b.lastRefreshCount = m.TotalItemCount()

		b.animator.Animate(b.fastAnimation, func() {
			bottom := b.height() + b.originalInset.Bottom
			if deltaH := b.contentBreakHeight(); deltaH < 0 {
				bottom -= deltaH
			}
			b.lastBottomDelta = bottom - m.InsetBottom()
			m.SetInsetBottom(bottom)
			m.SetOffsetY(b.HappenOffsetY() + b.height())
		}, func(bool) {
			b.ExecuteRefreshingCallback()
		})
	}
}

var (
	_ Controller     = (*BackFooter)(nil)
	_ AttachObserver = (*BackFooter)(nil)
)
