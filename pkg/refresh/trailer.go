package refresh

import "math"

// DefaultTrailerWidth is the width trailers are built with.
const DefaultTrailerWidth = 50.0

// Trailer is the horizontal counterpart of BackFooter: it is revealed by
// dragging past the right end of the content.
type Trailer struct {
	Component

	lastRefreshCount int
	lastRightDelta   float64
}

// NewTrailer builds a trailer that invokes cb when a refresh begins.
func NewTrailer(cb Callback, opts ...Option) *Trailer {
	t := newTrailer(opts)
	t.callback = cb
	return t
}

// NewTrailerWithTarget builds a trailer that notifies target.
func NewTrailerWithTarget(target RefreshTarget, opts ...Option) *Trailer {
	t := newTrailer(opts)
	t.target = target
	return t
}

func newTrailer(opts []Option) *Trailer {
	t := &Trailer{}
	t.init(t, "trailer", DefaultTrailerWidth, opts)
	t.frame.Size.Width = t.extent
	return t
}

// LastRefreshCount is the item count recorded when the last refresh began.
func (t *Trailer) LastRefreshCount() int { return t.lastRefreshCount }

// OnAttach enables horizontal bounce and disables vertical bounce so the
// surface can be dragged past its right edge.
func (t *Trailer) OnAttach(s Surface) {
	if b, ok := s.(BounceConfigurer); ok {
		b.SetAlwaysBounceHorizontal(true)
		b.SetAlwaysBounceVertical(false)
	}
	t.frame.Size.Height = t.Metrics().Height()
	t.frame.Size.Width = t.extent
	t.OnContentSizeChanged(SizeChange{})
}

// OnDetach gives back the right inset held open by a refresh in progress.
func (t *Trailer) OnDetach(Surface) {
	t.restoreInset()
}

// restoreInset reverses the right inset added when the refresh opened.
func (t *Trailer) restoreInset() {
	if t.lastRightDelta == 0 {
		return
	}
	m := t.Metrics()
	m.SetInsetRight(m.InsetRight() - t.lastRightDelta)
	t.lastRightDelta = 0
}

// HappenOffsetX is the offset at which the trailer starts to show.
func (t *Trailer) HappenOffsetX() float64 {
	if deltaW := t.contentBreakWidth(); deltaW > 0 {
		return deltaW - t.originalInset.Left
	}
	return -t.originalInset.Left
}

func (t *Trailer) contentBreakWidth() float64 {
	m := t.Metrics()
	w := m.Width() - t.originalInset.Right - t.originalInset.Left
	return m.ContentWidth() - w
}

func (t *Trailer) OnOffsetChanged(OffsetChange) {
	if t.state == StateRefreshing {
		return
	}

	m := t.Metrics()
	t.originalInset = m.Inset()

	currentOffsetX := m.OffsetX()
	happenOffsetX := t.HappenOffsetX()
	if currentOffsetX <= happenOffsetX {
		return
	}
	width := t.width()
	if width <= 0 {
		return
	}

	percent := (currentOffsetX - happenOffsetX) / width
	if t.state == StateNoMoreData {
		t.SetPullingPercent(percent)
		return
	}

	switch {
	case m.IsDragging():
		t.SetPullingPercent(percent)
		normal2pullingOffsetX := happenOffsetX + width
		if t.state == StateIdle && currentOffsetX > normal2pullingOffsetX {
			t.SetState(StatePulling)
		} else if t.state == StatePulling && currentOffsetX <= normal2pullingOffsetX {
			t.SetState(StateIdle)
		}
	case t.state == StatePulling:
		t.BeginRefreshing()
	case percent < 1:
		t.SetPullingPercent(percent)
	}
}

func (t *Trailer) OnContentSizeChanged(SizeChange) {
	if t.surface == nil {
		return
	}
	m := t.Metrics()
	scrollWidth := m.Width() - t.originalInset.Left - t.originalInset.Right
	t.frame.Origin.X = math.Max(m.ContentWidth(), scrollWidth)
}

// EndRefreshingWithNoMoreData moves to noMoreData on the next tick.
func (t *Trailer) EndRefreshingWithNoMoreData() {
	t.scheduler.Post(func() {
		t.SetState(StateNoMoreData)
	})
}

// ResetNoMoreData moves back to idle on the next tick.
func (t *Trailer) ResetNoMoreData() {
	t.scheduler.Post(func() {
		t.SetState(StateIdle)
	})
}

func (t *Trailer) OnStateChanged(old, next State) {
	m := t.Metrics()

	switch next {
	case StateIdle, StateNoMoreData:
		if old != StateRefreshing {
			return
		}
		offset := m.Offset()
		t.animator.Animate(t.slowAnimation, func() {
			t.restoreInset()
			if t.autoAlpha {
				t.alpha = 0
			}
		}, func(bool) {
			t.SetPullingPercent(0)
		})

		if t.contentBreakWidth() > 0 && m.TotalItemCount() != t.lastRefreshCount {
			m.SetOffset(offset)
		}

	case StateRefreshing:
		t.lastRefreshCount = m.TotalItemCount()

		t.animator.Animate(t.fastAnimation, func() {
			right := t.width() + t.originalInset.Right
			if deltaW := t.contentBreakWidth(); deltaW < 0 {
				right -= deltaW
			}
			t.lastRightDelta = right - m.InsetRight()
			m.SetInsetRight(right)
			m.SetOffsetX(t.HappenOffsetX() + t.width())
		}, func(bool) {
			t.ExecuteRefreshingCallback()
		})
	}
}

var (
	_ Controller     = (*Trailer)(nil)
	_ AttachObserver = (*Trailer)(nil)
)
