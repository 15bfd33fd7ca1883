package refresh

import "time"

const (
	DefaultHeaderHeight       = 44.0
	DefaultLastUpdatedTimeKey = "PLRefreshHeaderLastUpdatedTimeKey"
)

// Header pulls down from the top edge and refreshes on release.
type Header struct {
	Component

	insetTopDelta      float64
	insetApplied       bool
	lastUpdatedTimeKey string
	endCompletion      func()
}

// NewHeader builds a header that invokes cb when a refresh begins.
func NewHeader(cb Callback, opts ...Option) *Header {
	h := newHeader(opts)
	h.callback = cb
	return h
}

// NewHeaderWithTarget builds a header that notifies target when a refresh
// begins.
func NewHeaderWithTarget(target RefreshTarget, opts ...Option) *Header {
	h := newHeader(opts)
	h.target = target
	return h
}

func newHeader(opts []Option) *Header {
	h := &Header{lastUpdatedTimeKey: DefaultLastUpdatedTimeKey}
	h.init(h, "header", DefaultHeaderHeight, opts)
	h.SetHeight(h.extent)
	return h
}

// SetHeight resizes the header; it always sits just above the content.
func (h *Header) SetHeight(height float64) {
	h.frame.Size.Height = height
	h.frame.Origin.Y = -height
}

// LastUpdatedTimeKey is the storage key for the last refresh time.
func (h *Header) LastUpdatedTimeKey() string { return h.lastUpdatedTimeKey }

// SetLastUpdatedTimeKey changes the storage key.
func (h *Header) SetLastUpdatedTimeKey(key string) {
	if key != "" {
		h.lastUpdatedTimeKey = key
	}
}

// LastUpdatedTime reads the stored time of the last completed refresh.
func (h *Header) LastUpdatedTime() (time.Time, bool) {
	if h.store == nil {
		return time.Time{}, false
	}
	return h.store.LastUpdated(h.lastUpdatedTimeKey)
}

// SetEndRefreshingCompletion runs fn after the header has collapsed.
func (h *Header) SetEndRefreshingCompletion(fn func()) { h.endCompletion = fn }

func (h *Header) OnAttach(s Surface) {
	h.frame.Size.Width = h.Metrics().Width()
	h.frame.Origin.X = -h.originalInset.Left
}

// OnDetach gives back the top inset held open by a refresh in progress.
func (h *Header) OnDetach(Surface) {
	h.restoreInset()
}

// restoreInset reverses the top inset added when the refresh opened, once.
func (h *Header) restoreInset() {
	if !h.insetApplied {
		return
	}
	m := h.Metrics()
	m.SetInsetTop(m.InsetTop() + h.insetTopDelta)
	h.insetTopDelta = 0
	h.insetApplied = false
}

func (h *Header) OnOffsetChanged(OffsetChange) {
	if h.state == StateRefreshing {
		return
	}

	m := h.Metrics()
	h.originalInset = m.Inset()

	offsetY := m.OffsetY()
	happenOffsetY := -h.originalInset.Top
	// scrolled up and the header is out of sight
	if offsetY > happenOffsetY {
		return
	}
	height := h.height()
	if height <= 0 {
		return
	}

	normal2pullingOffsetY := happenOffsetY - height
	percent := (happenOffsetY - offsetY) / height

	switch {
	case m.IsDragging():
		h.SetPullingPercent(percent)
		if h.state == StateIdle && offsetY < normal2pullingOffsetY {
			h.SetState(StatePulling)
		} else if h.state == StatePulling && offsetY >= normal2pullingOffsetY {
			h.SetState(StateIdle)
		}
	case h.state == StatePulling:
		h.BeginRefreshing()
	case percent < 1:
		h.SetPullingPercent(percent)
	}
}

func (h *Header) OnStateChanged(old, next State) {
	switch next {
	case StateIdle:
		if old != StateRefreshing {
			return
		}
		h.persistLastUpdated()

		h.animator.Animate(h.slowAnimation, func() {
			h.restoreInset()
			if h.autoAlpha {
				h.alpha = 0
			}
		}, func(bool) {
			h.SetPullingPercent(0)
			if h.endCompletion != nil {
				h.endCompletion()
			}
		})

	case StateRefreshing:
		h.scheduler.Post(func() {
			if h.state != StateRefreshing {
				return
			}
			m := h.Metrics()
			h.animator.Animate(h.fastAnimation, func() {
				top := h.originalInset.Top + h.height()
				h.insetTopDelta = h.originalInset.Top - top
				h.insetApplied = true
				m.SetInsetTop(top)
				m.SetOffsetY(-top)
			}, func(bool) {
				h.ExecuteRefreshingCallback()
			})
		})
	}
}

func (h *Header) persistLastUpdated() {
	if h.store == nil {
		return
	}
	if err := h.store.SetLastUpdated(h.lastUpdatedTimeKey, h.now()); err != nil {
		h.log.Warn().Err(err).Str("key", h.lastUpdatedTimeKey).Msg("failed to persist last updated time")
	}
}

var (
	_ Controller     = (*Header)(nil)
	_ AttachObserver = (*Header)(nil)
)
