// Package scrollview provides an in-memory scrollable surface that publishes
// offset, content size and gesture notifications to refresh controllers.
package scrollview

import (
	"math"
	"slices"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

// ScrollView is a refresh.Surface held entirely in memory. It is not safe for
// concurrent use; drive it from the UI goroutine.
type ScrollView struct {
	offset   refresh.Point
	content  refresh.Size
	bounds   refresh.Size
	inset    refresh.Insets
	safeArea refresh.Insets

	dragging bool
	gesture  refresh.GestureState
	paging   bool
	bounceH  bool
	bounceV  bool

	sections  []int
	observers []refresh.Observer
}

// New creates a scroll view with the given viewport size.
func New(bounds refresh.Size) *ScrollView {
	return &ScrollView{bounds: bounds, bounceV: true}
}

func (v *ScrollView) ContentOffset() refresh.Point { return v.offset }

// SetContentOffset moves the content and notifies observers, even when the
// value is unchanged.
func (v *ScrollView) SetContentOffset(offset refresh.Point) {
	old := v.offset
	v.offset = offset
	v.each(func(o refresh.Observer) {
		o.OnOffsetChanged(refresh.OffsetChange{Old: old, New: offset})
	})
}

func (v *ScrollView) ContentSize() refresh.Size { return v.content }

// SetContentSize resizes the content and notifies observers.
func (v *ScrollView) SetContentSize(size refresh.Size) {
	old := v.content
	v.content = size
	v.each(func(o refresh.Observer) {
		o.OnContentSizeChanged(refresh.SizeChange{Old: old, New: size})
	})
}

func (v *ScrollView) ContentInset() refresh.Insets     { return v.inset }
func (v *ScrollView) SetContentInset(i refresh.Insets) { v.inset = i }

// SafeAreaInsets are added on top of the content inset to form the adjusted
// inset.
func (v *ScrollView) SafeAreaInsets() refresh.Insets     { return v.safeArea }
func (v *ScrollView) SetSafeAreaInsets(i refresh.Insets) { v.safeArea = i }

func (v *ScrollView) AdjustedContentInset() refresh.Insets {
	return v.inset.Add(v.safeArea)
}

func (v *ScrollView) Bounds() refresh.Size     { return v.bounds }
func (v *ScrollView) SetBounds(b refresh.Size) { v.bounds = b }

func (v *ScrollView) IsDragging() bool                   { return v.dragging }
func (v *ScrollView) GestureState() refresh.GestureState { return v.gesture }

func (v *ScrollView) IsPagingEnabled() bool        { return v.paging }
func (v *ScrollView) SetPagingEnabled(paging bool) { v.paging = paging }

func (v *ScrollView) AlwaysBounceHorizontal() bool     { return v.bounceH }
func (v *ScrollView) AlwaysBounceVertical() bool       { return v.bounceV }
func (v *ScrollView) SetAlwaysBounceHorizontal(b bool) { v.bounceH = b }
func (v *ScrollView) SetAlwaysBounceVertical(b bool)   { v.bounceV = b }

// SetSections sets the item count of every section.
func (v *ScrollView) SetSections(counts ...int) {
	v.sections = slices.Clone(counts)
}

func (v *ScrollView) NumberOfSections() int { return len(v.sections) }

func (v *ScrollView) NumberOfItems(section int) int {
	if section < 0 || section >= len(v.sections) {
		return 0
	}
	return v.sections[section]
}

func (v *ScrollView) AddObserver(o refresh.Observer) {
	if o == nil || slices.Contains(v.observers, o) {
		return
	}
	v.observers = append(v.observers, o)
}

func (v *ScrollView) RemoveObserver(o refresh.Observer) {
	v.observers = slices.DeleteFunc(v.observers, func(x refresh.Observer) bool { return x == o })
}

// Observers returns the number of subscribed observers.
func (v *ScrollView) Observers() int { return len(v.observers) }

// BeginDrag starts a pan gesture.
func (v *ScrollView) BeginDrag() {
	v.dragging = true
	v.setGesture(refresh.GestureBegan)
}

// DragBy moves the content by delta as part of the current gesture.
func (v *ScrollView) DragBy(delta refresh.Point) {
	if !v.dragging {
		v.BeginDrag()
	}
	v.gesture = refresh.GestureChanged
	v.ScrollBy(delta)
}

// EndDrag releases the gesture. Observers see the gesture end and then one
// offset notification with dragging already false, the first frame after the
// finger lifts.
func (v *ScrollView) EndDrag() {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.setGesture(refresh.GestureEnded)
	v.SetContentOffset(v.offset)
}

// ScrollBy moves the content without touching the gesture state.
func (v *ScrollView) ScrollBy(delta refresh.Point) {
	v.SetContentOffset(refresh.Point{X: v.offset.X + delta.X, Y: v.offset.Y + delta.Y})
}

// MaxOffset is the largest offset that keeps the content end, plus the bottom
// and right insets, inside the viewport.
func (v *ScrollView) MaxOffset() refresh.Point {
	inset := v.AdjustedContentInset()
	return refresh.Point{
		X: math.Max(v.content.Width+inset.Right-v.bounds.Width, -inset.Left),
		Y: math.Max(v.content.Height+inset.Bottom-v.bounds.Height, -inset.Top),
	}
}

// MinOffset is the smallest offset that keeps the top and left insets visible.
func (v *ScrollView) MinOffset() refresh.Point {
	inset := v.AdjustedContentInset()
	return refresh.Point{X: -inset.Left, Y: -inset.Top}
}

// Settle bounces the offset back into range once no gesture holds it.
func (v *ScrollView) Settle() {
	if v.dragging {
		return
	}
	lo, hi := v.MinOffset(), v.MaxOffset()
	target := refresh.Point{
		X: math.Min(math.Max(v.offset.X, lo.X), hi.X),
		Y: math.Min(math.Max(v.offset.Y, lo.Y), hi.Y),
	}
	if target != v.offset {
		v.SetContentOffset(target)
	}
}

func (v *ScrollView) setGesture(state refresh.GestureState) {
	v.gesture = state
	v.each(func(o refresh.Observer) {
		o.OnGestureStateChanged(state)
	})
}

// each notifies a snapshot of the observers so handlers may detach.
func (v *ScrollView) each(fn func(refresh.Observer)) {
	for _, o := range slices.Clone(v.observers) {
		fn(o)
	}
}

var (
	_ refresh.Surface               = (*ScrollView)(nil)
	_ refresh.AdjustedInsetProvider = (*ScrollView)(nil)
	_ refresh.ItemCounter           = (*ScrollView)(nil)
	_ refresh.BounceConfigurer      = (*ScrollView)(nil)
)
