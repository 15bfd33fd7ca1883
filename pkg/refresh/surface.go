package refresh

// GestureState mirrors the lifecycle of the surface's pan gesture.
type GestureState int

const (
	GesturePossible GestureState = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (g GestureState) String() string {
	switch g {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "possible"
	}
}

// OffsetChange carries the previous and current content offset.
type OffsetChange struct {
	Old Point
	New Point
}

// SizeChange carries the previous and current content size.
type SizeChange struct {
	Old Size
	New Size
}

// Observer receives the three notification streams a surface publishes.
type Observer interface {
	OnOffsetChanged(change OffsetChange)
	OnContentSizeChanged(change SizeChange)
	OnGestureStateChanged(state GestureState)
}

// Surface is the scrollable container a controller is attached to.
//
// The surface does not own its observers. A controller must be detached (or
// the surface dropped) before the controller is discarded.
type Surface interface {
	ContentOffset() Point
	SetContentOffset(offset Point)
	ContentSize() Size
	ContentInset() Insets
	SetContentInset(inset Insets)
	// Bounds is the visible viewport size.
	Bounds() Size
	IsDragging() bool
	GestureState() GestureState
	IsPagingEnabled() bool

	AddObserver(o Observer)
	RemoveObserver(o Observer)
}

// AdjustedInsetProvider is implemented by surfaces that add system safe-area
// adjustments on top of the content inset.
type AdjustedInsetProvider interface {
	AdjustedContentInset() Insets
}

// ItemCounter is implemented by sectioned table or grid surfaces.
type ItemCounter interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// BounceConfigurer is implemented by surfaces that can force bounce on an axis.
type BounceConfigurer interface {
	SetAlwaysBounceHorizontal(bool)
	SetAlwaysBounceVertical(bool)
}
