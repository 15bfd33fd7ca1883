package refresh

// DefaultLeaderWidth is the width leaders are built with.
const DefaultLeaderWidth = 50.0

// Leader is attached to the left edge. It lays itself out to the left of the
// content and fires its callback when refreshing begins, but has no drag
// trigger of its own: BeginRefreshing and EndRefreshing drive it.
type Leader struct {
	Component
}

// NewLeader builds a leader that invokes cb when a refresh begins.
func NewLeader(cb Callback, opts ...Option) *Leader {
	l := newLeader(opts)
	l.callback = cb
	return l
}

// NewLeaderWithTarget builds a leader that notifies target.
func NewLeaderWithTarget(target RefreshTarget, opts ...Option) *Leader {
	l := newLeader(opts)
	l.target = target
	return l
}

func newLeader(opts []Option) *Leader {
	l := &Leader{}
	l.init(l, "leader", DefaultLeaderWidth, opts)
	l.frame.Size.Width = l.extent
	l.frame.Origin.X = -l.extent
	return l
}

func (l *Leader) OnAttach(Surface) {
	l.frame.Size.Height = l.Metrics().Height()
}

func (l *Leader) OnDetach(Surface) {}

var (
	_ Controller     = (*Leader)(nil)
	_ AttachObserver = (*Leader)(nil)
)
