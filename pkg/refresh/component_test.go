package refresh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

func TestSetStateIsIdempotent(t *testing.T) {
	q := refresh.NewQueue()
	calls := &counter{}
	var transitions []transition

	leader := refresh.NewLeader(calls.inc, refresh.WithScheduler(q), recordTransitions(&transitions))
	leader.Attach(newSurface(800, 1000))

	leader.SetState(refresh.StateRefreshing)
	leader.SetState(refresh.StateRefreshing)
	leader.BeginRefreshing()
	q.DrainAll(5)

	assert.Equal(t, 1, calls.n, "callback fires once per entry into refreshing")
	assert.Equal(t, []transition{{From: refresh.StateIdle, To: refresh.StateRefreshing}}, transitions)

	leader.SetState(refresh.StateIdle)
	leader.SetState(refresh.StateIdle)
	assert.Len(t, transitions, 2)
}

func TestBeginRefreshingBeforeAttachWaitsForSurface(t *testing.T) {
	q := refresh.NewQueue()
	calls := &counter{}
	header := refresh.NewHeader(calls.inc, refresh.WithScheduler(q))

	header.BeginRefreshing()
	assert.Equal(t, refresh.StateWillRefresh, header.State())
	assert.True(t, header.IsRefreshing())
	assert.Equal(t, 1.0, header.PullingPercent())

	q.DrainAll(5)
	assert.Equal(t, 0, calls.n, "willRefresh never fires the callback")

	header.BeginRefreshing()
	assert.Equal(t, refresh.StateWillRefresh, header.State())

	sv := newSurface(800, 1000)
	header.Attach(sv)
	assert.Equal(t, refresh.StateWillRefresh, header.State(), "resolution is deferred to the next tick")

	q.DrainAll(5)
	assert.Equal(t, refresh.StateRefreshing, header.State())
	assert.Equal(t, 1, calls.n)
	assert.Equal(t, refresh.DefaultHeaderHeight, sv.ContentInset().Top)
}

func TestEndRefreshingIsDeferredToNextTick(t *testing.T) {
	q := refresh.NewQueue()
	header := refresh.NewHeader(nil, refresh.WithScheduler(q))
	header.Attach(newSurface(800, 1000))

	header.BeginRefreshing()
	q.DrainAll(5)
	require.Equal(t, refresh.StateRefreshing, header.State())

	header.EndRefreshing()
	assert.Equal(t, refresh.StateRefreshing, header.State())

	q.Drain()
	assert.Equal(t, refresh.StateIdle, header.State())
}

func TestTargetReceivesSender(t *testing.T) {
	q := refresh.NewQueue()
	target := &recordingTarget{}
	footer := refresh.NewFooterWithTarget(target, refresh.WithScheduler(q))
	footer.Attach(newSurface(800, 1000))

	footer.BeginRefreshing()
	assert.Empty(t, target.senders, "callback dispatch is asynchronous")

	q.Drain()
	require.Len(t, target.senders, 1)
	assert.Same(t, footer, target.senders[0])
}

func TestSetCallbackReplacesTarget(t *testing.T) {
	q := refresh.NewQueue()
	target := &recordingTarget{}
	calls := &counter{}
	leader := refresh.NewLeaderWithTarget(target, refresh.WithScheduler(q))
	leader.SetCallback(calls.inc)
	leader.Attach(newSurface(800, 1000))

	leader.BeginRefreshing()
	q.DrainAll(5)

	assert.Empty(t, target.senders)
	assert.Equal(t, 1, calls.n)
}

func TestAutomaticallyChangeAlpha(t *testing.T) {
	q := refresh.NewQueue()
	header := refresh.NewHeader(nil, refresh.WithScheduler(q), refresh.WithAutomaticallyChangeAlpha(true))
	assert.Equal(t, 0.0, header.Alpha())

	header.SetPullingPercent(0.4)
	assert.InDelta(t, 0.4, header.Alpha(), 1e-9)

	header.SetAutomaticallyChangeAlpha(false)
	assert.Equal(t, 1.0, header.Alpha())

	header.SetAutomaticallyChangeAlpha(true)
	header.Attach(newSurface(800, 1000))
	header.BeginRefreshing()
	header.SetPullingPercent(0.2)
	assert.Equal(t, 1.0, header.Alpha(), "alpha is frozen while refreshing")
}

func TestDetachUnsubscribes(t *testing.T) {
	sv := newSurface(800, 1000)
	header := refresh.NewHeader(nil, refresh.WithScheduler(refresh.NewQueue()))

	header.Attach(sv)
	header.Attach(sv)
	assert.Equal(t, 1, sv.Observers())
	assert.True(t, header.IsAttached())

	header.Detach()
	assert.Equal(t, 0, sv.Observers())
	assert.False(t, header.IsAttached())

	header.Detach()
	sv.SetContentOffset(refresh.Point{Y: -200})
	assert.Equal(t, refresh.StateIdle, header.State())
}

func TestAttachToAnotherSurfaceMovesSubscription(t *testing.T) {
	first, second := newSurface(800, 1000), newSurface(600, 400)
	footer := refresh.NewFooter(nil, refresh.WithScheduler(refresh.NewQueue()))

	footer.Attach(first)
	require.Equal(t, refresh.DefaultFooterHeight, first.ContentInset().Bottom)

	footer.Attach(second)
	assert.Equal(t, 0, first.Observers())
	assert.Equal(t, 0.0, first.ContentInset().Bottom)
	assert.Equal(t, 1, second.Observers())
	assert.Equal(t, refresh.DefaultFooterHeight, second.ContentInset().Bottom)
}
