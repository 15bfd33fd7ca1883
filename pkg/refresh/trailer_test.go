package refresh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
	"github.com/alexisbeaulieu97/plrefresh/pkg/scrollview"
)

func newWideSurface(viewport, content float64) *scrollview.ScrollView {
	sv := scrollview.New(refresh.Size{Width: viewport, Height: 400})
	sv.SetContentSize(refresh.Size{Width: content, Height: 400})
	return sv
}

func TestTrailerAttachConfiguresBounce(t *testing.T) {
	trailer := refresh.NewTrailer(nil)
	sv := newWideSurface(320, 600)

	trailer.Attach(sv)

	assert.True(t, sv.AlwaysBounceHorizontal())
	assert.False(t, sv.AlwaysBounceVertical())
	assert.Equal(t, refresh.Rect{
		Origin: refresh.Point{X: 600},
		Size:   refresh.Size{Width: refresh.DefaultTrailerWidth, Height: 400},
	}, trailer.Frame())
	assert.Equal(t, 280.0, trailer.HappenOffsetX())
}

func TestTrailerShortContentPinsToViewport(t *testing.T) {
	trailer := refresh.NewTrailer(nil)
	sv := newWideSurface(320, 200)
	trailer.Attach(sv)

	assert.Equal(t, 320.0, trailer.Frame().Origin.X)
	assert.Equal(t, 0.0, trailer.HappenOffsetX())
}

func TestTrailerDragAndRelease(t *testing.T) {
	calls := &counter{}
	q := refresh.NewQueue()
	trailer := refresh.NewTrailer(calls.inc, refresh.WithScheduler(q))
	sv := newWideSurface(320, 600)
	trailer.Attach(sv)

	sv.BeginDrag()
	sv.DragBy(refresh.Point{X: 300})
	assert.Equal(t, refresh.StateIdle, trailer.State())
	assert.InDelta(t, 0.4, trailer.PullingPercent(), 1e-9)

	sv.DragBy(refresh.Point{X: 40})
	require.Equal(t, refresh.StatePulling, trailer.State())

	sv.EndDrag()
	require.Equal(t, refresh.StateRefreshing, trailer.State())
	assert.Equal(t, refresh.DefaultTrailerWidth, sv.ContentInset().Right)
	assert.Equal(t, 330.0, sv.ContentOffset().X)

	q.Drain()
	assert.Equal(t, 1, calls.n)

	trailer.EndRefreshing()
	q.Drain()
	assert.Equal(t, refresh.StateIdle, trailer.State())
	assert.Equal(t, 0.0, sv.ContentInset().Right)
	assert.Equal(t, 0.0, trailer.PullingPercent())
}

func TestTrailerDragBackCancelsPulling(t *testing.T) {
	trailer := refresh.NewTrailer(nil)
	sv := newWideSurface(320, 600)
	trailer.Attach(sv)

	sv.BeginDrag()
	sv.DragBy(refresh.Point{X: 340})
	require.Equal(t, refresh.StatePulling, trailer.State())

	sv.DragBy(refresh.Point{X: -20})
	assert.Equal(t, refresh.StateIdle, trailer.State())

	sv.EndDrag()
	assert.Equal(t, refresh.StateIdle, trailer.State())
}

func TestTrailerNoMoreData(t *testing.T) {
	q := refresh.NewQueue()
	trailer := refresh.NewTrailer(nil, refresh.WithScheduler(q))
	sv := newWideSurface(320, 600)
	trailer.Attach(sv)

	trailer.BeginRefreshing()
	require.Equal(t, refresh.DefaultTrailerWidth, sv.ContentInset().Right)

	trailer.EndRefreshingWithNoMoreData()
	q.DrainAll(5)
	assert.Equal(t, refresh.StateNoMoreData, trailer.State())
	assert.Equal(t, 0.0, sv.ContentInset().Right)

	sv.BeginDrag()
	sv.DragBy(refresh.Point{X: 400})
	sv.EndDrag()
	assert.Equal(t, refresh.StateNoMoreData, trailer.State())
}

func TestTrailerDetachWhileRefreshingReleasesInset(t *testing.T) {
	q := refresh.NewQueue()
	trailer := refresh.NewTrailer(nil, refresh.WithScheduler(q))
	sv := newWideSurface(320, 600)
	trailer.Attach(sv)

	trailer.BeginRefreshing()
	q.DrainAll(5)
	require.Equal(t, refresh.DefaultTrailerWidth, sv.ContentInset().Right)

	trailer.Detach()
	assert.Equal(t, 0.0, sv.ContentInset().Right)

	trailer.EndRefreshing()
	q.DrainAll(5)
	assert.Equal(t, refresh.StateIdle, trailer.State())
	assert.Equal(t, 0.0, sv.ContentInset().Right)
}

func TestTrailerResetNoMoreData(t *testing.T) {
	q := refresh.NewQueue()
	calls := &counter{}
	trailer := refresh.NewTrailer(calls.inc, refresh.WithScheduler(q))
	sv := newWideSurface(320, 600)
	trailer.Attach(sv)

	trailer.EndRefreshingWithNoMoreData()
	q.Drain()
	require.Equal(t, refresh.StateNoMoreData, trailer.State())

	trailer.ResetNoMoreData()
	assert.Equal(t, refresh.StateNoMoreData, trailer.State(), "reset waits for the next tick")
	q.Drain()
	assert.Equal(t, refresh.StateIdle, trailer.State())

	sv.BeginDrag()
	sv.DragBy(refresh.Point{X: 340})
	require.Equal(t, refresh.StatePulling, trailer.State())
	sv.EndDrag()
	q.DrainAll(5)
	assert.Equal(t, refresh.StateRefreshing, trailer.State())
	assert.Equal(t, 1, calls.n)
}
