package refresh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

func TestFooterReservesAndReleasesInset(t *testing.T) {
	sv := newSurface(800, 1000)
	footer := refresh.NewFooter(nil, refresh.WithScheduler(refresh.NewQueue()))

	footer.Attach(sv)
	assert.Equal(t, refresh.DefaultFooterHeight, sv.ContentInset().Bottom)
	assert.Equal(t, 1000.0, footer.Frame().Origin.Y)
	assert.Equal(t, 320.0, footer.Frame().Size.Width)

	footer.Detach()
	assert.Equal(t, 0.0, sv.ContentInset().Bottom)
}

func TestFooterFollowsContentEnd(t *testing.T) {
	sv := newSurface(800, 1000)
	footer := refresh.NewFooter(nil, refresh.WithScheduler(refresh.NewQueue()))
	footer.Attach(sv)

	sv.SetContentSize(refresh.Size{Width: 320, Height: 1400})
	assert.Equal(t, 1400.0, footer.Frame().Origin.Y)

	footer.SetIgnoredBottomInset(34)
	assert.Equal(t, 34.0, footer.IgnoredBottomInset())
	assert.Equal(t, 1434.0, footer.Frame().Origin.Y)
}

func TestFooterHiddenDoesNotReserve(t *testing.T) {
	sv := newSurface(800, 1000)
	footer := refresh.NewFooter(nil, refresh.WithScheduler(refresh.NewQueue()))
	footer.SetHidden(true)

	footer.Attach(sv)
	assert.Equal(t, 0.0, sv.ContentInset().Bottom)

	footer.SetHidden(false)
	assert.Equal(t, refresh.DefaultFooterHeight, sv.ContentInset().Bottom)

	footer.SetHidden(false)
	assert.Equal(t, refresh.DefaultFooterHeight, sv.ContentInset().Bottom)

	footer.SetHidden(true)
	assert.Equal(t, 0.0, sv.ContentInset().Bottom)

	footer.Detach()
	assert.Equal(t, 0.0, sv.ContentInset().Bottom)
}

func TestFooterNoMoreDataIsDeferred(t *testing.T) {
	q := refresh.NewQueue()
	footer := refresh.NewFooter(nil, refresh.WithScheduler(q))
	footer.Attach(newSurface(800, 1000))

	footer.EndRefreshingWithNoMoreData()
	assert.Equal(t, refresh.StateIdle, footer.State())
	q.Drain()
	assert.Equal(t, refresh.StateNoMoreData, footer.State())

	footer.ResetNoMoreData()
	assert.Equal(t, refresh.StateNoMoreData, footer.State())
	q.Drain()
	require.Equal(t, refresh.StateIdle, footer.State())
}
