package refresh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
	"github.com/alexisbeaulieu97/plrefresh/pkg/scrollview"
)

func TestMetricsAdjustedInset(t *testing.T) {
	sv := newSurface(800, 1000)
	sv.SetSafeAreaInsets(refresh.Insets{Top: 20})
	m := refresh.MetricsOf(sv)

	assert.Equal(t, 20.0, m.InsetTop())

	m.SetInsetTop(64)
	assert.Equal(t, 64.0, m.InsetTop())
	assert.Equal(t, 44.0, sv.ContentInset().Top)
}

func TestMetricsOffsetAxes(t *testing.T) {
	sv := newSurface(800, 1000)
	m := refresh.MetricsOf(sv)

	m.SetOffsetY(120)
	m.SetOffsetX(-5)
	assert.Equal(t, refresh.Point{X: -5, Y: 120}, sv.ContentOffset())
	assert.Equal(t, 320.0, m.Width())
	assert.Equal(t, 800.0, m.Height())
	assert.Equal(t, 1000.0, m.ContentHeight())
}

func TestMetricsTotalItemCount(t *testing.T) {
	sv := scrollview.New(refresh.Size{Width: 320, Height: 800})
	m := refresh.MetricsOf(sv)
	assert.Equal(t, 0, m.TotalItemCount())

	sv.SetSections(3, 0, 7)
	assert.Equal(t, 10, m.TotalItemCount())
}

func TestMetricsNilSurface(t *testing.T) {
	m := refresh.MetricsOf(nil)

	assert.Equal(t, refresh.Insets{}, m.Inset())
	assert.Equal(t, refresh.Point{}, m.Offset())
	assert.Zero(t, m.Height())
	assert.Zero(t, m.ContentWidth())
	assert.Zero(t, m.TotalItemCount())
	assert.False(t, m.IsDragging())
	assert.False(t, m.PagingEnabled())

	assert.NotPanics(t, func() {
		m.SetInsetBottom(10)
		m.SetOffsetY(10)
	})
}
