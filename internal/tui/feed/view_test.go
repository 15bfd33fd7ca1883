package feed

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

func TestViewRendersFeed(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()

	assert.Contains(t, view, "plrefresh · back footer")
	assert.Contains(t, view, "Item 1 · refresh 0 · page 0")
	assert.Contains(t, view, "header idle · footer idle · offset 0 · 30 items")
	assert.NotContains(t, view, "pull to refresh", "header is hidden above the content")
	assert.Len(t, strings.Split(view, "\n"), 24)
}

func TestViewShowsPulledHeader(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.Equal(t, refresh.StatePulling, m.Header().State())

	view := m.View()
	assert.Contains(t, view, "release to refresh")
	assert.Contains(t, view, "last updated: never")
	assert.Contains(t, view, "header idle→pulling")
}

func TestViewShowsLastUpdated(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, keyRune('r'))
	m = update(t, m, loadOne(t, m))
	settle(m)

	assert.Contains(t, m.headerLine(1), "last updated: Mar 9 14:30:00")
}

func TestFooterLines(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) {
		c.Demo.MaxPages = 1
	})

	assert.Contains(t, m.footerLine(0), "press n to load more")

	m = update(t, m, keyRune('n'))
	assert.Contains(t, m.footerLine(0), "loading more…")

	m = update(t, m, loadOne(t, m))
	settle(m)
	require.Equal(t, refresh.StateNoMoreData, m.FooterState())
	assert.Contains(t, m.footerLine(0), "no more data")
}

func TestBarTracksPercent(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Equal(t, "  ", m.bar(0))
	assert.Equal(t, "  "+strings.Repeat("─", 38), m.bar(0.5))
	assert.Equal(t, "  "+strings.Repeat("─", 76), m.bar(3))
}

func TestClipUsesDisplayWidth(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 24})

	assert.Equal(t, "日本…", m.clip("日本語テキスト"))
	assert.Equal(t, "short", m.clip("short"))
}

func TestAlphaStyleSteps(t *testing.T) {
	assert.Equal(t, alphaRamp[0].GetForeground(), alphaStyle(-1).GetForeground())
	assert.Equal(t, alphaRamp[1].GetForeground(), alphaStyle(0.3).GetForeground())
	assert.Equal(t, alphaRamp[3].GetForeground(), alphaStyle(2).GetForeground())
}
