package feed

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

const lastUpdatedLayout = "Jan 2 15:04:05"

// View renders the feed.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.clip(fmt.Sprintf("plrefresh · %s footer", m.s.cfg.Footer.Kind))))
	b.WriteString("\n")
	for _, line := range m.viewportLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.clip(m.statusLine())))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewportLines renders one line per viewport row, mapping each row to the
// content coordinate under it.
func (m Model) viewportLines() []string {
	rows := int(m.viewport().Height)
	top := int(math.Round(m.s.view.ContentOffset().Y))

	lines := make([]string, rows)
	for r := range lines {
		lines[r] = m.lineAt(top + r)
	}
	return lines
}

func (m Model) lineAt(y int) string {
	if y < 0 {
		hf := m.s.header.Frame()
		if row := y - int(hf.Origin.Y); row >= 0 && row < int(hf.Size.Height) {
			return m.headerLine(row)
		}
		return ""
	}
	if y < len(m.s.items) {
		return itemStyle.Render(m.clip(m.s.items[y]))
	}
	if m.s.footer.Hidden() {
		return ""
	}
	ff := m.s.footer.Frame()
	if row := y - int(ff.Origin.Y); row >= 0 && row < int(ff.Size.Height) {
		return m.footerLine(row)
	}
	return ""
}

func (m Model) headerLine(row int) string {
	h := m.s.header
	style := alphaStyle(h.Alpha())
	switch row {
	case 0:
		switch h.State() {
		case refresh.StatePulling:
			return pullingStyle.Render(m.clip("  ↑ release to refresh"))
		case refresh.StateRefreshing, refresh.StateWillRefresh:
			return refreshingStyle.Render(m.clip("  " + m.spinner.View() + " refreshing…"))
		}
		return style.Render(m.clip("  ↓ pull to refresh"))
	case 1:
		label := "never"
		if at, ok := h.LastUpdatedTime(); ok {
			label = at.Format(lastUpdatedLayout)
		}
		return style.Render(m.clip("  last updated: " + label))
	}
	return style.Render(m.bar(h.PullingPercent()))
}

func (m Model) footerLine(row int) string {
	f := m.s.footer
	if row > 0 {
		return alphaStyle(f.Alpha()).Render(m.bar(f.PullingPercent()))
	}
	switch f.State() {
	case refresh.StatePulling:
		return pullingStyle.Render(m.clip("  ↓ release to load more"))
	case refresh.StateRefreshing, refresh.StateWillRefresh:
		return refreshingStyle.Render(m.clip("  " + m.spinner.View() + " loading more…"))
	case refresh.StateNoMoreData:
		return noMoreDataStyle.Render(m.clip("  no more data"))
	}
	return alphaStyle(f.Alpha()).Render(m.clip("  ↑ pull up or press n to load more"))
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("header %s · footer %s · offset %.0f · %d items",
		m.s.header.State(), m.s.footer.State(), m.s.view.ContentOffset().Y, len(m.s.items))
	if n := len(m.s.transitions); n > 0 {
		last := m.s.transitions[n-1]
		status += fmt.Sprintf(" · %s %s→%s", last.Edge, last.From, last.To)
	}
	return status
}

// bar draws a rule whose length tracks percent of the width.
func (m Model) bar(percent float64) string {
	width := m.width - 4
	if width <= 0 {
		return ""
	}
	n := int(math.Min(math.Max(percent, 0), 1) * float64(width))
	return "  " + strings.Repeat("─", n)
}

// clip truncates s to the terminal width, accounting for wide runes.
func (m Model) clip(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}
