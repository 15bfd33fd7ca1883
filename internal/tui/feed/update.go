package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.s.resize(m.viewport())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case FrameMsg:
		cmds := append(m.s.tick(), frame())
		return m, tea.Batch(cmds...)

	case PageLoadedMsg:
		m.s.apply(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.viewport().Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.viewport().Height)
	case key.Matches(msg, m.keys.Refresh):
		if !m.s.header.IsRefreshing() {
			m.s.header.BeginRefreshing()
		}
	case key.Matches(msg, m.keys.LoadMore):
		if m.s.footer.State() == refresh.StateIdle {
			m.s.footer.BeginRefreshing()
		}
	}
	return m, nil
}

// handleMouse maps a left-button drag to a pan gesture and the wheel to
// plain scrolling.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.scroll(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.scroll(wheelStep)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragging = true
		m.dragY = msg.Y
		m.s.view.BeginDrag()
	case msg.Action == tea.MouseActionMotion && m.dragging:
		delta := m.dragY - msg.Y
		m.dragY = msg.Y
		if delta != 0 {
			m.s.view.DragBy(refresh.Point{Y: float64(delta)})
		}
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.s.view.EndDrag()
		m.s.view.Settle()
	}
}

func (m *Model) scroll(rows float64) {
	if m.dragging {
		return
	}
	m.s.view.ScrollBy(refresh.Point{Y: rows})
	m.s.view.Settle()
}
