// Package feed is an interactive bubbletea feed with a pull-to-refresh header
// and a load-more footer driven by the refresh package.
package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

const (
	frameInterval = 50 * time.Millisecond
	wheelStep     = 3

	// title, status and help lines
	chromeLines = 3
)

// Options configures a Model. Only Config is required.
type Options struct {
	Config *config.Config
	Store  refresh.TimeStore
	Source Source
	Logger zerolog.Logger
	Clock  func() time.Time
}

// Model is the feed screen.
type Model struct {
	s *session

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	width    int
	height   int
	dragging bool
	dragY    int
	quitting bool
	now      func() time.Time
}

// NewModel creates a feed sized for an 80x24 terminal until the first
// WindowSizeMsg arrives.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	source := opts.Source
	if source == nil {
		source = NumberedSource
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		width:   80,
		height:  24,
		now:     now,
	}
	m.s = newSession(cfg, opts.Store, source, opts.Logger, now, m.viewport())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frame())
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) viewport() refresh.Size {
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return refresh.Size{Width: float64(m.width), Height: float64(rows)}
}

// Items returns the loaded feed items.
func (m Model) Items() []string { return m.s.items }

// Header returns the pull-to-refresh header.
func (m Model) Header() *refresh.Header { return m.s.header }

// FooterState returns the load-more footer state.
func (m Model) FooterState() refresh.State { return m.s.footer.State() }

// Offset returns the vertical content offset.
func (m Model) Offset() float64 { return m.s.view.ContentOffset().Y }

// Transitions returns the most recent state changes, oldest first.
func (m Model) Transitions() []Transition {
	return append([]Transition(nil), m.s.transitions...)
}
