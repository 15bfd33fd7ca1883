package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/plrefresh/internal/config"
	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
	"github.com/alexisbeaulieu97/plrefresh/pkg/scrollview"
)

const maxTransitions = 8

// loadMoreFooter is the surface shared by the plain, auto and back footers.
type loadMoreFooter interface {
	refresh.Controller
	State() refresh.State
	PullingPercent() float64
	Alpha() float64
	Frame() refresh.Rect
	Hidden() bool
	Attach(refresh.Surface)
	BeginRefreshing()
	EndRefreshing()
	EndRefreshingWithNoMoreData()
	ResetNoMoreData()
	SetIgnoredBottomInset(float64)
}

// Transition is one recorded state change.
type Transition struct {
	Edge string
	From refresh.State
	To   refresh.State
}

// session owns the scroll surface and the controllers attached to it. It is
// shared by every copy of the Model.
type session struct {
	cfg    *config.Config
	source Source
	log    zerolog.Logger

	view   *scrollview.ScrollView
	queue  *refresh.Queue
	header *refresh.Header
	footer loadMoreFooter

	items       []string
	generation  int
	page        int
	outbox      []tea.Cmd
	transitions []Transition
}

func newSession(cfg *config.Config, store refresh.TimeStore, source Source, log zerolog.Logger, now func() time.Time, viewport refresh.Size) *session {
	s := &session{
		cfg:    cfg,
		source: source,
		log:    log,
		view:   scrollview.New(viewport),
		queue:  refresh.NewQueue(),
	}

	// animations settle within a frame; their completions run on the next one
	common := []refresh.Option{
		refresh.WithScheduler(s.queue),
		refresh.WithAnimator(refresh.DeferredAnimator{Scheduler: s.queue}),
		refresh.WithLogger(log),
		refresh.WithClock(now),
	}

	headerOpts := append(append(cfg.HeaderOptions(), common...),
		refresh.WithTimeStore(store),
		refresh.WithStateHook(s.record("header")),
	)
	s.header = refresh.NewHeader(s.refresh, headerOpts...)
	s.header.SetLastUpdatedTimeKey(cfg.Header.LastUpdatedKey)

	footerOpts := append(append(cfg.FooterOptions(), common...),
		refresh.WithStateHook(s.record(cfg.Footer.Kind+" footer")),
	)
	s.footer = newFooter(cfg.Footer, s.loadMore, footerOpts)
	s.footer.SetIgnoredBottomInset(cfg.Footer.IgnoredBottomInset)

	s.items = source.Page(0, 0, cfg.Demo.Items)
	s.syncContent()
	s.header.Attach(s.view)
	s.footer.Attach(s.view)
	return s
}

func newFooter(cfg config.FooterConfig, cb refresh.Callback, opts []refresh.Option) loadMoreFooter {
	switch cfg.Kind {
	case config.FooterAuto:
		f := refresh.NewAutoFooter(cb, opts...)
		f.SetAutomaticallyRefresh(cfg.AutomaticallyRefresh)
		f.SetTriggerAutomaticallyRefreshPercent(cfg.TriggerPercent)
		f.SetAutoTriggerTimes(cfg.AutoTriggerTimes)
		return f
	case config.FooterPlain:
		return refresh.NewFooter(cb, opts...)
	default:
		return refresh.NewBackFooter(cb, opts...)
	}
}

func (s *session) record(edge string) func(old, next refresh.State) {
	return func(old, next refresh.State) {
		s.transitions = append(s.transitions, Transition{Edge: edge, From: old, To: next})
		if len(s.transitions) > maxTransitions {
			s.transitions = s.transitions[len(s.transitions)-maxTransitions:]
		}
	}
}

// refresh is the header callback: reload page 0 as a new generation.
func (s *session) refresh() {
	s.outbox = append(s.outbox, s.load(s.generation+1, 0, s.cfg.Demo.Items))
}

// loadMore is the footer callback.
func (s *session) loadMore() {
	s.outbox = append(s.outbox, s.load(s.generation, s.page+1, s.cfg.Demo.PageSize))
}

func (s *session) load(generation, page, size int) tea.Cmd {
	src := s.source
	s.log.Debug().Int("generation", generation).Int("page", page).Msg("loading page")
	return tea.Tick(s.cfg.Demo.LoadDelay, func(time.Time) tea.Msg {
		return PageLoadedMsg{Generation: generation, Page: page, Items: src.Page(generation, page, size)}
	})
}

// apply folds a loaded page into the feed and ends the refresh that asked
// for it.
func (s *session) apply(msg PageLoadedMsg) {
	if msg.Page == 0 {
		s.generation = msg.Generation
		s.page = 0
		s.items = msg.Items
		s.syncContent()
		s.header.EndRefreshing()
		if s.footer.State() == refresh.StateNoMoreData {
			s.footer.ResetNoMoreData()
		}
		return
	}

	if msg.Generation != s.generation {
		s.log.Debug().Int("generation", msg.Generation).Msg("dropping stale page")
		s.footer.EndRefreshing()
		return
	}

	s.page = msg.Page
	s.items = append(s.items, msg.Items...)
	s.syncContent()
	if s.page >= s.cfg.Demo.MaxPages {
		s.footer.EndRefreshingWithNoMoreData()
		return
	}
	s.footer.EndRefreshing()
}

func (s *session) syncContent() {
	s.view.SetSections(len(s.items))
	s.view.SetContentSize(refresh.Size{Width: s.view.Bounds().Width, Height: float64(len(s.items))})
}

// resize changes the viewport and re-lays out the controllers.
func (s *session) resize(viewport refresh.Size) {
	s.view.SetBounds(viewport)
	s.syncContent()
	s.view.Settle()
}

// tick runs one batch of deferred work, lets the surface bounce back into
// range and returns the commands the batch produced.
func (s *session) tick() []tea.Cmd {
	s.queue.Drain()
	s.view.Settle()
	cmds := s.outbox
	s.outbox = nil
	return cmds
}
