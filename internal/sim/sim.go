// Package sim replays scripted gestures against a refresh controller attached
// to an in-memory scroll view and records what happened after every step.
package sim

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
	"github.com/alexisbeaulieu97/plrefresh/pkg/scrollview"
)

// Edge selects the controller under test.
type Edge string

const (
	EdgeHeader     Edge = "header"
	EdgeFooter     Edge = "footer"
	EdgeAutoFooter Edge = "auto"
	EdgeBackFooter Edge = "back"
	EdgeLeader     Edge = "leader"
	EdgeTrailer    Edge = "trailer"
)

// Edges lists every supported edge.
var Edges = []Edge{EdgeHeader, EdgeFooter, EdgeAutoFooter, EdgeBackFooter, EdgeLeader, EdgeTrailer}

// Default surface dimensions along the scroll axis.
const (
	DefaultViewport = 600.0
	DefaultContent  = 1000.0
)

// DefaultScripts is a representative session per edge, sized for the default
// viewport and content.
var DefaultScripts = map[Edge]string{
	EdgeHeader:     "drag:-30,drag:-40,release,end",
	EdgeFooter:     "begin,end,nomore,reset",
	EdgeAutoFooter: "scroll:450,end,grow:500,scroll:500,end",
	EdgeBackFooter: "scroll:400,drag:60,release,end",
	EdgeLeader:     "begin,end",
	EdgeTrailer:    "scroll:400,drag:60,release,nomore,reset",
}

const drainTicks = 16

// Options describes the simulated surface. Viewport and Content are measured
// along the edge's scroll axis.
type Options struct {
	Edge     Edge
	Viewport float64
	Content  float64
	Extent   float64
	Store    refresh.TimeStore
	Logger   zerolog.Logger
	Clock    func() time.Time
}

// Transition is a state change observed during a step.
type Transition struct {
	From refresh.State
	To   refresh.State
}

// Record is the controller snapshot taken after a step.
type Record struct {
	Step        Step
	Transitions []Transition
	State       refresh.State
	Offset      float64
	Inset       float64
	Percent     float64
	Callbacks   int
}

type controller interface {
	refresh.Controller
	Attach(refresh.Surface)
	State() refresh.State
	PullingPercent() float64
	BeginRefreshing()
	EndRefreshing()
	SetHidden(bool)
}

type noMoreDataController interface {
	EndRefreshingWithNoMoreData()
}

type resettableController interface {
	ResetNoMoreData()
}

type run struct {
	opts      Options
	view      *scrollview.ScrollView
	queue     *refresh.Queue
	ctl       controller
	pending   []Transition
	callbacks int
}

// Run attaches the selected controller and plays steps against it.
func Run(opts Options, steps []Step) ([]Record, error) {
	if opts.Viewport <= 0 {
		return nil, fmt.Errorf("viewport must be positive")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	r := &run{opts: opts, queue: refresh.NewQueue()}
	if r.horizontal() {
		r.view = scrollview.New(refresh.Size{Width: opts.Viewport, Height: 400})
		r.view.SetContentSize(refresh.Size{Width: opts.Content, Height: 400})
	} else {
		r.view = scrollview.New(refresh.Size{Width: 320, Height: opts.Viewport})
		r.view.SetContentSize(refresh.Size{Width: 320, Height: opts.Content})
	}
	r.view.SetSections(int(opts.Content))

	ctl, err := r.build()
	if err != nil {
		return nil, err
	}
	r.ctl = ctl
	r.ctl.Attach(r.view)

	records := make([]Record, 0, len(steps))
	for _, step := range steps {
		if err := r.apply(step); err != nil {
			return records, err
		}
		r.queue.DrainAll(drainTicks)
		r.view.Settle()
		records = append(records, r.snapshot(step))
	}
	return records, nil
}

func (r *run) horizontal() bool {
	return r.opts.Edge == EdgeLeader || r.opts.Edge == EdgeTrailer
}

func (r *run) build() (controller, error) {
	opts := []refresh.Option{
		refresh.WithScheduler(r.queue),
		refresh.WithLogger(r.opts.Logger),
		refresh.WithClock(r.opts.Clock),
		refresh.WithStateHook(func(old, next refresh.State) {
			r.pending = append(r.pending, Transition{From: old, To: next})
		}),
	}
	if r.opts.Extent > 0 {
		opts = append(opts, refresh.WithExtent(r.opts.Extent))
	}
	cb := func() { r.callbacks++ }

	switch r.opts.Edge {
	case EdgeHeader:
		return refresh.NewHeader(cb, append(opts, refresh.WithTimeStore(r.opts.Store))...), nil
	case EdgeFooter:
		return refresh.NewFooter(cb, opts...), nil
	case EdgeAutoFooter:
		return refresh.NewAutoFooter(cb, opts...), nil
	case EdgeBackFooter:
		return refresh.NewBackFooter(cb, opts...), nil
	case EdgeLeader:
		return refresh.NewLeader(cb, opts...), nil
	case EdgeTrailer:
		return refresh.NewTrailer(cb, opts...), nil
	}
	return nil, fmt.Errorf("unknown edge %q", r.opts.Edge)
}

func (r *run) axis(v float64) refresh.Point {
	if r.horizontal() {
		return refresh.Point{X: v}
	}
	return refresh.Point{Y: v}
}

func (r *run) apply(step Step) error {
	switch step.Op {
	case OpDrag:
		r.view.DragBy(r.axis(step.Arg))
	case OpRelease:
		r.view.EndDrag()
	case OpScroll:
		r.view.ScrollBy(r.axis(step.Arg))
	case OpBegin:
		r.ctl.BeginRefreshing()
	case OpEnd:
		r.ctl.EndRefreshing()
	case OpNoMore:
		c, ok := r.ctl.(noMoreDataController)
		if !ok {
			return fmt.Errorf("%s: %s has no noMoreData state", step, r.opts.Edge)
		}
		c.EndRefreshingWithNoMoreData()
	case OpReset:
		c, ok := r.ctl.(resettableController)
		if !ok {
			return fmt.Errorf("%s: %s has no noMoreData state", step, r.opts.Edge)
		}
		c.ResetNoMoreData()
	case OpGrow:
		size := r.view.ContentSize()
		length := size.Height + step.Arg
		if r.horizontal() {
			length = size.Width + step.Arg
			size.Width = length
		} else {
			size.Height = length
		}
		r.view.SetSections(int(length))
		r.view.SetContentSize(size)
	case OpHide:
		r.ctl.SetHidden(true)
	case OpShow:
		r.ctl.SetHidden(false)
	default:
		return fmt.Errorf("unsupported op %q", step.Op)
	}
	return nil
}

func (r *run) snapshot(step Step) Record {
	rec := Record{
		Step:        step,
		Transitions: r.pending,
		State:       r.ctl.State(),
		Percent:     r.ctl.PullingPercent(),
		Callbacks:   r.callbacks,
	}
	r.pending = nil

	offset, inset := r.view.ContentOffset(), r.view.ContentInset()
	switch r.opts.Edge {
	case EdgeHeader:
		rec.Offset, rec.Inset = offset.Y, inset.Top
	case EdgeLeader:
		rec.Offset, rec.Inset = offset.X, inset.Left
	case EdgeTrailer:
		rec.Offset, rec.Inset = offset.X, inset.Right
	default:
		rec.Offset, rec.Inset = offset.Y, inset.Bottom
	}
	return rec
}
