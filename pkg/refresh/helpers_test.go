package refresh_test

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
	"github.com/alexisbeaulieu97/plrefresh/pkg/scrollview"
)

// newSurface builds a 320-wide scroll view with the given viewport and
// content heights.
func newSurface(viewport, content float64) *scrollview.ScrollView {
	sv := scrollview.New(refresh.Size{Width: 320, Height: viewport})
	sv.SetContentSize(refresh.Size{Width: 320, Height: content})
	return sv
}

type counter struct {
	n int
}

func (c *counter) inc() { c.n++ }

type memStore struct {
	mu     sync.Mutex
	values map[string]time.Time
	err    error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]time.Time)}
}

func (s *memStore) LastUpdated(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.values[key]
	return t, ok
}

func (s *memStore) SetLastUpdated(key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.values[key] = at
	return nil
}

type recordingTarget struct {
	senders []refresh.Controller
}

func (r *recordingTarget) Refresh(sender refresh.Controller) {
	r.senders = append(r.senders, sender)
}

type transition struct {
	From refresh.State
	To   refresh.State
}

func recordTransitions(dst *[]transition) refresh.Option {
	return refresh.WithStateHook(func(old, next refresh.State) {
		*dst = append(*dst, transition{From: old, To: next})
	})
}
