package refresh_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

func TestQueueDrainRunsOnlyPriorTasks(t *testing.T) {
	q := refresh.NewQueue()
	var order []string

	q.Post(func() {
		order = append(order, "first")
		q.Post(func() { order = append(order, "nested") })
	})
	q.Post(func() { order = append(order, "second") })
	q.Post(nil)

	require.Equal(t, 2, q.Pending())
	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []string{"first", "second"}, order)

	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, []string{"first", "second", "nested"}, order)
	assert.Equal(t, 0, q.Drain())
}

func TestQueuePostFromManyGoroutines(t *testing.T) {
	q := refresh.NewQueue()
	wakeups := make(chan struct{}, 100)
	q.OnPost(func() { wakeups <- struct{}{} })

	var wg sync.WaitGroup
	ran := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() { ran++ })
		}()
	}
	wg.Wait()

	assert.Len(t, wakeups, 50)
	assert.Equal(t, 50, q.Drain())
	assert.Equal(t, 50, ran)
}

func TestQueueDrainAllStopsWhenEmpty(t *testing.T) {
	q := refresh.NewQueue()
	depth := 0
	var chain func()
	chain = func() {
		depth++
		if depth < 3 {
			q.Post(chain)
		}
	}
	q.Post(chain)

	assert.Equal(t, 3, q.DrainAll(10))
	assert.Equal(t, 3, depth)
}

func TestDeferredAnimatorCompletesNextTick(t *testing.T) {
	q := refresh.NewQueue()
	anim := refresh.DeferredAnimator{Scheduler: q}

	applied, finished := false, false
	anim.Animate(time.Second, func() { applied = true }, func(bool) { finished = true })

	assert.True(t, applied)
	assert.False(t, finished)
	q.Drain()
	assert.True(t, finished)
}
