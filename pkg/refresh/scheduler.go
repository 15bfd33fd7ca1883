package refresh

import "sync"

// Scheduler defers work to the next UI tick.
type Scheduler interface {
	Post(task func())
}

// Queue is a Scheduler drained by the host once per frame. Post is safe from
// any goroutine; Drain must run on the UI goroutine.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	onPost func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

var mainQueue = NewQueue()

// MainQueue is the process-wide queue used by controllers built without
// WithScheduler.
func MainQueue() *Queue {
	return mainQueue
}

// OnPost registers a wake-up hook called after every Post, outside the lock.
func (q *Queue) OnPost(fn func()) {
	q.mu.Lock()
	q.onPost = fn
	q.mu.Unlock()
}

// Post appends a task for the next Drain.
func (q *Queue) Post(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	hook := q.onPost
	q.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs the tasks queued before the call. Tasks posted while draining
// wait for the next Drain. It returns the number of tasks run.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range batch {
		task()
	}
	return len(batch)
}

// DrainAll drains until the queue stays empty or maxTicks ticks have run.
func (q *Queue) DrainAll(maxTicks int) int {
	ticks := 0
	for ticks < maxTicks && q.Drain() > 0 {
		ticks++
	}
	return ticks
}
