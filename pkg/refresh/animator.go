package refresh

import "time"

// Animator applies property changes over a duration and reports completion.
type Animator interface {
	Animate(duration time.Duration, animations func(), completion func(finished bool))
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(duration time.Duration, animations func(), completion func(finished bool))

func (f AnimatorFunc) Animate(duration time.Duration, animations func(), completion func(finished bool)) {
	f(duration, animations, completion)
}

// Immediate applies the changes and completes synchronously.
var Immediate Animator = AnimatorFunc(func(_ time.Duration, animations func(), completion func(bool)) {
	if animations != nil {
		animations()
	}
	if completion != nil {
		completion(true)
	}
})

// DeferredAnimator applies the changes immediately and runs the completion on
// the next tick of its scheduler, the way a one-frame animation would.
type DeferredAnimator struct {
	Scheduler Scheduler
}

func (a DeferredAnimator) Animate(_ time.Duration, animations func(), completion func(bool)) {
	if animations != nil {
		animations()
	}
	if completion == nil {
		return
	}
	if a.Scheduler == nil {
		completion(true)
		return
	}
	a.Scheduler.Post(func() { completion(true) })
}
