package anim

import "time"

// Timer repeatedly re-arms itself on a Scheduler for as long as its step
// function returns true. Starting a running timer supersedes the previous
// run; callbacks already posted for it become no-ops.
type Timer struct {
	sched Scheduler
	step  func(now time.Time) bool
	gen   uint64
	armed bool
}

func NewTimer(sched Scheduler, step func(now time.Time) bool) *Timer {
	return &Timer{sched: sched, step: step}
}

// Start arms the timer for the next frame.
func (t *Timer) Start() {
	t.gen++
	t.armed = true
	t.post(t.gen)
}

// Stop cancels the timer.
func (t *Timer) Stop() {
	t.gen++
	t.armed = false
}

func (t *Timer) Active() bool { return t.armed }

func (t *Timer) post(gen uint64) {
	t.sched.PostFrame(func(now time.Time) {
		if !t.armed || gen != t.gen {
			return
		}
		more := t.step(now)
		// step may have restarted or stopped us
		if gen != t.gen {
			return
		}
		if more {
			t.post(gen)
		} else {
			t.armed = false
		}
	})
}
