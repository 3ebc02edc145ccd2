package anim

import "time"

// Scheduler is the host's "run this on the next frame" primitive.
type Scheduler interface {
	PostFrame(fn func(now time.Time))
}

// Loop is a Scheduler driven by the host's frame loop. It also records
// whether anything asked for a redraw since the last frame was drawn.
//
// Loop is single-threaded: PostFrame, Invalidate and RunFrame must all be
// called from the thread that runs the frame loop.
type Loop struct {
	pending []func(now time.Time)
	dirty   bool
}

func (l *Loop) PostFrame(fn func(now time.Time)) {
	l.pending = append(l.pending, fn)
}

// RunFrame runs the callbacks posted before this call. Callbacks posted while
// running are deferred to the next frame.
func (l *Loop) RunFrame(now time.Time) {
	fns := l.pending
	l.pending = nil
	for _, fn := range fns {
		fn(now)
	}
}

// Pending reports whether any callback is waiting for the next frame.
func (l *Loop) Pending() bool { return len(l.pending) > 0 }

// Invalidate requests a redraw.
func (l *Loop) Invalidate() { l.dirty = true }

// TakeDirty reports whether a redraw was requested and clears the request.
func (l *Loop) TakeDirty() bool {
	d := l.dirty
	l.dirty = false
	return d
}
