package gesture

import (
	"time"

	"github.com/matjam/scalableview/internal/types"
)

const (
	// velocityHorizon is how far back samples contribute to a velocity estimate.
	velocityHorizon = 100 * time.Millisecond
	// pointerStoppedTime is the pause after which the pointer is considered
	// to have come to rest before release.
	pointerStoppedTime = 40 * time.Millisecond
	maxSamples         = 20
)

type sample struct {
	t   time.Time
	pos types.Vec
}

// velocityTracker estimates pointer velocity with a least-squares line fit
// over the most recent samples.
type velocityTracker struct {
	samples []sample
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func (v *velocityTracker) add(t time.Time, pos types.Vec) {
	if len(v.samples) == maxSamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:maxSamples-1]
	}
	v.samples = append(v.samples, sample{t: t, pos: pos})
}

// velocity returns the estimate in px/s. It is zero with fewer than two
// usable samples or when the pointer paused before the last sample.
func (v *velocityTracker) velocity() types.Vec {
	n := len(v.samples)
	if n < 2 {
		return types.Vec{}
	}
	last := v.samples[n-1]
	if last.t.Sub(v.samples[n-2].t) > pointerStoppedTime {
		return types.Vec{}
	}

	var recent []sample
	for _, s := range v.samples {
		if last.t.Sub(s.t) <= velocityHorizon {
			recent = append(recent, s)
		}
	}
	if len(recent) < 2 {
		return types.Vec{}
	}

	var mt, mx, my float64
	for _, s := range recent {
		mt += s.t.Sub(last.t).Seconds()
		mx += s.pos.X
		my += s.pos.Y
	}
	k := float64(len(recent))
	mt, mx, my = mt/k, mx/k, my/k

	var stt, stx, sty float64
	for _, s := range recent {
		dt := s.t.Sub(last.t).Seconds() - mt
		stt += dt * dt
		stx += dt * (s.pos.X - mx)
		sty += dt * (s.pos.Y - my)
	}
	if stt == 0 {
		return types.Vec{}
	}
	return types.Vec{X: stx / stt, Y: sty / stt}
}
