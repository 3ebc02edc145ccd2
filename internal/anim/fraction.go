package anim

import (
	"time"

	"github.com/matjam/scalableview/internal/types"
)

// DefaultZoomDuration is how long the zoom fraction takes to travel between
// its endpoints.
const DefaultZoomDuration = 300 * time.Millisecond

// Fraction is a time-driven interpolation from Start to End.
type Fraction struct {
	Start     float64
	End       float64
	StartTime time.Time
	Duration  time.Duration
	Easing    types.EasingMode
}

// At evaluates the animation at now. Once the duration has elapsed it
// returns End exactly and done is true.
func (f Fraction) At(now time.Time) (value float64, done bool) {
	if f.Duration <= 0 {
		return f.End, true
	}
	t := float64(now.Sub(f.StartTime)) / float64(f.Duration)
	if t >= 1 {
		return f.End, true
	}
	if t < 0 {
		t = 0
	}
	return f.Start + (f.End-f.Start)*Ease(f.Easing, t), false
}

// FractionAnimator drives a single Fraction at a time through apply, one
// step per frame. A new Animate call replaces the one in flight.
type FractionAnimator struct {
	duration time.Duration
	easing   types.EasingMode
	apply    func(float64)
	current  Fraction
	timer    *Timer
}

func NewFractionAnimator(sched Scheduler, duration time.Duration, easing types.EasingMode, apply func(float64)) *FractionAnimator {
	a := &FractionAnimator{
		duration: duration,
		easing:   easing,
		apply:    apply,
	}
	a.timer = NewTimer(sched, a.step)
	return a
}

// Animate starts moving from the value from towards to, beginning at now.
func (a *FractionAnimator) Animate(now time.Time, from, to float64) {
	if from == to {
		a.timer.Stop()
		a.current = Fraction{Start: to, End: to}
		a.apply(to)
		return
	}
	a.current = Fraction{
		Start:     from,
		End:       to,
		StartTime: now,
		Duration:  a.duration,
		Easing:    a.easing,
	}
	a.timer.Start()
}

// Target returns the end value of the most recent animation.
func (a *FractionAnimator) Target() float64 { return a.current.End }

func (a *FractionAnimator) Active() bool { return a.timer.Active() }

func (a *FractionAnimator) Cancel() { a.timer.Stop() }

func (a *FractionAnimator) step(now time.Time) bool {
	v, done := a.current.At(now)
	a.apply(v)
	return !done
}
