package anim

import (
	"math"
	"time"

	"github.com/matjam/scalableview/internal/types"
)

const (
	// DefaultFriction is the exponential decay rate of fling velocity, per second.
	DefaultFriction = 4.0

	// restVelocity is the speed in px/s below which an axis counts as stopped.
	restVelocity = 5.0
)

// flingAxis integrates one axis of a fling:
//
//	v(t) = v0 * exp(-k*t)
//	x(t) = x0 + v0/k * (1 - exp(-k*t))
type flingAxis struct {
	x0, v0   float64
	min, max float64
	pos      float64
	done     bool
}

func (a *flingAxis) start(x0, v0, min, max float64) {
	a.x0 = math.Max(min, math.Min(x0, max))
	a.v0 = v0
	a.min, a.max = min, max
	a.pos = a.x0
	a.done = math.Abs(v0) < restVelocity
}

func (a *flingAxis) step(k, t float64) {
	if a.done {
		return
	}
	decay := math.Exp(-k * t)
	x := a.x0 + a.v0/k*(1-decay)
	switch {
	case x >= a.max:
		a.pos, a.done = a.max, true
	case x <= a.min:
		a.pos, a.done = a.min, true
	default:
		a.pos = x
		a.done = math.Abs(a.v0*decay) < restVelocity
	}
}

// Fling is an inertial integrator that decelerates a release velocity and
// stops each axis dead at its bound, without bouncing. The two axes are
// independent: one may stop at a bound while the other keeps moving.
type Fling struct {
	friction float64
	start    time.Time
	x, y     flingAxis
	active   bool
}

// NewFling returns an idle integrator. A non-positive friction selects
// DefaultFriction.
func NewFling(friction float64) *Fling {
	if friction <= 0 {
		friction = DefaultFriction
	}
	return &Fling{friction: friction}
}

// Start begins a fling at from with velocity in px/s. from is pulled inside
// bounds first.
func (f *Fling) Start(now time.Time, from, velocity types.Vec, bounds types.Bounds) {
	f.start = now
	f.x.start(from.X, velocity.X, bounds.Min.X, bounds.Max.X)
	f.y.start(from.Y, velocity.Y, bounds.Min.Y, bounds.Max.Y)
	f.active = !(f.x.done && f.y.done)
}

// Step advances to now and returns the new position. active is false once
// both axes have come to rest or hit their bound.
func (f *Fling) Step(now time.Time) (pos types.Vec, active bool) {
	if f.active {
		t := now.Sub(f.start).Seconds()
		if t < 0 {
			t = 0
		}
		f.x.step(f.friction, t)
		f.y.step(f.friction, t)
		f.active = !(f.x.done && f.y.done)
	}
	return f.Position(), f.active
}

func (f *Fling) Position() types.Vec { return types.Vec{X: f.x.pos, Y: f.y.pos} }

func (f *Fling) Active() bool { return f.active }

func (f *Fling) Stop() { f.active = false }
