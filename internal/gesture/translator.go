/*
Package gesture turns a raw pointer event stream into the gestures a
zoomable image view reacts to: drag to pan, fling to keep panning with
inertia, and double-tap to toggle between the fit and over-zoomed scales.
*/
package gesture

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/anim"
	"github.com/matjam/scalableview/internal/types"
	"github.com/matjam/scalableview/internal/zoom"
)

var logger = log.WithPrefix("gesture")

type Kind uint8

const (
	Press Kind = iota
	Move
	Release
	Cancel
)

// Event is a single pointer sample delivered by the host.
type Event struct {
	Kind     Kind
	Position types.Vec
	Time     time.Time
}

// Hooks are optional callbacks for gestures the view itself ignores.
type Hooks struct {
	SingleTap func(types.Vec)
	LongPress func(types.Vec)
	ShowPress func(types.Vec)
}

type tap struct {
	down types.Vec
	up   time.Time
}

// Translator classifies pointer events and applies the resulting gestures to
// a zoom.Controller. It owns the fling integrator and the zoom animation,
// both stepped through the host's frame scheduler.
//
// Translator is single-threaded, like the Controller it drives.
type Translator struct {
	cfg   Config
	ctrl  *zoom.Controller
	clock clockwork.Clock
	hooks Hooks

	zoomAnim   *anim.FractionAnimator
	fling      *anim.Fling
	flingTimer *anim.Timer

	tracker     velocityTracker
	pressed     bool
	down        Event
	last        types.Vec
	scrolling   bool
	showPressed bool
	secondTap   bool
	prevTap     *tap
}

// New returns a Translator driving ctrl. Animation steps are posted to sched
// and timed with clock.
func New(ctrl *zoom.Controller, sched anim.Scheduler, clock clockwork.Clock, cfg Config, hooks Hooks) *Translator {
	t := &Translator{
		cfg:   cfg,
		ctrl:  ctrl,
		clock: clock,
		hooks: hooks,
		fling: anim.NewFling(cfg.Friction),
	}
	t.zoomAnim = anim.NewFractionAnimator(sched, cfg.ZoomDuration, cfg.Easing, ctrl.SetFraction)
	t.flingTimer = anim.NewTimer(sched, t.stepFling)
	return t
}

// SetGeometry forwards a viewport or image size change to the controller.
// Any fling in progress is abandoned since its bounds are stale.
func (t *Translator) SetGeometry(viewport, image types.Size) error {
	t.stopFling()
	return t.ctrl.SetGeometry(viewport, image)
}

// Animating reports whether a fling or zoom animation is still stepping.
func (t *Translator) Animating() bool {
	return t.flingTimer.Active() || t.zoomAnim.Active()
}

// Flinging reports whether a fling is in progress.
func (t *Translator) Flinging() bool { return t.flingTimer.Active() }

// Down marks the start of a potential gesture.
func (t *Translator) Down(p types.Vec) {
	t.stopFling()
}

// Scroll handles a drag step. distance is the pointer travel since the
// previous step, measured as previous minus current, so the content moves by
// its negation.
func (t *Translator) Scroll(distance types.Vec) {
	t.stopFling()
	if !t.ctrl.ZoomedIn() {
		return
	}
	t.ctrl.Pan(-distance.X, -distance.Y)
}

// Fling starts inertial panning with the release velocity in px/s.
func (t *Translator) Fling(velocity types.Vec) {
	if !t.ctrl.ZoomedIn() || !t.ctrl.Ready() {
		return
	}
	limit := t.cfg.MaxFlingVelocity
	velocity = types.Vec{
		X: math.Max(-limit, math.Min(velocity.X, limit)),
		Y: math.Max(-limit, math.Min(velocity.Y, limit)),
	}
	t.fling.Start(t.clock.Now(), t.ctrl.Offset(), velocity, t.ctrl.Bounds())
	if !t.fling.Active() {
		return
	}
	logger.Debug("fling", "velocity", velocity, "from", t.ctrl.Offset())
	t.flingTimer.Start()
}

// DoubleTap toggles the zoom level anchored at p and animates the fraction
// towards the new level, replacing any zoom animation in flight.
func (t *Translator) DoubleTap(p types.Vec) {
	target, ok := t.ctrl.ToggleZoom(p)
	if !ok {
		return
	}
	t.stopFling()
	logger.Debug("double tap", "at", p, "zoomedIn", t.ctrl.ZoomedIn())
	t.zoomAnim.Animate(t.clock.Now(), t.ctrl.Fraction(), target)
}

func (t *Translator) SingleTapUp(p types.Vec) {
	if t.hooks.SingleTap != nil {
		t.hooks.SingleTap(p)
	}
}

func (t *Translator) LongPress(p types.Vec) {
	if t.hooks.LongPress != nil {
		t.hooks.LongPress(p)
	}
}

func (t *Translator) ShowPress(p types.Vec) {
	if t.hooks.ShowPress != nil {
		t.hooks.ShowPress(p)
	}
}

func (t *Translator) stopFling() {
	if t.flingTimer.Active() {
		t.flingTimer.Stop()
		t.fling.Stop()
	}
}

func (t *Translator) stepFling(now time.Time) bool {
	pos, active := t.fling.Step(now)
	t.ctrl.SetOffset(pos)
	return active
}

// HandleEvent feeds one raw pointer event through the classifier. Only a
// single pointer is tracked; a press while another is held is ignored.
func (t *Translator) HandleEvent(e Event) {
	switch e.Kind {
	case Press:
		t.press(e)
	case Move:
		t.move(e)
	case Release:
		t.release(e)
	case Cancel:
		t.cancel()
	}
}

func (t *Translator) press(e Event) {
	if t.pressed {
		return
	}
	t.pressed = true
	t.scrolling = false
	t.showPressed = false
	t.down = e
	t.last = e.Position
	t.tracker.reset()
	t.tracker.add(e.Time, e.Position)

	t.secondTap = false
	if t.prevTap != nil {
		gap := e.Time.Sub(t.prevTap.up)
		near := e.Position.Sub(t.prevTap.down).Len() < t.cfg.DoubleTapSlop
		t.secondTap = gap >= t.cfg.DoubleTapMinTime && gap <= t.cfg.DoubleTapTimeout && near
	}
	if !t.secondTap {
		t.prevTap = nil
	}

	t.Down(e.Position)
}

func (t *Translator) move(e Event) {
	if !t.pressed {
		return
	}
	t.tracker.add(e.Time, e.Position)

	if !t.scrolling {
		if e.Position.Sub(t.down.Position).Len() <= t.cfg.TouchSlop {
			t.checkShowPress(e.Time)
			return
		}
		t.scrolling = true
		t.secondTap = false
		t.prevTap = nil
	}

	// the first step reports the distance from the press point, so movement
	// inside the slop is not lost
	distance := t.last.Sub(e.Position)
	t.last = e.Position
	if distance != (types.Vec{}) {
		t.Scroll(distance)
	}
}

func (t *Translator) release(e Event) {
	if !t.pressed {
		return
	}
	t.pressed = false
	t.tracker.add(e.Time, e.Position)
	held := e.Time.Sub(t.down.Time)

	switch {
	case t.scrolling:
		v := t.tracker.velocity()
		threshold := t.cfg.MinFlingVelocity
		if math.Abs(v.X) > threshold || math.Abs(v.Y) > threshold {
			t.Fling(v)
		}
		t.prevTap = nil
	case t.secondTap && held < t.cfg.DoubleTapTimeout:
		t.DoubleTap(e.Position)
		t.prevTap = nil
	case held >= t.cfg.LongPressTimeout:
		t.checkShowPress(e.Time)
		t.LongPress(t.down.Position)
		t.prevTap = nil
	default:
		t.checkShowPress(e.Time)
		t.SingleTapUp(e.Position)
		t.prevTap = &tap{down: t.down.Position, up: e.Time}
	}
	t.scrolling = false
	t.secondTap = false
}

func (t *Translator) cancel() {
	t.pressed = false
	t.scrolling = false
	t.secondTap = false
	t.prevTap = nil
}

func (t *Translator) checkShowPress(now time.Time) {
	if t.showPressed || now.Sub(t.down.Time) < t.cfg.ShowPressTimeout {
		return
	}
	t.showPressed = true
	t.ShowPress(t.down.Position)
}
