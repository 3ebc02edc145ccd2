package anim

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/types"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestEaseEndpoints(t *testing.T) {
	for _, m := range []types.EasingMode{types.EasingLinear, types.EasingEaseIn, types.EasingEaseOut, types.EasingEaseInOut, "bogus"} {
		require.InDelta(t, 0, Ease(m, 0), 1e-12, "mode %s", m)
		require.InDelta(t, 1, Ease(m, 1), 1e-12, "mode %s", m)
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := Ease(m, float64(i)/20)
			require.GreaterOrEqual(t, v, prev, "mode %s not monotonic", m)
			prev = v
		}
	}
	require.InDelta(t, 0.5, Ease(types.EasingEaseInOut, 0.5), 1e-12)
}

func TestLoopDefersCallbacksPostedDuringFrame(t *testing.T) {
	var l Loop
	var calls []string
	l.PostFrame(func(time.Time) {
		calls = append(calls, "a")
		l.PostFrame(func(time.Time) { calls = append(calls, "b") })
	})

	l.RunFrame(time.Time{})
	require.Equal(t, []string{"a"}, calls)
	require.True(t, l.Pending())

	l.RunFrame(time.Time{})
	require.Equal(t, []string{"a", "b"}, calls)
	require.False(t, l.Pending())
}

func TestLoopDirty(t *testing.T) {
	var l Loop
	require.False(t, l.TakeDirty())
	l.Invalidate()
	l.Invalidate()
	require.True(t, l.TakeDirty())
	require.False(t, l.TakeDirty())
}

func TestTimerRearmsUntilDone(t *testing.T) {
	var l Loop
	steps := 0
	tm := NewTimer(&l, func(time.Time) bool {
		steps++
		return steps < 3
	})
	tm.Start()
	for i := 0; i < 10; i++ {
		l.RunFrame(time.Time{})
	}
	require.Equal(t, 3, steps)
	require.False(t, tm.Active())
	require.False(t, l.Pending())
}

func TestTimerStopAndSupersede(t *testing.T) {
	var l Loop
	steps := 0
	tm := NewTimer(&l, func(time.Time) bool {
		steps++
		return true
	})

	tm.Start()
	tm.Stop()
	l.RunFrame(time.Time{})
	require.Equal(t, 0, steps)

	// restarting twice must leave a single driver
	tm.Start()
	tm.Start()
	l.RunFrame(time.Time{})
	require.Equal(t, 1, steps)
	l.RunFrame(time.Time{})
	require.Equal(t, 2, steps)
	require.True(t, tm.Active())
}

func TestFractionAt(t *testing.T) {
	start := time.Unix(1000, 0)
	f := Fraction{Start: 0, End: 1, StartTime: start, Duration: 300 * time.Millisecond, Easing: types.EasingLinear}

	v, done := f.At(start)
	require.False(t, done)
	require.InDelta(t, 0, v, 1e-12)

	v, done = f.At(start.Add(150 * time.Millisecond))
	require.False(t, done)
	require.InDelta(t, 0.5, v, 1e-12)

	v, done = f.At(start.Add(time.Second))
	require.True(t, done)
	require.Equal(t, 1.0, v)

	reverse := Fraction{Start: 0.6, End: 0, StartTime: start, Duration: 300 * time.Millisecond, Easing: types.EasingEaseInOut}
	v, done = reverse.At(start.Add(300 * time.Millisecond))
	require.True(t, done)
	require.Equal(t, 0.0, v)
}

func TestFractionAnimatorReachesTargetExactly(t *testing.T) {
	var l Loop
	clock := clockwork.NewFakeClock()
	var values []float64
	a := NewFractionAnimator(&l, DefaultZoomDuration, types.EasingEaseInOut, func(v float64) { values = append(values, v) })

	a.Animate(clock.Now(), 0, 1)
	require.True(t, a.Active())
	for a.Active() {
		clock.Advance(frame)
		l.RunFrame(clock.Now())
	}

	require.Equal(t, 1.0, values[len(values)-1])
	for i := 1; i < len(values); i++ {
		require.GreaterOrEqual(t, values[i], values[i-1])
	}
	require.Equal(t, 1.0, a.Target())
}

func TestFractionAnimatorReplacesInFlight(t *testing.T) {
	var l Loop
	clock := clockwork.NewFakeClock()
	current := 0.0
	a := NewFractionAnimator(&l, DefaultZoomDuration, types.EasingLinear, func(v float64) { current = v })

	a.Animate(clock.Now(), 0, 1)
	for i := 0; i < 5; i++ {
		clock.Advance(frame)
		l.RunFrame(clock.Now())
	}
	mid := current
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	a.Animate(clock.Now(), mid, 0)
	clock.Advance(frame)
	l.RunFrame(clock.Now())
	require.Less(t, current, mid, "only the reverse driver should run")

	for a.Active() {
		clock.Advance(frame)
		l.RunFrame(clock.Now())
	}
	require.Equal(t, 0.0, current)
	require.False(t, l.Pending())
}

func TestFractionAnimatorNoDistance(t *testing.T) {
	var l Loop
	current := -1.0
	a := NewFractionAnimator(&l, DefaultZoomDuration, types.EasingLinear, func(v float64) { current = v })
	a.Animate(time.Now(), 1, 1)
	require.False(t, a.Active())
	require.Equal(t, 1.0, current)
}

func runFling(f *Fling, clock *clockwork.FakeClock) []types.Vec {
	var path []types.Vec
	for i := 0; i < 1000; i++ {
		clock.Advance(frame)
		p, active := f.Step(clock.Now())
		path = append(path, p)
		if !active {
			break
		}
	}
	return path
}

func TestFlingHaltsAtBoundWhileOtherAxisContinues(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bounds := types.Bounds{Min: types.Vec{X: -400, Y: -200}, Max: types.Vec{X: 400, Y: 200}}
	f := NewFling(DefaultFriction)
	f.Start(clock.Now(), types.Vec{X: 300, Y: 0}, types.Vec{X: 2000, Y: 300}, bounds)
	require.True(t, f.Active())

	path := runFling(f, clock)
	require.False(t, f.Active())

	hit := -1
	for i, p := range path {
		require.True(t, bounds.Contains(p), "step %d left bounds: %v", i, p)
		if hit < 0 && p.X == 400 {
			hit = i
		}
	}
	require.GreaterOrEqual(t, hit, 0, "x never reached its bound")
	for _, p := range path[hit:] {
		require.Equal(t, 400.0, p.X)
	}
	// y keeps moving after x stopped
	require.Greater(t, path[len(path)-1].Y, path[hit].Y)
	// and settles near v0/k
	require.InDelta(t, 300/DefaultFriction, path[len(path)-1].Y, 2)
}

func TestFlingNegativeBound(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bounds := types.Bounds{Min: types.Vec{X: -100, Y: -100}, Max: types.Vec{X: 100, Y: 100}}
	f := NewFling(DefaultFriction)
	f.Start(clock.Now(), types.Vec{}, types.Vec{X: -8000, Y: -8000}, bounds)

	path := runFling(f, clock)
	require.Equal(t, types.Vec{X: -100, Y: -100}, path[len(path)-1])
}

func TestFlingBelowRestVelocityIsIdle(t *testing.T) {
	f := NewFling(0)
	f.Start(time.Now(), types.Vec{X: 5}, types.Vec{X: 1, Y: -2}, types.Bounds{Min: types.Vec{X: -10, Y: -10}, Max: types.Vec{X: 10, Y: 10}})
	require.False(t, f.Active())
	require.Equal(t, types.Vec{X: 5}, f.Position())
}

func TestFlingStartOutsideBoundsIsPulledIn(t *testing.T) {
	now := time.Now()
	f := NewFling(DefaultFriction)
	f.Start(now, types.Vec{X: 500, Y: 0}, types.Vec{X: 0, Y: 100}, types.Bounds{Min: types.Vec{X: -50, Y: -50}, Max: types.Vec{X: 50, Y: 50}})
	p, _ := f.Step(now)
	require.Equal(t, 50.0, p.X)
}
