package gesture

import (
	"testing"
	"time"

	"github.com/matjam/scalableview/internal/types"
	"github.com/stretchr/testify/require"
)

func TestVelocityTracker(t *testing.T) {
	base := time.Unix(0, 0)
	for _, tc := range []struct {
		label   string
		samples []sample
		want    types.Vec
	}{
		{
			label: "steady motion",
			samples: []sample{
				{base, types.Vec{X: 0, Y: 0}},
				{base.Add(10 * time.Millisecond), types.Vec{X: 10, Y: -5}},
				{base.Add(20 * time.Millisecond), types.Vec{X: 20, Y: -10}},
				{base.Add(30 * time.Millisecond), types.Vec{X: 30, Y: -15}},
			},
			want: types.Vec{X: 1000, Y: -500},
		},
		{
			label:   "single sample",
			samples: []sample{{base, types.Vec{X: 5}}},
		},
		{
			label: "paused before release",
			samples: []sample{
				{base, types.Vec{X: 0}},
				{base.Add(10 * time.Millisecond), types.Vec{X: 50}},
				{base.Add(100 * time.Millisecond), types.Vec{X: 50}},
			},
		},
		{
			label: "old samples are ignored",
			samples: []sample{
				{base, types.Vec{X: -1000}},
				{base.Add(200 * time.Millisecond), types.Vec{X: 0}},
				{base.Add(210 * time.Millisecond), types.Vec{X: 20}},
				{base.Add(220 * time.Millisecond), types.Vec{X: 40}},
			},
			want: types.Vec{X: 2000},
		},
		{
			label: "same timestamp",
			samples: []sample{
				{base, types.Vec{X: 0}},
				{base, types.Vec{X: 10}},
			},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var v velocityTracker
			for _, s := range tc.samples {
				v.add(s.t, s.pos)
			}
			got := v.velocity()
			require.InDelta(t, tc.want.X, got.X, 1e-6)
			require.InDelta(t, tc.want.Y, got.Y, 1e-6)
		})
	}
}

func TestVelocityTrackerKeepsRecentSamples(t *testing.T) {
	var v velocityTracker
	base := time.Unix(0, 0)
	for i := 0; i < 3*maxSamples; i++ {
		v.add(base.Add(time.Duration(i)*5*time.Millisecond), types.Vec{Y: float64(i)})
	}
	require.Len(t, v.samples, maxSamples)
	require.InDelta(t, 200, v.velocity().Y, 1e-6)

	v.reset()
	require.Equal(t, types.Vec{}, v.velocity())
}
