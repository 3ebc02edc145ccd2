package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/matjam/scalableview"
	"github.com/matjam/scalableview/internal/gesture"
	"github.com/matjam/scalableview/internal/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, toml string) (Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(toml)))
	return Load(v)
}

func TestDefaultsMatchEmbeddedConfig(t *testing.T) {
	fromFile, err := load(t, scalableview.DefaultConfig)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), fromFile); diff != "" {
		t.Errorf("embedded config drifted from defaults (-want +got):\n%s", diff)
	}

	empty, err := load(t, "")
	require.NoError(t, err)
	require.Equal(t, Default(), empty)
}

func TestOverrides(t *testing.T) {
	c, err := load(t, `
over_factor = 2.5
zoom_duration = "1s"
easing = "linear"
double_tap_timeout = "250ms"
framerate_limit = 1000
`)
	require.NoError(t, err)
	require.Equal(t, 2.5, c.OverFactor)
	require.Equal(t, time.Second, c.ZoomDuration)
	require.Equal(t, types.EasingLinear, c.Easing)
	require.Equal(t, 240, c.FramerateLimit)

	g := c.Gesture()
	require.Equal(t, 250*time.Millisecond, g.DoubleTapTimeout)
	require.Equal(t, types.EasingLinear, g.Easing)
	require.Equal(t, gesture.DefaultShowPressTimeout, g.ShowPressTimeout)
}

func TestValidation(t *testing.T) {
	for _, tc := range []struct {
		label string
		toml  string
	}{
		{"over factor of one", "over_factor = 1.0"},
		{"negative zoom duration", `zoom_duration = "-1s"`},
		{"unknown easing", `easing = "bounce"`},
		{"zero friction", "fling_friction = 0.0"},
		{"inverted fling velocities", "fling_min_velocity = 100.0\nfling_max_velocity = 10.0"},
		{"inverted double tap window", `double_tap_min_time = "400ms"`},
		{"negative image size", "image_size = -3"},
		{"empty window", "window_width = 0"},
	} {
		t.Run(tc.label, func(t *testing.T) {
			_, err := load(t, tc.toml)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFrameInterval(t *testing.T) {
	c := Default()
	c.FramerateLimit = 0
	require.NoError(t, c.Validate())
	require.Equal(t, time.Second/60, c.FrameInterval())
}
