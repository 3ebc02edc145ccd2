package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/matjam/scalableview/internal/anim"
	"github.com/matjam/scalableview/internal/gesture"
	"github.com/matjam/scalableview/internal/types"
	"github.com/matjam/scalableview/internal/zoom"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	OverFactor       float64          `mapstructure:"over_factor"`
	ZoomDuration     time.Duration    `mapstructure:"zoom_duration"`
	Easing           types.EasingMode `mapstructure:"easing"`
	FlingFriction    float64          `mapstructure:"fling_friction"`
	FlingMinVelocity float64          `mapstructure:"fling_min_velocity"`
	FlingMaxVelocity float64          `mapstructure:"fling_max_velocity"`
	TouchSlop        float64          `mapstructure:"touch_slop"`
	DoubleTapTimeout time.Duration    `mapstructure:"double_tap_timeout"`
	DoubleTapMinTime time.Duration    `mapstructure:"double_tap_min_time"`
	DoubleTapSlop    float64          `mapstructure:"double_tap_slop"`
	LongPressTimeout time.Duration    `mapstructure:"long_press_timeout"`
	ImageSize        int              `mapstructure:"image_size"`
	FramerateLimit   int              `mapstructure:"framerate_limit"`
	WindowWidth      int              `mapstructure:"window_width"`
	WindowHeight     int              `mapstructure:"window_height"`
	Debug            bool             `mapstructure:"debug"`
}

func Default() Config {
	return Config{
		OverFactor:       zoom.DefaultOverFactor,
		ZoomDuration:     anim.DefaultZoomDuration,
		Easing:           types.EasingEaseInOut,
		FlingFriction:    anim.DefaultFriction,
		FlingMinVelocity: gesture.DefaultMinFlingVelocity,
		FlingMaxVelocity: gesture.DefaultMaxFlingVelocity,
		TouchSlop:        gesture.DefaultTouchSlop,
		DoubleTapTimeout: gesture.DefaultDoubleTapTimeout,
		DoubleTapMinTime: gesture.DefaultDoubleTapMinTime,
		DoubleTapSlop:    gesture.DefaultDoubleTapSlop,
		LongPressTimeout: gesture.DefaultLongPressTimeout,
		ImageSize:        0,
		FramerateLimit:   60,
		WindowWidth:      800,
		WindowHeight:     800,
		Debug:            false,
	}
}

// SetDefaults registers Default with v so unset keys resolve to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("over_factor", d.OverFactor)
	v.SetDefault("zoom_duration", d.ZoomDuration)
	v.SetDefault("easing", string(d.Easing))
	v.SetDefault("fling_friction", d.FlingFriction)
	v.SetDefault("fling_min_velocity", d.FlingMinVelocity)
	v.SetDefault("fling_max_velocity", d.FlingMaxVelocity)
	v.SetDefault("touch_slop", d.TouchSlop)
	v.SetDefault("double_tap_timeout", d.DoubleTapTimeout)
	v.SetDefault("double_tap_min_time", d.DoubleTapMinTime)
	v.SetDefault("double_tap_slop", d.DoubleTapSlop)
	v.SetDefault("long_press_timeout", d.LongPressTimeout)
	v.SetDefault("image_size", d.ImageSize)
	v.SetDefault("framerate_limit", d.FramerateLimit)
	v.SetDefault("window_width", d.WindowWidth)
	v.SetDefault("window_height", d.WindowHeight)
	v.SetDefault("debug", d.Debug)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the view cannot work with. The frame rate is
// clamped to [1,240] rather than rejected.
func (c *Config) Validate() error {
	switch {
	case !(c.OverFactor > 1):
		return fmt.Errorf("%w: over_factor must be greater than 1, got %v", ErrInvalid, c.OverFactor)
	case c.ZoomDuration <= 0:
		return fmt.Errorf("%w: zoom_duration must be positive, got %v", ErrInvalid, c.ZoomDuration)
	case !c.Easing.Valid():
		return fmt.Errorf("%w: unknown easing %q", ErrInvalid, c.Easing)
	case c.FlingFriction <= 0:
		return fmt.Errorf("%w: fling_friction must be positive, got %v", ErrInvalid, c.FlingFriction)
	case c.FlingMinVelocity < 0 || c.FlingMaxVelocity <= c.FlingMinVelocity:
		return fmt.Errorf("%w: fling velocities must satisfy 0 <= min < max, got %v and %v", ErrInvalid, c.FlingMinVelocity, c.FlingMaxVelocity)
	case c.TouchSlop < 0 || c.DoubleTapSlop < 0:
		return fmt.Errorf("%w: slop must not be negative", ErrInvalid)
	case c.DoubleTapTimeout <= 0 || c.DoubleTapMinTime < 0 || c.DoubleTapMinTime >= c.DoubleTapTimeout:
		return fmt.Errorf("%w: double tap window must satisfy 0 <= min < timeout, got %v and %v", ErrInvalid, c.DoubleTapMinTime, c.DoubleTapTimeout)
	case c.LongPressTimeout <= 0:
		return fmt.Errorf("%w: long_press_timeout must be positive", ErrInvalid)
	case c.ImageSize < 0:
		return fmt.Errorf("%w: image_size must not be negative", ErrInvalid)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size must be positive, got %vx%v", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}

	if c.FramerateLimit <= 0 {
		c.FramerateLimit = 60
	} else if c.FramerateLimit > 240 {
		c.FramerateLimit = 240
	}
	return nil
}

// Gesture returns the classifier and animation settings.
func (c Config) Gesture() gesture.Config {
	g := gesture.DefaultConfig()
	g.TouchSlop = c.TouchSlop
	g.DoubleTapTimeout = c.DoubleTapTimeout
	g.DoubleTapMinTime = c.DoubleTapMinTime
	g.DoubleTapSlop = c.DoubleTapSlop
	g.LongPressTimeout = c.LongPressTimeout
	g.MinFlingVelocity = c.FlingMinVelocity
	g.MaxFlingVelocity = c.FlingMaxVelocity
	g.Friction = c.FlingFriction
	g.ZoomDuration = c.ZoomDuration
	g.Easing = c.Easing
	return g
}

// FrameInterval is the time budget of one frame.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FramerateLimit)
}
