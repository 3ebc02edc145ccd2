package gesture

import (
	"time"

	"github.com/matjam/scalableview/internal/anim"
	"github.com/matjam/scalableview/internal/types"
)

// Classification defaults, in pixels and durations.
const (
	DefaultTouchSlop        = 8.0
	DefaultDoubleTapTimeout = 300 * time.Millisecond
	DefaultDoubleTapMinTime = 40 * time.Millisecond
	DefaultDoubleTapSlop    = 100.0
	DefaultShowPressTimeout = 100 * time.Millisecond
	DefaultLongPressTimeout = 500 * time.Millisecond
	DefaultMinFlingVelocity = 50.0
	DefaultMaxFlingVelocity = 8000.0
)

type Config struct {
	TouchSlop        float64       // movement before a press becomes a drag
	DoubleTapTimeout time.Duration // max gap between taps, and max hold of the second tap
	DoubleTapMinTime time.Duration // taps closer than this are treated as bounces
	DoubleTapSlop    float64       // max distance between the two presses
	ShowPressTimeout time.Duration
	LongPressTimeout time.Duration
	MinFlingVelocity float64 // px/s
	MaxFlingVelocity float64 // px/s

	Friction     float64
	ZoomDuration time.Duration
	Easing       types.EasingMode
}

func DefaultConfig() Config {
	return Config{
		TouchSlop:        DefaultTouchSlop,
		DoubleTapTimeout: DefaultDoubleTapTimeout,
		DoubleTapMinTime: DefaultDoubleTapMinTime,
		DoubleTapSlop:    DefaultDoubleTapSlop,
		ShowPressTimeout: DefaultShowPressTimeout,
		LongPressTimeout: DefaultLongPressTimeout,
		MinFlingVelocity: DefaultMinFlingVelocity,
		MaxFlingVelocity: DefaultMaxFlingVelocity,
		Friction:         anim.DefaultFriction,
		ZoomDuration:     anim.DefaultZoomDuration,
		Easing:           types.EasingEaseInOut,
	}
}
