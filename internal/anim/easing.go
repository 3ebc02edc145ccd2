package anim

import "github.com/matjam/scalableview/internal/types"

// Ease maps linear progress t in [0,1] through the easing curve named by mode.
// Unknown modes fall back to linear.
func Ease(mode types.EasingMode, t float64) float64 {
	switch mode {
	case types.EasingLinear:
		return t
	case types.EasingEaseIn:
		return t * t
	case types.EasingEaseOut:
		return t * (2 - t)
	case types.EasingEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}
