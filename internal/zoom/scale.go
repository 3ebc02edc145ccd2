package zoom

import (
	"errors"
	"fmt"

	"github.com/matjam/scalableview/internal/types"
)

// DefaultOverFactor is how much larger the zoomed-in scale is than the
// scale that fills the viewport along the image's non-constraining axis.
const DefaultOverFactor = 1.5

var (
	ErrInvalidImage      = errors.New("image must have positive width and height")
	ErrInvalidViewport   = errors.New("viewport dimensions must not be negative")
	ErrInvalidOverFactor = errors.New("over factor must be greater than 1")
)

// Scales holds the two fixed scale factors derived from an image and a viewport.
type Scales struct {
	Fit  float64 // image exactly fills the viewport on its constraining axis
	Over float64 // zoomed-in scale
}

// At interpolates between Fit (fraction 0) and Over (fraction 1).
func (s Scales) At(fraction float64) float64 {
	return s.Fit + fraction*(s.Over-s.Fit)
}

// ComputeScales derives the fit and over-zoom scales. Both sizes must be
// non-empty and overFactor must exceed 1, which makes Over > Fit.
func ComputeScales(image, viewport types.Size, overFactor float64) (Scales, error) {
	if image.Empty() {
		return Scales{}, fmt.Errorf("%w: %vx%v", ErrInvalidImage, image.W, image.H)
	}
	if viewport.Empty() {
		return Scales{}, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, viewport.W, viewport.H)
	}
	if !(overFactor > 1) {
		return Scales{}, fmt.Errorf("%w: %v", ErrInvalidOverFactor, overFactor)
	}

	if image.Aspect() > viewport.Aspect() {
		// relatively wider: width constrains the fit
		return Scales{
			Fit:  viewport.W / image.W,
			Over: viewport.H / image.H * overFactor,
		}, nil
	}
	return Scales{
		Fit:  viewport.H / image.H,
		Over: viewport.W / image.W * overFactor,
	}, nil
}
