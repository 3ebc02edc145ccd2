package zoom

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview/internal/types"
)

var logger = log.WithPrefix("zoom")

// Controller owns the authoritative view state: the pan offset, the zoom
// fraction, which of the two zoom levels is active and the scales derived
// from the image and viewport sizes.
//
// Controller is not safe for concurrent use. All calls are expected to come
// from the single thread that handles input and draws frames.
type Controller struct {
	overFactor float64
	invalidate func()

	image    types.Size
	viewport types.Size
	ready    bool

	scales      Scales
	imageOffset types.Vec

	offset   types.Vec
	fraction float64
	zoomedIn bool
}

// NewController returns a controller using overFactor for the zoomed-in
// scale. invalidate is called whenever the state visible to a renderer
// changes; it may be nil.
func NewController(overFactor float64, invalidate func()) (*Controller, error) {
	if !(overFactor > 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverFactor, overFactor)
	}
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Controller{
		overFactor: overFactor,
		invalidate: invalidate,
	}, nil
}

// SetGeometry records a new viewport and image size and recomputes the scales
// and the centering offset. A zero-sized viewport is accepted and leaves the
// controller not ready until a usable size arrives. The pan offset is kept
// as-is and may lie outside the new bounds until the next clamp.
func (c *Controller) SetGeometry(viewport, image types.Size) error {
	if image.Empty() {
		return fmt.Errorf("%w: %vx%v", ErrInvalidImage, image.W, image.H)
	}
	if viewport.W < 0 || viewport.H < 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, viewport.W, viewport.H)
	}

	c.image = image
	c.viewport = viewport

	if viewport.Empty() {
		logger.Debug("viewport not laid out yet, deferring", "viewport", viewport)
		c.ready = false
		return nil
	}

	scales, err := ComputeScales(image, viewport, c.overFactor)
	if err != nil {
		return err
	}
	c.scales = scales
	c.imageOffset = types.Vec{
		X: (viewport.W - image.W) / 2,
		Y: (viewport.H - image.H) / 2,
	}
	c.ready = true

	logger.Debug("geometry changed",
		"viewport", viewport, "image", image,
		"fit", scales.Fit, "over", scales.Over)
	c.invalidate()
	return nil
}

// Ready reports whether both the image and the viewport are known and non-empty.
func (c *Controller) Ready() bool { return c.ready }

func (c *Controller) Scales() Scales { return c.scales }

func (c *Controller) Viewport() types.Size { return c.viewport }

func (c *Controller) Image() types.Size { return c.image }

func (c *Controller) ZoomedIn() bool { return c.zoomedIn }

func (c *Controller) Fraction() float64 { return c.fraction }

func (c *Controller) Offset() types.Vec { return c.offset }

// Bounds returns the pan limits. They are always derived from the
// over-zoom extents, whatever the current fraction. When the over-zoomed
// image is not larger than the viewport on an axis, that axis collapses to
// the single point 0.
func (c *Controller) Bounds() types.Bounds {
	if !c.ready {
		return types.Bounds{}
	}
	half := types.Vec{
		X: math.Max(0, (c.image.W*c.scales.Over-c.viewport.W)/2),
		Y: math.Max(0, (c.image.H*c.scales.Over-c.viewport.H)/2),
	}
	return types.Bounds{Min: half.Mul(-1), Max: half}
}

// Clamp pulls the pan offset back inside Bounds.
func (c *Controller) Clamp() {
	if !c.ready {
		return
	}
	c.offset = c.Bounds().Clamp(c.offset)
}

// Pan moves the offset by (dx, dy) and clamps. It only has an effect while
// zoomed in and reports whether it was applied.
func (c *Controller) Pan(dx, dy float64) bool {
	if !c.zoomedIn || !c.ready {
		return false
	}
	c.offset = c.offset.Add(types.Vec{X: dx, Y: dy})
	c.Clamp()
	c.invalidate()
	return true
}

// SetOffset writes the pan offset directly, clamped. It is used by the fling
// integrator.
func (c *Controller) SetOffset(v types.Vec) {
	if !c.ready {
		return
	}
	c.offset = c.Bounds().Clamp(v)
	c.invalidate()
}

// SetFraction writes the zoom fraction, limited to [0,1]. It is used by the
// zoom animation and is not meant to be driven by user input.
func (c *Controller) SetFraction(f float64) {
	c.fraction = math.Max(0, math.Min(1, f))
	c.invalidate()
}

// ToggleZoom flips between the fit and the over-zoomed level and returns the
// fraction the zoom animation should head for. Zooming in positions the pan
// offset so that anchor stays under the finger as the scale grows from fit to
// over; zooming out leaves the offset alone since it has no visible effect
// once the fraction reaches 0. ok is false when the geometry is not known yet.
func (c *Controller) ToggleZoom(anchor types.Vec) (target float64, ok bool) {
	if !c.ready {
		return c.fraction, false
	}

	c.zoomedIn = !c.zoomedIn
	if !c.zoomedIn {
		logger.Debug("zoom out")
		return 0, true
	}

	rel := anchor.Sub(c.viewport.Center())
	c.offset = rel.Sub(rel.Mul(c.scales.Over / c.scales.Fit))
	c.Clamp()
	logger.Debug("zoom in", "anchor", anchor, "offset", c.offset)
	return 1, true
}

// Transform returns the scale and translation to draw with this frame.
func (c *Controller) Transform() Transform {
	return Transform{
		Scale:       c.scales.At(c.fraction),
		Pan:         c.offset.Mul(c.fraction),
		ImageOffset: c.imageOffset,
		Pivot:       c.viewport.Center(),
	}
}
