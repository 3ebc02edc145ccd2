package zoom

import (
	"github.com/matjam/scalableview/internal/types"
	"golang.org/x/image/math/f64"
)

// Transform is what a renderer needs for one frame: translate by Pan, scale
// uniformly by Scale about Pivot, then paint the image at ImageOffset.
type Transform struct {
	Scale       float64
	Pan         types.Vec // pan offset already multiplied by the zoom fraction
	ImageOffset types.Vec // centers the unscaled image in the viewport
	Pivot       types.Vec // viewport center
}

// Apply maps a point in image pixel space to viewport space.
func (t Transform) Apply(p types.Vec) types.Vec {
	return types.Vec{
		X: t.Pan.X + t.Pivot.X + t.Scale*(p.X+t.ImageOffset.X-t.Pivot.X),
		Y: t.Pan.Y + t.Pivot.Y + t.Scale*(p.Y+t.ImageOffset.Y-t.Pivot.Y),
	}
}

// Matrix returns the same mapping as Apply in the row-major 2x3 form used by
// golang.org/x/image/draw.
func (t Transform) Matrix() f64.Aff3 {
	o := t.Apply(types.Vec{})
	return f64.Aff3{
		t.Scale, 0, o.X,
		0, t.Scale, o.Y,
	}
}

// Rect returns where an image of the given size lands in viewport space.
func (t Transform) Rect(image types.Size) types.Bounds {
	return types.Bounds{
		Min: t.Apply(types.Vec{}),
		Max: t.Apply(types.Vec{X: image.W, Y: image.H}),
	}
}
