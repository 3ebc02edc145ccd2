package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/matjam/scalableview/internal/zoom"
)

var ErrNoImage = errors.New("renderer needs a decoded image")

// Canvas is the drawing primitive a frame is issued to.
type Canvas interface {
	Clear()                                            // Clear to the background color
	DrawImage(img image.Image, t zoom.Transform) error // Paint img with the frame's transform
}

// Source supplies the view state to draw. *zoom.Controller implements it.
type Source interface {
	Ready() bool
	Transform() zoom.Transform
}

// Renderer turns the current view state into one draw call per frame. It
// owns no view state of its own.
type Renderer struct {
	img image.Image
	src Source
}

// New returns a renderer for img. img must be non-nil with positive
// dimensions.
func New(img image.Image, src Source) (*Renderer, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %v", zoom.ErrInvalidImage, b)
	}
	return &Renderer{img: img, src: src}, nil
}

func (r *Renderer) Image() image.Image { return r.img }

// Draw clears c and, once the view geometry is known, paints the image with
// the current transform.
func (r *Renderer) Draw(c Canvas) error {
	c.Clear()
	if !r.src.Ready() {
		return nil
	}
	return c.DrawImage(r.img, r.src.Transform())
}
