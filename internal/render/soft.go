package render

import (
	"image"
	"image/color"

	"github.com/matjam/scalableview/internal/zoom"
	"golang.org/x/image/draw"
)

// SoftCanvas rasterizes frames in memory. It backs headless rendering such
// as snapshots.
type SoftCanvas struct {
	Background   color.Color
	Interpolator draw.Interpolator

	dst *image.RGBA
}

func NewSoftCanvas(width, height int) *SoftCanvas {
	return &SoftCanvas{
		Background:   color.Black,
		Interpolator: draw.CatmullRom,
		dst:          image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Image returns the frame buffer. It is reused by the next frame.
func (c *SoftCanvas) Image() *image.RGBA { return c.dst }

// Resize replaces the frame buffer when the size changes.
func (c *SoftCanvas) Resize(width, height int) {
	if c.dst.Rect.Dx() == width && c.dst.Rect.Dy() == height {
		return
	}
	c.dst = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *SoftCanvas) Clear() {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

func (c *SoftCanvas) DrawImage(img image.Image, t zoom.Transform) error {
	sr := img.Bounds()
	m := t.Matrix()
	// the transform is relative to the image's top-left corner
	m[2] -= m[0] * float64(sr.Min.X)
	m[5] -= m[4] * float64(sr.Min.Y)
	c.Interpolator.Transform(c.dst, m, img, sr, draw.Over, nil)
	return nil
}
