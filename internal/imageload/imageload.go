package imageload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load reads and decodes the image at path. When width is positive the
// image is resampled to that width, keeping its aspect ratio.
func Load(path string, width int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%s has no pixels", path)
	}
	log.Infof("loaded %v (%s, %vx%v)", path, format, b.Dx(), b.Dy())

	if width > 0 && width != b.Dx() {
		img = Resize(img, width)
	}
	return img, nil
}

// Resize scales img to the given width, keeping its aspect ratio.
func Resize(img image.Image, width int) *image.RGBA {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	scale := float64(width) / float64(srcW)
	h := int(float64(srcH)*scale + 0.5)
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
