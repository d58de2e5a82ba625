package rasterconv

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"github.com/vlath-labs/cmptree/raster"
)

// ErrNilImage indicates a nil image.Image was passed to FromImage.
var ErrNilImage = errors.New("rasterconv: image is nil")

// FromImage reduces img to 8-bit grayscale and copies it into a new
// raster.Buffer. It uses golang.org/x/image/draw rather than the standard
// library's image/draw because the latter cannot target an arbitrary
// source color model directly into image.Gray without an intermediate
// conversion step; x/image/draw.Draw performs that conversion in one pass.
func FromImage(img image.Image) (*raster.Buffer, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, raster.ErrZeroDimension
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)

	return raster.NewBufferFromBytes(width, height, gray.Stride, gray.Pix)
}
