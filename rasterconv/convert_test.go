package rasterconv_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlath-labs/cmptree/raster"
	"github.com/vlath-labs/cmptree/rasterconv"
)

func TestFromImage_NilImage(t *testing.T) {
	_, err := rasterconv.FromImage(nil)
	assert.ErrorIs(t, err, rasterconv.ErrNilImage)
}

func TestFromImage_ZeroDimension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	_, err := rasterconv.FromImage(img)
	assert.ErrorIs(t, err, raster.ErrZeroDimension)
}

func TestFromImage_ConvertsToGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)
	img.Set(0, 1, color.Black)
	img.Set(1, 1, color.White)

	buf, err := rasterconv.FromImage(img)
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, uint8(255), buf.At(0, 0))
	assert.Equal(t, uint8(0), buf.At(1, 0))
}
