package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlath-labs/cmptree/raster"
)

func TestNewBuffer_ZeroDimension(t *testing.T) {
	_, err := raster.NewBuffer(0, 3)
	assert.ErrorIs(t, err, raster.ErrZeroDimension)

	_, err = raster.NewBuffer(3, 0)
	assert.ErrorIs(t, err, raster.ErrZeroDimension)
}

func TestNewBuffer_AtSet(t *testing.T) {
	buf, err := raster.NewBuffer(4, 3)
	require.NoError(t, err)

	buf.Set(2, 1, 200)
	assert.Equal(t, uint8(200), buf.At(2, 1))
	assert.Equal(t, uint8(0), buf.At(0, 0))
}

func TestNewBufferFromBytes_DimensionMismatch(t *testing.T) {
	_, err := raster.NewBufferFromBytes(4, 3, 4, make([]byte, 10))
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)
}

func TestNewBufferFromBytes_WidensStride(t *testing.T) {
	pix := make([]byte, 4*3)
	buf, err := raster.NewBufferFromBytes(4, 3, 0, pix)
	require.NoError(t, err)
	assert.Equal(t, 4, buf.Stride)
}

func TestBuffer_InBounds(t *testing.T) {
	buf, err := raster.NewBuffer(4, 3)
	require.NoError(t, err)

	assert.True(t, buf.InBounds(0, 0))
	assert.True(t, buf.InBounds(3, 2))
	assert.False(t, buf.InBounds(4, 0))
	assert.False(t, buf.InBounds(0, -1))
}
