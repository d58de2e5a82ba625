package mser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlath-labs/cmptree/mser"
	"github.com/vlath-labs/cmptree/raster"
)

func TestDetect_InvalidDelta(t *testing.T) {
	buf, _ := raster.NewBuffer(2, 2)
	_, err := mser.Detect(buf, mser.WithDelta(0))
	assert.ErrorIs(t, err, mser.ErrInvalidDelta)

	_, err = mser.Detect(buf, mser.WithDelta(256))
	assert.ErrorIs(t, err, mser.ErrInvalidDelta)
}

func TestDetect_InvalidAreaRange(t *testing.T) {
	buf, _ := raster.NewBuffer(2, 2)
	_, err := mser.Detect(buf, mser.WithMinArea(100), mser.WithMaxArea(10))
	assert.ErrorIs(t, err, mser.ErrInvalidAreaRange)
}

func TestDetect_InvalidStability(t *testing.T) {
	buf, _ := raster.NewBuffer(2, 2)
	_, err := mser.Detect(buf, mser.WithMinStability(-1))
	assert.ErrorIs(t, err, mser.ErrInvalidStability)
}

func TestDetect_ValidationRunsBeforeTouchingBuffer(t *testing.T) {
	// A nil buffer would panic on dereference if validation didn't
	// short-circuit first.
	_, err := mser.Detect(nil, mser.WithDelta(0))
	assert.ErrorIs(t, err, mser.ErrInvalidDelta)
}
