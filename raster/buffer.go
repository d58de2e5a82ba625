package raster

import "errors"

// Sentinel errors for Buffer construction.
var (
	// ErrZeroDimension indicates a Buffer was requested with zero width or
	// height.
	ErrZeroDimension = errors.New("raster: width and height must be positive")

	// ErrDimensionMismatch indicates a data slice whose length does not
	// match height*stride.
	ErrDimensionMismatch = errors.New("raster: data length does not match height*stride")
)

// Point is the Node type for the raster binding: a 2-D integer pixel
// coordinate. It carries no accessor-owned state; equality is ordinary
// struct equality.
type Point struct {
	X, Y int
}

// Buffer is a 2-D buffer of 8-bit unsigned grayscale samples with an
// explicit width, height, and row stride. It performs no image I/O; callers
// are expected to fill it from whatever decoder they already use (see the
// rasterconv package for a golang.org/x/image/draw-based adapter).
type Buffer struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// NewBuffer allocates a zero-filled Buffer of the given dimensions, with a
// minimal stride equal to width.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}

	return &Buffer{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]byte, width*height),
	}, nil
}

// NewBufferFromBytes wraps an existing byte slice as a Buffer without
// copying, validating that its length matches height*stride.
func NewBufferFromBytes(width, height, stride int, pix []byte) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}
	if stride < width {
		stride = width
	}
	if len(pix) != height*stride {
		return nil, ErrDimensionMismatch
	}

	return &Buffer{Width: width, Height: height, Stride: stride, Pix: pix}, nil
}

// At returns the pixel value at (x, y). Callers must ensure the coordinate
// is in bounds; the accessor never calls At outside [0,Width)x[0,Height).
func (b *Buffer) At(x, y int) uint8 {
	return b.Pix[y*b.Stride+x]
}

// Set writes the pixel value at (x, y).
func (b *Buffer) Set(x, y int, v uint8) {
	b.Pix[y*b.Stride+x] = v
}

// InBounds reports whether (x, y) lies within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}
