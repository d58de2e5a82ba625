package mser

import "errors"

// Sentinel errors for Config validation and Analyzer failures.
var (
	// ErrInvalidDelta indicates a Delta outside [1, 255] was configured.
	ErrInvalidDelta = errors.New("mser: delta must be in [1, 255]")

	// ErrInvalidAreaRange indicates MinArea > MaxArea was configured.
	ErrInvalidAreaRange = errors.New("mser: min area must be <= max area")

	// ErrInvalidStability indicates a negative MinStability was configured.
	ErrInvalidStability = errors.New("mser: min stability must be >= 0")

	// ErrZeroDimension indicates a buffer with zero width or height was
	// passed to Detect. DetectMat reports an empty Mat as
	// rastercv.ErrEmptyMat instead.
	ErrZeroDimension = errors.New("mser: image has zero width or height")

	// ErrStatOverflow indicates a component's pixel count overflowed its
	// int64 representation while merging statistics. This can only occur
	// for images far larger than any supported raster (wider than ~3e9
	// pixels), and is reported rather than silently wrapped.
	ErrStatOverflow = errors.New("mser: component pixel count overflowed int64")
)
