package mser

import (
	"github.com/vlath-labs/cmptree"
	"github.com/vlath-labs/cmptree/raster"
	"github.com/vlath-labs/cmptree/rastercv"

	"gocv.io/x/gocv"
)

// Detect runs MSER extraction over a raster.Buffer, building a
// raster.Accessor and raster.Frontier internally and parsing them with
// cmptree. Config is validated before any parsing begins; a validation
// failure never touches buf.
func Detect(buf *raster.Buffer, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if buf.Width == 0 || buf.Height == 0 {
		return nil, ErrZeroDimension
	}

	accessor := raster.NewAccessor(buf)
	frontier := raster.NewFrontier(cfg.Inverted)
	analyzer := NewAnalyzer(cfg)

	parser := cmptree.NewComponentTreeParser[raster.Point, Result](
		cmptree.WithInverted(cfg.Inverted),
	)

	result, err := parser.Parse(accessor, frontier, analyzer)
	if err != nil {
		return nil, err
	}
	if err := analyzer.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// DetectMat runs MSER extraction directly over a single-channel 8-bit
// gocv.Mat, the OpenCV-backed binding grounded in the original
// OpenCVMatAccessor/OpenCVMatMserAnalyzer pairing. Config is validated
// before the Mat is inspected.
func DetectMat(mat gocv.Mat, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	accessor, err := rastercv.NewAccessor(mat)
	if err != nil {
		return nil, err
	}
	frontier := rastercv.NewFrontier(cfg.Inverted)
	analyzer := NewAnalyzer(cfg)

	parser := cmptree.NewComponentTreeParser[raster.Point, Result](
		cmptree.WithInverted(cfg.Inverted),
	)

	result, err := parser.Parse(accessor, frontier, analyzer)
	if err != nil {
		return nil, err
	}
	if err := analyzer.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
