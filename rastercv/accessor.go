package rastercv

import (
	"errors"

	"gocv.io/x/gocv"

	"github.com/vlath-labs/cmptree/raster"
)

// ErrNotGray8 indicates a Mat that is not single-channel 8-bit
// (gocv.MatTypeCV8UC1) was passed to NewAccessor.
var ErrNotGray8 = errors.New("rastercv: mat must be single-channel 8-bit (CV_8UC1)")

// ErrEmptyMat indicates an empty (zero-size) Mat was passed to NewAccessor.
var ErrEmptyMat = errors.New("rastercv: mat is empty")

// Point is the Node type for this binding. It is raster.Point itself (not
// just a structurally-identical copy) so that rastercv.NewFrontier can
// reuse raster.Frontier verbatim instead of duplicating the 256-bucket
// store for a second Node type.
type Point = raster.Point

// NewFrontier builds the 256-bucket priority store shared with the raster
// package's binding; gocv.MatTypeCV8UC1 pixels are 8-bit just like
// raster.Buffer's, so no separate frontier implementation is needed here.
func NewFrontier(inverted bool) *raster.Frontier {
	return raster.NewFrontier(inverted)
}

// Accessor implements cmptree.GraphAccessor[Point] over a gocv.Mat with
// 4-connectivity, the same once-each visit-mask contract as raster.Accessor.
type Accessor struct {
	mat  gocv.Mat
	mask []byte
	cols int
	rows int
}

// NewAccessor builds an Accessor over mat. mat must be non-empty and
// single-channel 8-bit; the Accessor does not take ownership of mat (the
// caller remains responsible for calling mat.Close()).
func NewAccessor(mat gocv.Mat) (*Accessor, error) {
	if mat.Empty() {
		return nil, ErrEmptyMat
	}
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, ErrNotGray8
	}

	rows, cols := mat.Rows(), mat.Cols()

	return &Accessor{
		mat:  mat,
		mask: make([]byte, rows*cols),
		cols: cols,
		rows: rows,
	}, nil
}

const (
	maskUnreached = 0
	maskExhausted = 5
)

var deltas = [4][2]int{
	{1, 0},  // direction 1: +x
	{0, 1},  // direction 2: +y
	{-1, 0}, // direction 3: -x
	{0, -1}, // direction 4: -y
}

func (a *Accessor) maskAt(p Point) byte {
	return a.mask[p.Y*a.cols+p.X]
}

func (a *Accessor) setMask(p Point, v byte) {
	a.mask[p.Y*a.cols+p.X] = v
}

func (a *Accessor) inBounds(x, y int) bool {
	return 0 <= x && x < a.cols && 0 <= y && y < a.rows
}

// Source returns the top-left pixel and marks it reached.
func (a *Accessor) Source() Point {
	p := Point{X: 0, Y: 0}
	a.setMask(p, 1)
	return p
}

// Value returns the grayscale sample at node, read via mat.GetUCharAt(y, x)
// and widened to cmptree.Value.
func (a *Accessor) Value(node Point) int64 {
	return int64(a.mat.GetUCharAt(node.Y, node.X))
}

// NextNeighbor advances node's cursor and returns the next in-bounds,
// not-yet-reached neighbor in {+x, +y, -x, -y} order, marking it reached.
func (a *Accessor) NextNeighbor(node Point) (Point, bool) {
	progress := a.maskAt(node)
	for progress >= 1 && progress < maskExhausted {
		d := deltas[progress-1]
		progress++
		a.setMask(node, progress)

		next := Point{X: node.X + d[0], Y: node.Y + d[1]}
		if !a.inBounds(next.X, next.Y) {
			continue
		}
		if a.maskAt(next) != maskUnreached {
			continue
		}

		a.setMask(next, 1)
		return next, true
	}

	return Point{}, false
}
