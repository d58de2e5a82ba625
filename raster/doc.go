// Package raster provides the concrete cmptree.GraphAccessor and
// cmptree.PriorityFrontier bindings for 8-bit grayscale images with
// 4-connectivity: a dependency-free Buffer type, an Accessor that walks it
// with a once-each neighbor cursor, and a 256-bucket Frontier.
//
// This is the "RasterBinding" of the specification: everything here is a
// thin, allocation-light adapter over a byte slice. The MSER analyzer that
// consumes these nodes lives in the sibling mser package; the gocv.Mat
// equivalent of this binding lives in rastercv.
package raster
