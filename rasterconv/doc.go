// Package rasterconv adapts a decoded golang.org/x/image/draw-compatible
// image.Image into a raster.Buffer, so callers that already have a decoded
// picture (from image/png, image/jpeg, or any third-party decoder) never
// need to hand-roll grayscale reduction to feed the component-tree parser.
//
// It performs no image I/O of its own — no file or network access — and so
// stays outside the parser's scope per the specification's "external
// collaborators" boundary; it is pure in-memory format glue.
package rasterconv
