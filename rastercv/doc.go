// Package rastercv mirrors the raster package's GraphAccessor binding but
// reads pixels directly out of a gocv.Mat instead of a raster.Buffer.
//
// It is grounded directly in the original component-tree parser's only
// concrete accessor, OpenCVMatAccessor: same 4-connectivity, same
// once-each visit mask, same direction order, just read through
// gocv.Mat.GetUCharAt instead of cv::Mat::at<uchar>. It exists for callers
// already working inside an OpenCV-based image pipeline (as this
// ecosystem's segmentation tooling does) who would otherwise have to copy
// a Mat into a raster.Buffer first.
package rastercv
