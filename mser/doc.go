// Package mser implements the ComponentAnalyzer side of the component-tree
// parser: Maximally Stable Extremal Region extraction.
//
// An Analyzer tracks, per open component, a running pixel count, spatial
// mean and 2x2 spatial covariance (combined across merges with the
// standard pairwise-parallel formulas), plus a bounded history of past
// statistics snapshots. Whenever a component's level rises, one snapshot
// per unit level step is appended and the stability test fires on the
// snapshot two from the end of the history, the way the original OpenCVMatMserAnalyzer
// does it — see Analyzer.AddNode / Analyzer.RaiseLevel and the package's
// checkMSER.
//
// Detect wires an Analyzer together with a raster.Accessor and
// raster.Frontier into a cmptree.ComponentTreeParser and runs it to
// completion; DetectMat does the same over a gocv.Mat via rastercv.
package mser
