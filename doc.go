// Package cmptree is your engine for building component trees over
// ordered, locally-explorable structures and reading Maximally Stable
// Extremal Regions back out of them.
//
// 🚀 What is vlath-labs/cmptree?
//
//	A generic, quasi-linear component-tree construction engine that brings
//	together:
//		• A generic core: GraphAccessor, PriorityFrontier and
//		  ComponentAnalyzer collaborate through cmptree.ComponentTreeParser,
//		  independent of what a "node" or a "component" actually is
//		• A raster binding: 4-connected grayscale image traversal over a
//		  dependency-free Buffer, or directly over a gocv.Mat via rastercv
//		• An MSER analyzer: running spatial statistics per component,
//		  merged across the tree with the standard pairwise-parallel
//		  formulas, tested for stability against a bounded history
//
// ✨ Why choose cmptree?
//
//   - Single-pass – one sorted sweep of the frontier builds the whole tree
//   - Pluggable – swap the graph, the frontier, or the analyzer without
//     touching the parser
//   - Cooperative cancellation – context.Context, checked once per popped
//     node, the same way this ecosystem's traversal packages do it
//
// This package itself is the generic parser: GraphAccessor, PriorityFrontier
// and ComponentAnalyzer are small collaborator interfaces, and
// ComponentTreeParser drives them following the quasi-linear construction
// of Nistér & Stewénius — nodes are visited in an order determined by their
// scalar value, and open components are kept on a stack that mirrors the
// current descending path of the tree. It knows nothing about images,
// pixels, or MSER; those live in the sibling subpackages:
//
//	raster/     — a dependency-free 4-connected grayscale Buffer binding
//	rastercv/   — the same binding over a gocv.Mat
//	rasterconv/ — an image.Image -> raster.Buffer adapter
//	mser/       — the MSER ComponentAnalyzer, plus Detect/DetectMat entry points
//
// Values are fixed to int64 across every instantiation: the algorithm only
// needs a strict total order plus two sentinels (inf, minf), and a single
// widened integer type is enough to host any accessor's native value range
// (mirroring how this ecosystem's dijkstra package fixed distances to
// int64 with math.MaxInt64 as its sentinel).
//
// Quick usage:
//
//	regions, err := mser.Detect(buf, mser.WithDelta(5), mser.WithMinArea(60))
//
//	go get github.com/vlath-labs/cmptree
package cmptree
