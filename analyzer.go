package cmptree

// ComponentAnalyzer receives node and component events from the parser and
// accumulates whatever per-component statistics the caller needs, finally
// returning a Result of type R. The mser package's Analyzer is the one
// concrete instantiation this module ships.
//
// ComponentRef values are arena indices owned exclusively by the analyzer;
// the parser only threads them between stack operations and never
// dereferences them. A merge invalidates (tombstones) the absorbed ref.
type ComponentAnalyzer[N any, R any] interface {
	// Sentinel creates the bottom-of-stack placeholder component at level
	// (the parser's inf(): Inf, or MinF in inverted mode). It never
	// receives a node directly; every real node eventually reaches it only
	// through merges as the stack unwinds at the end of the parse.
	Sentinel(level Value) ComponentRef

	// NewComponent starts an open component whose first node is node (a
	// local minimum) and returns its ComponentRef.
	NewComponent(node N, level Value) ComponentRef

	// AddNode attaches node at the given level to an existing component. If
	// level exceeds the component's current level, the analyzer must raise
	// the component's level first (recording one history snapshot per unit
	// step and running the MSER-style test) before merging the node's own
	// statistics in.
	AddNode(node N, level Value, ref ComponentRef)

	// RaiseLevel raises an existing component's level without attaching a
	// node, with the same history-recording obligation as AddNode.
	RaiseLevel(ref ComponentRef, level Value)

	// MergeInto folds src into dst at level; dst survives and src is
	// tombstoned. History is inherited from whichever operand has the
	// larger node count (ties keep dst's history).
	MergeInto(src, dst ComponentRef, level Value) ComponentRef

	// LevelOf returns a component's current level.
	LevelOf(ref ComponentRef) Value

	// Result finalizes and returns the accumulated output. It may be called
	// only after the parser has flushed the stack to Inf/MinF.
	Result() R
}
