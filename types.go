package cmptree

import "math"

// Value is the scalar carried by every node. The algorithm only requires a
// strict total order plus two sentinels (Inf, MinF); every concrete binding
// in this module widens its native pixel/weight type into an int64 so a
// single Value type serves all of them.
type Value = int64

// Inf and MinF are the sentinel values strictly greater/less than any
// reachable node value. Inverted mode swaps their roles (see less/inf on
// ComponentTreeParser) rather than duplicating the algorithm.
const (
	Inf  Value = math.MaxInt64
	MinF Value = math.MinInt64
)

// ComponentRef is an opaque reference to a component owned by a
// ComponentAnalyzer. The parser never interprets it; it only threads it
// between stack operations. Analyzers conventionally implement it as an
// arena index.
type ComponentRef = int
