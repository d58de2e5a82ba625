package cmptree

// GraphAccessor exposes a weighted graph view of some underlying data to the
// parser: a single source node, the value carried by a node, and a cursor
// that yields each outgoing neighbor at most once across the whole parse.
//
// Implementations own whatever "visit mask" they need to guarantee the
// once-each contract; the parser never tracks visitation itself. See the
// raster package for the 4-connectivity grayscale-image binding this
// contract was designed for.
type GraphAccessor[N any] interface {
	// Source returns the start node and marks it as reached.
	Source() N

	// Value returns the scalar carried by node. Pure lookup: calling it
	// twice for the same node must return the same result.
	Value(node N) Value

	// NextNeighbor advances node's per-node cursor and returns the next
	// neighbor that has never been reached before, marking it reached. It
	// returns ok == false once the cursor is exhausted.
	NextNeighbor(node N) (neighbor N, ok bool)
}
