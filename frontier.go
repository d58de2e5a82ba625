package cmptree

// PriorityFrontier is a min-priority store of boundary nodes keyed by node
// value (a frontier built for inverted mode instead pops the maximum; the
// direction is fixed at construction time by the concrete binding, mirroring
// the parser's own inverted flag). Ties are broken arbitrarily but
// deterministically; LIFO within a bucket is acceptable and is what the
// raster binding does.
type PriorityFrontier[N any] interface {
	// Push inserts node at the given priority.
	Push(node N, value Value)

	// Pop removes and returns a node of minimum priority, or ok == false if
	// the frontier is empty.
	Pop() (node N, ok bool)
}
