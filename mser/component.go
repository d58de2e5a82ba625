package mser

// component is an open (or sentinel) region under construction. It is
// owned exclusively by the Analyzer's arena; cmptree.ComponentRef values
// are indices into that arena. tombstoned marks a component absorbed by a
// merge — its memory is kept (Go has no manual free) but it is never
// touched again.
type component struct {
	level      int64
	stats      ComponentStats
	history    []ComponentStats
	tombstoned bool
}
