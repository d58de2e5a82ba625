package cmptree

import "context"

// Options configures a ComponentTreeParser via functional options (the same
// Options/Option/DefaultOptions idiom this ecosystem's bfs and dijkstra
// packages use).
type Options struct {
	// Ctx allows cooperative cancellation, checked once per popped node.
	Ctx context.Context

	// Inverted swaps the roles of inf/minf and of the node-value ordering,
	// turning a min-tree construction into a max-tree one without changing
	// the algorithm (see ComponentTreeParser.less / .inf).
	Inverted bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults: a background
// context and non-inverted (min-tree) ordering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Inverted: false,
	}
}

// WithContext sets a context checked cooperatively once per outer loop
// iteration, i.e. once per popped frontier node.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInverted toggles inverted (max-tree) mode.
func WithInverted(inverted bool) Option {
	return func(o *Options) {
		o.Inverted = inverted
	}
}

// ComponentTreeParser drives the frontier, maintains the component stack,
// and dispatches events to a ComponentAnalyzer. It holds no state beyond its
// Options between calls to Parse: per-invocation state lives entirely in
// the stack and frontier passed to (or built for) that call.
type ComponentTreeParser[N any, R any] struct {
	opts Options
}

// NewComponentTreeParser builds a parser with the given options applied
// over DefaultOptions().
func NewComponentTreeParser[N any, R any](opts ...Option) *ComponentTreeParser[N, R] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ComponentTreeParser[N, R]{opts: o}
}

// Inverted reports whether this parser extracts max-trees instead of
// min-trees.
func (p *ComponentTreeParser[N, R]) Inverted() bool {
	return p.opts.Inverted
}

// less is the ordering predicate the rest of the algorithm is written
// against; inverted mode flips it instead of duplicating the algorithm.
func (p *ComponentTreeParser[N, R]) less(a, b Value) bool {
	if !p.opts.Inverted {
		return a < b
	}

	return b < a
}

// inf returns the sentinel value strictly beyond any reachable node value
// in this parser's ordering.
func (p *ComponentTreeParser[N, R]) inf() Value {
	if !p.opts.Inverted {
		return Inf
	}

	return MinF
}

// Parse runs the component-tree construction over accessor, using frontier
// as the boundary-node store and dispatching node/component events to
// analyzer, finally returning analyzer.Result().
//
// No partial Result is ever returned on error: validation failures and a
// cancelled context are both surfaced before/without calling Result().
func (p *ComponentTreeParser[N, R]) Parse(accessor GraphAccessor[N], frontier PriorityFrontier[N], analyzer ComponentAnalyzer[N, R]) (R, error) {
	var zero R
	if accessor == nil {
		return zero, ErrNilAccessor
	}
	if frontier == nil {
		return zero, ErrNilFrontier
	}
	if analyzer == nil {
		return zero, ErrNilAnalyzer
	}

	sentinelRef := analyzer.Sentinel(p.inf())
	stack := newComponentStack[N, R](p, analyzer, sentinelRef)

	source := accessor.Source()
	frontier.Push(source, accessor.Value(source))
	flowingDown := true

	ctx := p.opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		u, ok := frontier.Pop()
		if !ok {
			break
		}

		stack.raiseLevel(accessor.Value(u))

		for {
			v, ok := accessor.NextNeighbor(u)
			if !ok {
				break
			}

			if p.less(accessor.Value(v), accessor.Value(u)) {
				// Descent: u isn't a local minimum on this path yet, push it
				// back for later and keep flowing down through v.
				frontier.Push(u, accessor.Value(u))
				u = v
				flowingDown = true
				continue
			}

			frontier.Push(v, accessor.Value(v))
		}

		if flowingDown {
			stack.pushComponent(u, accessor.Value(u))
			flowingDown = false
		} else {
			stack.pushNode(u, accessor.Value(u))
		}
	}

	// Flush every remaining open component into the sentinel so the MSER
	// (or any other analyzer's) test runs on the outermost components too.
	stack.raiseLevel(p.inf())

	return analyzer.Result(), nil
}
