package cmptree

// componentStack mirrors the descending path from the tree root to the
// component currently being grown. refs[0] is the bottom sentinel, which
// sits at inf (or minf in inverted mode) and is never popped; in the
// parser's ordering, refs[i+1]'s level is strictly less than refs[i]'s, so
// the top component has the smallest level.
type componentStack[N any, R any] struct {
	analyzer ComponentAnalyzer[N, R]
	parser   *ComponentTreeParser[N, R]
	refs     []ComponentRef
}

func newComponentStack[N any, R any](parser *ComponentTreeParser[N, R], analyzer ComponentAnalyzer[N, R], sentinel ComponentRef) *componentStack[N, R] {
	return &componentStack[N, R]{
		analyzer: analyzer,
		parser:   parser,
		refs:     []ComponentRef{sentinel},
	}
}

// top returns the current top-of-stack ComponentRef.
func (s *componentStack[N, R]) top() ComponentRef {
	return s.refs[len(s.refs)-1]
}

// pushComponent opens a new component for node at level and puts it on top.
func (s *componentStack[N, R]) pushComponent(node N, level Value) {
	s.refs = append(s.refs, s.analyzer.NewComponent(node, level))
}

// pushNode attaches node to the component currently on top of the stack.
func (s *componentStack[N, R]) pushNode(node N, level Value) {
	s.analyzer.AddNode(node, level, s.top())
}

// raiseLevel repeatedly merges the top component into the one below it
// until the top component's level is at least level, raising (without
// merging) only on the final step where level strictly separates the top
// from the next. Ties (level == next) take the merge branch, which is what
// keeps the stack strictly increasing in level from top to bottom.
func (s *componentStack[N, R]) raiseLevel(level Value) {
	for s.parser.less(s.analyzer.LevelOf(s.top()), level) {
		// second-from-top always exists here: the sentinel sits at
		// parser.inf(), and the loop guard above already excludes level ==
		// parser.inf() reaching this branch once only the sentinel remains.
		topIdx := len(s.refs) - 1
		next := s.analyzer.LevelOf(s.refs[topIdx-1])

		if s.parser.less(level, next) {
			s.analyzer.RaiseLevel(s.top(), level)
			return
		}

		survivor := s.analyzer.MergeInto(s.refs[topIdx], s.refs[topIdx-1], next)
		s.refs = s.refs[:topIdx-1]
		s.refs = append(s.refs, survivor)
	}
}
