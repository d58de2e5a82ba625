package cmptree

import "errors"

// Sentinel errors returned by Parse and its collaborators.
var (
	// ErrNilAccessor indicates a nil GraphAccessor was supplied to Parse.
	ErrNilAccessor = errors.New("cmptree: graph accessor is nil")

	// ErrNilFrontier indicates a nil PriorityFrontier was supplied to Parse.
	ErrNilFrontier = errors.New("cmptree: priority frontier is nil")

	// ErrNilAnalyzer indicates a nil ComponentAnalyzer was supplied to Parse.
	ErrNilAnalyzer = errors.New("cmptree: component analyzer is nil")
)
