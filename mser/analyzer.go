package mser

import (
	"github.com/vlath-labs/cmptree"
	"github.com/vlath-labs/cmptree/raster"
)

// Result is the ordered sequence of regions the MSER test fired on, in
// firing order (deterministic given input and Config).
type Result = []ComponentStats

// Analyzer implements cmptree.ComponentAnalyzer[raster.Point, Result]. Its
// zero value is not ready for use; construct with NewAnalyzer.
type Analyzer struct {
	cfg    Config
	arena  []*component
	result Result
	err    error
}

// NewAnalyzer builds an Analyzer for the given Config. Config is assumed
// already validated (Detect/DetectMat validate it before constructing one).
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Err returns the first statistics-overflow error encountered, if any. A
// non-nil Err means Result() must not be trusted: the caller-facing Detect
// entry points check this and surface ErrStatOverflow instead of the
// (possibly corrupted) Result.
func (a *Analyzer) Err() error {
	return a.err
}

func (a *Analyzer) alloc(c *component) cmptree.ComponentRef {
	a.arena = append(a.arena, c)
	return len(a.arena) - 1
}

// Sentinel creates the bottom-of-stack placeholder component at level
// (cmptree.Inf or cmptree.MinF depending on inversion). It carries no
// statistics of its own until components are merged into it.
func (a *Analyzer) Sentinel(level cmptree.Value) cmptree.ComponentRef {
	return a.alloc(&component{level: level})
}

// NewComponent starts an open component whose first node is node, a local
// minimum, with N=1 statistics at its own coordinates.
func (a *Analyzer) NewComponent(node raster.Point, level cmptree.Value) cmptree.ComponentRef {
	return a.alloc(&component{
		level: level,
		stats: singleNodeStats(node.X, node.Y),
	})
}

// LevelOf returns a component's current level.
func (a *Analyzer) LevelOf(ref cmptree.ComponentRef) cmptree.Value {
	return a.arena[ref].level
}

// AddNode attaches node at level to the component referenced by ref. If
// level exceeds the component's current level, one history snapshot per
// unit step is recorded first (using the component's pre-merge statistics,
// matching the original analyzer's single-snapshot-repeated-per-step
// behavior) and the MSER test is run once against the updated history,
// before node's own statistics are merged in.
func (a *Analyzer) AddNode(node raster.Point, level cmptree.Value, ref cmptree.ComponentRef) {
	c := a.arena[ref]
	a.raiseHistory(c, level)

	nodeStats := singleNodeStats(node.X, node.Y)
	if err := mergeStats(&nodeStats, &c.stats); err != nil {
		a.recordErr(err)
	}
	a.recalcStability(c)
}

// RaiseLevel raises the component referenced by ref to level without
// attaching a node, recording history and running the MSER test exactly as
// AddNode does for the level-raising part.
func (a *Analyzer) RaiseLevel(ref cmptree.ComponentRef, level cmptree.Value) {
	c := a.arena[ref]
	a.raiseHistory(c, level)
	a.recalcStability(c)
}

// MergeInto folds src into dst at level; dst survives. The surviving
// history is whichever operand had the larger N (ties keep dst's); that
// operand's pre-merge level and statistics are also what drives any
// further history raise up to level, matching the original analyzer's
// merge_component_into.
func (a *Analyzer) MergeInto(src, dst cmptree.ComponentRef, level cmptree.Value) cmptree.ComponentRef {
	s := a.arena[src]
	d := a.arena[dst]

	winner := d
	if s.stats.N > d.stats.N {
		winner = s
		d.history = s.history
	}

	if level > winner.level {
		for i := int64(0); i < historySteps(winner.level, level); i++ {
			d.history = append(d.history, winner.stats)
		}
		d.level = level
		a.checkMSER(d)
	}

	if err := mergeStats(&s.stats, &d.stats); err != nil {
		a.recordErr(err)
	}
	a.recalcStability(d)

	s.tombstoned = true

	return dst
}

// Result finalizes and returns the regions the MSER test fired on.
func (a *Analyzer) Result() Result {
	return a.result
}

// raiseHistory appends one snapshot of c's current statistics per unit
// level step between c.level and level, then runs the MSER test once
// against the updated history. It is a no-op if level does not exceed
// c.level.
func (a *Analyzer) raiseHistory(c *component, level int64) {
	if level <= c.level {
		return
	}

	for i := int64(0); i < historySteps(c.level, level); i++ {
		c.history = append(c.history, c.stats)
	}
	c.level = level
	a.checkMSER(c)
}

// historySteps is the number of history snapshots a raise from oldLevel to
// newLevel records. The component-tree parser's final flush raises the
// outermost components all the way to the sentinel (cmptree.Inf or
// cmptree.MinF), which sits far beyond any real node value; treating that
// raise as "one step per unit value" would try to synthesize on the order
// of 2^63 history entries. The sentinel marks "beyond every real level"
// rather than a discrete number of intensity steps, so a raise onto it
// records exactly one snapshot, just enough to give the final MSER test a
// fresh comparison point.
func historySteps(oldLevel, newLevel cmptree.Value) int64 {
	if newLevel == cmptree.Inf || newLevel == cmptree.MinF {
		return 1
	}
	return newLevel - oldLevel
}

// recalcStability implements the stability formula delta*N_old /
// (N_new - N_old), where N_old is the N recorded delta snapshots earlier.
// Stability is 0 if history is shorter than delta. Otherwise the division
// is left to run under ordinary float64 (IEEE 754) semantics, exactly as
// the original analyzer's float division does: a component that hasn't
// grown across the window (N_new == N_old) divides by zero and comes out
// as +Inf, its most stable possible reading, not 0 — N is monotonically
// non-decreasing across merges, so the denominator is never negative.
func (a *Analyzer) recalcStability(c *component) {
	if int64(len(c.history)) < a.cfg.Delta {
		c.stats.Stability = 0
		return
	}

	old := c.history[int64(len(c.history))-a.cfg.Delta]
	denom := float64(c.stats.N - old.N)
	c.stats.Stability = float64(a.cfg.Delta) * float64(old.N) / denom
}

// checkMSER implements Nistér & Stewénius's local-maximum test: once
// history has at least 3 entries, the snapshot two-from-end is emitted if
// it is a local maximum of stability relative to its immediate predecessor
// and successor snapshots, and clears the area/stability thresholds.
func (a *Analyzer) checkMSER(c *component) {
	n := len(c.history)
	if n < 3 {
		return
	}

	pred := c.history[n-3]
	examinee := c.history[n-2]
	succ := c.history[n-1]

	if examinee.Stability > pred.Stability &&
		examinee.Stability > succ.Stability &&
		a.cfg.MinArea <= examinee.N && examinee.N <= a.cfg.MaxArea &&
		examinee.Stability >= a.cfg.MinStability {
		a.result = append(a.result, examinee)
	}
}

func (a *Analyzer) recordErr(err error) {
	if a.err == nil {
		a.err = err
	}
}
