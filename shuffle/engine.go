package shuffle

import (
	"math/rand"

	"github.com/katalvlaran/gridshuffle/grid"
)

// Engine holds one immutable input grid, its derived constraint index,
// the last produced arrangement, and a private random stream.
//
// An Engine assumes at most one call in flight at a time; it performs
// no internal locking. Use independent engines for concurrent grids.
type Engine struct {
	original grid.Grid
	output   grid.Grid
	idx      *index
	rng      *rand.Rand
}

// New constructs an Engine for g. The constraint index is derived once
// here; the output grid starts all-empty with g's shape. The engine's
// random stream is seeded from Options.Seed (seed==0 ⇒ deterministic
// default stream).
//
// Complexity: O(R×C).
func New(g grid.Grid, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	original := g.Clone()
	output, _ := grid.NewEmpty(g.Rows(), g.Cols()) // dims of a Grid are never negative

	return &Engine{
		original: original,
		output:   output,
		idx:      newIndex(original),
		rng:      rngFromSeed(o.Seed),
	}
}

// Shuffle runs one complete search attempt: fresh independently
// shuffled candidate lists, then exhaustive backtracking. On success
// the arrangement replaces the engine's output grid and Shuffle returns
// true. On failure the output grid is left untouched — the last
// successful arrangement is preserved, or the all-empty grid if no
// attempt has succeeded yet — and Shuffle returns false.
//
// Exhaustion is a normal outcome, not an error. Each call advances the
// engine's random stream, so repeated calls explore different candidate
// orders; a grid with zero occupied cells trivially succeeds.
//
// Complexity: exponential in the number of occupied cells, worst case.
func (e *Engine) Shuffle() bool {
	doms := newDomains(e.idx, e.rng)

	asg, ok := solve(e.idx, doms)
	if !ok {
		return false
	}

	out, _ := grid.NewEmpty(e.original.Rows(), e.original.Cols())
	for p, l := range asg {
		_ = out.Set(p, l)
	}
	e.output = out

	return true
}

// ShuffledGrid returns a deep copy of the current output grid: the last
// successful arrangement, or an all-empty grid before the first
// success. Complexity: O(R×C).
func (e *Engine) ShuffledGrid() grid.Grid {
	return e.output.Clone()
}

// OriginalGrid returns a deep copy of the input grid.
// Complexity: O(R×C).
func (e *Engine) OriginalGrid() grid.Grid {
	return e.original.Clone()
}

// Validate re-checks the current output grid against the constraints
// derived from the input. A false on solver output indicates an
// implementation bug; a false before any successful Shuffle (on a
// non-trivial grid) merely reflects the all-empty output.
//
// Complexity: O(R×C).
func (e *Engine) Validate() bool {
	return validArrangement(e.idx, e.output)
}

// Allocate is the one-call convenience wrapper: build an engine for g,
// attempt a single shuffle, and defensively re-validate the result.
// Returns ErrNoSolution when the search exhausts, ErrInvalidResult if
// the produced arrangement fails its own validation.
func Allocate(g grid.Grid, opts ...Option) (grid.Grid, error) {
	e := New(g, opts...)
	if !e.Shuffle() {
		return grid.Grid{}, ErrNoSolution
	}
	if !e.Validate() {
		return grid.Grid{}, ErrInvalidResult
	}

	return e.ShuffledGrid(), nil
}
