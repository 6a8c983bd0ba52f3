package shuffle

import "github.com/katalvlaran/gridshuffle/grid"

// assignment maps occupied positions to tentatively placed labels.
// Partial during exploration; complete (covering every occupied
// position) only on success. Discarded on a failed attempt.
type assignment map[grid.Position]grid.Label

// solve runs an exhaustive recursive backtracking search for a complete
// assignment satisfying both constraints, trying each position's
// candidates in their pre-shuffled order. A complete assignment is a
// bijection: positions and labels are in 1:1 correspondence, so the
// search also tracks which labels are already placed. Returns
// (assignment, true) on success, (nil, false) once every branch is
// exhausted.
//
// Recursion depth equals the number of occupied positions; Go grows
// goroutine stacks on demand, so no explicit frame stack is needed.
//
// Complexity: O(n!) worst case; heuristics trim typical instances, not
// the asymptote.
func solve(idx *index, doms domains) (assignment, bool) {
	asg := make(assignment, len(idx.positions))
	used := make(labelSet, len(idx.positions))
	if backtrack(idx, doms, asg, used) {
		return asg, true
	}

	return nil, false
}

// backtrack extends asg by one position and recurses, undoing the
// tentative placement whenever the remainder cannot be completed.
// used mirrors the values of asg as a set and is kept in lockstep.
func backtrack(idx *index, doms domains, asg assignment, used labelSet) bool {
	if len(asg) == len(idx.positions) {
		return true
	}

	p, ok := nextPosition(idx, doms, asg)
	if !ok {
		return false
	}

	for _, cand := range doms[p] {
		if !admissible(idx, asg, used, p, cand) {
			continue
		}
		asg[p] = cand
		used[cand] = struct{}{}
		if backtrack(idx, doms, asg, used) {
			return true
		}
		delete(asg, p) // undo, try the next candidate
		delete(used, cand)
	}

	return false
}

// nextPosition selects the unassigned position with the smallest
// domain, ties broken by row-major order (minimum remaining values).
//
// Realized behavior: domains are never narrowed during the search, so
// every unassigned domain has equal size and the scan always lands on
// the first unassigned position in row-major order. The size comparison
// stays so that a future propagation pass could shrink domains without
// touching the search.
func nextPosition(idx *index, doms domains, asg assignment) (grid.Position, bool) {
	var (
		best    grid.Position
		bestLen = -1
	)
	for _, p := range idx.positions {
		if _, assigned := asg[p]; assigned {
			continue
		}
		if n := len(doms[p]); bestLen < 0 || n < bestLen {
			best, bestLen = p, n
		}
	}

	return best, bestLen >= 0
}

// admissible reports whether placing cand at p can extend the partial
// assignment. Domains hold the full label universe for every position,
// so all three rules live here:
//   - cand is not already placed elsewhere (assignments are bijections);
//   - no already-assigned neighbor of p holds a label forbidden for cand;
//   - p is not cand's original seat.
func admissible(idx *index, asg assignment, used labelSet, p grid.Position, cand grid.Label) bool {
	if used.has(cand) {
		return false
	}
	for _, q := range idx.neighbors[p] {
		if nl, assigned := asg[q]; assigned && idx.forbidden[cand].has(nl) {
			return false
		}
	}

	return idx.originalPos[cand] != p
}
