package shuffle

import "github.com/katalvlaran/gridshuffle/grid"

// validArrangement re-checks a complete grid against the constraint
// index, independent of how the grid was produced. It verifies, for
// every occupied position of the original topology:
//   - the candidate holds one of the original labels there, and no label
//     appears twice — with the topology check below, the arrangement is a
//     bijection over the original label set;
//   - no orthogonal neighbor holds a forbidden label;
//   - the label does not sit at its own original seat.
//
// Pure and idempotent: same grid, same index ⇒ same answer.
//
// Complexity: O(n×d) time (n = occupied cells, d ≤ 4).
func validArrangement(idx *index, g grid.Grid) bool {
	occupied := make(map[grid.Position]struct{}, len(idx.positions))
	seen := make(labelSet, len(idx.positions))

	for _, p := range idx.positions {
		occupied[p] = struct{}{}
		l, err := g.At(p)
		if err != nil || l == grid.Empty {
			return false
		}

		// Bijection: every placed label is one of the originals, used once.
		// n occupied seats with n distinct known labels ⇒ a permutation.
		if seen.has(l) {
			return false
		}
		seen[l] = struct{}{}
		op, known := idx.originalPos[l]
		if !known {
			return false
		}

		for _, q := range idx.neighbors[p] {
			nl, _ := g.At(q)
			if idx.forbidden[l].has(nl) {
				return false
			}
		}

		if op == p {
			return false
		}
	}

	// Originally empty cells must stay empty; a label parked on an
	// obstacle would silently escape both constraints above.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			if _, ok := occupied[p]; ok {
				continue
			}
			if l, _ := g.At(p); l != grid.Empty {
				return false
			}
		}
	}

	return true
}

// ValidateAgainst reports whether candidate is a valid rearrangement of
// original: same shape, same occupied/empty topology, the same label
// multiset (no label duplicated, dropped, or invented), no label at its
// original seat, no originally adjacent labels adjacent again.
//
// Standalone by design — it rebuilds the constraint index from original
// and never consults any Engine state, so externally produced or
// externally edited grids can be audited with it.
//
// Returns ErrShapeMismatch when the two grids differ in dimensions.
//
// Complexity: O(R×C).
func ValidateAgainst(original, candidate grid.Grid) (bool, error) {
	if original.Rows() != candidate.Rows() || original.Cols() != candidate.Cols() {
		return false, ErrShapeMismatch
	}

	return validArrangement(newIndex(original), candidate), nil
}
