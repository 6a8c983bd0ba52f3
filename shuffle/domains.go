package shuffle

import (
	"math/rand"

	"github.com/katalvlaran/gridshuffle/grid"
)

// domains maps each occupied position to its ordered candidate labels
// for one search attempt.
type domains map[grid.Position][]grid.Label

// newDomains builds, for every occupied position, an independently and
// uniformly shuffled copy of the full label universe. Candidates are
// deliberately unfiltered — a position's own original label is present
// and rejected later by the admissibility check — so all correctness
// logic lives in one place (backtrack.go).
//
// Complexity: O(n²) time and memory (n = occupied cells).
func newDomains(idx *index, rng *rand.Rand) domains {
	doms := make(domains, len(idx.positions))
	for _, p := range idx.positions {
		cands := make([]grid.Label, len(idx.labels))
		copy(cands, idx.labels)
		shuffleLabelsInPlace(cands, rng)
		doms[p] = cands
	}

	return doms
}
