package shuffle

import "github.com/katalvlaran/gridshuffle/grid"

// labelSet is a set of labels keyed for O(1) membership tests.
type labelSet map[grid.Label]struct{}

func (s labelSet) has(l grid.Label) bool {
	_, ok := s[l]

	return ok
}

// index holds every constraint structure derived from the input grid.
// All fields are built exactly once at Engine construction and are
// read-only afterward; the occupied/empty topology never changes
// between the input and any arrangement, only which label sits where.
type index struct {
	// positions lists the occupied positions in row-major order, the
	// canonical enumeration order of the search.
	positions []grid.Position
	// labels lists the distinct labels in row-major order of their
	// original seats. Domains are drawn from this slice; its fixed base
	// order keeps seeded runs reproducible.
	labels []grid.Label
	// forbidden maps each label to the labels that sat orthogonally next
	// to it in the input grid. Symmetric, since adjacency is recorded
	// from both sides.
	forbidden map[grid.Label]labelSet
	// neighbors maps each occupied position to its orthogonal occupied
	// neighbor positions. Empty cells break adjacency.
	neighbors map[grid.Position][]grid.Position
	// originalPos maps each label to the seat it occupied in the input.
	originalPos map[grid.Label]grid.Position
}

// newIndex derives the constraint index from g in one pass over the
// occupied positions plus a four-direction scan per position.
//
// Complexity: O(R×C) time, O(n) memory (n = occupied cells).
func newIndex(g grid.Grid) *index {
	positions := g.Positions()

	idx := &index{
		positions:   positions,
		labels:      make([]grid.Label, 0, len(positions)),
		forbidden:   make(map[grid.Label]labelSet, len(positions)),
		neighbors:   make(map[grid.Position][]grid.Position, len(positions)),
		originalPos: make(map[grid.Label]grid.Position, len(positions)),
	}

	for _, p := range positions {
		l, _ := g.At(p)
		idx.labels = append(idx.labels, l)
		idx.originalPos[l] = p
		idx.forbidden[l] = make(labelSet, len(grid.Directions))

		for _, d := range grid.Directions {
			np := grid.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if !g.InBounds(np) {
				continue
			}
			nl, _ := g.At(np)
			if nl == grid.Empty {
				continue
			}
			idx.forbidden[l][nl] = struct{}{}
			idx.neighbors[p] = append(idx.neighbors[p], np)
		}
	}

	return idx
}
