package shuffle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridshuffle/grid"
	"github.com/katalvlaran/gridshuffle/shuffle"
)

func mustGrid(t *testing.T, cells [][]grid.Label) grid.Grid {
	t.Helper()
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// TestValidateAgainst_HandBuilt accepts a known-valid rearrangement of
// the 3×3 chart: every label moved and no original neighbors touch.
func TestValidateAgainst_HandBuilt(t *testing.T) {
	original := mustGrid(t, [][]grid.Label{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})
	candidate := mustGrid(t, [][]grid.Label{
		{"2", "4", "6"},
		{"7", "3", "8"},
		{"5", "9", "1"},
	})

	ok, err := shuffle.ValidateAgainst(original, candidate)
	if err != nil {
		t.Fatalf("ValidateAgainst error: %v", err)
	}
	if !ok {
		t.Error("known-valid arrangement rejected")
	}
}

// TestValidateAgainst_Violations rejects the classic failure modes.
func TestValidateAgainst_Violations(t *testing.T) {
	original := mustGrid(t, [][]grid.Label{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})

	cases := []struct {
		name      string
		candidate [][]grid.Label
	}{
		// The input itself: every label at its original seat.
		{"Identity", [][]grid.Label{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}}},
		// One label kept its seat ("3" at (0,2)); rest rearranged.
		{"SingleFixedPoint", [][]grid.Label{{"2", "4", "3"}, {"7", "1", "8"}, {"5", "9", "6"}}},
		// Valid derangement but "1" and "2" (original neighbors) touch again.
		{"AdjacencyRepeat", [][]grid.Label{{"2", "1", "6"}, {"7", "3", "8"}, {"5", "9", "4"}}},
		// A label wandered onto a seat while leaving another seat empty.
		{"TopologyChange", [][]grid.Label{{"2", "4", "6"}, {"7", "", "8"}, {"5", "9", "1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := shuffle.ValidateAgainst(original, mustGrid(t, tc.candidate))
			if err != nil {
				t.Fatalf("ValidateAgainst error: %v", err)
			}
			if ok {
				t.Error("invalid arrangement accepted")
			}
		})
	}
}

// TestValidateAgainst_LabelMultiset rejects candidates whose label
// multiset differs from the original's: a duplicated label (another one
// necessarily missing) and a label the original never contained. Such
// grids cannot come from grid.New, which enforces uniqueness, but an
// audited grid may have been edited cell by cell.
func TestValidateAgainst_LabelMultiset(t *testing.T) {
	original := mustGrid(t, [][]grid.Label{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})
	valid := [][]grid.Label{
		{"2", "4", "6"},
		{"7", "3", "8"},
		{"5", "9", "1"},
	}

	cases := []struct {
		name  string
		at    grid.Position
		label grid.Label
	}{
		// "2" now sits at both (0,0) and (2,2); "1" is gone.
		{"DuplicatedLabel", grid.Position{Row: 2, Col: 2}, "2"},
		// "X" never appeared in the original chart.
		{"ForeignLabel", grid.Position{Row: 2, Col: 2}, "X"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := mustGrid(t, valid)
			if err := candidate.Set(tc.at, tc.label); err != nil {
				t.Fatalf("Set error: %v", err)
			}

			ok, err := shuffle.ValidateAgainst(original, candidate)
			if err != nil {
				t.Fatalf("ValidateAgainst error: %v", err)
			}
			if ok {
				t.Error("candidate with a broken label multiset accepted")
			}
		})
	}
}

// TestValidateAgainst_ObstacleGained rejects a candidate that parks a
// label on an originally empty cell.
func TestValidateAgainst_ObstacleGained(t *testing.T) {
	original := mustGrid(t, [][]grid.Label{{"A", ""}, {"", "B"}})
	candidate := mustGrid(t, [][]grid.Label{{"B", "A"}, {"", ""}})

	ok, err := shuffle.ValidateAgainst(original, candidate)
	if err != nil {
		t.Fatalf("ValidateAgainst error: %v", err)
	}
	if ok {
		t.Error("candidate occupying an obstacle cell accepted")
	}
}

// TestValidateAgainst_ShapeMismatch surfaces the sentinel error.
func TestValidateAgainst_ShapeMismatch(t *testing.T) {
	a := mustGrid(t, [][]grid.Label{{"A", "B"}})
	b := mustGrid(t, [][]grid.Label{{"A"}, {"B"}})

	if _, err := shuffle.ValidateAgainst(a, b); !errors.Is(err, shuffle.ErrShapeMismatch) {
		t.Errorf("ValidateAgainst error = %v; want ErrShapeMismatch", err)
	}
}

// TestValidateAgainst_Idempotent verifies the validator is a pure
// function of its inputs: repeated calls agree.
func TestValidateAgainst_Idempotent(t *testing.T) {
	original := mustGrid(t, [][]grid.Label{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})
	candidate := mustGrid(t, [][]grid.Label{
		{"2", "4", "6"},
		{"7", "3", "8"},
		{"5", "9", "1"},
	})

	first, err := shuffle.ValidateAgainst(original, candidate)
	if err != nil {
		t.Fatalf("ValidateAgainst error: %v", err)
	}
	second, err := shuffle.ValidateAgainst(original, candidate)
	if err != nil {
		t.Fatalf("ValidateAgainst error: %v", err)
	}
	if first != second {
		t.Errorf("validator disagreed with itself: %v then %v", first, second)
	}
}
