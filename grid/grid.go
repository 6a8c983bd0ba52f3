package grid

// New constructs a Grid from a rectangular 2D slice of labels.
// It deep-copies the input to ensure immutability.
// Returns ErrNonRectangular if any row length differs from the first,
// ErrDuplicateLabel if two occupied cells share a label.
// A grid with zero rows, zero columns, or zero occupied cells is legal.
// Complexity: O(R×C) time and memory.
func New(cells [][]Label) (Grid, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	for _, row := range cells {
		if len(row) != cols {
			return Grid{}, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation, checking uniqueness on the way.
	seen := make(map[Label]struct{}, rows*cols)
	copied := make([][]Label, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]Label, cols)
		copy(copied[r], cells[r])
		for c := 0; c < cols; c++ {
			l := copied[r][c]
			if l == Empty {
				continue
			}
			if _, dup := seen[l]; dup {
				return Grid{}, ErrDuplicateLabel
			}
			seen[l] = struct{}{}
		}
	}

	return Grid{rows: rows, cols: cols, cells: copied}, nil
}

// NewEmpty constructs an all-empty Grid of the given shape.
// Returns ErrNegativeDimension if rows or cols is negative.
// Complexity: O(R×C).
func NewEmpty(rows, cols int) (Grid, error) {
	if rows < 0 || cols < 0 {
		return Grid{}, ErrNegativeDimension
	}
	cells := make([][]Label, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Label, cols)
	}

	return Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the label at p, or Empty with ErrOutOfBounds when p lies
// outside the grid. Complexity: O(1).
func (g Grid) At(p Position) (Label, error) {
	if !g.InBounds(p) {
		return Empty, ErrOutOfBounds
	}

	return g.cells[p.Row][p.Col], nil
}

// Set replaces the label at p. The grid's shape never changes; setting
// Empty vacates the cell. Returns ErrOutOfBounds for positions outside
// the grid. Complexity: O(1).
func (g Grid) Set(p Position, l Label) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col] = l

	return nil
}

// Clone returns a deep copy of the grid. Mutations of the copy never
// reach the original. Complexity: O(R×C).
func (g Grid) Clone() Grid {
	cells := make([][]Label, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]Label, g.cols)
		copy(cells[r], g.cells[r])
	}

	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Cells returns a deep copy of the underlying 2D slice.
// Complexity: O(R×C).
func (g Grid) Cells() [][]Label {
	return g.Clone().cells
}

// Positions returns the occupied positions in row-major order — the
// canonical enumeration order used throughout gridshuffle.
// Complexity: O(R×C) time, O(n) memory.
func (g Grid) Positions() []Position {
	var out []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Empty {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}

	return out
}

// Labels returns the labels of the occupied cells in row-major order.
// Complexity: O(R×C) time, O(n) memory.
func (g Grid) Labels() []Label {
	var out []Label
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Empty {
				out = append(out, g.cells[r][c])
			}
		}
	}

	return out
}

// Equal reports whether two grids have the same shape and identical
// cell contents. Complexity: O(R×C).
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}

	return true
}
