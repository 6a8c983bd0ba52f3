// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridshuffle.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDuplicateLabel indicates two occupied cells share the same label.
	ErrDuplicateLabel = errors.New("grid: labels must be unique across occupied cells")
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = errors.New("grid: dimensions must be non-negative")
	// ErrOutOfBounds indicates a position outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Label identifies the content of one occupied cell. Labels are opaque
// tokens (student names, piece IDs, …) and must be unique across the
// occupied cells of a Grid.
type Label = string

// Empty is the reserved Label of an unoccupied cell.
const Empty Label = ""

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

// Directions lists the four orthogonal neighbor offsets: N, S, W, E.
// Empty cells between two occupied cells break adjacency; diagonals
// never count.
var Directions = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular chart of labeled cells. It is immutable in
// shape once built; Set only replaces cell contents.
// The zero value is a valid 0×0 grid.
type Grid struct {
	rows, cols int
	cells      [][]Label
}
