// Package grid models a rectangular 2D chart of labeled cells, the
// input and output shape of every gridshuffle operation.
//
// What:
//
//   - Grid wraps a rectangular [][]Label with fixed dimensions.
//   - Empty (the empty string) marks an unoccupied cell; empty cells are
//     immovable obstacles that also break adjacency between their neighbors.
//   - Strict construction: ragged rows and duplicate non-empty labels are
//     rejected up front, never discovered mid-solve.
//   - CSV import/export for the common seating-chart workflow (blank
//     fields ⇒ empty cells, short rows padded to the widest row).
//
// Why:
//
//   - Seating charts: one student name per occupied seat, gaps for aisles.
//   - Game boards: tokens on a board with holes.
//   - Any shuffle/validation pipeline that needs a stable, copy-safe grid.
//
// Complexity:
//
//   - New / Clone / Cells / Equal: O(R×C) time and memory.
//   - At / Set / InBounds:         O(1).
//   - Positions / Labels:          O(R×C) time, O(n) memory (n = occupied cells).
//
// Errors:
//
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrDuplicateLabel:    two occupied cells share a label.
//   - ErrNegativeDimension: NewEmpty called with a negative size.
//   - ErrOutOfBounds:       At/Set addressed a position outside the grid.
package grid
