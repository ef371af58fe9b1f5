// Package grid treats a rectangular binary matrix as the state space shared
// by the grid-based search adapters.
//
// What:
//
//   - Grid wraps a validated, deep-copied [][]int whose cells are Blocked (0)
//     or Open (1).
//   - Cell is a (row, col) coordinate. It is comparable, so it can serve as a
//     search state, and decodes from a YAML [row, col] pair.
//   - Neighbors lists the open cells adjacent to a cell under Conn4
//     (orthogonal) or Conn8 (orthogonal and diagonal) connectivity, in a
//     fixed order.
//
// Neighbor order, as (dRow, dCol):
//
//   - Conn4: (0,1) (0,-1) (1,0) (-1,0)
//   - Conn8: (-1,-1) (-1,0) (-1,1) (0,-1) (0,1) (1,-1) (1,0) (1,1)
//
// Complexity:
//
//   - New:       O(R×C) time and memory.
//   - Neighbors: O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: a cell holds something other than 0 or 1.
//   - ErrCellOutOfRange: a coordinate lies outside the grid.
//   - ErrCellFormat: a YAML cell is not a [row, col] pair.
package grid
