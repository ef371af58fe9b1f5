package grid

import (
	"fmt"
	"iter"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellValue if any value is not Blocked or Open.
// Complexity: O(R×C) time and memory.
func New(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v != Blocked && v != Open {
				return nil, fmt.Errorf("%w: %d at %v", ErrCellValue, v, At(r, c))
			}
		}
		cells[r] = make([]int, w)
		copy(cells[r], row)
	}

	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	return &Grid{
		rows:    h,
		cols:    w,
		cells:   cells,
		conn:    conn,
		offsets: offsets,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns the neighborhood used by Neighbors.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Check returns ErrCellOutOfRange, wrapped with the coordinate and the
// grid size, when c is outside the grid.
func (g *Grid) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %d×%d grid", ErrCellOutOfRange, c, g.rows, g.cols)
	}
	return nil
}

// IsOpen reports whether c is in bounds and holds Open.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Open
}

// Neighbors returns the open cells adjacent to c in connectivity order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		if n := c.Offset(d[0], d[1]); g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// Adjacent reports whether b is one neighborhood step away from a.
func (g *Grid) Adjacent(a, b Cell) bool {
	for _, d := range g.offsets {
		if a.Offset(d[0], d[1]) == b {
			return true
		}
	}
	return false
}

// Cells yields every coordinate in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(At(r, c)) {
					return
				}
			}
		}
	}
}

// OpenCells yields every open coordinate in row-major order.
func (g *Grid) OpenCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range g.Cells() {
			if g.cells[c.Row][c.Col] == Open && !yield(c) {
				return
			}
		}
	}
}

// Render draws the grid with '#' for blocked cells, '.' for open cells and
// mark for every cell in path.
func (g *Grid) Render(path []Cell, mark byte) string {
	on := make(map[Cell]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch {
			case on[At(r, c)]:
				b.WriteByte(mark)
			case g.cells[r][c] == Open:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
