// Package grid defines core types, connectivity and sentinel errors
// for the grid subpackage of github.com/katalvlaran/statespace.
package grid

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellValue indicates a cell value other than Blocked or Open.
	ErrCellValue = errors.New("grid: cell values must be 0 or 1")
	// ErrCellOutOfRange indicates a coordinate outside the grid.
	ErrCellOutOfRange = errors.New("grid: cell out of range")
	// ErrCellFormat indicates a malformed serialized cell.
	ErrCellFormat = errors.New("grid: cell must be a [row, col] pair")
)

// Cell values.
const (
	Blocked = 0 // water in an islands map, wall in a maze
	Open    = 1 // land in an islands map, passage in a maze
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, S, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: NW, N, NE, W, E, SW, S, SE.
	Conn8
)

var (
	offsets4 = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Cell is a grid coordinate. Row grows downwards, Col to the right.
type Cell struct {
	Row, Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Offset returns the cell dr rows and dc columns away from c.
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// UnmarshalYAML decodes a cell from a [row, col] sequence.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	var pair []int
	if err := n.Decode(&pair); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrCellFormat, n.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: line %d: got %d values", ErrCellFormat, n.Line, len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes a cell as a flow-style [row, col] sequence.
func (c Cell) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{c.Row, c.Col} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return n, nil
}

// Grid is an immutable binary matrix with a fixed connectivity.
// cells[r][c] holds Blocked or Open; offsets is precomputed from the
// connectivity for adjacency lookups.
type Grid struct {
	rows, cols int
	cells      [][]int
	conn       Connectivity
	offsets    [][2]int
}
