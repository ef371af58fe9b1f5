// Package islands counts connected land regions of a binary map, where land
// cells touching by side or by corner belong to the same island.
//
// The map is a search.Space over grid cells: the actions from a land cell
// are its 8-connected land neighbors. Counting runs search.Components with
// every land cell as a seed in row-major order, so each island is flooded
// exactly once.
package islands

import (
	"fmt"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

// Config describes an islands map: 1 is land, 0 is water.
type Config struct {
	Grid [][]int `yaml:"grid" validate:"required,dive,required,dive,oneof=0 1"`
}

// Map is an immutable islands map. It implements search.Space with cells
// as both states and actions; it has no goal.
type Map struct {
	g *grid.Grid
}

var _ search.Space[grid.Cell, grid.Cell] = (*Map)(nil)

// New builds a Map from cfg.
// Returns grid.ErrEmptyGrid, grid.ErrNonRectangular or grid.ErrCellValue
// for malformed input.
func New(cfg Config) (*Map, error) {
	g, err := grid.New(cfg.Grid, grid.Conn8)
	if err != nil {
		return nil, err
	}
	return &Map{g: g}, nil
}

// Grid returns the underlying grid.
func (m *Map) Grid() *grid.Grid { return m.g }

// Actions returns the land cells adjacent to c, diagonals included.
func (m *Map) Actions(c grid.Cell) []grid.Cell {
	return m.g.Neighbors(c)
}

// Result moves to the neighbor a. It panics with search.ErrInvalidAction
// if a is not a land neighbor of c.
func (m *Map) Result(c, a grid.Cell) grid.Cell {
	if !m.g.Adjacent(c, a) || !m.g.IsOpen(a) {
		panic(fmt.Errorf("%w: islands: %v is not a land neighbor of %v", search.ErrInvalidAction, a, c))
	}
	return a
}

// Components returns every island as a list of cells. Islands are ordered
// by their first cell in row-major order; cells within an island are in
// visit order. Only hook options apply; WithMaxDepth(d > 0) is rejected
// with search.ErrOptionViolation so each island is counted once.
func (m *Map) Components(opts ...search.Option) ([][]grid.Cell, error) {
	return search.Components[grid.Cell, grid.Cell](m, m.g.OpenCells(), opts...)
}

// Count returns the number of islands.
func (m *Map) Count(opts ...search.Option) (int, error) {
	comps, err := m.Components(opts...)
	if err != nil {
		return 0, err
	}
	return len(comps), nil
}

// Sizes returns the cell count of each island, in Components order.
// Returns ErrOptionViolation for invalid options.
func (m *Map) Sizes(opts ...search.Option) ([]int, error) {
	comps, err := m.Components(opts...)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	return sizes, nil
}

// Count builds a map from values and returns its number of islands.
func Count(values [][]int) (int, error) {
	m, err := New(Config{Grid: values})
	if err != nil {
		return 0, err
	}
	return m.Count()
}
