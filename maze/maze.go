// Package maze finds shortest routes through a binary maze, where 1 is a
// passage and 0 is a wall, moving one orthogonal step at a time.
//
// Problem implements search.Problem over grid cells; Solve runs search.BFS
// and converts the outcome to a Route.
package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

// Sentinel errors for maze construction.
var (
	// ErrStartOutOfRange indicates the start cell lies outside the maze.
	ErrStartOutOfRange = errors.New("maze: start out of range")
	// ErrExitOutOfRange indicates the exit cell lies outside the maze.
	ErrExitOutOfRange = errors.New("maze: exit out of range")
)

// Config describes a maze and the two cells to connect.
type Config struct {
	Grid  [][]int   `yaml:"grid" validate:"required,dive,required,dive,oneof=0 1"`
	Start grid.Cell `yaml:"start"`
	Exit  grid.Cell `yaml:"exit"`
}

// Problem is an immutable maze search problem. The goal test is equality
// with the exit cell.
type Problem struct {
	search.Goal[grid.Cell]
	search.UnitCost[grid.Cell, grid.Cell]
	g     *grid.Grid
	start grid.Cell
}

var _ search.Problem[grid.Cell, grid.Cell] = (*Problem)(nil)

// New builds a Problem from cfg.
// Returns the grid package's errors for a malformed maze, and
// ErrStartOutOfRange or ErrExitOutOfRange (wrapping grid.ErrCellOutOfRange)
// for coordinates outside it. A wall exit is never reached, so such a maze
// has no route. A wall start acts as an ordinary starting cell: the search
// leaves it through its open neighbors.
func New(cfg Config) (*Problem, error) {
	g, err := grid.New(cfg.Grid, grid.Conn4)
	if err != nil {
		return nil, err
	}
	if err := g.Check(cfg.Start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartOutOfRange, err)
	}
	if err := g.Check(cfg.Exit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExitOutOfRange, err)
	}
	return &Problem{
		Goal:  search.Goal[grid.Cell]{State: cfg.Exit},
		g:     g,
		start: cfg.Start,
	}, nil
}

// Initial returns the start cell.
func (p *Problem) Initial() grid.Cell { return p.start }

// Exit returns the exit cell.
func (p *Problem) Exit() grid.Cell { return p.State }

// Grid returns the underlying grid.
func (p *Problem) Grid() *grid.Grid { return p.g }

// Actions returns the open cells orthogonally adjacent to c.
func (p *Problem) Actions(c grid.Cell) []grid.Cell {
	return p.g.Neighbors(c)
}

// Result moves to the neighbor a. It panics with search.ErrInvalidAction
// if a is not an open orthogonal neighbor of c.
func (p *Problem) Result(c, a grid.Cell) grid.Cell {
	if !p.g.Adjacent(c, a) || !p.g.IsOpen(a) {
		panic(fmt.Errorf("%w: maze: %v is not an open neighbor of %v", search.ErrInvalidAction, a, c))
	}
	return a
}

// Route is the outcome of a maze search.
//   - Status: search.Succeeded when the exit was reached.
//   - Cells: start to exit inclusive, nil when not found.
//   - Steps: len(Cells)-1, or -1 when not found.
type Route struct {
	Status   search.Status
	Cells    []grid.Cell
	Steps    int
	Expanded int
}

// Found reports whether the route reaches the exit.
func (r Route) Found() bool { return r.Status == search.Succeeded }

// Solve returns a shortest route from start to exit.
// The error is non-nil only for invalid options.
func (p *Problem) Solve(opts ...search.Option) (Route, error) {
	out, err := search.BFS[grid.Cell, grid.Cell](p, opts...)
	if err != nil {
		return Route{}, err
	}
	return Route{
		Status:   out.Status,
		Cells:    out.States(),
		Steps:    out.Len(),
		Expanded: out.Expanded,
	}, nil
}

// ShortestPath builds a Problem from cfg and solves it.
func ShortestPath(cfg Config, opts ...search.Option) (Route, error) {
	p, err := New(cfg)
	if err != nil {
		return Route{}, err
	}
	return p.Solve(opts...)
}
