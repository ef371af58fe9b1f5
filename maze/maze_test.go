package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

// reference is the 12×12 maze connecting (0,0) to (11,11).
var reference = [][]int{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 1, 0},
	{0, 1, 1, 1, 0, 1, 0, 0, 1, 0, 1, 0},
	{0, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0},
	{0, 1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 0},
	{0, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
}

// TestShortestPath_Reference checks the 12×12 maze against an independent
// distance computation. The route has 22 steps: 23 cells, 21 of them
// strictly between start and exit.
func TestShortestPath_Reference(t *testing.T) {
	cfg := maze.Config{Grid: reference, Start: grid.At(0, 0), Exit: grid.At(11, 11)}
	route, err := maze.ShortestPath(cfg)
	require.NoError(t, err)
	require.True(t, route.Found())

	assert.Equal(t, relaxDistance(reference, cfg.Start, cfg.Exit), route.Steps)
	assert.Equal(t, 22, route.Steps)
	assert.Len(t, route.Cells, 23)
	assert.Len(t, route.Cells[1:len(route.Cells)-1], 21)

	// The only 22-step route runs along row 1 and down column 10.
	want := []grid.Cell{grid.At(0, 0)}
	for c := 0; c <= 10; c++ {
		want = append(want, grid.At(1, c))
	}
	for r := 2; r <= 11; r++ {
		want = append(want, grid.At(r, 10))
	}
	want = append(want, grid.At(11, 11))
	assert.Equal(t, want, route.Cells)
	assertValidRoute(t, reference, route, cfg)
}

// TestShortestPath_Cases covers trivial, blocked and unreachable mazes.
func TestShortestPath_Cases(t *testing.T) {
	cases := []struct {
		name   string
		cfg    maze.Config
		status search.Status
		steps  int
	}{
		{"StartIsExit", maze.Config{Grid: [][]int{{1}}, Start: grid.At(0, 0), Exit: grid.At(0, 0)}, search.Succeeded, 0},
		{"Corridor", maze.Config{Grid: [][]int{{1, 1, 1, 1}}, Start: grid.At(0, 0), Exit: grid.At(0, 3)}, search.Succeeded, 3},
		{"Detour", maze.Config{Grid: [][]int{
			{1, 0, 1},
			{1, 0, 1},
			{1, 1, 1},
		}, Start: grid.At(0, 0), Exit: grid.At(0, 2)}, search.Succeeded, 6},
		{"NoDiagonals", maze.Config{Grid: [][]int{{1, 0}, {0, 1}}, Start: grid.At(0, 0), Exit: grid.At(1, 1)}, search.Failed, -1},
		{"StartIsWall", maze.Config{Grid: [][]int{{0, 1, 1}}, Start: grid.At(0, 0), Exit: grid.At(0, 2)}, search.Succeeded, 2},
		{"ExitIsWall", maze.Config{Grid: [][]int{{1, 1, 0}}, Start: grid.At(0, 0), Exit: grid.At(0, 2)}, search.Failed, -1},
		{"WalledOff", maze.Config{Grid: [][]int{
			{1, 1, 0, 1},
			{1, 1, 0, 1},
		}, Start: grid.At(0, 0), Exit: grid.At(1, 3)}, search.Failed, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route, err := maze.ShortestPath(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.status, route.Status)
			assert.Equal(t, tc.steps, route.Steps)
			if route.Found() {
				assertValidRoute(t, tc.cfg.Grid, route, tc.cfg)
			} else {
				assert.Nil(t, route.Cells)
			}
		})
	}
}

// TestNew_Errors rejects malformed mazes and out-of-range endpoints.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  maze.Config
		err  error
	}{
		{"Empty", maze.Config{}, grid.ErrEmptyGrid},
		{"Ragged", maze.Config{Grid: [][]int{{1, 1}, {1}}}, grid.ErrNonRectangular},
		{"StartOutside", maze.Config{Grid: [][]int{{1}}, Start: grid.At(0, 1)}, maze.ErrStartOutOfRange},
		{"ExitOutside", maze.Config{Grid: [][]int{{1}}, Exit: grid.At(-1, 0)}, maze.ErrExitOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.cfg)
			if !errors.Is(err, tc.err) {
				t.Errorf("New error = %v; want %v", err, tc.err)
			}
		})
	}

	_, err := maze.New(maze.Config{Grid: [][]int{{1}}, Start: grid.At(5, 5)})
	assert.ErrorIs(t, err, grid.ErrCellOutOfRange)
}

// TestSolve_MaxDepth reports Cutoff when the bound hides the exit.
func TestSolve_MaxDepth(t *testing.T) {
	p, err := maze.New(maze.Config{Grid: reference, Start: grid.At(0, 0), Exit: grid.At(11, 11)})
	require.NoError(t, err)

	route, err := p.Solve(search.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, search.Cutoff, route.Status)
	assert.Equal(t, -1, route.Steps)

	_, err = p.Solve(search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestShortestPath_MatchesRelaxation compares BFS with edge relaxation on
// random mazes, including unreachable exits.
func TestShortestPath_MatchesRelaxation(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 150; trial++ {
		rows, cols := 1+rnd.Intn(8), 1+rnd.Intn(8)
		g := make([][]int, rows)
		for r := range g {
			g[r] = make([]int, cols)
			for c := range g[r] {
				if rnd.Intn(100) < 65 {
					g[r][c] = 1
				}
			}
		}
		cfg := maze.Config{
			Grid:  g,
			Start: grid.At(rnd.Intn(rows), rnd.Intn(cols)),
			Exit:  grid.At(rnd.Intn(rows), rnd.Intn(cols)),
		}
		g[cfg.Start.Row][cfg.Start.Col] = 1

		route, err := maze.ShortestPath(cfg)
		require.NoError(t, err)
		require.Equalf(t, relaxDistance(g, cfg.Start, cfg.Exit), route.Steps, "trial %d: %v", trial, cfg)
		if route.Found() {
			assertValidRoute(t, g, route, cfg)
		}
	}
}

// TestResult_InvalidAction panics on a move through a wall.
func TestResult_InvalidAction(t *testing.T) {
	p, err := maze.New(maze.Config{Grid: [][]int{{1, 0}}})
	require.NoError(t, err)
	assert.Panics(t, func() { p.Result(grid.At(0, 0), grid.At(0, 1)) })
	assert.Panics(t, func() { p.Result(grid.At(0, 0), grid.At(0, 0)) })
}

// assertValidRoute checks endpoints and that every step is an orthogonal
// move between passages.
func assertValidRoute(t *testing.T, g [][]int, route maze.Route, cfg maze.Config) {
	t.Helper()
	require.NotEmpty(t, route.Cells)
	assert.Equal(t, cfg.Start, route.Cells[0])
	assert.Equal(t, cfg.Exit, route.Cells[len(route.Cells)-1])
	assert.Equal(t, len(route.Cells)-1, route.Steps)
	for i := 1; i < len(route.Cells); i++ {
		a, b := route.Cells[i-1], route.Cells[i]
		dr, dc := b.Row-a.Row, b.Col-a.Col
		assert.Equalf(t, 1, dr*dr+dc*dc, "step %d: %v -> %v", i, a, b)
		assert.Equalf(t, 1, g[b.Row][b.Col], "step %d enters wall %v", i, b)
	}
}

// relaxDistance computes orthogonal step distances by repeated relaxation,
// or -1 if exit is unreachable.
func relaxDistance(g [][]int, start, exit grid.Cell) int {
	const inf = 1 << 30
	rows, cols := len(g), len(g[0])
	dist := make([][]int, rows)
	for r := range dist {
		dist[r] = make([]int, cols)
		for c := range dist[r] {
			dist[r][c] = inf
		}
	}
	dist[start.Row][start.Col] = 0
	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if g[r][c] != 1 || dist[r][c] == inf {
					continue
				}
				for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
					nr, nc := r+d[0], c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols || g[nr][nc] != 1 {
						continue
					}
					if dist[r][c]+1 < dist[nr][nc] {
						dist[nr][nc] = dist[r][c] + 1
						changed = true
					}
				}
			}
		}
	}
	if dist[exit.Row][exit.Col] == inf {
		return -1
	}
	return dist[exit.Row][exit.Col]
}
