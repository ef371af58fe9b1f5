package search_test

import (
	"github.com/katalvlaran/statespace/search"
)

// graphProblem is an explicit directed graph: the action is the neighbor
// to move to, so Result simply returns it.
type graphProblem[S comparable] struct {
	search.Goal[S]
	search.UnitCost[S, S]
	start S
	adj   map[S][]S
}

func newGraph[S comparable](start, goal S, edges ...[2]S) *graphProblem[S] {
	g := &graphProblem[S]{
		Goal:  search.Goal[S]{State: goal},
		start: start,
		adj:   make(map[S][]S),
	}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
	}
	return g
}

// undirected adds both directions of every edge.
func (g *graphProblem[S]) undirected(edges ...[2]S) *graphProblem[S] {
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	return g
}

func (g *graphProblem[S]) Initial() S { return g.start }

func (g *graphProblem[S]) Actions(s S) []S { return g.adj[s] }

func (g *graphProblem[S]) Result(_ S, a S) S { return a }

// lineProblem walks the integers [0, n] one step at a time.
type lineProblem struct {
	search.Goal[int]
	search.UnitCost[int, int]
	n       int
	results int
}

func (l *lineProblem) Initial() int { return 0 }

func (l *lineProblem) Actions(s int) []int {
	var acts []int
	if s < l.n {
		acts = append(acts, +1)
	}
	if s > 0 {
		acts = append(acts, -1)
	}
	return acts
}

func (l *lineProblem) Result(s int, a int) int {
	l.results++
	return s + a
}
