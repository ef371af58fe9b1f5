package search

import (
	"fmt"
	"iter"
)

// floodItem pairs a state with its distance from the flood seed.
type floodItem[S comparable] struct {
	state S
	depth int
}

// FloodFill visits every state reachable from seed, with no goal test,
// adding each to visited. It returns the newly reached states in visit
// order, seed first, or nil if seed was already visited.
// visited is owned by the caller and may be shared across calls.
// Returns ErrOptionViolation for invalid options.
func FloodFill[S comparable, A any](sp Space[S, A], seed S, visited Set[S], opts ...Option) ([]S, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return flood(sp, seed, visited, o), nil
}

// Components enumerates connected regions: seeds are taken in order and
// every seed not yet visited starts one flood fill over a single visited
// set shared by the whole run. Each returned component lists its states in
// visit order.
// Returns ErrOptionViolation for invalid options, and for WithMaxDepth(d)
// with d > 0: a bounded fill would split one region into several.
func Components[S comparable, A any](sp Space[S, A], seeds iter.Seq[S], opts ...Option) ([][]S, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Components does not accept MaxDepth (%d)", ErrOptionViolation, o.MaxDepth)
	}
	visited := NewSet[S](0)
	var comps [][]S
	for seed := range seeds {
		if visited.Has(seed) {
			continue
		}
		comps = append(comps, flood(sp, seed, visited, o))
	}
	return comps, nil
}

func flood[S comparable, A any](sp Space[S, A], seed S, visited Set[S], o Options) []S {
	if !visited.Add(seed) {
		return nil
	}
	queue := []floodItem[S]{{state: seed}}
	o.OnEnqueue(seed, 0)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		o.OnDequeue(cur.state, cur.depth)
		if o.MaxDepth > 0 && cur.depth >= o.MaxDepth {
			continue
		}
		for _, a := range sp.Actions(cur.state) {
			next := sp.Result(cur.state, a)
			if visited.Add(next) {
				queue = append(queue, floodItem[S]{state: next, depth: cur.depth + 1})
				o.OnEnqueue(next, cur.depth+1)
			}
		}
	}

	region := make([]S, len(queue))
	for i, it := range queue {
		region[i] = it.state
	}
	return region
}
