// Package search provides a breadth-first state-space search engine that is
// generic over the state and action types of a Problem.
//
// What
//
//   - Space describes a state graph implicitly: Actions enumerates the legal
//     moves from a state and Result applies one of them.
//   - Problem adds an initial state, a goal test, an action cost and a
//     heuristic. Goal and UnitCost supply the usual defaults and are meant
//     to be embedded by adapters.
//   - BFS finds a goal node and reports an Outcome whose Status is one of
//     Succeeded, Failed or Cutoff. PathActions and PathStates rebuild the
//     route from the parent chain of the returned Node.
//   - FloodFill and Components run the same traversal without a goal test,
//     enumerating everything reachable from a seed into a caller-owned Set.
//
// Why
//
//   - One driver serves unrelated domains (grid cells, jug volumes) as long
//     as their states are comparable.
//   - Under unit action costs the first goal found is a shortest route.
//
// Determinism
//
//	Children are generated in the order returned by Actions and the
//	frontier is strict FIFO, so the returned route is reproducible.
//
// Complexity (V = reachable states, E = generated transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier, the reached set and the retained nodes.
//
// Usage
//
//	out, err := search.BFS[grid.Cell, grid.Cell](problem)
//	if err != nil {
//	    // only ErrOptionViolation
//	}
//	if !out.Found() {
//	    // out.Status is Failed or Cutoff
//	}
//	route := out.States()
//
// Options
//
//   - WithMaxDepth(d):   do not expand nodes at depth d (>0); 0 means no limit.
//     BFS and FloodFill honor it; Components rejects d > 0.
//   - WithOnEnqueue(fn): hook after a node joins the frontier.
//   - WithOnDequeue(fn): hook immediately before a node is expanded.
//
// Errors
//
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
//   - ErrInvalidAction   is the sentinel adapters wrap when Result is asked
//     to apply an action that Actions did not offer.
package search
