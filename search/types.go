// Package search defines the problem contract, tunable options and sentinel
// errors for breadth-first state-space search.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidAction marks an attempt to apply an action that the
	// problem's own Actions did not return for the state.
	ErrInvalidAction = errors.New("search: action not applicable to state")
)

// Space is the part of a problem that defines its state graph.
// Actions must return a finite slice; its order fixes traversal order.
// Result must be pure and total over the actions returned for s.
type Space[S comparable, A any] interface {
	Actions(s S) []A
	Result(s S, a A) S
}

// Problem is a Space with a starting point, a goal test and the cost hooks
// used by informed search variants.
type Problem[S comparable, A any] interface {
	Space[S, A]
	Initial() S
	IsGoal(s S) bool
	ActionCost(s S, a A, next S) float64
	Heuristic(n *Node[S, A]) float64
}

// Goal implements Problem.IsGoal as equality against a stored goal state.
type Goal[S comparable] struct {
	State S
}

// IsGoal reports whether s equals the stored goal state.
func (g Goal[S]) IsGoal(s S) bool { return s == g.State }

// UnitCost supplies the default ActionCost (1) and Heuristic (0).
type UnitCost[S comparable, A any] struct{}

// ActionCost returns 1 for every transition.
func (UnitCost[S, A]) ActionCost(S, A, S) float64 { return 1 }

// Heuristic returns 0 for every node.
func (UnitCost[S, A]) Heuristic(*Node[S, A]) float64 { return 0 }

// Status is the lifecycle of one search run.
type Status int

const (
	NotStarted Status = iota // NotStarted: the zero value of an Outcome.
	Running                  // Running: the frontier is being processed.
	Succeeded                // Succeeded: a goal node was found.
	Failed                   // Failed: the reachable space holds no goal.
	Cutoff                   // Cutoff: no goal within MaxDepth, deeper states remain.
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cutoff:
		return "cutoff"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Set is a set of states, used as the reached set of a search.
type Set[S comparable] map[S]struct{}

// NewSet returns an empty Set sized for n states.
func NewSet[S comparable](n int) Set[S] {
	return make(Set[S], n)
}

// Has reports whether x is in the set.
func (s Set[S]) Has(x S) bool {
	_, ok := s[x]
	return ok
}

// Add inserts x and reports whether it was absent before.
func (s Set[S]) Add(x S) bool {
	if _, ok := s[x]; ok {
		return false
	}
	s[x] = struct{}{}
	return true
}

// Len returns the number of states in the set.
func (s Set[S]) Len() int { return len(s) }

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// OnEnqueue is called after a node joins the frontier.
	// Receives the node's state and its depth from the root.
	OnEnqueue func(state any, depth int)

	// OnDequeue is called immediately before a node is expanded.
	OnDequeue func(state any, depth int)

	// MaxDepth, if > 0, stops expansion of nodes at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(any, int) {},
		OnDequeue: func(any, int) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback invoked for every enqueued node.
func WithOnEnqueue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback invoked for every expanded node.
func WithOnDequeue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth bounds the search depth.
//
//	d > 0: nodes at depth d are goal-tested but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
