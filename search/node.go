package search

import (
	"fmt"
	"iter"
	"slices"
)

// Node is a record in the search tree. Parent links point towards the root
// and never form a cycle; the root has a nil Parent and a zero Action.
type Node[S comparable, A any] struct {
	Parent   *Node[S, A]
	State    S
	Action   A
	PathCost float64
	Depth    int
}

// Root returns a parentless node for s with zero path cost.
func Root[S comparable, A any](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

func (n *Node[S, A]) String() string {
	return fmt.Sprintf("<Node %v>", n.State)
}

// Expand lazily yields one child of n per action of p, in the order the
// actions are returned. It does not consult or update any reached set.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		for _, a := range p.Actions(n.State) {
			next := p.Result(n.State, a)
			child := &Node[S, A]{
				Parent:   n,
				State:    next,
				Action:   a,
				PathCost: n.PathCost + p.ActionCost(n.State, a, next),
				Depth:    n.Depth + 1,
			}
			if !yield(child) {
				return
			}
		}
	}
}

// PathActions returns the actions leading from the root to n.
// The root yields an empty slice, a nil node yields nil.
func PathActions[S comparable, A any](n *Node[S, A]) []A {
	if n == nil {
		return nil
	}
	acts := make([]A, 0, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		acts = append(acts, cur.Action)
	}
	slices.Reverse(acts)
	return acts
}

// PathStates returns the states from the root to n, both inclusive.
// A nil node yields nil.
func PathStates[S comparable, A any](n *Node[S, A]) []S {
	if n == nil {
		return nil
	}
	states := make([]S, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
	}
	slices.Reverse(states)
	return states
}
