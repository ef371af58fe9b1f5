package search

// Outcome is the result of a BFS run.
//   - Status: Succeeded, Failed or Cutoff.
//   - Node: the goal node on success, nil otherwise.
//   - Expanded: number of nodes whose children were generated.
//   - Reached: number of distinct states discovered.
type Outcome[S comparable, A any] struct {
	Status   Status
	Node     *Node[S, A]
	Expanded int
	Reached  int
}

// Found reports whether the search reached a goal.
func (o Outcome[S, A]) Found() bool {
	return o.Status == Succeeded && o.Node != nil
}

// Actions returns the route's actions, or nil when no goal was found.
func (o Outcome[S, A]) Actions() []A {
	if !o.Found() {
		return nil
	}
	return PathActions(o.Node)
}

// States returns the route's states including start and goal,
// or nil when no goal was found.
func (o Outcome[S, A]) States() []S {
	if !o.Found() {
		return nil
	}
	return PathStates(o.Node)
}

// Len returns the number of actions on the route, or -1 when no goal was
// found. A start state that already satisfies the goal has length 0.
func (o Outcome[S, A]) Len() int {
	if !o.Found() {
		return -1
	}
	return o.Node.Depth
}

// walker encapsulates mutable BFS state for one run.
type walker[S comparable, A any] struct {
	problem  Problem[S, A]
	opts     Options
	queue    []*Node[S, A]
	head     int
	reached  Set[S]
	status   Status
	pruned   bool
	expanded int
}

// BFS runs breadth-first search on p, applying any number of Options.
// States are marked reached when enqueued and every child is goal-tested
// as it is generated, so under unit costs the returned node is at minimum
// depth. An unreachable goal is reported as Status Failed (or Cutoff when
// WithMaxDepth pruned the frontier), never as an error.
// Returns ErrOptionViolation for invalid options.
func BFS[S comparable, A any](p Problem[S, A], opts ...Option) (Outcome[S, A], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Outcome[S, A]{}, err
	}
	w := &walker[S, A]{
		problem: p,
		opts:    o,
		reached: NewSet[S](0),
	}
	return w.run(), nil
}

// run drives the walker from NotStarted to a terminal status.
func (w *walker[S, A]) run() Outcome[S, A] {
	w.status = Running
	root := Root[S, A](w.problem.Initial())
	w.reached.Add(root.State)
	if w.problem.IsGoal(root.State) {
		return w.finish(Succeeded, root)
	}
	w.enqueue(root)

	for w.head < len(w.queue) {
		n := w.dequeue()
		if w.atLimit(n) {
			continue
		}
		w.expanded++
		for child := range Expand(w.problem, n) {
			if w.problem.IsGoal(child.State) {
				return w.finish(Succeeded, child)
			}
			if w.reached.Add(child.State) {
				w.enqueue(child)
			}
		}
	}

	if w.pruned {
		return w.finish(Cutoff, nil)
	}
	return w.finish(Failed, nil)
}

// enqueue appends n to the frontier and calls OnEnqueue.
func (w *walker[S, A]) enqueue(n *Node[S, A]) {
	w.queue = append(w.queue, n)
	w.opts.OnEnqueue(n.State, n.Depth)
}

// dequeue pops the oldest node, invokes OnDequeue, and returns it.
func (w *walker[S, A]) dequeue() *Node[S, A] {
	n := w.queue[w.head]
	w.queue[w.head] = nil
	w.head++
	w.opts.OnDequeue(n.State, n.Depth)
	return n
}

// atLimit reports whether n sits on the MaxDepth bound. It records a
// pruning only when n has a child whose state was never reached, so a
// bound that hides nothing still ends in Failed.
func (w *walker[S, A]) atLimit(n *Node[S, A]) bool {
	if w.opts.MaxDepth == 0 || n.Depth < w.opts.MaxDepth {
		return false
	}
	if !w.pruned {
		for _, a := range w.problem.Actions(n.State) {
			if !w.reached.Has(w.problem.Result(n.State, a)) {
				w.pruned = true
				break
			}
		}
	}
	return true
}

func (w *walker[S, A]) finish(st Status, n *Node[S, A]) Outcome[S, A] {
	w.status = st
	w.queue = nil
	return Outcome[S, A]{
		Status:   st,
		Node:     n,
		Expanded: w.expanded,
		Reached:  w.reached.Len(),
	}
}
