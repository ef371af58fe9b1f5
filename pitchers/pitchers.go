package pitchers

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statespace/search"
)

// Problem is an immutable pitcher puzzle. It implements search.Problem with
// unit action costs.
type Problem struct {
	search.UnitCost[State, Action]
	caps    State
	initial State
	target  int
}

var _ search.Problem[State, Action] = (*Problem)(nil)

// New validates cfg and builds a Problem.
// Returns ErrNoJugs, ErrTooManyJugs, ErrCapacity, ErrInitialLength,
// ErrVolume or ErrTarget, wrapped with the offending jug where relevant.
// A target no jug can hold is not an error; Solve reports it as Failed.
func New(cfg Config) (*Problem, error) {
	n := len(cfg.Capacities)
	switch {
	case n == 0:
		return nil, ErrNoJugs
	case n > MaxJugs:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyJugs, n, MaxJugs)
	}
	for i, c := range cfg.Capacities {
		if c <= 0 {
			return nil, fmt.Errorf("%w: jug %d has capacity %d", ErrCapacity, i, c)
		}
	}
	initial := NewState(make([]int, n)...)
	if len(cfg.Initial) > 0 {
		if len(cfg.Initial) != n {
			return nil, fmt.Errorf("%w: %d volumes for %d jugs", ErrInitialLength, len(cfg.Initial), n)
		}
		for i, v := range cfg.Initial {
			if v < 0 || v > cfg.Capacities[i] {
				return nil, fmt.Errorf("%w: jug %d holds %d of %d", ErrVolume, i, v, cfg.Capacities[i])
			}
		}
		initial = NewState(cfg.Initial...)
	}
	if cfg.Target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTarget, cfg.Target)
	}
	return &Problem{
		caps:    NewState(cfg.Capacities...),
		initial: initial,
		target:  cfg.Target,
	}, nil
}

// Initial returns the starting volumes.
func (p *Problem) Initial() State { return p.initial }

// Capacities returns the jug capacities as a State.
func (p *Problem) Capacities() State { return p.caps }

// Target returns the amount to measure.
func (p *Problem) Target() int { return p.target }

// IsGoal reports whether some jug holds the target amount.
func (p *Problem) IsGoal(s State) bool { return s.Contains(p.target) }

// Actions lists the applicable operations, jug by jug: Fill(i) if i is not
// full, Dump(i) if i is not empty, then Pour(i,j) for each other jug j that
// is not full while i is not empty.
func (p *Problem) Actions(s State) []Action {
	var acts []Action
	for i := 0; i < s.n; i++ {
		if s.v[i] < p.caps.v[i] {
			acts = append(acts, Fill(i))
		}
		if s.v[i] > 0 {
			acts = append(acts, Dump(i))
		}
		if s.v[i] == 0 {
			continue
		}
		for j := 0; j < s.n; j++ {
			if j != i && s.v[j] < p.caps.v[j] {
				acts = append(acts, Pour(i, j))
			}
		}
	}
	return acts
}

// Result applies a to s. It panics with search.ErrInvalidAction if a is
// not one of Actions(s).
func (p *Problem) Result(s State, a Action) State {
	next, err := p.Apply(s, a)
	if err != nil {
		panic(err)
	}
	return next
}

// Apply is the checked form of Result: it returns an error wrapping
// search.ErrInvalidAction instead of panicking.
func (p *Problem) Apply(s State, a Action) (State, error) {
	if s.n != p.caps.n || !slices.Contains(p.Actions(s), a) {
		return State{}, fmt.Errorf("%w: pitchers: %v in state %v", search.ErrInvalidAction, a, s)
	}
	switch a.Kind {
	case KindFill:
		return s.set(a.From, p.caps.v[a.From]), nil
	case KindDump:
		return s.set(a.From, 0), nil
	default:
		amount := min(s.v[a.From], p.caps.v[a.To]-s.v[a.To])
		return s.set(a.From, s.v[a.From]-amount).set(a.To, s.v[a.To]+amount), nil
	}
}

// Plan is the outcome of a pitcher search.
//   - Status: search.Succeeded when the target was measured.
//   - Actions: the operations in order, nil when not found.
//   - States: the volumes before and after every action, nil when not found.
type Plan struct {
	Status   search.Status
	Actions  []Action
	States   []State
	Expanded int
}

// Found reports whether the plan measures the target.
func (pl Plan) Found() bool { return pl.Status == search.Succeeded }

// Len returns the number of actions, or -1 when not found.
func (pl Plan) Len() int {
	if !pl.Found() {
		return -1
	}
	return len(pl.Actions)
}

// Solve returns a plan with the fewest actions.
// The error is non-nil only for invalid options.
func (p *Problem) Solve(opts ...search.Option) (Plan, error) {
	out, err := search.BFS[State, Action](p, opts...)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Status:   out.Status,
		Actions:  out.Actions(),
		States:   out.States(),
		Expanded: out.Expanded,
	}, nil
}

// Measure builds a Problem from cfg and solves it.
func Measure(cfg Config, opts ...search.Option) (Plan, error) {
	p, err := New(cfg)
	if err != nil {
		return Plan{}, err
	}
	return p.Solve(opts...)
}
