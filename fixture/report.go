package fixture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/islands"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/pitchers"
	"github.com/katalvlaran/statespace/search"
)

// Report is the kind-independent result of running one entry.
//   - Count: number of islands (islands only).
//   - Steps: route or plan length, -1 when not found or not applicable.
//   - Actions: formatted pitcher actions, in order.
//   - States: formatted states along the solution, start first.
//   - Drawing: the maze with the route marked by '*'.
type Report struct {
	Name     string
	Kind     Kind
	Status   search.Status
	Count    int
	Steps    int
	Actions  []string
	States   []string
	Expanded int
	Drawing  string
}

// Summary returns a one-line human-readable result.
func (r Report) Summary() string {
	switch {
	case r.Kind == KindIslands:
		return fmt.Sprintf("%s: %d islands", r.Name, r.Count)
	case r.Status == search.Succeeded:
		return fmt.Sprintf("%s: %s in %d steps", r.Name, r.Status, r.Steps)
	default:
		return fmt.Sprintf("%s: %s", r.Name, r.Status)
	}
}

// Run solves the entry. opts are passed to the underlying search.
// The error is non-nil only for an entry that fails to build or for
// invalid options.
func (e Entry) Run(opts ...search.Option) (Report, error) {
	rep := Report{Name: e.Name, Kind: e.Kind, Steps: -1}
	switch e.Kind {
	case KindIslands:
		if e.Islands == nil {
			return rep, fmt.Errorf("%w: problem %q: missing islands section", ErrInvalidDocument, e.Name)
		}
		m, err := islands.New(*e.Islands)
		if err != nil {
			return rep, err
		}
		comps, err := m.Components(opts...)
		if err != nil {
			return rep, err
		}
		rep.Status = search.Succeeded
		rep.Count = len(comps)
		for _, c := range comps {
			rep.Expanded += len(c)
		}

	case KindMaze:
		if e.Maze == nil {
			return rep, fmt.Errorf("%w: problem %q: missing maze section", ErrInvalidDocument, e.Name)
		}
		p, err := maze.New(*e.Maze)
		if err != nil {
			return rep, err
		}
		route, err := p.Solve(opts...)
		if err != nil {
			return rep, err
		}
		rep.Status = route.Status
		rep.Steps = route.Steps
		rep.Expanded = route.Expanded
		rep.States = formatAll(route.Cells)
		rep.Drawing = p.Grid().Render(route.Cells, '*')

	case KindPitchers:
		if e.Pitchers == nil {
			return rep, fmt.Errorf("%w: problem %q: missing pitchers section", ErrInvalidDocument, e.Name)
		}
		p, err := pitchers.New(*e.Pitchers)
		if err != nil {
			return rep, err
		}
		plan, err := p.Solve(opts...)
		if err != nil {
			return rep, err
		}
		rep.Status = plan.Status
		rep.Steps = plan.Len()
		rep.Expanded = plan.Expanded
		rep.Actions = formatAll(plan.Actions)
		rep.States = formatAll(plan.States)

	default:
		return rep, fmt.Errorf("%w: problem %q: kind %q", ErrInvalidDocument, e.Name, e.Kind)
	}
	return rep, nil
}

// formatAll renders each element with its String method.
func formatAll[T fmt.Stringer](xs []T) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

// Table renders reports as aligned lines, one per report.
func Table(reports []Report) string {
	width := 0
	for _, r := range reports {
		width = max(width, len(r.Name))
	}
	var b strings.Builder
	for _, r := range reports {
		detail := ""
		switch {
		case r.Kind == KindIslands:
			detail = fmt.Sprintf("count=%d", r.Count)
		case r.Status == search.Succeeded:
			detail = fmt.Sprintf("steps=%d", r.Steps)
		}
		fmt.Fprintf(&b, "%-*s  %-8s  %-9s  %-10s expanded=%d\n",
			width, r.Name, r.Kind, r.Status, detail, r.Expanded)
	}
	return b.String()
}
