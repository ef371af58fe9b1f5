// Package pitchers solves the water-pitcher measuring puzzle: given jugs of
// fixed capacities and their starting volumes, find the fewest Fill, Dump
// and Pour actions that leave the target volume in some jug.
//
// States are fixed-size values so they can key the search's reached set
// directly; at most MaxJugs jugs are supported.
package pitchers

import (
	"errors"
	"fmt"
	"strings"
)

// MaxJugs is the largest number of jugs a State can hold.
const MaxJugs = 8

// Sentinel errors for problem construction.
var (
	// ErrNoJugs indicates an empty capacity list.
	ErrNoJugs = errors.New("pitchers: no jugs")
	// ErrTooManyJugs indicates more than MaxJugs capacities.
	ErrTooManyJugs = errors.New("pitchers: too many jugs")
	// ErrCapacity indicates a capacity that is not positive.
	ErrCapacity = errors.New("pitchers: capacity must be positive")
	// ErrInitialLength indicates initial volumes that do not match the jugs.
	ErrInitialLength = errors.New("pitchers: initial volumes do not match jug count")
	// ErrVolume indicates an initial volume outside [0, capacity].
	ErrVolume = errors.New("pitchers: volume out of range")
	// ErrTarget indicates a negative target amount.
	ErrTarget = errors.New("pitchers: target must not be negative")
)

// State holds the current volume of each jug.
// It is comparable; two states are equal when they hold the same volumes
// in the same number of jugs.
type State struct {
	n int
	v [MaxJugs]int
}

// NewState returns a State with the given volumes.
// It panics if more than MaxJugs volumes are given.
func NewState(volumes ...int) State {
	if len(volumes) > MaxJugs {
		panic(fmt.Sprintf("pitchers: %d jugs exceeds MaxJugs (%d)", len(volumes), MaxJugs))
	}
	s := State{n: len(volumes)}
	copy(s.v[:], volumes)
	return s
}

// Len returns the number of jugs.
func (s State) Len() int { return s.n }

// At returns the volume of jug i.
func (s State) At(i int) int { return s.v[i] }

// Volumes returns a copy of the jug volumes.
func (s State) Volumes() []int {
	out := make([]int, s.n)
	copy(out, s.v[:s.n])
	return out
}

// Contains reports whether some jug holds exactly x.
func (s State) Contains(x int) bool {
	for i := 0; i < s.n; i++ {
		if s.v[i] == x {
			return true
		}
	}
	return false
}

// set returns a copy of s with jug i holding vol.
func (s State) set(i, vol int) State {
	s.v[i] = vol
	return s
}

// String formats s as a tuple, e.g. "(0, 6, 0)".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < s.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", s.v[i])
	}
	b.WriteByte(')')
	return b.String()
}

// Kind enumerates the three jug operations.
type Kind int

const (
	KindFill Kind = iota // fill a jug to capacity
	KindDump             // empty a jug
	KindPour             // pour one jug into another
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case KindFill:
		return "Fill"
	case KindDump:
		return "Dump"
	case KindPour:
		return "Pour"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is one jug operation. To is used only by KindPour.
type Action struct {
	Kind Kind
	From int
	To   int
}

// Fill returns the action filling jug i.
func Fill(i int) Action { return Action{Kind: KindFill, From: i} }

// Dump returns the action emptying jug i.
func Dump(i int) Action { return Action{Kind: KindDump, From: i} }

// Pour returns the action pouring jug i into jug j.
func Pour(i, j int) Action { return Action{Kind: KindPour, From: i, To: j} }

// String formats a as "Fill(1)", "Dump(0)" or "Pour(1,2)".
func (a Action) String() string {
	if a.Kind == KindPour {
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.From, a.To)
	}
	return fmt.Sprintf("%s(%d)", a.Kind, a.From)
}

// Config describes a puzzle. An empty Initial means every jug starts empty.
type Config struct {
	Capacities []int `yaml:"capacities" validate:"required,max=8,dive,gt=0"`
	Initial    []int `yaml:"initial,omitempty" validate:"omitempty,dive,gte=0"`
	Target     int   `yaml:"target" validate:"gte=0"`
}
