package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

// TestExpand_Children checks child fields and generation order.
func TestExpand_Children(t *testing.T) {
	l := &lineProblem{n: 4}
	parent := &search.Node[int, int]{
		Parent:   search.Root[int, int](1),
		State:    2,
		Action:   +1,
		PathCost: 1,
		Depth:    1,
	}

	var kids []*search.Node[int, int]
	for c := range search.Expand[int, int](l, parent) {
		kids = append(kids, c)
	}
	require.Len(t, kids, 2)

	assert.Equal(t, 3, kids[0].State)
	assert.Equal(t, +1, kids[0].Action)
	assert.Equal(t, 1, kids[1].State)
	assert.Equal(t, -1, kids[1].Action)
	for _, c := range kids {
		assert.Same(t, parent, c.Parent)
		assert.Equal(t, 2.0, c.PathCost)
		assert.Equal(t, 2, c.Depth)
	}
}

// TestExpand_Lazy stops generating children once the consumer breaks.
func TestExpand_Lazy(t *testing.T) {
	l := &lineProblem{n: 4}
	for range search.Expand[int, int](l, search.Root[int, int](2)) {
		break
	}
	if l.results != 1 {
		t.Errorf("Result called %d times; want 1", l.results)
	}
}

// TestPath_Reconstruction walks a hand-built chain.
func TestPath_Reconstruction(t *testing.T) {
	root := search.Root[string, string]("s0")
	n1 := &search.Node[string, string]{Parent: root, State: "s1", Action: "a1", Depth: 1}
	n2 := &search.Node[string, string]{Parent: n1, State: "s2", Action: "a2", Depth: 2}

	assert.Equal(t, []string{"a1", "a2"}, search.PathActions(n2))
	assert.Equal(t, []string{"s0", "s1", "s2"}, search.PathStates(n2))

	// root: no actions, only its own state
	assert.Empty(t, search.PathActions(root))
	assert.Equal(t, []string{"s0"}, search.PathStates(root))

	// nil: nothing at all
	assert.Nil(t, search.PathActions[string, string](nil))
	assert.Nil(t, search.PathStates[string, string](nil))

	assert.Equal(t, "<Node s2>", n2.String())
	assert.False(t, n2.IsRoot())
}

// TestDefaults covers the embeddable Goal and UnitCost behaviors.
func TestDefaults(t *testing.T) {
	g := search.Goal[int]{State: 3}
	assert.True(t, g.IsGoal(3))
	assert.False(t, g.IsGoal(4))

	var u search.UnitCost[int, int]
	assert.Equal(t, 1.0, u.ActionCost(0, 1, 1))
	assert.Equal(t, 0.0, u.Heuristic(search.Root[int, int](0)))
}

// TestSet covers Add/Has/Len.
func TestSet(t *testing.T) {
	s := search.NewSet[string](2)
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("b"))
	assert.Equal(t, 1, s.Len())
}
