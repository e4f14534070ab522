package arg_test

import (
	"testing"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLabeled(t *testing.T) *arg.ARG[string, int] {
	t.Helper()
	l := newSliceLoader[string, int](4)
	l.setNode(0, "a")
	l.setNode(1, "b")
	l.setNode(2, "c")
	l.setNode(3, "d")
	l.addEdge(0, 1, 1)
	l.addEdge(1, 2, 2)
	l.addEdge(2, 3, 3)
	g, err := arg.New[string, int](l)
	require.NoError(t, err)
	return g
}

func TestSetNodeAttr(t *testing.T) {
	g := buildLabeled(t)
	g.SetNodeAttr(0, "z", false)
	assert.Equal(t, "z", g.NodeAttr(0))
}

func TestSetNodeAttr_DestroysOld(t *testing.T) {
	var destroyed []string
	l := newSliceLoader[string, int](1)
	l.setNode(0, "old")
	g, err := arg.New[string, int](l, arg.WithNodeDestroyer[string, int](
		attr.DestroyerFunc[string](func(a string) { destroyed = append(destroyed, a) }),
	))
	require.NoError(t, err)

	g.SetNodeAttr(0, "new", true)
	assert.Equal(t, []string{"old"}, destroyed)
	assert.Equal(t, "new", g.NodeAttr(0))
}

func TestSetEdgeAttr(t *testing.T) {
	g := buildLabeled(t)
	require.NoError(t, g.SetEdgeAttr(0, 1, 99, false))
	assert.Equal(t, 99, g.EdgeAttr(0, 1))

	// The in-adjacency side must see the same replacement.
	u, a := g.GetInEdge(1, 0)
	assert.Equal(t, arg.NodeID(0), u)
	assert.Equal(t, 99, a)
}

func TestSetEdgeAttr_MissingEdge(t *testing.T) {
	g := buildLabeled(t)
	err := g.SetEdgeAttr(0, 3, 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, arg.ErrEdgeNotFound)
}

func TestSetEdgeAttr_DestroysOldViaEdgeDestroyerOnly(t *testing.T) {
	var nodeDestroyed, edgeDestroyed []int

	l := newSliceLoader[int, int](2)
	l.addEdge(0, 1, 7)
	g, err := arg.New[int, int](l,
		arg.WithNodeDestroyer[int, int](attr.DestroyerFunc[int](func(a int) { nodeDestroyed = append(nodeDestroyed, a) })),
		arg.WithEdgeDestroyer[int, int](attr.DestroyerFunc[int](func(a int) { edgeDestroyed = append(edgeDestroyed, a) })),
	)
	require.NoError(t, err)

	require.NoError(t, g.SetEdgeAttr(0, 1, 70, true))
	assert.Equal(t, []int{7}, edgeDestroyed)
	assert.Empty(t, nodeDestroyed, "edge destroyer must never route to the node destroyer (spec §9 open question)")
}

func TestVisitOutEdges_StopsEarly(t *testing.T) {
	g := buildLabeled(t)
	l2 := newSliceLoader[string, int](3)
	l2.addEdge(0, 1, 1)
	l2.addEdge(0, 2, 2)
	multi, err := arg.New[string, int](l2)
	require.NoError(t, err)

	var visited []arg.NodeID
	multi.VisitOutEdges(0, func(_, head arg.NodeID, _ int) bool {
		visited = append(visited, head)
		return false
	})
	assert.Equal(t, []arg.NodeID{1}, visited)
	_ = g
}

func TestVisitEdges_SelfLoopVisitedTwice(t *testing.T) {
	l := newSliceLoader[int, int](1)
	l.addEdge(0, 0, 5)
	g, err := arg.New[int, int](l)
	require.NoError(t, err)

	count := 0
	g.VisitEdges(0, func(_, _ arg.NodeID, _ int) bool {
		count++
		return true
	})
	assert.Equal(t, 2, count)
}

func TestCompatibleNode_DefaultAcceptsAll(t *testing.T) {
	g := buildLabeled(t)
	assert.True(t, g.CompatibleNode("a", "nonsense"))
}

func TestCompatibleNode_CustomComparator(t *testing.T) {
	l := newSliceLoader[string, int](2)
	l.setNode(0, "x")
	l.setNode(1, "y")
	g, err := arg.New[string, int](l, arg.WithNodeComparator[string, int](
		attr.ComparatorFunc[string](func(a, b string) bool { return a == b }),
	))
	require.NoError(t, err)
	assert.True(t, g.CompatibleNode("x", "x"))
	assert.False(t, g.CompatibleNode("x", "y"))
}

func TestClose_DestroysEveryAttributeOnce(t *testing.T) {
	var nodeCount, edgeCount int
	l := newSliceLoader[int, int](2)
	l.addEdge(0, 1, 1)
	g, err := arg.New[int, int](l,
		arg.WithNodeDestroyer[int, int](attr.DestroyerFunc[int](func(int) { nodeCount++ })),
		arg.WithEdgeDestroyer[int, int](attr.DestroyerFunc[int](func(int) { edgeCount++ })),
	)
	require.NoError(t, err)

	g.Close()
	g.Close() // second call must be a no-op

	assert.Equal(t, 2, nodeCount)
	assert.Equal(t, 1, edgeCount)
}

func TestMustValid_PanicsOnOutOfRange(t *testing.T) {
	g := buildLabeled(t)
	assert.Panics(t, func() { g.NodeAttr(99) })
}
