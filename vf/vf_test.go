package vf_test

import (
	"testing"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
	"github.com/argmatch/vfgraph/vf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeSpec and sliceLoader are a minimal arg.Loader[int, int] fixture,
// local to this package's tests (mirrors arg_test's own helper, kept
// separate since match-state tests should not depend on arg's internal
// test scaffolding).
type edgeSpec struct {
	to   arg.NodeID
	attr int
}

type sliceLoader struct {
	nodeAttrs []int
	out       [][]edgeSpec
}

func newSliceLoader(n int) *sliceLoader {
	return &sliceLoader{nodeAttrs: make([]int, n), out: make([][]edgeSpec, n)}
}

func (l *sliceLoader) addEdge(from, to arg.NodeID, attr int) {
	l.out[from] = append(l.out[from], edgeSpec{to: to, attr: attr})
}

func (l *sliceLoader) NodeCount() int                { return len(l.nodeAttrs) }
func (l *sliceLoader) NodeAttr(i arg.NodeID) int      { return l.nodeAttrs[i] }
func (l *sliceLoader) OutEdgeCount(i arg.NodeID) int  { return len(l.out[i]) }
func (l *sliceLoader) OutEdge(i arg.NodeID, k int) (arg.NodeID, int) {
	e := l.out[i][k]
	return e.to, e.attr
}

func triangle(t *testing.T) *arg.ARG[int, int] {
	t.Helper()
	l := newSliceLoader(3)
	l.addEdge(0, 1, 1)
	l.addEdge(1, 2, 1)
	l.addEdge(2, 0, 1)
	g, err := arg.New[int, int](l)
	require.NoError(t, err)
	return g
}

// rotatedTriangle relabels the triangle 0->1->2->0 as 0->2->1->0, an
// isomorphic copy under the permutation (0 1 2)->(0 2 1).
func rotatedTriangle(t *testing.T) *arg.ARG[int, int] {
	t.Helper()
	l := newSliceLoader(3)
	l.addEdge(0, 2, 1)
	l.addEdge(2, 1, 1)
	l.addEdge(1, 0, 1)
	g, err := arg.New[int, int](l)
	require.NoError(t, err)
	return g
}

func TestState_TriangleIsomorphism(t *testing.T) {
	g1, g2 := triangle(t), rotatedTriangle(t)
	s := vf.NewState[int, int](g1, g2)
	mappings := match.FindAll(s)
	require.NotEmpty(t, mappings)
	for _, m := range mappings {
		require.Len(t, m.C1, 3)
		seen := map[arg.NodeID]bool{}
		for _, n2 := range m.C2 {
			assert.False(t, seen[n2], "mapping must be injective")
			seen[n2] = true
		}
		// Every g1 edge must carry over to the corresponding g2 edge
		// under this mapping (g1 is a 3-cycle 0->1->2->0).
		for n1 := arg.NodeID(0); n1 < 3; n1++ {
			assert.True(t, g2.HasEdge(m.C2[n1], m.C2[(n1+1)%3]))
		}
	}
}

func TestState_NonIsomorphicSizesDead(t *testing.T) {
	g1 := triangle(t)
	l2 := newSliceLoader(4)
	l2.addEdge(0, 1, 1)
	l2.addEdge(1, 2, 1)
	l2.addEdge(2, 3, 1)
	l2.addEdge(3, 0, 1)
	g2, err := arg.New[int, int](l2)
	require.NoError(t, err)

	s := vf.NewState[int, int](g1, g2)
	mappings := match.FindAll(s)
	assert.Empty(t, mappings)
}

func TestState_SelfLoopParity(t *testing.T) {
	l1 := newSliceLoader(1)
	l1.addEdge(0, 0, 1)
	g1, err := arg.New[int, int](l1)
	require.NoError(t, err)

	l2 := newSliceLoader(1)
	g2, err := arg.New[int, int](l2)
	require.NoError(t, err)

	s := vf.NewState[int, int](g1, g2)
	_, _, ok := match.FindFirst(s)
	assert.False(t, ok, "a self-loop node cannot match a node with no self-loop")
}

func TestState_EmptyGraphsMatchTrivially(t *testing.T) {
	l1 := newSliceLoader(0)
	g1, err := arg.New[int, int](l1)
	require.NoError(t, err)
	l2 := newSliceLoader(0)
	g2, err := arg.New[int, int](l2)
	require.NoError(t, err)

	s := vf.NewState[int, int](g1, g2)
	c1, c2, ok := match.FindFirst(s)
	require.True(t, ok)
	assert.Empty(t, c1)
	assert.Empty(t, c2)
}

func TestState_CloneIsIndependent(t *testing.T) {
	g1, g2 := triangle(t), rotatedTriangle(t)
	s := vf.NewState[int, int](g1, g2)
	clone := s.Clone()

	next, ok := s.NextPair(match.NilPair)
	require.True(t, ok)
	require.True(t, s.IsFeasible(next))
	clone.AddPair(next)

	assert.Equal(t, 0, s.CoreLen())
	assert.Equal(t, 1, clone.CoreLen())
}
