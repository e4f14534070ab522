package arg_test

import (
	"errors"
	"testing"

	"github.com/argmatch/vfgraph/arg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Triangle builds a 3-cycle 0->1->2->0 and checks the basic
// query surface against spec §8 scenario 1's fixture graph.
func TestNew_Triangle(t *testing.T) {
	l := newSliceLoader[string, string](3)
	l.setNode(0, "n0")
	l.setNode(1, "n1")
	l.setNode(2, "n2")
	l.addEdge(0, 1, "e01")
	l.addEdge(1, 2, "e12")
	l.addEdge(2, 0, "e20")

	g, err := arg.New[string, string](l)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, "e01", g.EdgeAttr(0, 1))
	assert.Equal(t, 1, g.OutEdgeCount(0))
	assert.Equal(t, 1, g.InEdgeCount(0))
	assert.Equal(t, 2, g.EdgeCount(0))
}

// TestNew_SelfLoop checks that a self-loop is recorded symmetrically in
// both out- and in-adjacency (spec §3: "Self-loops are permitted").
func TestNew_SelfLoop(t *testing.T) {
	l := newSliceLoader[struct{}, struct{}](1)
	l.addEdge(0, 0, struct{}{})

	g, err := arg.New[struct{}, struct{}](l)
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 0))
	assert.Equal(t, 1, g.OutEdgeCount(0))
	assert.Equal(t, 1, g.InEdgeCount(0))
	assert.Equal(t, 2, g.EdgeCount(0))
}

// TestNew_Empty covers spec §8 scenario 5: an empty graph (N=0) builds
// successfully with no nodes and no edges.
func TestNew_Empty(t *testing.T) {
	l := newSliceLoader[int, int](0)
	g, err := arg.New[int, int](l)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

// TestNew_OutOfRangeSuccessor covers spec §7's "Loader inconsistency"
// error taxonomy: an out-of-range successor must fail construction
// without leaving a half-built ARG observable.
func TestNew_OutOfRangeSuccessor(t *testing.T) {
	l := newSliceLoader[int, int](2)
	l.addEdge(0, 5, 0)

	g, err := arg.New[int, int](l)
	require.Error(t, err)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, arg.ErrSuccessorOutOfRange)
}

// TestNew_DuplicateSuccessor rejects a repeated successor regardless
// of ordering.
func TestNew_DuplicateSuccessor(t *testing.T) {
	l := newSliceLoader[int, int](2)
	l.addEdge(0, 1, 10)
	l.addEdge(0, 1, 20)

	_, err := arg.New[int, int](l)
	require.Error(t, err)
	assert.ErrorIs(t, err, arg.ErrDuplicateSuccessor)
}

// TestNew_UnsortedSuccessorsReordered checks the default behavior
// (silent re-sort) described in spec §4.2.
func TestNew_UnsortedSuccessorsReordered(t *testing.T) {
	l := newSliceLoader[int, string](3)
	l.addEdge(0, 2, "to2")
	l.addEdge(0, 1, "to1")

	g, err := arg.New[int, string](l)
	require.NoError(t, err)
	assert.Equal(t, "to1", g.EdgeAttr(0, 1))
	assert.Equal(t, "to2", g.EdgeAttr(0, 2))

	n1, a1 := g.GetOutEdge(0, 0)
	n2, a2 := g.GetOutEdge(0, 1)
	assert.Equal(t, arg.NodeID(1), n1)
	assert.Equal(t, "to1", a1)
	assert.Equal(t, arg.NodeID(2), n2)
	assert.Equal(t, "to2", a2)
}

// TestNew_StrictOrderRejectsDisorder checks WithStrictOrder turns the
// same unsorted input into an error instead of silently fixing it.
func TestNew_StrictOrderRejectsDisorder(t *testing.T) {
	l := newSliceLoader[int, string](3)
	l.addEdge(0, 2, "to2")
	l.addEdge(0, 1, "to1")

	_, err := arg.New[int, string](l, arg.WithStrictOrder[int, string](true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, arg.ErrUnsortedSuccessors))
}

func TestNew_NilLoader(t *testing.T) {
	_, err := arg.New[int, int](nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, arg.ErrNilLoader)
}
