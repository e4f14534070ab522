package randgraph_test

import (
	"math/rand"
	"testing"

	"github.com/argmatch/vfgraph/attr"
	"github.com/argmatch/vfgraph/attrs"
	"github.com/argmatch/vfgraph/match"
	"github.com/argmatch/vfgraph/randgraph"
	"github.com/argmatch/vfgraph/vf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsomorphic_ProducesMatchingPair(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g1, g2 := randgraph.Isomorphic(6, 2, rng)
	require.Equal(t, g1.NodeCount(), g2.NodeCount())

	labelCmp := attrs.LabelComparator()
	s := vf2.NewState[attrs.Label, attrs.Label](g1, g2, vf2.Isomorphism, labelCmp, attr.AcceptAll[attrs.Label]())
	c1, c2, ok := match.FindFirst(s)
	require.True(t, ok, "a random graph must be isomorphic to its own permuted relabeling")
	assert.Len(t, c1, 6)
	assert.Len(t, c2, 6)
}

func TestIsomorphic_EmptyForNonPositiveN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g1, g2 := randgraph.Isomorphic(0, 2, rng)
	assert.Equal(t, 0, g1.NodeCount())
	assert.Equal(t, 0, g2.NodeCount())
}

func TestMutate_PreservesNodeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g1, _ := randgraph.Isomorphic(5, 2, rng)
	mutated := randgraph.Mutate(g1, 0.3, rng)
	assert.Equal(t, g1.NodeCount(), mutated.NodeCount())
}
