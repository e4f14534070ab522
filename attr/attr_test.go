package attr_test

import (
	"testing"

	"github.com/argmatch/vfgraph/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptAll(t *testing.T) {
	c := attr.AcceptAll[string]()
	assert.True(t, c.Compatible("x", "y"))
	assert.True(t, c.Compatible("x", "x"))
}

func TestNoOp(t *testing.T) {
	d := attr.NoOp[int]()
	require.NotPanics(t, func() { d.Destroy(42) })
}

func TestComparatorFunc(t *testing.T) {
	c := attr.ComparatorFunc[int](func(a, b int) bool { return a == b })
	assert.True(t, c.Compatible(1, 1))
	assert.False(t, c.Compatible(1, 2))
}

func TestDestroyerFunc(t *testing.T) {
	var destroyed []int
	d := attr.DestroyerFunc[int](func(a int) { destroyed = append(destroyed, a) })
	d.Destroy(7)
	d.Destroy(9)
	assert.Equal(t, []int{7, 9}, destroyed)
}
