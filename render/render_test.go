package render_test

import (
	"strings"
	"testing"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edgeSpec struct {
	to   arg.NodeID
	attr string
}

type sliceLoader struct {
	nodeAttrs []string
	out       [][]edgeSpec
}

func (l *sliceLoader) NodeCount() int           { return len(l.nodeAttrs) }
func (l *sliceLoader) NodeAttr(i arg.NodeID) string { return l.nodeAttrs[i] }
func (l *sliceLoader) OutEdgeCount(i arg.NodeID) int { return len(l.out[i]) }
func (l *sliceLoader) OutEdge(i arg.NodeID, k int) (arg.NodeID, string) {
	e := l.out[i][k]
	return e.to, e.attr
}

func TestDOT_EmitsNodesAndEdges(t *testing.T) {
	l := &sliceLoader{
		nodeAttrs: []string{"a", "b"},
		out:       [][]edgeSpec{{{to: 1, attr: "ab"}}, nil},
	}
	g, err := arg.New[string, string](l)
	require.NoError(t, err)

	dot := render.DOT(g, func(s string) string { return s }, func(s string) string { return s })
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `0 [label="a"]`)
	assert.Contains(t, dot, `1 [label="b"]`)
	assert.Contains(t, dot, `0 -> 1 [label="ab"]`)
}

func TestHighlight_MarksCoreNodes(t *testing.T) {
	l := &sliceLoader{
		nodeAttrs: []string{"a", "b", "c"},
		out:       [][]edgeSpec{{{to: 1, attr: "ab"}}, {{to: 2, attr: "bc"}}, nil},
	}
	g, err := arg.New[string, string](l)
	require.NoError(t, err)

	dot := render.Highlight(g, []arg.NodeID{0, 1}, nil, nil)
	assert.Contains(t, dot, "fillcolor=lightblue")
	assert.Contains(t, dot, "0 -> 1")
}
