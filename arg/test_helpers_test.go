package arg_test

import "github.com/argmatch/vfgraph/arg"

// edgeSpec is a (tail, head, attr) triple used to build sliceLoader
// instances in tests.
type edgeSpec[E any] struct {
	from, to NodeIDAlias
	attr     E
}

// NodeIDAlias avoids importing arg.NodeID everywhere in literal tables.
type NodeIDAlias = arg.NodeID

// sliceLoader is a minimal arg.Loader backed by plain slices, used
// only by this package's tests (the real in-memory loader lives in the
// loader package).
type sliceLoader[N, E any] struct {
	nodeAttrs []N
	out       [][]edgeSpec[E]
}

func newSliceLoader[N, E any](n int) *sliceLoader[N, E] {
	return &sliceLoader[N, E]{
		nodeAttrs: make([]N, n),
		out:       make([][]edgeSpec[E], n),
	}
}

func (l *sliceLoader[N, E]) setNode(i NodeIDAlias, a N) {
	l.nodeAttrs[i] = a
}

func (l *sliceLoader[N, E]) addEdge(from, to NodeIDAlias, a E) {
	l.out[from] = append(l.out[from], edgeSpec[E]{from: from, to: to, attr: a})
}

func (l *sliceLoader[N, E]) NodeCount() int { return len(l.nodeAttrs) }

func (l *sliceLoader[N, E]) NodeAttr(i NodeIDAlias) N { return l.nodeAttrs[i] }

func (l *sliceLoader[N, E]) OutEdgeCount(i NodeIDAlias) int { return len(l.out[i]) }

func (l *sliceLoader[N, E]) OutEdge(i NodeIDAlias, k int) (NodeIDAlias, E) {
	e := l.out[i][k]
	return e.to, e.attr
}
