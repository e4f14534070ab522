// File: editor.go
// Role: Editor[N, E] — a mutable pre-ARG buffer equivalent to VFLib's
// argedit.cc (not shipped in the retrieval pack; built from
// argraph.h's description of it as "a class which can be used as a
// base for a new ARGLoader"). Unlike Memory, Editor lets a caller
// insert nodes and edges incrementally and interleaved, and supports
// removing an edge before freezing; it does not support removing a
// node, since the ARG's contiguous [0, N) id space has no tombstone
// representation — compacting ids on node removal would invalidate
// every id a caller is already holding.
package loader

import "github.com/argmatch/vfgraph/arg"

// Editor accumulates nodes and edges for later construction into an
// *arg.ARG via Freeze. It implements arg.Loader directly, so Freeze is
// just arg.New(e, opts...).
type Editor[N, E any] struct {
	nodes []N
	out   [][]memEdge[E]
}

// NewEditor returns an empty Editor.
func NewEditor[N, E any]() *Editor[N, E] {
	return &Editor[N, E]{}
}

// InsertNode appends a node carrying attr and returns its assigned id.
func (e *Editor[N, E]) InsertNode(attr N) arg.NodeID {
	id := arg.NodeID(len(e.nodes))
	e.nodes = append(e.nodes, attr)
	e.out = append(e.out, nil)
	return id
}

// InsertEdge appends the edge (from, to) carrying attr. from and to
// must already be valid ids (returned by an earlier InsertNode call).
func (e *Editor[N, E]) InsertEdge(from, to arg.NodeID, attr E) {
	e.out[from] = append(e.out[from], memEdge[E]{to: to, attr: attr})
}

// DeleteEdge removes the first edge (from, to) found, if any, reporting
// whether one was removed.
func (e *Editor[N, E]) DeleteEdge(from, to arg.NodeID) bool {
	succ := e.out[from]
	for k, edge := range succ {
		if edge.to == to {
			e.out[from] = append(succ[:k], succ[k+1:]...)
			return true
		}
	}
	return false
}

// NodeCount implements arg.Loader.
func (e *Editor[N, E]) NodeCount() int { return len(e.nodes) }

// NodeAttr implements arg.Loader.
func (e *Editor[N, E]) NodeAttr(i arg.NodeID) N { return e.nodes[i] }

// OutEdgeCount implements arg.Loader.
func (e *Editor[N, E]) OutEdgeCount(i arg.NodeID) int { return len(e.out[i]) }

// OutEdge implements arg.Loader.
func (e *Editor[N, E]) OutEdge(i arg.NodeID, k int) (arg.NodeID, E) {
	ed := e.out[i][k]
	return ed.to, ed.attr
}

// Freeze constructs the immutable ARG from the buffer's current
// contents, applying opts exactly as arg.New would.
func (e *Editor[N, E]) Freeze(opts ...arg.Option[N, E]) (*arg.ARG[N, E], error) {
	return arg.New[N, E](e, opts...)
}
