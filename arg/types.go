// File: types.go
// Role: Node identifier type, sentinel errors, the Loader protocol, and
//       the ARG type declaration itself.
//
// Errors:
//
//	ErrNilLoader            - New was called with a nil Loader.
//	ErrNegativeNodeCount    - Loader.NodeCount() or Loader.OutEdgeCount() returned a negative value.
//	ErrNodeOutOfRange       - a node id outside [0,N) was passed to a query method.
//	ErrSuccessorOutOfRange  - Loader.OutEdge returned a neighbor id outside [0,N).
//	ErrDuplicateSuccessor   - Loader.OutEdge listed the same neighbor twice for one node.
//	ErrUnsortedSuccessors   - successors were not ascending and WithStrictOrder is set.
//	ErrEdgeNotFound         - SetEdgeAttr addressed a (u,v) pair with no edge.
//	ErrAllocation           - an allocation failed during construction.
package arg

import (
	"errors"

	"github.com/argmatch/vfgraph/attr"
)

// NodeID identifies a node within a single ARG. Valid ids lie in
// [0, N). NilNode is a distinguished value outside that range used to
// mark "no node" — an unmapped slot, or the start-of-iteration cursor.
type NodeID int

// NilNode is the sentinel "no node" value. Any negative NodeID is
// treated as absent; -1 is the canonical spelling.
const NilNode NodeID = -1

// Valid reports whether id lies in [0, n).
func (id NodeID) Valid(n int) bool { return id >= 0 && int(id) < n }

// Sentinel errors. See the file banner for a one-line summary of each.
var (
	ErrNilLoader           = errors.New("arg: loader is nil")
	ErrNegativeNodeCount   = errors.New("arg: loader reported a negative node count")
	ErrNodeOutOfRange      = errors.New("arg: node id out of range")
	ErrSuccessorOutOfRange = errors.New("arg: successor id out of range")
	ErrDuplicateSuccessor  = errors.New("arg: duplicate successor")
	ErrUnsortedSuccessors  = errors.New("arg: successors not sorted ascending")
	ErrEdgeNotFound        = errors.New("arg: edge not found")
	ErrAllocation          = errors.New("arg: allocation failed")
)

// Loader is the pull-based construction source for an ARG (spec §4.1,
// §6). A Loader need not enumerate in-edges; the ARG derives them from
// the out-edges every node reports.
//
// Implementations are consulted exactly once, in NodeCount/NodeAttr/
// OutEdgeCount/OutEdge order, during a single call to New; they need
// not be safe for concurrent or repeated use.
type Loader[N, E any] interface {
	// NodeCount returns the number of nodes in the graph to build.
	NodeCount() int

	// NodeAttr returns the attribute handle for node i.
	NodeAttr(i NodeID) N

	// OutEdgeCount returns the out-degree of node i.
	OutEdgeCount(i NodeID) int

	// OutEdge returns the k-th outgoing neighbor of node i (0 <= k <
	// OutEdgeCount(i)) together with the attribute of that edge.
	OutEdge(i NodeID, k int) (NodeID, E)
}

// ARG is an immutable directed graph whose nodes and edges carry
// opaque attribute handles of type N and E respectively. See the
// package doc comment for the storage layout and concurrency model.
type ARG[N, E any] struct {
	n int

	nodeAttr []N

	out     [][]NodeID
	outAttr [][]E

	in     [][]NodeID
	inAttr [][]E

	nodeCmp attr.Comparator[N]
	edgeCmp attr.Comparator[E]

	nodeDestroyer attr.Destroyer[N]
	edgeDestroyer attr.Destroyer[E]

	closed int32 // guards Close() via atomic.CompareAndSwapInt32
}
