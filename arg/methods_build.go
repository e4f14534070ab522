// File: methods_build.go
// Role: New() and the three-phase construction procedure of spec §4.2:
//  1. allocate + fill node attribute slots from the loader
//  2. allocate + fill out-adjacency (successors + edge attrs) from the loader
//  3. derive in-adjacency by a single counting pass (no O(N^2) scan)
//
// Concurrency:
//   - No lock is taken: every phase writes into local slices, and New
//     either returns a fully-built *ARG or an error, never a
//     partially-built one (spec §7: loader
//     inconsistency "must not leave the ARG in a half-built observable
//     state").
package arg

import (
	"fmt"
	"sort"
)

// New builds an ARG from loader, applying opts in order. It returns a
// *ConstructionError wrapping one of ErrNilLoader, ErrNegativeNodeCount,
// ErrSuccessorOutOfRange, ErrDuplicateSuccessor, or ErrUnsortedSuccessors
// (with WithStrictOrder) on any loader inconsistency; the ARG is never
// partially observable on error.
//
// Complexity: O(N + E log d_max) where d_max is the largest out-degree
// encountered (the log factor only applies to nodes whose successors
// the loader reported out of order).
func New[N, E any](loader Loader[N, E], opts ...Option[N, E]) (a *ARG[N, E], err error) {
	if loader == nil {
		return nil, &ConstructionError{Op: "New", Node: NilNode, Err: ErrNilLoader}
	}

	defer func() {
		if r := recover(); r != nil {
			a, err = nil, &ConstructionError{Op: "New", Node: NilNode, Err: fmt.Errorf("%w: %v", ErrAllocation, r)}
		}
	}()

	cfg := defaultConfig[N, E]()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := loader.NodeCount()
	if n < 0 {
		return nil, &ConstructionError{Op: "New", Node: NilNode, Err: ErrNegativeNodeCount}
	}

	// Phase 1: node attributes.
	nodeAttr := make([]N, n)
	for i := 0; i < n; i++ {
		nodeAttr[i] = loader.NodeAttr(NodeID(i))
	}

	// Phase 2: out-adjacency, read verbatim and validated against [0,n).
	out := make([][]NodeID, n)
	outAttr := make([][]E, n)
	inDegree := make([]int, n)
	for i := 0; i < n; i++ {
		d := loader.OutEdgeCount(NodeID(i))
		if d < 0 {
			return nil, &ConstructionError{Op: "New", Node: NodeID(i), Err: ErrNegativeNodeCount}
		}
		succ := make([]NodeID, d)
		satt := make([]E, d)
		for k := 0; k < d; k++ {
			v, a := loader.OutEdge(NodeID(i), k)
			if !v.Valid(n) {
				return nil, &ConstructionError{Op: "New", Node: NodeID(i), Err: ErrSuccessorOutOfRange}
			}
			succ[k] = v
			satt[k] = a
		}

		succ, satt, err := normalizeSuccessors(succ, satt, cfg.strictOrder)
		if err != nil {
			return nil, &ConstructionError{Op: "New", Node: NodeID(i), Err: err}
		}

		out[i] = succ
		outAttr[i] = satt
		for _, v := range succ {
			inDegree[v]++
		}
	}

	// Phase 3: derive in-adjacency via a single counting pass — each
	// in[v] fills in order of increasing source id, so it comes out
	// sorted ascending for free (spec §9 Open Question: preferred over
	// the O(N^2) HasEdge-scan the original argraph.cc used).
	in := make([][]NodeID, n)
	inAttr := make([][]E, n)
	for v := 0; v < n; v++ {
		in[v] = make([]NodeID, inDegree[v])
		inAttr[v] = make([]E, inDegree[v])
	}
	cursor := make([]int, n)
	for i := 0; i < n; i++ {
		for k, v := range out[i] {
			pos := cursor[v]
			in[v][pos] = NodeID(i)
			inAttr[v][pos] = outAttr[i][k]
			cursor[v]++
		}
	}

	return &ARG[N, E]{
		n:             n,
		nodeAttr:      nodeAttr,
		out:           out,
		outAttr:       outAttr,
		in:            in,
		inAttr:        inAttr,
		nodeCmp:       cfg.nodeCmp,
		edgeCmp:       cfg.edgeCmp,
		nodeDestroyer: cfg.nodeDestroyer,
		edgeDestroyer: cfg.edgeDestroyer,
	}, nil
}

// normalizeSuccessors returns succ/satt in ascending-by-NodeID order,
// detecting duplicates unconditionally and rejecting disorder only
// when strict is true (spec §4.2: "the ARG may reorder... either is
// acceptable").
func normalizeSuccessors[E any](succ []NodeID, satt []E, strict bool) ([]NodeID, []E, error) {
	sorted := true
	for k := 1; k < len(succ); k++ {
		if succ[k] < succ[k-1] {
			sorted = false
		}
		if succ[k] == succ[k-1] {
			return nil, nil, ErrDuplicateSuccessor
		}
	}
	if sorted {
		return succ, satt, nil
	}
	if strict {
		return nil, nil, ErrUnsortedSuccessors
	}

	idx := make([]int, len(succ))
	for k := range idx {
		idx[k] = k
	}
	sort.Slice(idx, func(a, b int) bool { return succ[idx[a]] < succ[idx[b]] })

	outSucc := make([]NodeID, len(succ))
	outSatt := make([]E, len(succ))
	for pos, k := range idx {
		outSucc[pos] = succ[k]
		outSatt[pos] = satt[k]
	}
	// Re-check for duplicates that were not adjacent before sorting.
	for k := 1; k < len(outSucc); k++ {
		if outSucc[k] == outSucc[k-1] {
			return nil, nil, ErrDuplicateSuccessor
		}
	}

	return outSucc, outSatt, nil
}

// ConstructionError wraps a loader-inconsistency or resource-exhaustion
// failure encountered by New, identifying the operation and (when
// known) the offending node.
type ConstructionError struct {
	Op   string
	Node NodeID
	Err  error
}

func (e *ConstructionError) Error() string {
	if e.Node >= 0 {
		return fmt.Sprintf("arg: %s: node %d: %v", e.Op, e.Node, e.Err)
	}
	return fmt.Sprintf("arg: %s: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
