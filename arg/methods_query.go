// File: methods_query.go
// Role: The read-only query surface of spec §4.3: counts, attribute
// access, edge membership/lookup by binary search, and edge
// visitation.
//
// Determinism:
//   - out[i]/in[i] are sorted ascending by construction (arg.New),
//     so HasEdge/EdgeAttr/GetOutEdge/GetInEdge are all binary-search
//     or direct-index operations — no scanning.
package arg

import "sort"

// NodeCount returns N, the number of nodes in the ARG.
//
// Complexity: O(1).
func (a *ARG[N, E]) NodeCount() int { return a.n }

// NodeAttr returns the attribute handle stored for node i.
//
// Complexity: O(1).
func (a *ARG[N, E]) NodeAttr(i NodeID) N {
	a.mustValid(i)
	return a.nodeAttr[i]
}

// SetNodeAttr replaces the attribute handle stored for node i. If
// destroyOld is true, the previous handle is passed to the registered
// node Destroyer (a no-op destroyer by default) before being
// overwritten.
//
// Complexity: O(1).
func (a *ARG[N, E]) SetNodeAttr(i NodeID, attr N, destroyOld bool) {
	a.mustValid(i)
	if destroyOld {
		a.nodeDestroyer.Destroy(a.nodeAttr[i])
	}
	a.nodeAttr[i] = attr
}

// HasEdge reports whether the directed edge (u, v) exists.
//
// Complexity: O(log deg+(u)).
func (a *ARG[N, E]) HasEdge(u, v NodeID) bool {
	_, ok := a.findOut(u, v)
	return ok
}

// HasEdgeAttr reports whether (u, v) exists and, if so, also returns
// its edge attribute.
//
// Complexity: O(log deg+(u)).
func (a *ARG[N, E]) HasEdgeAttr(u, v NodeID) (E, bool) {
	k, ok := a.findOut(u, v)
	if !ok {
		var zero E
		return zero, false
	}
	return a.outAttr[u][k], true
}

// EdgeAttr returns the attribute of edge (u, v), or the zero value of E
// if no such edge exists.
//
// Complexity: O(log deg+(u)).
func (a *ARG[N, E]) EdgeAttr(u, v NodeID) E {
	attr, _ := a.HasEdgeAttr(u, v)
	return attr
}

// SetEdgeAttr replaces the attribute of edge (u, v) in both the
// out-adjacency of u and the in-adjacency of v. If destroyOld is true,
// the previous attribute is destroyed exactly once, via the edge
// Destroyer (never the node destroyer — see spec §9's Open Question
// about the original routing bug, which this implementation does not
// reproduce). Returns ErrEdgeNotFound if (u, v) does not exist.
//
// Complexity: O(log deg+(u) + log deg-(v)).
func (a *ARG[N, E]) SetEdgeAttr(u, v NodeID, attr E, destroyOld bool) error {
	ku, ok := a.findOut(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	kv, ok := a.findIn(v, u)
	if !ok {
		return ErrEdgeNotFound
	}
	if destroyOld {
		a.edgeDestroyer.Destroy(a.outAttr[u][ku])
	}
	a.outAttr[u][ku] = attr
	a.inAttr[v][kv] = attr
	return nil
}

// OutEdgeCount returns the out-degree of node i.
//
// Complexity: O(1).
func (a *ARG[N, E]) OutEdgeCount(i NodeID) int {
	a.mustValid(i)
	return len(a.out[i])
}

// InEdgeCount returns the in-degree of node i.
//
// Complexity: O(1).
func (a *ARG[N, E]) InEdgeCount(i NodeID) int {
	a.mustValid(i)
	return len(a.in[i])
}

// EdgeCount returns the total degree (in + out) of node i. A self-loop
// contributes to both counts.
//
// Complexity: O(1).
func (a *ARG[N, E]) EdgeCount(i NodeID) int {
	return a.OutEdgeCount(i) + a.InEdgeCount(i)
}

// GetOutEdge returns the k-th successor of node i (0 <= k <
// OutEdgeCount(i)) together with the attribute of that edge.
//
// Complexity: O(1).
func (a *ARG[N, E]) GetOutEdge(i NodeID, k int) (NodeID, E) {
	a.mustValid(i)
	return a.out[i][k], a.outAttr[i][k]
}

// GetInEdge returns the k-th predecessor of node i (0 <= k <
// InEdgeCount(i)) together with the attribute of that edge.
//
// Complexity: O(1).
func (a *ARG[N, E]) GetInEdge(i NodeID, k int) (NodeID, E) {
	a.mustValid(i)
	return a.in[i][k], a.inAttr[i][k]
}

// VisitOutEdges calls visit(i, v, attr) for every outgoing edge of node
// i in ascending order of v, stopping early if visit returns false.
//
// Complexity: O(deg+(i)).
func (a *ARG[N, E]) VisitOutEdges(i NodeID, visit func(tail, head NodeID, attr E) bool) {
	a.mustValid(i)
	for k, v := range a.out[i] {
		if !visit(i, v, a.outAttr[i][k]) {
			return
		}
	}
}

// VisitInEdges calls visit(u, i, attr) for every incoming edge of node
// i in ascending order of u, stopping early if visit returns false.
//
// Complexity: O(deg-(i)).
func (a *ARG[N, E]) VisitInEdges(i NodeID, visit func(tail, head NodeID, attr E) bool) {
	a.mustValid(i)
	for k, u := range a.in[i] {
		if !visit(u, i, a.inAttr[i][k]) {
			return
		}
	}
}

// VisitEdges calls visit for every edge touching node i: first its
// in-edges, then its out-edges (a self-loop is visited twice, once
// from each side, matching EdgeCount's accounting).
//
// Complexity: O(deg(i)).
func (a *ARG[N, E]) VisitEdges(i NodeID, visit func(tail, head NodeID, attr E) bool) {
	a.VisitInEdges(i, visit)
	a.VisitOutEdges(i, visit)
}

// CompatibleNode reports whether two node attributes are compatible
// under the registered node Comparator (AcceptAll by default).
func (a *ARG[N, E]) CompatibleNode(x, y N) bool { return a.nodeCmp.Compatible(x, y) }

// CompatibleEdge reports whether two edge attributes are compatible
// under the registered edge Comparator (AcceptAll by default).
func (a *ARG[N, E]) CompatibleEdge(x, y E) bool { return a.edgeCmp.Compatible(x, y) }

// findOut returns the index of v within out[u] via binary search,
// since out[u] is sorted ascending by construction.
func (a *ARG[N, E]) findOut(u, v NodeID) (int, bool) {
	a.mustValid(u)
	succ := a.out[u]
	k := sort.Search(len(succ), func(k int) bool { return succ[k] >= v })
	if k < len(succ) && succ[k] == v {
		return k, true
	}
	return 0, false
}

// findIn returns the index of u within in[v] via binary search.
func (a *ARG[N, E]) findIn(v, u NodeID) (int, bool) {
	a.mustValid(v)
	pred := a.in[v]
	k := sort.Search(len(pred), func(k int) bool { return pred[k] >= u })
	if k < len(pred) && pred[k] == u {
		return k, true
	}
	return 0, false
}

// mustValid panics with ErrNodeOutOfRange if i is not a valid node id.
// This is a precondition violation per spec §7 ("bad node id... fail
// fast. These are programmer errors, not recoverable.").
func (a *ARG[N, E]) mustValid(i NodeID) {
	if !i.Valid(a.n) {
		panic(ErrNodeOutOfRange)
	}
}
