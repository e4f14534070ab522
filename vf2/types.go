// File: types.go
// Role: Relation, State — the VF2 realization of match.State, and its
// construction. Extends vf.State's field layout with the Relation and
// the node/edge comparators passed to NewState; the remaining
// differences from package vf are in feasibility.go (rule 6, and
// Monomorphism's one-direction edge check) and terminate.go
// (relation-dependent goal/dead predicates).
package vf2

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attr"
	"github.com/argmatch/vfgraph/match"
)

// Relation selects which correspondence VF2 searches for. It is the
// closed tagged variant Design Note §9 calls for, replacing VFLib's
// VFState/VFState2 subgraph-flag inheritance.
type Relation int

const (
	// Isomorphism requires a bijection between all of g1 and all of g2
	// preserving edges in both directions (g1 and g2 must be the same
	// size).
	Isomorphism Relation = iota
	// InducedSubgraphIsomorphism requires an injection from all of g1
	// into g2 such that g1's edge relation is exactly g2's edge relation
	// restricted to the image (the induced-ness iff check).
	InducedSubgraphIsomorphism
	// Monomorphism requires only that every g1 edge has a corresponding
	// g2 edge under the injection (spec's GLOSSARY: "injection, not
	// necessarily induced") — g2 may have extra edges among the image
	// nodes that g1 does not.
	Monomorphism
)

// State is a VF2 match state searching for a Relation-shaped
// correspondence between pattern graph g1 and target graph g2.
type State[N, E any] struct {
	g1, g2 *arg.ARG[N, E]
	rel    Relation

	nodeCmp attr.Comparator[N]
	edgeCmp attr.Comparator[E]

	numNodes1, numNodes2 int

	core1, core2 []arg.NodeID

	t1in, t1out []bool
	t2in, t2out []bool

	coreLen                              int
	t1inLen, t1outLen, t2inLen, t2outLen int
}

// NewState builds the empty VF2 state for matching pattern g1 against
// target g2 under rel. g1 is always the pattern: for the subgraph and
// monomorphism relations, this call looks for a copy of g1 inside g2,
// never the reverse (spec §9 Open Question 3, resolved as a
// caller-facing convention — swap arguments to search the other way).
//
// Node and edge attribute compatibility are tested via nodeCmp/edgeCmp
// rather than either ARG's own registered Comparators, since a match
// needs one single notion of compatibility spanning both graphs.
func NewState[N, E any](g1, g2 *arg.ARG[N, E], rel Relation, nodeCmp attr.Comparator[N], edgeCmp attr.Comparator[E]) *State[N, E] {
	n1, n2 := g1.NodeCount(), g2.NodeCount()
	core1 := make([]arg.NodeID, n1)
	core2 := make([]arg.NodeID, n2)
	for i := range core1 {
		core1[i] = arg.NilNode
	}
	for i := range core2 {
		core2[i] = arg.NilNode
	}
	return &State[N, E]{
		g1:        g1,
		g2:        g2,
		rel:       rel,
		nodeCmp:   nodeCmp,
		edgeCmp:   edgeCmp,
		numNodes1: n1,
		numNodes2: n2,
		core1:     core1,
		core2:     core2,
		t1in:      make([]bool, n1),
		t1out:     make([]bool, n1),
		t2in:      make([]bool, n2),
		t2out:     make([]bool, n2),
	}
}

// CoreLen returns the number of pairs currently mapped.
func (s *State[N, E]) CoreLen() int { return s.coreLen }

// CoreSet extracts the current partial mapping: c1[i] and c2[i]
// together are one committed pair, indexed over every currently-mapped
// g1 node in ascending node-id order.
func (s *State[N, E]) CoreSet() (c1, c2 []arg.NodeID) {
	c1 = make([]arg.NodeID, 0, s.coreLen)
	c2 = make([]arg.NodeID, 0, s.coreLen)
	for i := 0; i < s.numNodes1; i++ {
		if s.core1[i] != arg.NilNode {
			c1 = append(c1, arg.NodeID(i))
			c2 = append(c2, s.core1[i])
		}
	}
	return c1, c2
}

// Clone returns an independent copy of s: every slice is duplicated, so
// mutating the clone (via AddPair) never affects s.
func (s *State[N, E]) Clone() match.State {
	cp := &State[N, E]{
		g1:        s.g1,
		g2:        s.g2,
		rel:       s.rel,
		nodeCmp:   s.nodeCmp,
		edgeCmp:   s.edgeCmp,
		numNodes1: s.numNodes1,
		numNodes2: s.numNodes2,
		coreLen:   s.coreLen,
		t1inLen:   s.t1inLen,
		t1outLen:  s.t1outLen,
		t2inLen:   s.t2inLen,
		t2outLen:  s.t2outLen,
	}
	cp.core1 = append([]arg.NodeID(nil), s.core1...)
	cp.core2 = append([]arg.NodeID(nil), s.core2...)
	cp.t1in = append([]bool(nil), s.t1in...)
	cp.t1out = append([]bool(nil), s.t1out...)
	cp.t2in = append([]bool(nil), s.t2in...)
	cp.t2out = append([]bool(nil), s.t2out...)
	return cp
}
