// File: types.go
// Role: State — the VF realization of match.State, and its
// construction. Field layout mirrors original_source/include/vf_state.h
// (core_len, t1in_len, t1out_len, t2in_len, t2out_len, core_1, core_2).
package vf

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// State is a VF match state over a pattern graph g1 and a target graph
// g2: a partial node correspondence plus the bookkeeping (core arrays
// and four terminal-set membership flags) needed to generate candidate
// pairs and test feasibility in O(1)-ish amortized work per rule.
//
// State realizes graph isomorphism only (spec §4.5 rules 1-5, no
// 2-look-ahead) — VFLib's original VFState had no subgraph variant;
// use package vf2 for induced subgraph isomorphism or monomorphism.
type State[N, E any] struct {
	g1, g2 *arg.ARG[N, E]

	numNodes1, numNodes2 int

	core1, core2 []arg.NodeID

	// t1in/t1out/t2in/t2out[i] is set iff node i is unmapped and adjacent
	// (via an in-/out-edge respectively) to some already-mapped node —
	// the T1in/T1out/T2in/T2out terminal sets of spec §4.5.
	t1in, t1out []bool
	t2in, t2out []bool

	coreLen                               int
	t1inLen, t1outLen, t2inLen, t2outLen int
}

// NewState builds the empty VF state (no pairs committed) for matching
// g1 against g2. Node- and edge-attribute compatibility are tested via
// g1's own registered Comparators (attr.AcceptAll by default), matching
// the convention that the pattern graph's comparator governs a match.
func NewState[N, E any](g1, g2 *arg.ARG[N, E]) *State[N, E] {
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
