// File: commit.go
// Role: AddPair — the commit step, identical bookkeeping to package
// vf's (core arrays plus the four terminal-set bitsets); Relation does
// not affect how a pair is committed, only how feasibility and
// termination are judged.
package vf2

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// AddPair commits p, updating core1/core2, clearing n1/n2's own
// terminal-set membership, and marking their still-unmapped neighbors
// into the relevant terminal sets.
func (s *State[N, E]) AddPair(p match.Pair) {
	n1, n2 := p.N1, p.N2
	s.core1[n1] = n2
	s.core2[n2] = n1
	s.coreLen++

	if s.t1in[n1] {
		s.t1in[n1] = false
		s.t1inLen--
	}
	if s.t1out[n1] {
		s.t1out[n1] = false
		s.t1outLen--
	}
	if s.t2in[n2] {
		s.t2in[n2] = false
		s.t2inLen--
	}
	if s.t2out[n2] {
		s.t2out[n2] = false
		s.t2outLen--
	}

	s.g1.VisitOutEdges(n1, func(_, w arg.NodeID, _ E) bool {
		if s.core1[w] == arg.NilNode && !s.t1out[w] {
			s.t1out[w] = true
			s.t1outLen++
		}
		return true
	})
	s.g1.VisitInEdges(n1, func(u, _ arg.NodeID, _ E) bool {
		if s.core1[u] == arg.NilNode && !s.t1in[u] {
			s.t1in[u] = true
			s.t1inLen++
		}
		return true
	})
	s.g2.VisitOutEdges(n2, func(_, x arg.NodeID, _ E) bool {
		if s.core2[x] == arg.NilNode && !s.t2out[x] {
			s.t2out[x] = true
			s.t2outLen++
		}
		return true
	})
	s.g2.VisitInEdges(n2, func(v, _ arg.NodeID, _ E) bool {
		if s.core2[v] == arg.NilNode && !s.t2in[v] {
			s.t2in[v] = true
			s.t2inLen++
		}
		return true
	})
}
