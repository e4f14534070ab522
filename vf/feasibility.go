// File: feasibility.go
// Role: IsFeasible (spec §4.5 rules 1-5), AddPair (the commit step that
// maintains core arrays and terminal-set bookkeeping), and the
// IsGoal/IsDead termination predicates, exactly as
// original_source/include/vf_state.h defines them for plain VF.
package vf

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// IsFeasible reports whether committing p preserves rules 1-5 of spec
// §4.5: node/edge attribute compatibility, predecessor/successor edge
// preservation in both directions (the induced-ness iff check), self-
// loop parity, and the 1-look-ahead terminal-set count equalities.
func (s *State[N, E]) IsFeasible(p match.Pair) bool {
	n1, n2 := p.N1, p.N2

	// Rule 1: node attribute compatibility.
	if !s.g1.CompatibleNode(s.g1.NodeAttr(n1), s.g2.NodeAttr(n2)) {
		return false
	}

	// Rule 2: predecessor edges, both directions.
	predOK := true
	s.g1.VisitInEdges(n1, func(u, _ arg.NodeID, eattr E) bool {
		if s.core1[u] == arg.NilNode {
			return true
		}
		v2 := s.core1[u]
		other, ok := s.g2.HasEdgeAttr(v2, n2)
		if !ok || !s.g1.CompatibleEdge(eattr, other) {
			predOK = false
			return false
		}
		return true
	})
	if !predOK {
		return false
	}
	s.g2.VisitInEdges(n2, func(v, _ arg.NodeID, eattr E) bool {
		if s.core2[v] == arg.NilNode {
			return true
		}
		u1 := s.core2[v]
		other, ok := s.g1.HasEdgeAttr(u1, n1)
		if !ok || !s.g1.CompatibleEdge(other, eattr) {
			predOK = false
			return false
		}
		return true
	})
	if !predOK {
		return false
	}

	// Rule 3: successor edges, both directions.
	succOK := true
	s.g1.VisitOutEdges(n1, func(_, w arg.NodeID, eattr E) bool {
		if s.core1[w] == arg.NilNode {
			return true
		}
		x2 := s.core1[w]
		other, ok := s.g2.HasEdgeAttr(n2, x2)
		if !ok || !s.g1.CompatibleEdge(eattr, other) {
			succOK = false
			return false
		}
		return true
	})
	if !succOK {
		return false
	}
	s.g2.VisitOutEdges(n2, func(_, x arg.NodeID, eattr E) bool {
		if s.core2[x] == arg.NilNode {
			return true
		}
		w1 := s.core2[x]
		other, ok := s.g1.HasEdgeAttr(n1, w1)
		if !ok || !s.g1.CompatibleEdge(other, eattr) {
			succOK = false
			return false
		}
		return true
	})
	if !succOK {
		return false
	}

	// Rule 4: self-loop parity.
	loop1, loop2 := s.g1.HasEdge(n1, n1), s.g2.HasEdge(n2, n2)
	if loop1 != loop2 {
		return false
	}
	if loop1 && loop2 && !s.g1.CompatibleEdge(s.g1.EdgeAttr(n1, n1), s.g2.EdgeAttr(n2, n2)) {
		return false
	}

	// Rule 5: 1-look-ahead terminal-set counts.
	if s.term1in(n1) != s.term2in(n2) {
		return false
	}
	if s.term1out(n1) != s.term2out(n2) {
		return false
	}

	return true
}

func (s *State[N, E]) term1in(n1 arg.NodeID) int {
	count := 0
	s.g1.VisitInEdges(n1, func(u, _ arg.NodeID, _ E) bool {
		if s.t1in[u] {
			count++
		}
		return true
	})
	return count
}

func (s *State[N, E]) term1out(n1 arg.NodeID) int {
	count := 0
	s.g1.VisitOutEdges(n1, func(_, w arg.NodeID, _ E) bool {
		if s.t1out[w] {
			count++
		}
		return true
	})
	return count
}

func (s *State[N, E]) term2in(n2 arg.NodeID) int {
	count := 0
	s.g2.VisitInEdges(n2, func(v, _ arg.NodeID, _ E) bool {
		if s.t2in[v] {
			count++
		}
		return true
	})
	return count
}

func (s *State[N, E]) term2out(n2 arg.NodeID) int {
	count := 0
	s.g2.VisitOutEdges(n2, func(_, x arg.NodeID, _ E) bool {
		if s.t2out[x] {
			count++
		}
		return true
	})
	return count
}

// AddPair commits p, updating core1/core2, clearing n1/n2's own
// terminal-set membership, and marking their still-unmapped neighbors
// into the relevant terminal sets — the bookkeeping spec §4.5's Commit
// step describes.
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

// IsGoal reports core_len == n1 == n2, per vf_state.h: every pattern
// node is mapped and the two graphs have equal size (VF realizes
// isomorphism only).
func (s *State[N, E]) IsGoal() bool {
	return s.coreLen == s.numNodes1 && s.coreLen == s.numNodes2
}

// IsDead reports the graphs' sizes or terminal-set sizes can never
// reconcile, per vf_state.h's dead predicate.
func (s *State[N, E]) IsDead() bool {
	return s.numNodes1 != s.numNodes2 ||
		s.t1outLen != s.t2outLen ||
		s.t1inLen != s.t2inLen
}
