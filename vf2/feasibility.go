// File: feasibility.go
// Role: IsFeasible — the full spec §4.5 rule set (1-6), with the
// Relation-dependent variance spec §8's relation note calls out:
// rules 5/6 switch between == (Isomorphism) and >= (the subgraph
// relations, g2-side >= g1-side since g1 is the pattern), and
// Monomorphism additionally skips the induced-ness direction of rules
// 2/3 (spec's GLOSSARY: "injection, not necessarily induced").
package vf2

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// IsFeasible reports whether committing p preserves every rule the
// configured Relation requires.
func (s *State[N, E]) IsFeasible(p match.Pair) bool {
	n1, n2 := p.N1, p.N2

	// Rule 1: node attribute compatibility.
	if !s.nodeCmp.Compatible(s.g1.NodeAttr(n1), s.g2.NodeAttr(n2)) {
		return false
	}

	induced := s.rel != Monomorphism

	// Rule 2: predecessor edges.
	if !s.predecessorsOK(n1, n2, induced) {
		return false
	}
	// Rule 3: successor edges.
	if !s.successorsOK(n1, n2, induced) {
		return false
	}

	// Rule 4: self-loop parity.
	loop1, loop2 := s.g1.HasEdge(n1, n1), s.g2.HasEdge(n2, n2)
	if loop1 != loop2 {
		return false
	}
	if loop1 && loop2 && !s.edgeCmp.Compatible(s.g1.EdgeAttr(n1, n1), s.g2.EdgeAttr(n2, n2)) {
		return false
	}

	// Rule 5: 1-look-ahead terminal-set counts.
	if !s.satisfies(s.term1in(n1), s.term2in(n2)) {
		return false
	}
	if !s.satisfies(s.term1out(n1), s.term2out(n2)) {
		return false
	}

	// Rule 6: 2-look-ahead new-node counts.
	if !s.satisfies(s.new1(n1), s.new2(n2)) {
		return false
	}

	return true
}

// satisfies applies the Relation-dependent comparison of spec §4.5
// rules 5/6: equality for Isomorphism, g2-side >= g1-side otherwise.
func (s *State[N, E]) satisfies(g1Count, g2Count int) bool {
	if s.rel == Isomorphism {
		return g1Count == g2Count
	}
	return g2Count >= g1Count
}

func (s *State[N, E]) predecessorsOK(n1, n2 arg.NodeID, induced bool) bool {
	ok := true
	s.g1.VisitInEdges(n1, func(u, _ arg.NodeID, eattr E) bool {
		if s.core1[u] == arg.NilNode {
			return true
		}
		other, has := s.g2.HasEdgeAttr(s.core1[u], n2)
		if !has || !s.edgeCmp.Compatible(eattr, other) {
			ok = false
			return false
		}
		return true
	})
	if !ok || !induced {
		return ok
	}
	s.g2.VisitInEdges(n2, func(v, _ arg.NodeID, eattr E) bool {
		if s.core2[v] == arg.NilNode {
			return true
		}
		other, has := s.g1.HasEdgeAttr(s.core2[v], n1)
		if !has || !s.edgeCmp.Compatible(other, eattr) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func (s *State[N, E]) successorsOK(n1, n2 arg.NodeID, induced bool) bool {
	ok := true
	s.g1.VisitOutEdges(n1, func(_, w arg.NodeID, eattr E) bool {
		if s.core1[w] == arg.NilNode {
			return true
		}
		other, has := s.g2.HasEdgeAttr(n2, s.core1[w])
		if !has || !s.edgeCmp.Compatible(eattr, other) {
			ok = false
			return false
		}
		return true
	})
	if !ok || !induced {
		return ok
	}
	s.g2.VisitOutEdges(n2, func(_, x arg.NodeID, eattr E) bool {
		if s.core2[x] == arg.NilNode {
			return true
		}
		other, has := s.g1.HasEdgeAttr(n1, s.core2[x])
		if !has || !s.edgeCmp.Compatible(other, eattr) {
			ok = false
			return false
		}
		return true
	})
	return ok
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

// new1 counts n1's distinct neighbors (predecessor or successor) in g1
// that are unmapped and not already in any terminal set — nodes truly
// "new" to the search frontier, per spec §4.5 rule 6.
func (s *State[N, E]) new1(n1 arg.NodeID) int {
	seen := make(map[arg.NodeID]bool)
	count := 0
	mark := func(id arg.NodeID) {
		if seen[id] || s.core1[id] != arg.NilNode || s.t1in[id] || s.t1out[id] {
			return
		}
		seen[id] = true
		count++
	}
	s.g1.VisitOutEdges(n1, func(_, w arg.NodeID, _ E) bool { mark(w); return true })
	s.g1.VisitInEdges(n1, func(u, _ arg.NodeID, _ E) bool { mark(u); return true })
	return count
}

// new2 is new1's symmetric counterpart over g2.
func (s *State[N, E]) new2(n2 arg.NodeID) int {
	seen := make(map[arg.NodeID]bool)
	count := 0
	mark := func(id arg.NodeID) {
		if seen[id] || s.core2[id] != arg.NilNode || s.t2in[id] || s.t2out[id] {
			return
		}
		seen[id] = true
		count++
	}
	s.g2.VisitOutEdges(n2, func(_, x arg.NodeID, _ E) bool { mark(x); return true })
	s.g2.VisitInEdges(n2, func(v, _ arg.NodeID, _ E) bool { mark(v); return true })
	return count
}
