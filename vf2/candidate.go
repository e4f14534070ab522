// File: candidate.go
// Role: NextPair — identical candidate-generation strategy to package
// vf (spec §4.5's P1/P2 priority order and single-g1-candidate-per-
// frame asymmetry); Relation does not affect candidate order, only
// feasibility and termination.
package vf2

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// NextPair returns the next candidate pair to try, given the
// previously tried pair (match.NilPair to start this frame). See
// package vf's NextPair for the full rationale; the logic is identical
// here.
func (s *State[N, E]) NextPair(prev match.Pair) (match.Pair, bool) {
	in1, in2 := s.candidateSets()

	n1 := prev.N1
	if n1 == arg.NilNode {
		n1 = 0
	}
	n2 := prev.N2
	if n2 == arg.NilNode {
		n2 = 0
	} else {
		n2++
	}

	for int(n1) < s.numNodes1 && !in1(n1) {
		n1++
		n2 = 0
	}
	for int(n2) < s.numNodes2 && !in2(n2) {
		n2++
	}

	if int(n1) >= s.numNodes1 || int(n2) >= s.numNodes2 {
		return match.Pair{}, false
	}
	return match.Pair{N1: n1, N2: n2}, true
}

func (s *State[N, E]) candidateSets() (in1, in2 func(id arg.NodeID) bool) {
	switch {
	case s.t1outLen > 0 && s.t2outLen > 0:
		return memberOf(s.t1out), memberOf(s.t2out)
	case s.t1inLen > 0 && s.t2inLen > 0:
		return memberOf(s.t1in), memberOf(s.t2in)
	default:
		return s.unmapped1, s.unmapped2
	}
}

func memberOf(flags []bool) func(id arg.NodeID) bool {
	return func(id arg.NodeID) bool { return flags[id] }
}

func (s *State[N, E]) unmapped1(id arg.NodeID) bool { return s.core1[id] == arg.NilNode }
func (s *State[N, E]) unmapped2(id arg.NodeID) bool { return s.core2[id] == arg.NilNode }
