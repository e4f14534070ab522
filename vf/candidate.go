// File: candidate.go
// Role: NextPair — candidate-pair generation per spec §4.5, preserving
// the documented asymmetry: one g1 candidate is fixed for the whole
// search frame, and only g2's candidates are iterated across
// successive NextPair calls on the same state.
package vf

import (
	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/match"
)

// NextPair returns the next candidate pair to try, given the
// previously tried pair (match.NilPair to start this frame).
//
// P1/P2 are chosen by priority: both T1out/T2out non-empty picks them;
// else both T1in/T2in non-empty picks them; else the fallback is every
// still-unmapped node on each side. Within that choice, g1's candidate
// is fixed to the smallest id in P1 (re-derived on each call, and the
// same on every call within one frame, since P1/P2 only change when
// AddPair is called, and the driver calls it on a clone), and g2's
// candidates are walked in ascending order.
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

// candidateSets picks which terminal sets govern this frame's P1/P2 and
// returns membership predicates for each, per spec §4.5's priority
// order: both-out, then both-in, then unmapped-fallback.
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
