// File: terminate.go
// Role: IsGoal/IsDead — the Relation-dependent termination predicates:
// Isomorphism requires both graphs fully mapped and equal-sized
// terminal sets; the subgraph relations require only the pattern fully
// mapped and the target's terminal sets large enough to still admit it.
package vf2

// IsGoal reports whether the current partial mapping is complete for
// the configured Relation: every pattern node mapped (all three
// relations), and additionally every target node mapped for
// Isomorphism, which requires a bijection rather than an injection.
func (s *State[N, E]) IsGoal() bool {
	if s.coreLen != s.numNodes1 {
		return false
	}
	if s.rel == Isomorphism {
		return s.coreLen == s.numNodes2
	}
	return true
}

// IsDead reports whether the current partial mapping can never reach a
// goal. Isomorphism requires equal graph sizes and equal terminal-set
// sizes; the subgraph relations only require the target's terminal
// sets to be at least as large as the pattern's, since g2 may carry
// nodes the mapping never uses.
func (s *State[N, E]) IsDead() bool {
	if s.rel == Isomorphism {
		return s.numNodes1 != s.numNodes2 ||
			s.t1outLen != s.t2outLen ||
			s.t1inLen != s.t2inLen
	}
	return s.numNodes1 > s.numNodes2 ||
		s.t1outLen > s.t2outLen ||
		s.t1inLen > s.t2inLen
}
