// File: driver.go
// Role: Enumerate — the recursive depth-first enumeration driver of
// spec §4.6 — plus FindFirst/FindAll, the two mechanical
// specializations of its continue/stop contract.
package match

import "github.com/argmatch/vfgraph/arg"

// Enumerate performs a depth-first exhaustive search of s's state
// tree, reporting every goal state it reaches to visit. It returns
// Stop if visit ever returned Stop (propagated up through every
// enclosing recursive call), and Continue if the search tree was
// exhausted without the visitor asking to stop.
//
// Each recursive step clones s before committing a candidate pair, so
// s itself is left unmodified by the call — callers may re-use s (e.g.
// to try a different Visitor) after Enumerate returns.
//
// Resource model (spec §5): at most one State clone is live per active
// stack frame; every clone is released (eligible for GC) as soon as
// its search frame returns, along every exit path.
func Enumerate(s State, visit Visitor) Signal {
	if s.IsGoal() {
		c1, c2 := s.CoreSet()
		return visit(c1, c2, s.CoreLen())
	}
	if s.IsDead() {
		return Continue
	}

	prev := NilPair
	for {
		next, ok := s.NextPair(prev)
		if !ok {
			return Continue
		}
		if s.IsFeasible(next) {
			child := s.Clone()
			child.AddPair(next)
			if sig := Enumerate(child, visit); sig == Stop {
				return Stop
			}
		}
		prev = next
	}
}

// FindFirst runs Enumerate and returns the first mapping found, if
// any. It is the "find-one" specialization spec §4.6 mentions.
func FindFirst(s State) (c1, c2 []arg.NodeID, ok bool) {
	Enumerate(s, func(got1, got2 []arg.NodeID, _ int) Signal {
		c1, c2, ok = got1, got2, true
		return Stop
	})
	return c1, c2, ok
}

// Mapping is one reported correspondence, as handed to a Visitor.
type Mapping struct {
	C1, C2 []arg.NodeID
}

// FindAll runs Enumerate and collects every mapping found. It is the
// "find-all" specialization spec §4.6 mentions.
func FindAll(s State) []Mapping {
	var all []Mapping
	Enumerate(s, func(c1, c2 []arg.NodeID, _ int) Signal {
		all = append(all, Mapping{C1: c1, C2: c2})
		return Continue
	})
	return all
}
