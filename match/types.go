// File: types.go
// Role: Pair/NilPair, the State capability interface, and the
// Visitor/Signal types the enumeration driver reports through.
package match

import "github.com/argmatch/vfgraph/arg"

// Pair is one candidate (or committed) correspondence between a node
// of g1 and a node of g2.
type Pair struct {
	N1, N2 arg.NodeID
}

// NilPair is the sentinel "begin" pair passed to NextPair to request
// the first candidate.
var NilPair = Pair{N1: arg.NilNode, N2: arg.NilNode}

// State is the capability every concrete search strategy (vf.State,
// vf2.State, ...) implements. It represents one node of the
// depth-first search tree: a partial correspondence between g1's and
// g2's node sets, plus whatever bookkeeping the strategy needs to
// generate candidates and test feasibility quickly.
//
// Implementations are not required to be safe for concurrent use; the
// enumeration driver owns exactly one State per active search frame
// and clones before recursing (spec §5: "Match states are exclusively
// owned by one thread").
type State interface {
	// NextPair returns the next candidate pair to try extending the
	// current mapping with, given the previously tried pair (NilPair
	// to start). It returns ok=false once the candidate frontier for
	// this state is exhausted.
	NextPair(prev Pair) (next Pair, ok bool)

	// IsFeasible reports whether extending the current mapping with p
	// preserves every structural and attribute constraint the concrete
	// strategy enforces.
	IsFeasible(p Pair) bool

	// AddPair commits p to the partial mapping. The caller must have
	// verified IsFeasible(p) first; violating this precondition is a
	// programmer error (spec §7), not a recoverable one.
	AddPair(p Pair)

	// IsGoal reports whether the current partial mapping is a complete,
	// accepted correspondence.
	IsGoal() bool

	// IsDead reports whether the current partial mapping can never be
	// extended to a goal, regardless of which pair is tried next.
	IsDead() bool

	// CoreLen returns the number of pairs currently mapped.
	CoreLen() int

	// CoreSet extracts the current partial mapping as two parallel
	// slices: c1 lists every currently-mapped g1 node in ascending
	// node-id order, and c2[i] is the image in g2 of c1[i].
	CoreSet() (c1, c2 []arg.NodeID)

	// Clone returns an independent copy of the state, usable for
	// recursion without disturbing the caller's copy.
	Clone() State
}

// Signal is the enumeration driver's continue/stop contract, returned
// by a Visitor and by Enumerate itself.
type Signal int

const (
	// Continue tells the driver to keep searching for more mappings.
	Continue Signal = iota
	// Stop tells the driver to abandon the search immediately.
	Stop
)

// Visitor is invoked once per complete mapping the driver discovers,
// with c1/c2 as returned by State.CoreSet and n = len(c1) (spec §6).
type Visitor func(c1, c2 []arg.NodeID, n int) Signal
