// Package match defines the abstract match-state capability (spec
// §4.4) and the depth-first enumeration driver (spec §4.6) that
// exhausts a match state's search tree and reports every mapping it
// finds to a caller-supplied Visitor.
//
// State is intentionally a narrow interface rather than a base class:
// concrete search strategies (vf.State, vf2.State) implement it however
// they see fit, and Enumerate knows nothing about their internals.
// This is the "tagged variant of state kinds... a capability
// interface, not deep inheritance" resolution Design Note §9 calls for.
//
// The driver itself is iteration-order-agnostic: it asks the state for
// the next candidate pair, checks feasibility, and on success clones
// the state before committing and recursing, so a caller's State
// implementation is never mutated out from under a sibling branch.
package match
