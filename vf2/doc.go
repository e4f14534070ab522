// Package vf2 implements the VF2 match state: the full spec §4.5 rule
// set (1-6, including the 2-look-ahead new-node count rule VF lacks)
// parameterized by a Relation — graph isomorphism, induced subgraph
// isomorphism, or monomorphism — the "tagged variant of state kinds"
// Design Note §9 asks for in place of VFLib's VFState/VFState2
// inheritance.
//
// g1 is always the pattern graph and g2 is always the target graph,
// for every Relation: a subgraph or monomorphism search looks for a
// copy of g1 inside g2, never the reverse. See NewState.
package vf2
