// Package vf implements the VF match state: a concrete realization of
// match.State applying feasibility rules 1-5 of spec §4.5 — node and
// edge attribute compatibility, predecessor/successor edge
// preservation, self-loop parity, and the 1-look-ahead terminal-set
// count rule — but not VF2's 2-look-ahead new-node rule.
//
// VF only realizes graph isomorphism (VFLib's original VFState had no
// subgraph variant); for induced subgraph isomorphism or monomorphism,
// or for the additional pruning power of 2-look-ahead, use package vf2.
package vf
