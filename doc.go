// Package vfgraph implements VF and VF2 state-space search for
// Attributed Relational Graph (ARG) matching: graph isomorphism,
// induced subgraph isomorphism, and subgraph monomorphism.
//
// What is vfgraph?
//
//	A single-threaded, in-memory matching engine that brings together:
//		• arg/   — immutable ARG storage optimized for edge lookup and neighbor enumeration
//		• attr/  — pluggable node/edge attribute comparators and destroyers
//		• loader/ — concrete sources that build an ARG (in-memory builder, incremental editor)
//		• match/ — the abstract match-state capability and the depth-first enumeration driver
//		• vf/    — the VF state (1-look-ahead feasibility)
//		• vf2/   — the VF2 state (2-look-ahead feasibility, isomorphism/subgraph/monomorphism variants)
//		• attrs/ — ready-made node/edge attribute kinds (label, weighted, tuple)
//		• randgraph/ — random and isomorphic ARG-pair generation for benchmarking
//		• render/ — Graphviz DOT/SVG/PNG export of an ARG or a reported mapping
//		• cmd/vfgraphctl/ — a command-line front-end over the above
//
// Why vfgraph?
//
//   - Deterministic — two runs over the same inputs report the same
//     ordered sequence of mappings.
//   - Immutable core — an ARG, once built, never changes; match states
//     are cloned per search frame, never shared across goroutines.
//   - Pluggable attributes — node and edge attributes are opaque to the
//     matching engine; comparators and destroyers are supplied by the
//     caller, with accept-all/no-op defaults.
//   - Extensible — VF and VF2 are two concrete states behind one
//     capability interface (match.State); new search strategies plug in
//     without touching the ARG or the driver.
//
// Quick ASCII example — matching a 3-cycle against itself:
//
//	0→1→2→0   vs.   0→1→2→0
//
// yields three isomorphisms (the rotations of the identity).
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// design rationale.
//
//	go get github.com/argmatch/vfgraph
package vfgraph
