// Package arg provides an immutable Attributed Relational Graph (ARG):
// a directed graph whose nodes and edges carry opaque, caller-supplied
// attributes, stored for fast edge lookup and neighbor enumeration.
//
// An ARG is built once, from a Loader, and never mutated structurally
// afterward — no AddEdge/RemoveEdge exist. Node and edge attribute
// handles may be replaced in place (SetNodeAttr/SetEdgeAttr), but the
// node set and edge set are fixed at construction.
//
// Storage is structure-of-arrays: per-node out-adjacency and
// in-adjacency are each a sorted []NodeID plus a parallel []E of edge
// attributes, enabling O(log deg) HasEdge/EdgeAttr via binary search
// and O(deg) neighbor enumeration with no pointer chasing.
//
// Construction (New) fills local slices and only returns the *ARG once
// every phase has succeeded, so a partially built ARG is never
// observable; no lock is taken, and the returned *ARG carries no lock
// at all, matching spec's single-threaded,
// read-only-after-construction concurrency model. Multiple goroutines
// may read the same *ARG concurrently without additional
// synchronization, provided any registered Comparator/Destroyer is
// itself safe for concurrent read-only use.
package arg
