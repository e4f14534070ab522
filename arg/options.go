// File: options.go
// Role: Functional options for New, mirroring lvlath's GraphOption
// pattern (core.WithDirected, core.WithWeighted, ...) adapted to ARG
// construction.
package arg

import "github.com/argmatch/vfgraph/attr"

// Option configures an ARG at construction time.
type Option[N, E any] func(*config[N, E])

// config collects the options applied before New begins reading the
// Loader.
type config[N, E any] struct {
	nodeCmp       attr.Comparator[N]
	edgeCmp       attr.Comparator[E]
	nodeDestroyer attr.Destroyer[N]
	edgeDestroyer attr.Destroyer[E]
	strictOrder   bool
}

func defaultConfig[N, E any]() config[N, E] {
	return config[N, E]{
		nodeCmp:       attr.AcceptAll[N](),
		edgeCmp:       attr.AcceptAll[E](),
		nodeDestroyer: attr.NoOp[N](),
		edgeDestroyer: attr.NoOp[E](),
		strictOrder:   false,
	}
}

// WithNodeComparator registers the comparator used by CompatibleNode.
// Without this option every pair of node attributes is compatible.
func WithNodeComparator[N, E any](c attr.Comparator[N]) Option[N, E] {
	return func(cfg *config[N, E]) {
		if c != nil {
			cfg.nodeCmp = c
		}
	}
}

// WithEdgeComparator registers the comparator used by CompatibleEdge.
// Without this option every pair of edge attributes is compatible.
func WithEdgeComparator[N, E any](c attr.Comparator[E]) Option[N, E] {
	return func(cfg *config[N, E]) {
		if c != nil {
			cfg.edgeCmp = c
		}
	}
}

// WithNodeDestroyer registers the destroyer invoked on node attribute
// replacement (when destroyOld is requested) and on ARG teardown via
// Close. Without this option node attributes are never destroyed.
func WithNodeDestroyer[N, E any](d attr.Destroyer[N]) Option[N, E] {
	return func(cfg *config[N, E]) {
		if d != nil {
			cfg.nodeDestroyer = d
		}
	}
}

// WithEdgeDestroyer registers the destroyer invoked on edge attribute
// replacement and on ARG teardown via Close. Without this option edge
// attributes are never destroyed.
//
// This is the corrected counterpart of the original VFLib bug noted in
// spec §9: here the edge destroyer is never routed to the node slot.
func WithEdgeDestroyer[N, E any](d attr.Destroyer[E]) Option[N, E] {
	return func(cfg *config[N, E]) {
		if d != nil {
			cfg.edgeDestroyer = d
		}
	}
}

// WithStrictOrder turns an unsorted successor list reported by the
// Loader into a construction error (ErrUnsortedSuccessors) instead of
// the default behavior of silently re-sorting it (and its parallel
// edge-attribute slice) into ascending order. Spec §4.2 permits either;
// this option lets the caller pick.
func WithStrictOrder[N, E any](strict bool) Option[N, E] {
	return func(cfg *config[N, E]) { cfg.strictOrder = strict }
}
