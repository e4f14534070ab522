// File: memory.go
// Role: Memory[N, E] — a functional-option in-memory arg.Loader,
// grounded on lvlath/builder's BuilderOption/builderConfig pattern
// (builder/options.go): options are plain funcs over a private
// accumulator, applied in order by the constructor.
package loader

import "github.com/argmatch/vfgraph/arg"

type memEdge[E any] struct {
	to   arg.NodeID
	attr E
}

// Memory is an arg.Loader built up by WithNode/WithEdge options. Nodes
// are assigned ids in the order their WithNode option is applied;
// WithEdge references those ids, so every WithNode option an edge
// depends on must appear before it in the option list.
type Memory[N, E any] struct {
	nodes []N
	out   [][]memEdge[E]
}

// Option configures a Memory loader under construction.
type Option[N, E any] func(*Memory[N, E])

// NewMemory builds a Memory loader by applying opts in order.
func NewMemory[N, E any](opts ...Option[N, E]) *Memory[N, E] {
	m := &Memory[N, E]{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithNode appends a node carrying attr, assigning it the next
// available id.
func WithNode[N, E any](attr N) Option[N, E] {
	return func(m *Memory[N, E]) {
		m.nodes = append(m.nodes, attr)
		m.out = append(m.out, nil)
	}
}

// WithEdge appends an edge (from, to) carrying attr. Both from and to
// must already have been introduced by an earlier WithNode option;
// violating this is a programmer error and panics with an out-of-range
// index, the same way a slice index out of bounds would.
func WithEdge[N, E any](from, to arg.NodeID, attr E) Option[N, E] {
	return func(m *Memory[N, E]) {
		m.out[from] = append(m.out[from], memEdge[E]{to: to, attr: attr})
	}
}

// NodeCount implements arg.Loader.
func (m *Memory[N, E]) NodeCount() int { return len(m.nodes) }

// NodeAttr implements arg.Loader.
func (m *Memory[N, E]) NodeAttr(i arg.NodeID) N { return m.nodes[i] }

// OutEdgeCount implements arg.Loader.
func (m *Memory[N, E]) OutEdgeCount(i arg.NodeID) int { return len(m.out[i]) }

// OutEdge implements arg.Loader.
func (m *Memory[N, E]) OutEdge(i arg.NodeID, k int) (arg.NodeID, E) {
	e := m.out[i][k]
	return e.to, e.attr
}
