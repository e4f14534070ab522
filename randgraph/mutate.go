// File: mutate.go
// Role: Mutate — perturbs a copy of an ARG by independent edge
// insertion/removal, for generating perturbed subgraph-matching
// fixtures from an existing graph. The result is random: it is not
// guaranteed to be non-isomorphic to the input.
package randgraph

import (
	"math/rand"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/loader"
)

// Mutate returns a new ARG with the same nodes as g, where every
// ordered pair (i, j), i != j, independently flips its edge state with
// probability p: an existing edge is dropped, a missing one is added
// (with the zero value of E as its attribute). g itself is untouched.
func Mutate[N, E any](g *arg.ARG[N, E], p float64, rng *rand.Rand) *arg.ARG[N, E] {
	n := g.NodeCount()
	e := loader.NewEditor[N, E]()
	for i := 0; i < n; i++ {
		e.InsertNode(g.NodeAttr(arg.NodeID(i)))
	}

	var zero E
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u, v := arg.NodeID(i), arg.NodeID(j)
			existing, has := g.HasEdgeAttr(u, v)
			if i == j {
				if has {
					e.InsertEdge(u, v, existing)
				}
				continue
			}
			flip := rng.Float64() < p
			switch {
			case has && !flip:
				e.InsertEdge(u, v, existing)
			case !has && flip:
				e.InsertEdge(u, v, zero)
			}
		}
	}

	out, err := e.Freeze()
	if err != nil {
		panic(err)
	}
	return out
}
