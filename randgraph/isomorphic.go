// File: isomorphic.go
// Role: Isomorphic — a random connected digraph and an isomorphic copy
// of it under a random node permutation, for exercising and
// benchmarking graph isomorphism search.
package randgraph

import (
	"fmt"
	"math/rand"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attrs"
	"github.com/argmatch/vfgraph/loader"
)

// Isomorphic builds a random directed graph over n nodes (a Hamiltonian
// cycle plus extra edges sampled so the expected out-degree is
// avgDegree, the connectivity guarantee gene.h's Generate documents)
// and a second ARG isomorphic to it under a uniformly random node
// permutation. Every node carries a distinct Label so a strict label
// comparator (attrs.LabelComparator) still recognizes the
// correspondence, not just attr.AcceptAll.
//
// n <= 0 returns two empty ARGs. rng must be non-nil; callers owning
// determinism requirements should seed it themselves.
func Isomorphic(n, avgDegree int, rng *rand.Rand) (g1, g2 *arg.ARG[attrs.Label, attrs.Label]) {
	if n <= 0 {
		empty, err := arg.New[attrs.Label, attrs.Label](loader.NewMemory[attrs.Label, attrs.Label]())
		if err != nil {
			panic(err)
		}
		return empty, empty
	}

	// The cycle already gives every node one out-edge; the remaining
	// avgDegree-1 are spread over the n-2 other candidate targets.
	denom := n - 2
	if denom < 1 {
		denom = 1
	}
	p := float64(avgDegree-1) / float64(denom)
	if p > 1 {
		p = 1
	}

	e1 := loader.NewEditor[attrs.Label, attrs.Label]()
	for i := 0; i < n; i++ {
		e1.InsertNode(attrs.Label(fmt.Sprintf("n%d", i)))
	}
	for i := 0; i < n; i++ {
		e1.InsertEdge(arg.NodeID(i), arg.NodeID((i+1)%n), attrs.Label("e"))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || j == (i+1)%n {
				continue
			}
			if rng.Float64() < p {
				e1.InsertEdge(arg.NodeID(i), arg.NodeID(j), attrs.Label("e"))
			}
		}
	}
	g1, err := e1.Freeze()
	if err != nil {
		panic(err)
	}

	perm := rng.Perm(n)
	e2 := loader.NewEditor[attrs.Label, attrs.Label]()
	relabeled := make([]attrs.Label, n)
	for i := 0; i < n; i++ {
		relabeled[perm[i]] = g1.NodeAttr(arg.NodeID(i))
	}
	for _, lbl := range relabeled {
		e2.InsertNode(lbl)
	}
	for i := 0; i < n; i++ {
		g1.VisitOutEdges(arg.NodeID(i), func(u, v arg.NodeID, a attrs.Label) bool {
			e2.InsertEdge(arg.NodeID(perm[u]), arg.NodeID(perm[v]), a)
			return true
		})
	}
	g2, err = e2.Freeze()
	if err != nil {
		panic(err)
	}
	return g1, g2
}
