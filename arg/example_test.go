package arg_test

import (
	"fmt"

	"github.com/argmatch/vfgraph/arg"
)

// ExampleNew builds a 3-cycle and queries its edges.
func ExampleNew() {
	l := newSliceLoader[string, struct{}](3)
	l.setNode(0, "A")
	l.setNode(1, "B")
	l.setNode(2, "C")
	l.addEdge(0, 1, struct{}{})
	l.addEdge(1, 2, struct{}{})
	l.addEdge(2, 0, struct{}{})

	g, err := arg.New[string, struct{}](l)
	if err != nil {
		panic(err)
	}

	fmt.Println(g.NodeCount(), g.HasEdge(0, 1), g.HasEdge(1, 0))
	// Output:
	// 3 true false
}
