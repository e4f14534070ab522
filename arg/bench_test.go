// Package arg_test provides benchmarks for ARG construction and query.
package arg_test

import (
	"testing"

	"github.com/argmatch/vfgraph/arg"
)

// BenchmarkNew_Chain measures construction of a 1000-node chain graph.
func BenchmarkNew_Chain(b *testing.B) {
	const n = 1000
	l := newSliceLoader[struct{}, struct{}](n)
	for i := 0; i < n-1; i++ {
		l.addEdge(arg.NodeID(i), arg.NodeID(i+1), struct{}{})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arg.New[struct{}, struct{}](l); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHasEdge measures HasEdge on a moderately dense graph.
func BenchmarkHasEdge(b *testing.B) {
	const n = 500
	l := newSliceLoader[struct{}, struct{}](n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n && j < i+10; j++ {
			l.addEdge(arg.NodeID(i), arg.NodeID(j), struct{}{})
		}
	}
	g, err := arg.New[struct{}, struct{}](l)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge(arg.NodeID(i%n), arg.NodeID((i+5)%n))
	}
}
