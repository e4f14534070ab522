package attrs

import (
	"math"

	"github.com/argmatch/vfgraph/attr"
)

// Weighted is a labeled, numerically weighted attribute — e.g. a typed
// edge with a cost or capacity alongside its label.
type Weighted struct {
	Label  string
	Weight float64
}

type weightedComparator struct{ epsilon float64 }

// Compatible reports whether a and b carry the same Label and their
// Weights differ by no more than epsilon.
func (c weightedComparator) Compatible(a, b Weighted) bool {
	return a.Label == b.Label && math.Abs(a.Weight-b.Weight) <= c.epsilon
}

// WeightedComparator returns a Comparator treating two Weighted values
// as compatible when their labels match exactly and their weights
// differ by no more than epsilon.
func WeightedComparator(epsilon float64) attr.Comparator[Weighted] {
	return weightedComparator{epsilon: epsilon}
}
