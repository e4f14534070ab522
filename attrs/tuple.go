package attrs

import "github.com/argmatch/vfgraph/attr"

// Tuple is a positional attribute for nodes or edges that carry more
// than one opaque field — the "tuple" attribute kind spec §1 calls out
// as an example external collaborator.
type Tuple []any

type tupleComparator struct{}

// Compatible reports whether a and b have equal length and every
// position compares equal (==). Elements that are not comparable (e.g.
// a slice or map stored at some position) make Compatible panic, the
// same way a == b would for an interface{} holding one; callers mixing
// non-comparable element types should supply their own Comparator.
func (tupleComparator) Compatible(a, b Tuple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TupleComparator returns the element-wise-equal comparator for Tuple.
func TupleComparator() attr.Comparator[Tuple] { return tupleComparator{} }
