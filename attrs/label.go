package attrs

import "github.com/argmatch/vfgraph/attr"

// Label is a plain string attribute, the simplest useful node or edge
// kind (spec §8 scenario 3's "comparator = string equality").
type Label string

type labelComparator struct{}

// Compatible reports exact string equality.
func (labelComparator) Compatible(a, b Label) bool { return a == b }

// LabelComparator returns the exact-equality comparator for Label.
func LabelComparator() attr.Comparator[Label] { return labelComparator{} }
