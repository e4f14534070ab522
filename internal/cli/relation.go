// File: relation.go
// Role: --relation flag <-> vf2.Relation mapping, shared by match.go.
package cli

import (
	"fmt"

	"github.com/argmatch/vfgraph/vf2"
)

func parseRelation(s string) (vf2.Relation, error) {
	switch s {
	case "iso":
		return vf2.Isomorphism, nil
	case "subgraph":
		return vf2.InducedSubgraphIsomorphism, nil
	case "mono":
		return vf2.Monomorphism, nil
	default:
		return 0, fmt.Errorf("unknown relation %q: want one of iso, subgraph, mono", s)
	}
}
