// File: dot.go
// Role: DOT — emits an ARG as a Graphviz digraph, and Highlight — the
// same emission with a reported mapping's image nodes/edges picked out
// for visualizing a VF2 result.
package render

import (
	"bytes"
	"fmt"

	"github.com/argmatch/vfgraph/arg"
)

// DOT renders g as a Graphviz "digraph G { ... }" string. label formats
// a node's attribute as its displayed label; edgeLabel formats an
// edge's attribute the same way. If label is nil, each node is labeled
// with its numeric id; if edgeLabel is nil, edges carry no label.
func DOT[N, E any](g *arg.ARG[N, E], label func(N) string, edgeLabel func(E) string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n\n")

	for i := 0; i < g.NodeCount(); i++ {
		id := arg.NodeID(i)
		text := fmt.Sprintf("%d", id)
		if label != nil {
			text = label(g.NodeAttr(id))
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", id, text)
	}

	buf.WriteString("\n")
	for i := 0; i < g.NodeCount(); i++ {
		g.VisitOutEdges(arg.NodeID(i), func(u, v arg.NodeID, a E) bool {
			if edgeLabel != nil {
				fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", u, v, edgeLabel(a))
			} else {
				fmt.Fprintf(&buf, "  %d -> %d;\n", u, v)
			}
			return true
		})
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Highlight renders g the same way DOT does, but colors every node in
// core (and every edge between two core nodes) so a reported VF2
// mapping's image stands out against the rest of the target graph.
func Highlight[N, E any](g *arg.ARG[N, E], core []arg.NodeID, label func(N) string, edgeLabel func(E) string) string {
	inCore := make(map[arg.NodeID]bool, len(core))
	for _, id := range core {
		inCore[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n\n")

	for i := 0; i < g.NodeCount(); i++ {
		id := arg.NodeID(i)
		text := fmt.Sprintf("%d", id)
		if label != nil {
			text = label(g.NodeAttr(id))
		}
		if inCore[id] {
			fmt.Fprintf(&buf, "  %d [label=%q, style=filled, fillcolor=lightblue];\n", id, text)
		} else {
			fmt.Fprintf(&buf, "  %d [label=%q];\n", id, text)
		}
	}

	buf.WriteString("\n")
	for i := 0; i < g.NodeCount(); i++ {
		g.VisitOutEdges(arg.NodeID(i), func(u, v arg.NodeID, a E) bool {
			style := ""
			if inCore[u] && inCore[v] {
				style = ", color=blue, penwidth=2"
			}
			switch {
			case edgeLabel != nil:
				fmt.Fprintf(&buf, "  %d -> %d [label=%q%s];\n", u, v, edgeLabel(a), style)
			case style != "":
				fmt.Fprintf(&buf, "  %d -> %d [%s];\n", u, v, style[len(", "):])
			default:
				fmt.Fprintf(&buf, "  %d -> %d;\n", u, v)
			}
			return true
		})
	}

	buf.WriteString("}\n")
	return buf.String()
}
