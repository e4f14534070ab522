// File: graphfile.go
// Role: the CLI's on-disk graph format — a minimal JSON edge list over
// attrs.Label, the graph file format of SPEC_FULL.md §12. This
// format lives entirely inside the CLI package, never inside arg/
// loader/match/vf2, per spec §6's "no file format is part of the core".
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attrs"
	"github.com/argmatch/vfgraph/loader"
)

// edgeFile is one edge as it appears in a graphFile's Edges list.
type edgeFile struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
}

// graphFile is the on-disk shape: a node label per index (the node's
// id is its position in Nodes) plus an edge list referencing those
// indices.
type graphFile struct {
	Nodes []string   `json:"nodes"`
	Edges []edgeFile `json:"edges"`
}

// loadGraph reads path and builds an ARG[attrs.Label, attrs.Label]
// from it via loader.Memory.
func loadGraph(path string) (*arg.ARG[attrs.Label, attrs.Label], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var gf graphFile
	if err := json.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	opts := make([]loader.Option[attrs.Label, attrs.Label], 0, len(gf.Nodes)+len(gf.Edges))
	for _, n := range gf.Nodes {
		opts = append(opts, loader.WithNode[attrs.Label, attrs.Label](attrs.Label(n)))
	}
	for _, e := range gf.Edges {
		opts = append(opts, loader.WithEdge[attrs.Label, attrs.Label](
			arg.NodeID(e.From), arg.NodeID(e.To), attrs.Label(e.Label)))
	}

	mem := loader.NewMemory(opts...)
	return arg.New[attrs.Label, attrs.Label](mem)
}

// saveGraph writes g to path as a graphFile.
func saveGraph(path string, g *arg.ARG[attrs.Label, attrs.Label]) error {
	gf := graphFile{Nodes: make([]string, g.NodeCount())}
	for i := 0; i < g.NodeCount(); i++ {
		gf.Nodes[i] = string(g.NodeAttr(arg.NodeID(i)))
	}
	for i := 0; i < g.NodeCount(); i++ {
		g.VisitOutEdges(arg.NodeID(i), func(u, v arg.NodeID, a attrs.Label) bool {
			gf.Edges = append(gf.Edges, edgeFile{From: int(u), To: int(v), Label: string(a)})
			return true
		})
	}

	raw, err := json.MarshalIndent(gf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
