package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attrs"
)

func TestSaveAndLoadGraph_RoundTrips(t *testing.T) {
	g := buildTriangleARG(t)

	path := filepath.Join(t.TempDir(), "g.json")
	if err := saveGraph(path, g); err != nil {
		t.Fatalf("saveGraph: %v", err)
	}

	loaded, err := loadGraph(path)
	if err != nil {
		t.Fatalf("loadGraph: %v", err)
	}

	if loaded.NodeCount() != g.NodeCount() {
		t.Fatalf("NodeCount() = %d, want %d", loaded.NodeCount(), g.NodeCount())
	}
	for i := 0; i < g.NodeCount(); i++ {
		if loaded.NodeAttr(arg.NodeID(i)) != g.NodeAttr(arg.NodeID(i)) {
			t.Errorf("node %d attr mismatch: %v vs %v", i, loaded.NodeAttr(arg.NodeID(i)), g.NodeAttr(arg.NodeID(i)))
		}
	}
	if !loaded.HasEdge(0, 1) || !loaded.HasEdge(1, 2) || !loaded.HasEdge(2, 0) {
		t.Error("round-tripped graph lost an edge of the original triangle")
	}
}

func TestLoadGraph_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := loadGraph(path); err == nil {
		t.Fatal("loadGraph: expected an error for malformed JSON, got nil")
	}
}

// buildTriangleARG returns a 3-cycle with distinct node labels, used
// by the round-trip test above.
func buildTriangleARG(t *testing.T) *arg.ARG[attrs.Label, attrs.Label] {
	t.Helper()
	gf := graphFile{
		Nodes: []string{"a", "b", "c"},
		Edges: []edgeFile{
			{From: 0, To: 1, Label: "ab"},
			{From: 1, To: 2, Label: "bc"},
			{From: 2, To: 0, Label: "ca"},
		},
	}
	raw, err := json.Marshal(gf)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "triangle.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	g, err := loadGraph(path)
	if err != nil {
		t.Fatalf("loadGraph(fixture): %v", err)
	}
	return g
}
