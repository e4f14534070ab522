// Package render exports an ARG as Graphviz DOT and rasterizes it to
// SVG/PNG, the visualization external collaborator spec §1 leaves out
// of the matching engine's core. DOT emission and the SVG/PNG
// rendering round trip are grounded on
// matzehuels-stacktower/pkg/render/nodelink/dot.go's ToDOT/RenderSVG
// shape: a bytes.Buffer building one line per node and edge, and
// graphviz.New + graphviz.ParseBytes + Render for rasterization.
package render
