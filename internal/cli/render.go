// File: render.go
// Role: `vfgraphctl render` — emits a graph file straight to SVG via
// render.DOT + render.SVG, with no matching involved.
package cli

import (
	"fmt"
	"os"

	"github.com/argmatch/vfgraph/attrs"
	"github.com/argmatch/vfgraph/render"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <g.json>",
		Short: "Render a graph file to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG path (required)")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(cmd *cobra.Command, path, out string) error {
	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	dot := render.DOT(g, func(a attrs.Label) string { return string(a) }, func(a attrs.Label) string { return string(a) })
	svg, err := render.SVG(dot)
	if err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}
	if err := os.WriteFile(out, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}
