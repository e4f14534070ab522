// File: match.go
// Role: `vfgraphctl match` — loads two graph files, runs vf2 over
// them, and prints the mapping(s) found. Command wiring grounded on
// matzehuels-stacktower/internal/cli/render.go's opts-struct +
// newXxxCmd shape.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/argmatch/vfgraph/arg"
	"github.com/argmatch/vfgraph/attr"
	"github.com/argmatch/vfgraph/attrs"
	"github.com/argmatch/vfgraph/match"
	"github.com/argmatch/vfgraph/render"
	"github.com/argmatch/vfgraph/vf2"
	"github.com/spf13/cobra"
)

type matchOpts struct {
	relation   string
	all        bool
	renderPath string
	timeout    time.Duration
}

func newMatchCmd(cfg config) *cobra.Command {
	opts := matchOpts{relation: cfg.Relation, timeout: cfg.timeout()}

	cmd := &cobra.Command{
		Use:   "match <g1.json> <g2.json>",
		Short: "Find a correspondence between g1 (pattern) and g2 (target)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.relation, "relation", opts.relation, "iso, subgraph, or mono")
	cmd.Flags().BoolVar(&opts.all, "all", false, "report every mapping instead of just the first")
	cmd.Flags().StringVar(&opts.renderPath, "render", "", "render the first mapping to this SVG path")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "abort the search after this long")

	return cmd
}

func runMatch(cmd *cobra.Command, g1Path, g2Path string, opts *matchOpts) error {
	logger := loggerFromContext(cmd.Context())

	rel, err := parseRelation(opts.relation)
	if err != nil {
		return err
	}

	g1, err := loadGraph(g1Path)
	if err != nil {
		return err
	}
	g2, err := loadGraph(g2Path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graphs", "g1_nodes", g1.NodeCount(), "g2_nodes", g2.NodeCount())

	labelCmp := attrs.LabelComparator()
	s := vf2.NewState[attrs.Label, attrs.Label](g1, g2, rel, labelCmp, attr.AcceptAll[attrs.Label]())

	if opts.all {
		mappings, err := runWithTimeout(opts.timeout, func() []match.Mapping { return match.FindAll(s) })
		if err != nil {
			return err
		}
		logger.Info("search complete", "mappings", len(mappings))
		if len(mappings) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no mapping found")
			return nil
		}
		for i, m := range mappings {
			printMapping(cmd, i, m.C1, m.C2)
		}
		if opts.renderPath != "" {
			return writeHighlighted(g2, mappings[0].C2, opts.renderPath)
		}
		return nil
	}

	type result struct {
		c1, c2 []arg.NodeID
		ok     bool
	}
	r, err := runWithTimeout(opts.timeout, func() result {
		c1, c2, ok := match.FindFirst(s)
		return result{c1, c2, ok}
	})
	if err != nil {
		return err
	}
	if !r.ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no mapping found")
		return nil
	}
	printMapping(cmd, 0, r.c1, r.c2)
	if opts.renderPath != "" {
		return writeHighlighted(g2, r.c2, opts.renderPath)
	}
	return nil
}

// runWithTimeout runs search on its own goroutine and returns an error
// if it hasn't finished within timeout. match.State's search is a
// synchronous recursive call with no cancellation point of its own, so
// this is the standard Go idiom for bounding a blocking call the
// callee can't be asked to abort: the goroutine is leaked (the search
// keeps running) until it returns on its own.
func runWithTimeout[T any](timeout time.Duration, search func() T) (T, error) {
	done := make(chan T, 1)
	go func() { done <- search() }()

	select {
	case v := <-done:
		return v, nil
	case <-time.After(timeout):
		var zero T
		return zero, fmt.Errorf("match: search exceeded %s", timeout)
	}
}

func printMapping(cmd *cobra.Command, idx int, c1, c2 []arg.NodeID) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mapping %d:\n", idx)
	for i := range c1 {
		fmt.Fprintf(out, "  g1[%d] -> g2[%d]\n", c1[i], c2[i])
	}
}

func writeHighlighted(g2 *arg.ARG[attrs.Label, attrs.Label], core []arg.NodeID, path string) error {
	dot := render.Highlight(g2, core,
		func(a attrs.Label) string { return string(a) },
		func(a attrs.Label) string { return string(a) })
	svg, err := render.SVG(dot)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
