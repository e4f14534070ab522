// Package cli implements the vfgraphctl command-line interface: a
// thin front-end over arg/loader/match/vf2/randgraph/render for
// finding and visualizing correspondences between attributed relational
// graphs. Command wiring, version handling, and logger setup are
// grounded on matzehuels-stacktower/internal/cli/root.go and log.go.
//
// # Commands
//
//   - match: find a correspondence between two graph files
//   - gen: generate a random isomorphic graph pair
//   - render: emit a graph file as an SVG
//   - version: print build metadata
//
// # Logging
//
// --verbose (-v) raises the log level to debug. Every log line within
// one invocation carries the same short run ID (google/uuid), so
// concurrent invocations' interleaved output can still be told apart.
//
// # Configuration
//
// ~/.vfgraphctl.toml supplies defaults (currently: the default
// --relation and search timeout) that flags override.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the build metadata displayed by --version and the
// version subcommand. Call it from main before Execute, with values
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the vfgraphctl CLI under ctx and returns an error if any
// command fails. Passing a cancellable ctx (e.g. from
// signal.NotifyContext) lets a command observe Ctrl-C, though none of
// the current commands have a long-running loop to check it against.
func Execute(ctx context.Context) error {
	var verbose bool
	cfg := loadConfig()

	root := &cobra.Command{
		Use:          "vfgraphctl",
		Short:        "vfgraphctl matches and visualizes attributed relational graphs",
		Long:         "vfgraphctl is a CLI front-end for the vfgraph VF2 matching engine: find correspondences between two graphs under isomorphism, subgraph-isomorphism, or monomorphism, and render the result.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vfgraphctl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatchCmd(cfg))
	root.AddCommand(newGenCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())

	return root.ExecuteContext(ctx)
}
