// File: version.go
// Role: `vfgraphctl version` — prints the same build metadata
// SetVersion attaches to --version, grounded on
// matzehuels-stacktower/internal/cli/root.go's version/commit/date vars.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "vfgraphctl %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
}
