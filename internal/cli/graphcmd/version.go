package graphcmd

import (
	"fmt"

	"openship/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and runtime info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			b, rt := version.Info(), version.Runtime()
			fmt.Fprintf(cmd.OutOrStdout(), "openship-graph %s (commit %s, built %s) %s %s/%s\n",
				b.Version, b.Commit, b.Date, rt.Version, rt.OS, rt.Arch)
		},
	}
}
