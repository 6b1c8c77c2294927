package graphcmd

import (
	"errors"

	"openship/internal/core/graph"

	"github.com/spf13/cobra"
)

func newDependentsCmd(o Options, f *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dependents <mangled-key>",
		Short: "Print the nodes whose d lists a key",
		Long: `dependents prints every node that depends on the given key, in artifact order.
Keys are mangled the way the build plugin writes them in d: dep::<name> for
packages, <scope>::<object>::js for scripts and <scope>::<object>::css for styles.`,
		Example: `  openship-graph dependents dep::react
  openship-graph dependents app::lib/util::js -o ndjson`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, formatJSON, formatNDJSON, formatYAML); err != nil {
				return err
			}
			res, err := f.read(cmd, o.Log)
			if err != nil && !errors.Is(err, ErrMalformed) {
				return err
			}
			if werr := writeNodes(cmd.OutOrStdout(), output, graph.Dependents(res.Records, args[0])); werr != nil {
				return werr
			}
			return err
		},
	}
	def := o.Cfg.MayEnum("GRAPH_OUTPUT", formatJSON, formatJSON, formatNDJSON, formatYAML)
	cmd.Flags().StringVarP(&output, "output", "o", def, "output format (json, ndjson, yaml); default from OPENSHIP_GRAPH_OUTPUT")
	return cmd
}
