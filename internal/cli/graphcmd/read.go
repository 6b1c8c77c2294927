package graphcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"openship/internal/core/graph"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// output formats for read
const (
	formatJSON   = "json"
	formatNDJSON = "ndjson"
	formatYAML   = "yaml"
	formatText   = "text"
)

func newReadCmd(o Options, f *rootFlags) *cobra.Command {
	var (
		output string
		scope  string
	)
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the deduplicated graph",
		Example: `  openship-graph read
  openship-graph read --project ./apps/web -o ndjson
  openship-graph read --scope dep -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(output, formatJSON, formatNDJSON, formatYAML); err != nil {
				return err
			}
			res, err := f.read(cmd, o.Log)
			if err != nil && !errors.Is(err, ErrMalformed) {
				return err
			}
			nodes := filterScope(res.Records, scope)
			if werr := writeNodes(cmd.OutOrStdout(), output, nodes); werr != nil {
				return werr
			}
			return err
		},
	}
	def := o.Cfg.MayEnum("GRAPH_OUTPUT", formatJSON, formatJSON, formatNDJSON, formatYAML)
	cmd.Flags().StringVarP(&output, "output", "o", def, "output format (json, ndjson, yaml); default from OPENSHIP_GRAPH_OUTPUT")
	cmd.Flags().StringVar(&scope, "scope", "", "keep only nodes with this scope")
	return cmd
}

func filterScope(recs []graph.Record, scope string) []graph.Record {
	if scope == "" {
		return recs
	}
	out := make([]graph.Record, 0, len(recs))
	for _, r := range recs {
		if r.S == scope {
			out = append(out, r)
		}
	}
	return out
}

func writeNodes(w io.Writer, format string, nodes []graph.Record) error {
	switch format {
	case formatNDJSON:
		for _, n := range nodes {
			if _, err := fmt.Fprintf(w, "%s\n", n.Raw()); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	}
}

func checkFormat(got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want %s)", got, strings.Join(allowed, ", "))
}
