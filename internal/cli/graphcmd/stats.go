package graphcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"openship/internal/core/graph"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStatsCmd(o Options, f *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print read counters for the artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(output, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			res, err := f.read(cmd, o.Log)
			if err != nil && !errors.Is(err, ErrMalformed) {
				return err
			}
			if werr := writeStats(cmd.OutOrStdout(), output, res.Stats); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format (text, json, yaml)")
	return cmd
}

func writeStats(w io.Writer, format string, s graph.Stats) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "lines\t%d\n", s.Lines)
	fmt.Fprintf(tw, "blank\t%d\n", s.Blank)
	fmt.Fprintf(tw, "malformed\t%d\n", s.Malformed)
	fmt.Fprintf(tw, "duplicates\t%d\n", s.Duplicates)
	fmt.Fprintf(tw, "total\t%d\n", s.Total)

	scopes := make([]string, 0, len(s.ByScope))
	for k := range s.ByScope {
		scopes = append(scopes, k)
	}
	sort.Strings(scopes)
	for _, k := range scopes {
		fmt.Fprintf(tw, "scope %s\t%d\n", k, s.ByScope[k])
	}
	return tw.Flush()
}
