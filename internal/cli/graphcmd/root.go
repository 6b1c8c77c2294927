// Package graphcmd implements the openship-graph command line
package graphcmd

import (
	"errors"
	"io"

	"openship/internal/core/graph"
	"openship/internal/core/version"
	"openship/internal/platform/config"
	perr "openship/internal/platform/errors"
	"openship/internal/platform/logger"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitCodeSuccess = 0
	// ExitCodeError is any failure not listed below
	ExitCodeError = 1
	// ExitCodeNotFound means the artifact does not exist
	ExitCodeNotFound = 2
	// ExitCodeMalformed means --strict was set and the artifact had malformed lines
	ExitCodeMalformed = 3
)

// ErrMalformed is returned under --strict when lines were skipped
var ErrMalformed = errors.New("artifact has malformed lines")

// Options injects collaborators; zero values use the process defaults
type Options struct {
	Log *logger.Logger
	Cfg config.Conf
	Out io.Writer
	Err io.Writer
}

type rootFlags struct {
	path    string
	project string
	strict  bool
	maxLine int
}

// NewRootCmd builds the command tree
// --project, --path and --max-line-bytes default to OPENSHIP_PROJECT_DIR, OPENSHIP_GRAPH_PATH
// and OPENSHIP_GRAPH_MAX_LINE_BYTES
func NewRootCmd(o Options) *cobra.Command {
	if o.Log == nil {
		o.Log = logger.Named("openship-graph")
	}
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "openship-graph",
		Short: "Inspect the openship dependency graph artifact",
		Long: `openship-graph reads the NDJSON graph written by the build plugin
(.next/openship/graph by default), drops malformed lines and duplicate
s::o keys, and prints the result. Diagnostics go to stderr.`,
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "openship-graph version %s\n" .Version}}`)
	if o.Out != nil {
		root.SetOut(o.Out)
	}
	if o.Err != nil {
		root.SetErr(o.Err)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.path, "path", o.Cfg.MayPath("GRAPH_PATH", ""), "artifact path; overrides --project")
	pf.StringVar(&f.project, "project", o.Cfg.MayPath("PROJECT_DIR", "."), "project directory holding .next/")
	pf.BoolVar(&f.strict, "strict", false, "fail when any line is malformed")
	pf.IntVar(&f.maxLine, "max-line-bytes", o.Cfg.MayInt("GRAPH_MAX_LINE_BYTES", 0), "skip lines longer than this; 0 keeps the reader default")

	root.AddCommand(newReadCmd(o, f))
	root.AddCommand(newDependentsCmd(o, f))
	root.AddCommand(newStatsCmd(o, f))
	root.AddCommand(newVersionCmd())
	return root
}

// read runs the reader with the resolved locator and applies --strict
func (f *rootFlags) read(cmd *cobra.Command, log *logger.Logger) (graph.Result, error) {
	path := graph.Locate(f.project, f.path)
	rd := graph.NewReader(graph.WithLogger(log), graph.WithMaxLineSize(f.maxLine))
	res, err := rd.Read(cmd.Context(), path)
	if err != nil {
		return graph.Result{}, err
	}
	if f.strict && res.Stats.Malformed > 0 {
		return res, ErrMalformed
	}
	return res, nil
}

// ExitCode maps an Execute error to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrMalformed):
		return ExitCodeMalformed
	case errors.Is(err, perr.ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}
