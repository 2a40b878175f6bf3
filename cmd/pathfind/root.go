package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/graph"
	"github.com/katalvlaran/socialpath/graphfile"
	"github.com/katalvlaran/socialpath/internal/logging"
	"github.com/katalvlaran/socialpath/social"
)

// app carries the persistent flags and the state they produce.
// Each root command owns its own app, so tests can build several.
type app struct {
	graphPath string
	symmetric bool
	logLevel  string
	logFormat string

	log   *slog.Logger
	graph *graph.Graph[string]
}

// newRootCmd wires every subcommand. Results go to stdout, logs and errors
// to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "pathfind",
		Short:        "Shortest paths through a who-knows-whom graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.graphPath, "graph", "", "YAML graph file (default: built-in social network)")
	pf.BoolVar(&a.symmetric, "symmetric", false, "treat every edge as mutual")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newPathCmd(a),
		newWalkCmd(a),
		newMatrixCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup builds the logger and loads the graph once per invocation.
func (a *app) setup(stderr io.Writer) error {
	log, err := logging.New(a.logLevel, a.logFormat, stderr)
	if err != nil {
		return err
	}
	a.log = log

	var opts []graph.Option
	if a.symmetric {
		opts = append(opts, graph.WithSymmetric())
	}

	if a.graphPath == "" {
		a.graph = social.Network(opts...)
		a.log.Debug("using built-in network", "nodes", a.graph.Len(), "edges", a.graph.EdgeCount())
		return nil
	}

	g, err := graphfile.Load(a.graphPath, opts...)
	if err != nil {
		return err
	}
	a.graph = g
	a.log.Info("graph loaded",
		"path", a.graphPath,
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
		"symmetric", g.Symmetric(),
	)

	return nil
}
