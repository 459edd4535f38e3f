package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/planner"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cpath string
	conf  *Config
	log   *zap.Logger
}

func newApp() *app {
	// replaced once the config is read; errors before that still get logged
	return &app{log: newLogger("console", zap.InfoLevel, nil)}
}

func (a *app) rootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:           "lvtree",
		Short:         "Spanning trees and shortest paths over weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cpath,
		"config", ".", "directory holding lvtree.yaml")
	rootCmd.PersistentFlags().String("graph", "", "graph file (YAML)")

	rootCmd.AddCommand(a.mstCmd())
	rootCmd.AddCommand(a.sptCmd())
	rootCmd.AddCommand(a.pathCmd())
	rootCmd.AddCommand(a.pathsCmd())
	rootCmd.AddCommand(a.genCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup reads and validates the config, then rebuilds the logger from it.
func (a *app) setup(cmd *cobra.Command) error {
	conf, err := ReadInConfig(a.cpath, cmd.Flags())
	if err != nil {
		return err
	}
	lvl, err := parseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	a.conf = conf
	a.log = newLogger(conf.LogFormat, lvl, cmd.ErrOrStderr())

	return nil
}

// loadGraph reads the graph file named by --graph or the config.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.conf.Graph == "" {
		return nil, fmt.Errorf("no graph file given (use --graph or set graph in %s)", configName)
	}
	g, err := core.LoadFile(a.conf.Graph)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded",
		zap.String("file", a.conf.Graph),
		zap.Int("vertices", g.NumVertices()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// newPlanner loads the graph and wraps it in a planner sized from config.
func (a *app) newPlanner() (*planner.Planner, error) {
	g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}

	return planner.NewPlanner(g,
		planner.WithCacheSize(a.conf.CacheSize),
		planner.WithLogger(a.log))
}

func printEdges(w io.Writer, edges []core.Edge) {
	for _, e := range edges {
		fmt.Fprintf(w, "%d\t%d\t%d\n", e.From, e.To, e.Weight)
	}
}
