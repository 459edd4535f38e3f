package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
)

type genFlags struct {
	topology  string
	n         int
	rows      int
	cols      int
	p         float64
	seed      int64
	minWeight int64
	maxWeight int64
	directed  bool
}

func (a *app) genCmd() *cobra.Command {
	var f genFlags

	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph file",
		Long: "Write a generated graph as YAML to stdout. Topologies: " +
			"path, cycle, star, wheel, complete, grid (uses --rows/--cols), sparse (uses --p).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, cons, err := f.constructor()
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithWeightFn(builder.UniformWeightFn(f.minWeight, f.maxWeight)),
			}
			if f.directed {
				opts = append(opts, builder.WithDirected())
			}

			g, err := builder.BuildGraph(n, opts, cons)
			if err != nil {
				return err
			}
			a.log.Debug("graph generated",
				zap.String("topology", f.topology),
				zap.Int("vertices", g.NumVertices()),
				zap.Int("edges", g.EdgeCount()))

			return core.Encode(cmd.OutOrStdout(), g)
		},
	}

	c.Flags().StringVar(&f.topology, "topology", "path", "graph shape")
	c.Flags().IntVar(&f.n, "n", 8, "vertex count (all but grid)")
	c.Flags().IntVar(&f.rows, "rows", 3, "grid rows")
	c.Flags().IntVar(&f.cols, "cols", 3, "grid columns")
	c.Flags().Float64Var(&f.p, "p", 0.3, "edge probability (sparse)")
	c.Flags().Int64Var(&f.seed, "seed", 42, "random seed")
	c.Flags().Int64Var(&f.minWeight, "min-weight", 1, "smallest edge weight")
	c.Flags().Int64Var(&f.maxWeight, "max-weight", 1, "largest edge weight")
	c.Flags().BoolVar(&f.directed, "directed", false, "store each edge in one direction only")

	return c
}

// constructor maps the flags to a vertex count and a topology.
func (f genFlags) constructor() (int, builder.Constructor, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return 0, nil, fmt.Errorf("invalid weight range [%d, %d]", f.minWeight, f.maxWeight)
	}
	switch f.topology {
	case "path":
		return f.n, builder.Path(f.n), nil
	case "cycle":
		return f.n, builder.Cycle(f.n), nil
	case "star":
		return f.n, builder.Star(f.n), nil
	case "wheel":
		return f.n, builder.Wheel(f.n), nil
	case "complete":
		return f.n, builder.Complete(f.n), nil
	case "grid":
		return f.rows * f.cols, builder.Grid(f.rows, f.cols), nil
	case "sparse":
		return f.n, builder.RandomSparse(f.n, f.p), nil
	default:
		return 0, nil, fmt.Errorf("unknown topology %q", f.topology)
	}
}
