package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/prim_kruskal"
)

func (a *app) mstCmd() *cobra.Command {
	opts := prim_kruskal.DefaultMSTOptions()

	c := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (Prim or Kruskal)",
		Long: "Print the minimum spanning tree of the graph as from/to/weight lines, " +
			"followed by the total weight.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			edges, total, err := prim_kruskal.Compute(g, opts, prim_kruskal.WithLogger(a.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printEdges(out, edges)
			fmt.Fprintf(out, "total\t%d\n", total)

			return nil
		},
	}

	c.Flags().IntVar(&opts.Root, "root", opts.Root, "root vertex (prim only)")
	c.Flags().StringVar(&opts.Method, "method", opts.Method, "algorithm: prim or kruskal")

	return c
}
