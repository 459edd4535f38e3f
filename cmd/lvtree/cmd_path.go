package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) pathCmd() *cobra.Command {
	var source, target int

	c := &cobra.Command{
		Use:   "path",
		Short: "Shortest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.newPlanner()
			if err != nil {
				return err
			}
			path, err := p.Path(source, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printEdges(out, path.Edges)
			fmt.Fprintf(out, "total\t%d\n", path.Weight())

			return nil
		},
	}

	c.Flags().IntVar(&source, "source", 0, "source vertex")
	c.Flags().IntVar(&target, "target", 0, "target vertex")

	return c
}

func (a *app) pathsCmd() *cobra.Command {
	var source int

	c := &cobra.Command{
		Use:   "paths",
		Short: "Shortest paths from a source to every vertex",
		Long:  "Print each target followed by its hops as from->to pairs, or unreachable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.newPlanner()
			if err != nil {
				return err
			}
			paths, err := p.AllPaths(source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range paths {
				if !path.Reachable {
					fmt.Fprintf(out, "%d\tunreachable\n", path.Target)
					continue
				}
				fmt.Fprintf(out, "%d\t%d\t", path.Target, path.Weight())
				fmt.Fprint(out, source)
				for _, e := range path.Edges {
					fmt.Fprintf(out, "->%d", e.To)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	c.Flags().IntVar(&source, "source", 0, "source vertex")

	return c
}
