package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) sptCmd() *cobra.Command {
	var source int

	c := &cobra.Command{
		Use:   "spt",
		Short: "Shortest-path tree from a source",
		Long: "Print one vertex/predecessor/distance line per vertex. " +
			"Unreachable vertices are marked instead of given a distance.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.newPlanner()
			if err != nil {
				return err
			}
			tree, err := p.Tree(source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range tree.Entries() {
				if !tree.Reachable(e.From) {
					fmt.Fprintf(out, "%d\t-\tunreachable\n", e.From)
					continue
				}
				fmt.Fprintf(out, "%d\t%d\t%d\n", e.From, e.To, e.Weight)
			}

			return nil
		},
	}

	c.Flags().IntVar(&source, "source", 0, "source vertex")

	return c
}
