package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Version information",
		// config and graph are irrelevant here
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), BuildDetails())
		},
	}
	return c
}

// BuildDetails returns the version banner, filled from -ldflags when set.
func BuildDetails() string {
	if version == "" {
		return "lvtree (unknown version)"
	}

	return fmt.Sprintf(`lvtree %v
Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v`,
		version,
		commit,
		date,
		runtime.Version())
}
