package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ha1tch/plan-toolkit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plan v%s\n", version.Version)
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
