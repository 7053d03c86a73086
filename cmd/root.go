package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "web-bench",
	Short: "Hello-world HTTP benchmarks across Go web frameworks",
	Long: `web-bench runs the same minimal hello-world handler on a set of Go web
frameworks, drives each one with wrk (or a builtin load generator), and
renders the results as a markdown table keyed by CPU model.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
