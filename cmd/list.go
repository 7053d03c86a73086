package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyper-fast/go-web-benchmarks/benchmark"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered frameworks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range benchmark.FrameworkNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
