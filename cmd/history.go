package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hyper-fast/go-web-benchmarks/benchmark"
)

var (
	historyStorePath string
	historyLimit     int
)

// historyCmd lists stored benchmark runs, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored benchmark runs",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := benchmark.OpenStore(historyStorePath)
		if err != nil {
			log.Fatalf("Open store failed: %v", err)
		}
		defer store.Close()

		records, err := store.ListRuns(historyLimit)
		if err != nil {
			log.Fatalf("List runs failed: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tBENCHMARK\tFRAMEWORK\tREQ/SEC\tAVG MS\tMAX MEM\tCPU")
		for _, r := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.4f\t%s\t%s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.BenchmarkID,
				r.Framework, r.ReqPerSec, r.AvgLatencyMs, r.MaxMemory, r.CPUModel)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyStorePath, "store", "results.db", "SQLite file holding run history")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum rows to show")
}
