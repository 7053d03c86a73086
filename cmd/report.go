package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyper-fast/go-web-benchmarks/benchmark"
)

var reportCPUModel string

// reportCmd re-renders a markdown report from previously archived raw wrk
// output files. The framework name is taken from the file name, so a pass
// saved with --raw-dir can be re-rendered without re-running the servers.
// Peak memory is unknown after the fact and renders as "-".
var reportCmd = &cobra.Command{
	Use:   "report <wrk-output-file>...",
	Short: "Render a markdown report from raw wrk output files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reports := make([]benchmark.Report, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("Read %s failed: %v", path, err)
			}
			m, err := benchmark.ParseWrk(string(data))
			if err != nil {
				log.Fatalf("Parse %s failed: %v", path, err)
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			reports = append(reports, benchmark.Report{
				FrameworkName: name,
				MaxMemory:     "-",
				Metrics:       m,
			})
		}

		table, err := benchmark.GenerateReport(reports)
		if err != nil {
			log.Fatalf("Generate report failed: %v", err)
		}

		cpuModel := reportCPUModel
		if cpuModel == "" {
			cpuModel = benchmark.CPUModel()
		}
		fmt.Println(benchmark.ResultsDoc(cpuModel, table))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportCPUModel, "cpu-model", "", "CPU model heading (default: detected from this host)")
}
