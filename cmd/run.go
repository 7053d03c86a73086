package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyper-fast/go-web-benchmarks/benchmark"
)

var (
	frameworks  []string
	addr        string
	durationSec int
	connections int
	threads     int
	loadGen     string
	wrkPath     string
	warmupSec   int
	cooldownSec int
	output      string
	rawDir      string
	storePath   string
	logFormat   string
	benchmarkID string
	suiteFile   string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hello-world benchmark across the selected frameworks",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := benchmark.Config{
			Frameworks:  frameworks,
			Addr:        addr,
			Duration:    time.Duration(durationSec) * time.Second,
			Connections: connections,
			Threads:     threads,
			LoadGen:     loadGen,
			WrkPath:     wrkPath,
			Warmup:      time.Duration(warmupSec) * time.Second,
			Cooldown:    time.Duration(cooldownSec) * time.Second,
			Output:      output,
			RawDir:      rawDir,
			StorePath:   storePath,
			LogFormat:   logFormat,
			BenchmarkID: benchmarkID,
		}
		if suiteFile != "" {
			sc, err := benchmark.LoadSuiteConfig(suiteFile)
			if err != nil {
				log.Fatalf("Suite config failed: %v", err)
			}
			sc.Apply(&cfg)
		}
		if err := benchmark.RunBenchmark(cfg); err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVar(&frameworks, "frameworks", nil, "Frameworks to benchmark (default: all registered, see 'list')")
	runCmd.Flags().StringVar(&addr, "addr", benchmark.DefaultAddr, "Address the benchmarked server binds to")
	runCmd.Flags().IntVar(&durationSec, "duration", 30, "Load duration per framework, in seconds")
	runCmd.Flags().IntVar(&connections, "connections", 500, "Concurrent connections held by the load generator")
	runCmd.Flags().IntVar(&threads, "threads", 16, "wrk thread count")
	runCmd.Flags().StringVar(&loadGen, "loadgen", "wrk", "Load generator: 'wrk' or 'builtin'")
	runCmd.Flags().StringVar(&wrkPath, "wrk-path", "", "Path to the wrk binary (default: resolved from PATH)")
	runCmd.Flags().IntVar(&warmupSec, "warmup", 3, "Warm-up duration per framework before measuring, in seconds")
	runCmd.Flags().IntVar(&cooldownSec, "cooldown", 1, "Pause between frameworks, in seconds")
	runCmd.Flags().StringVar(&output, "output", "", "Report file (default: stdout)")
	runCmd.Flags().StringVar(&rawDir, "raw-dir", "", "Directory to archive raw wrk output per framework")
	runCmd.Flags().StringVar(&storePath, "store", "", "SQLite file to append run history to")
	runCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
	runCmd.Flags().StringVar(&benchmarkID, "benchmark-id", "default", "Optional benchmark ID tag for logs and the store")
	runCmd.Flags().StringVar(&suiteFile, "config", "", "YAML suite file overriding the flags above")
}
