package benchmark

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config defines the benchmark parameters passed from CLI
type Config struct {
	Frameworks  []string      // frameworks to benchmark; empty means all registered
	Addr        string        // address the benchmarked server binds to
	Duration    time.Duration // load duration per framework
	Connections int           // concurrent connections held by the load generator
	Threads     int           // wrk thread count
	LoadGen     string        // "wrk" or "builtin"
	WrkPath     string        // wrk binary, default resolved from PATH
	Warmup      time.Duration // pre-measurement warm-up per framework
	Cooldown    time.Duration // pause between frameworks to let sockets drain
	Output      string        // report file, empty for stdout
	RawDir      string        // optional directory to archive raw wrk output
	StorePath   string        // optional SQLite results store
	LogFormat   string        // "json" or "console", default is "console"
	BenchmarkID string        // optional label for this benchmark run
}

// RunBenchmark orchestrates the full benchmark pass: frameworks run strictly
// one at a time, each torn down before the next starts, then the results
// table is rendered and optionally persisted.
func RunBenchmark(cfg Config) error {
	setupLog(cfg)
	initialLog(cfg)

	names := cfg.Frameworks
	if len(names) == 0 {
		names = FrameworkNames()
	}

	cpuModel := CPUModel()
	reports := make([]Report, 0, len(names))

	for i, name := range names {
		fw, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown framework %q (registered: %s)", name, strings.Join(FrameworkNames(), ", "))
		}

		report, raw, err := runOne(cfg, fw)
		if err != nil {
			return fmt.Errorf("benchmark %s: %w", name, err)
		}
		reports = append(reports, report)

		if cfg.RawDir != "" && raw != "" {
			if err := archiveRaw(cfg.RawDir, name, raw); err != nil {
				log.Error().Err(err).Str("framework", name).Msg("Failed to archive raw output")
			}
		}

		if cfg.Cooldown > 0 && i < len(names)-1 {
			time.Sleep(cfg.Cooldown)
		}
	}

	table, err := GenerateReport(reports)
	if err != nil {
		return err
	}
	doc := ResultsDoc(cpuModel, table)

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("path", cfg.Output).Msg("Report written")
	} else {
		fmt.Println(doc)
	}

	if cfg.StorePath != "" {
		if err := persistRun(cfg, cpuModel, reports); err != nil {
			return err
		}
	}

	log.Info().Str("benchmark_id", cfg.BenchmarkID).Msg("Benchmark complete")
	return nil
}

// runOne benchmarks a single framework: start, verify the handler contract,
// warm up, measure, stop.
func runOne(cfg Config, fw Framework) (Report, string, error) {
	log.Info().Str("framework", fw.Name()).Str("addr", cfg.Addr).Msg("Starting server")

	handle, err := fw.Start(cfg.Addr)
	if err != nil {
		return Report{}, "", fmt.Errorf("start server: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := handle.Stop(ctx); err != nil {
			log.Error().Err(err).Str("framework", fw.Name()).Msg("Server shutdown failed")
		}
	}()

	url := "http://" + handle.Addr + "/"
	if err := verifyHandler(url, 2*time.Second); err != nil {
		return Report{}, "", err
	}

	if cfg.Warmup > 0 {
		if _, err := RunBuiltinLoad(context.Background(), url, cfg.Connections, cfg.Warmup); err != nil {
			return Report{}, "", fmt.Errorf("warmup: %w", err)
		}
	}

	sampler := startMemorySampler(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration+30*time.Second)
	defer cancel()

	var (
		m   Metrics
		raw string
	)
	if cfg.LoadGen == "builtin" {
		m, err = RunBuiltinLoad(ctx, url, cfg.Connections, cfg.Duration)
	} else {
		m, raw, err = RunWrk(ctx, cfg, url)
	}
	peakMB := sampler.stop()
	if err != nil {
		return Report{}, raw, err
	}

	log.Info().
		Str("framework", fw.Name()).
		Str("req_per_sec", m.Request.PerSec).
		Float64("avg_latency_ms", m.Latency.Avg).
		Float64("max_memory_mb", peakMB).
		Msg("Pass complete")

	return NewReport(fw.Name(), peakMB, m), raw, nil
}

// verifyHandler polls until the server answers, then checks the contract:
// GET / must return 200 with the exact hello-world body.
func verifyHandler(url string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err != nil {
			lastErr = err
			time.Sleep(25 * time.Millisecond)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			time.Sleep(25 * time.Millisecond)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("handler returned status %d, want 200", resp.StatusCode)
		}
		if string(body) != HelloBody {
			return fmt.Errorf("handler returned body %q, want %q", body, HelloBody)
		}
		return nil
	}
	return fmt.Errorf("server did not become ready: %w", lastErr)
}

func archiveRaw(dir, framework, raw string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, framework+".txt"), []byte(raw), 0o644)
}

func persistRun(cfg Config, cpuModel string, reports []Report) error {
	store, err := OpenStore(cfg.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveRun(cfg.BenchmarkID, cpuModel, reports); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	log.Info().Str("path", cfg.StorePath).Int("rows", len(reports)).Msg("Run stored")
	return nil
}

func initialLog(cfg Config) {
	loadGen := cfg.LoadGen
	if loadGen == "" {
		loadGen = "wrk"
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Strs("frameworks", cfg.Frameworks).
		Str("addr", cfg.Addr).
		Dur("duration", cfg.Duration).
		Int("connections", cfg.Connections).
		Int("threads", cfg.Threads).
		Str("load_generator", loadGen).
		Dur("warmup", cfg.Warmup).
		Dur("cooldown", cfg.Cooldown).
		Msg("Starting benchmark")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
