package cmd

import (
	"context"
	stdlog "log"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyper-fast/go-web-benchmarks/benchmark"
)

var (
	serveFramework string
	serveAddr      string
)

// serveCmd runs a single framework's hello-world server in the foreground,
// for driving it with an externally managed load generator.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a single framework's hello-world server",
	Run: func(cmd *cobra.Command, args []string) {
		fw, ok := benchmark.Lookup(serveFramework)
		if !ok {
			stdlog.Fatalf("Unknown framework %q (see 'list')", serveFramework)
		}

		handle, err := fw.Start(serveAddr)
		if err != nil {
			stdlog.Fatalf("Start server failed: %v", err)
		}
		log.Info().Str("framework", fw.Name()).Str("addr", handle.Addr).Msg("Serving")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := handle.Stop(shutdownCtx); err != nil {
			stdlog.Fatalf("Shutdown failed: %v", err)
		}
		log.Info().Str("framework", fw.Name()).Msg("Stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFramework, "framework", "nethttp", "Framework to serve (see 'list')")
	serveCmd.Flags().StringVar(&serveAddr, "addr", benchmark.DefaultAddr, "Address to bind to")
}
