package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// wrkArgs builds the argument list for one wrk pass. Durations are passed
// in whole seconds since wrk does not understand Go duration strings.
func wrkArgs(cfg Config, url string) []string {
	return []string{
		"-t" + strconv.Itoa(cfg.Threads),
		"-c" + strconv.Itoa(cfg.Connections),
		"-d" + strconv.Itoa(int(cfg.Duration.Seconds())) + "s",
		"--latency",
		url,
	}
}

// RunWrk executes wrk against url and parses its stdout. The raw output is
// returned alongside the metrics so it can be archived for later re-parsing.
func RunWrk(ctx context.Context, cfg Config, url string) (Metrics, string, error) {
	bin := cfg.WrkPath
	if bin == "" {
		bin = "wrk"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, wrkArgs(cfg, url)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Metrics{}, "", fmt.Errorf("wrk failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	raw := stdout.String()
	m, err := ParseWrk(raw)
	if err != nil {
		return Metrics{}, raw, err
	}
	return m, raw, nil
}
