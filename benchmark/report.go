package benchmark

import (
	"fmt"
	"strings"
)

const (
	reportHeader   = "| Framework Name | Latency.Avg | Latency.Stdev | Latency.50P | Latency.75P | Latency.90P | Latency.99P | Latency.Max | Request.Total | Request.Req/Sec | Transfer.Total | Transfer.Rate | Max. Memory Usage |"
	tableSeparator = "\n|---|---|---|---|---|---|---|---|---|---|---|---|---|\n"
)

// Report is one row of the results table.
type Report struct {
	FrameworkName string
	MaxMemory     string
	Metrics       Metrics
}

// NewReport builds a row with the peak memory formatted in MB.
func NewReport(frameworkName string, maxMemoryMB float64, m Metrics) Report {
	return Report{
		FrameworkName: frameworkName,
		MaxMemory:     fmt.Sprintf("%.1fMB", maxMemoryMB),
		Metrics:       m,
	}
}

// GenerateReport renders the markdown results table, one row per framework.
// Percentiles that were not measured render as "-". Duplicate framework
// names are rejected: the table is keyed by framework.
func GenerateReport(reports []Report) (string, error) {
	seen := make(map[string]struct{}, len(reports))

	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString(tableSeparator)

	for i, r := range reports {
		if _, dup := seen[r.FrameworkName]; dup {
			return "", fmt.Errorf("duplicate framework name %q in report", r.FrameworkName)
		}
		seen[r.FrameworkName] = struct{}{}

		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.row())
	}
	return b.String(), nil
}

// ResultsDoc wraps the table under a heading naming the CPU the numbers
// were measured on.
func ResultsDoc(cpuModel, table string) string {
	return "### " + cpuModel + "\n\n" + table + "\n"
}

func (r Report) row() string {
	return fmt.Sprintf("|%s|%.4fms|%.4fms|%s|%s|%s|%s|%.4fms|%s|%s|%s|%s|%s|",
		r.FrameworkName,
		r.Metrics.Latency.Avg,
		r.Metrics.Latency.Stdev,
		formatPercentile(r.Metrics.Latency.P50),
		formatPercentile(r.Metrics.Latency.P75),
		formatPercentile(r.Metrics.Latency.P90),
		formatPercentile(r.Metrics.Latency.P99),
		r.Metrics.Latency.Max,
		r.Metrics.Request.Total,
		r.Metrics.Request.PerSec,
		r.Metrics.Transfer.Total,
		r.Metrics.Transfer.Rate,
		r.MaxMemory,
	)
}

func formatPercentile(ms float64) string {
	if ms > 0 {
		return fmt.Sprintf("%.4fms", ms)
	}
	return "-"
}
