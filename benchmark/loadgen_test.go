package benchmark

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	latencies := []float64{4, 2, 1, 3}
	m := summarize(latencies, 4, 4096, 2.0)

	if m.Latency.Avg != 2.5 {
		t.Errorf("Avg = %v, want 2.5", m.Latency.Avg)
	}
	if m.Latency.Stdev != 1.118 {
		t.Errorf("Stdev = %v, want 1.118", m.Latency.Stdev)
	}
	if m.Latency.Max != 4 {
		t.Errorf("Max = %v, want 4", m.Latency.Max)
	}
	if m.Latency.P50 != 2 || m.Latency.P75 != 3 || m.Latency.P90 != 4 || m.Latency.P99 != 4 {
		t.Errorf("percentiles = %+v", m.Latency)
	}
	if m.Request.Total != "4" || m.Request.PerSec != "2.00" {
		t.Errorf("request = %+v", m.Request)
	}
	if m.Transfer.Total != "4.00KB" || m.Transfer.Rate != "2.00KB" {
		t.Errorf("transfer = %+v", m.Transfer)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cases := []struct {
		q    float64
		want float64
	}{
		{0.50, 5},
		{0.90, 9},
		{0.99, 10},
		{0.01, 1},
	}
	for _, c := range cases {
		if got := percentile(sorted, c.q); got != c.want {
			t.Errorf("percentile(%v) = %v, want %v", c.q, got, c.want)
		}
	}
	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("percentile of empty slice = %v, want 0", got)
	}
}

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{512, "512B"},
		{4096, "4.00KB"},
		{69481988, "66.26MB"},
		{2093796556, "1.95GB"},
	}
	for _, c := range cases {
		if got := humanBytes(c.in); got != c.want {
			t.Errorf("humanBytes(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRunBuiltinLoad(t *testing.T) {
	handle := startForTest(t, "nethttp")
	url := "http://" + handle.Addr + "/"

	m, err := RunBuiltinLoad(context.Background(), url, 4, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("RunBuiltinLoad failed: %v", err)
	}

	total, err := strconv.Atoi(m.Request.Total)
	if err != nil || total <= 0 {
		t.Errorf("Total = %q, want a positive count", m.Request.Total)
	}
	if m.Latency.Avg <= 0 {
		t.Errorf("Avg = %v, want > 0", m.Latency.Avg)
	}
	if m.Latency.P50 > m.Latency.P99 {
		t.Errorf("P50 %v > P99 %v", m.Latency.P50, m.Latency.P99)
	}
	if m.Latency.Max < m.Latency.P99 {
		t.Errorf("Max %v < P99 %v", m.Latency.Max, m.Latency.P99)
	}
}
