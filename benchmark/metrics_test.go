package benchmark

import (
	"errors"
	"testing"
)

const wrkOutputWithDistribution = `
Running 30s test @ http://127.0.0.1:3000
  16 threads and 500 connections
  Thread Stats   Avg      Stdev     Max   +/- Stdev
    Latency   814.27us  498.47us   8.42ms   69.23%
    Req/Sec    36.10k     2.64k   74.83k    75.41%
  Latency Distribution
     50%  707.00us
     75%    1.07ms
     90%    1.50ms
     99%    2.56ms
  17275966 requests in 30.09s, 1.95GB read
Requests/sec: 574184.09
Transfer/sec:     66.26MB

691 Errors: error shutting down connection: Socket is not connected (os error 57)
`

const wrkOutputNoDistribution = `
Running 30s test @ http://127.0.0.1:3000
  16 threads and 200 connections
  Thread Stats   Avg      Stdev     Max   +/- Stdev
    Latency   392.28us  199.70us   4.67ms   70.95%
    Req/Sec    29.50k     0.98k   33.01k    68.63%
  14134927 requests in 30.10s, 1.59GB read
Requests/sec: 469597.42
Transfer/sec:     54.19MB
`

func TestParseWrk(t *testing.T) {
	m, err := ParseWrk(wrkOutputWithDistribution)
	if err != nil {
		t.Fatalf("ParseWrk failed: %v", err)
	}

	want := Metrics{
		Latency: Latency{
			Avg:   0.8143,
			Stdev: 0.4985,
			Max:   8.4200,
			P50:   0.7070,
			P75:   1.0700,
			P90:   1.5000,
			P99:   2.5600,
		},
		Request:  Request{Total: "17275966", PerSec: "574184.09"},
		Transfer: Transfer{Total: "1.95GB", Rate: "66.26MB"},
	}
	if m != want {
		t.Errorf("ParseWrk = %+v, want %+v", m, want)
	}
}

func TestParseWrkWithoutDistribution(t *testing.T) {
	m, err := ParseWrk(wrkOutputNoDistribution)
	if err != nil {
		t.Fatalf("ParseWrk failed: %v", err)
	}

	if m.Latency.Avg != 0.3923 {
		t.Errorf("Avg = %v, want 0.3923", m.Latency.Avg)
	}
	if m.Latency.P50 != 0 || m.Latency.P75 != 0 || m.Latency.P90 != 0 || m.Latency.P99 != 0 {
		t.Errorf("percentiles should stay zero without a distribution section, got %+v", m.Latency)
	}
	if m.Request.PerSec != "469597.42" {
		t.Errorf("PerSec = %q, want 469597.42", m.Request.PerSec)
	}
}

func TestParseWrkGarbage(t *testing.T) {
	_, err := ParseWrk("wrk: command not found")
	if !errors.Is(err, ErrParseMetrics) {
		t.Errorf("expected ErrParseMetrics, got %v", err)
	}
}

func TestToMilliseconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"814.27us", 0.8143},
		{"1.07ms", 1.07},
		{"8.42ms", 8.42},
		{"30.09s", 30090},
		{"707.00", 0}, // unitless values are not durations
		{"", 0},
	}
	for _, c := range cases {
		if got := toMilliseconds(c.in); got != c.want {
			t.Errorf("toMilliseconds(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
