package benchmark

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// Latency moments and percentiles, all in milliseconds.
type Latency struct {
	Avg   float64
	Stdev float64
	Max   float64
	P50   float64
	P75   float64
	P90   float64
	P99   float64
}

// Request counts as wrk prints them.
type Request struct {
	Total  string
	PerSec string
}

// Transfer volume as wrk prints it, informational only.
type Transfer struct {
	Total string
	Rate  string
}

// Metrics holds the numbers extracted from one load-generation pass.
type Metrics struct {
	Latency  Latency
	Request  Request
	Transfer Transfer
}

// ErrParseMetrics is returned when wrk output is missing its summary lines.
var ErrParseMetrics = errors.New("unable to parse wrk output")

var (
	latencyRe   = regexp.MustCompile(`Latency\s+(\d+\.\d+(?:us|ms|s))\s+(\d+\.\d+(?:us|ms|s))\s+(\d+\.\d+(?:us|ms|s))`)
	totalReqRe  = regexp.MustCompile(`(\d+) requests in`)
	dataReadRe  = regexp.MustCompile(`, (\d+\.\d+[GMK]?B) read`)
	reqPerSecRe = regexp.MustCompile(`Requests/sec:\s+(\d+\.\d+)`)
	transferRe  = regexp.MustCompile(`Transfer/sec:\s+(\d+\.\d+[GMK]?B)`)
	distRe      = regexp.MustCompile(`Latency Distribution\s*50%\s*(\d+\.\d+(?:us|ms|s)?)\s*75%\s*(\d+\.\d+(?:us|ms|s)?)\s*90%\s*(\d+\.\d+(?:us|ms|s)?)\s*99%\s*(\d+\.\d+(?:us|ms|s)?)`)
	durationRe  = regexp.MustCompile(`(\d+\.\d+)(us|ms|s)`)
)

// ParseWrk extracts Metrics from wrk's stdout. The Latency Distribution
// section only appears when wrk runs with --latency; without it the
// percentiles stay zero and render as "-" in the report.
func ParseWrk(out string) (Metrics, error) {
	lat := latencyRe.FindStringSubmatch(out)
	rps := reqPerSecRe.FindStringSubmatch(out)
	if lat == nil || rps == nil {
		return Metrics{}, ErrParseMetrics
	}

	m := Metrics{
		Latency: Latency{
			Avg:   toMilliseconds(lat[1]),
			Stdev: toMilliseconds(lat[2]),
			Max:   toMilliseconds(lat[3]),
		},
		Request: Request{PerSec: rps[1]},
	}

	if total := totalReqRe.FindStringSubmatch(out); total != nil {
		m.Request.Total = total[1]
	}
	if read := dataReadRe.FindStringSubmatch(out); read != nil {
		m.Transfer.Total = read[1]
	}
	if rate := transferRe.FindStringSubmatch(out); rate != nil {
		m.Transfer.Rate = rate[1]
	}
	if dist := distRe.FindStringSubmatch(out); dist != nil {
		m.Latency.P50 = toMilliseconds(dist[1])
		m.Latency.P75 = toMilliseconds(dist[2])
		m.Latency.P90 = toMilliseconds(dist[3])
		m.Latency.P99 = toMilliseconds(dist[4])
	}
	return m, nil
}

// toMilliseconds converts a wrk duration like "814.27us" or "1.07ms" to
// milliseconds, rounded to 4 decimal places. Unknown units yield 0.
func toMilliseconds(s string) float64 {
	groups := durationRe.FindStringSubmatch(s)
	if groups == nil {
		return 0
	}
	value, err := strconv.ParseFloat(groups[1], 64)
	if err != nil {
		return 0
	}
	switch groups[2] {
	case "us":
		value /= 1000
	case "s":
		value *= 1000
	}
	return math.Round(value*10000) / 10000
}
