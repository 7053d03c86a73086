package benchmark

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// RunBuiltinLoad drives keep-alive GET requests at url with the given number
// of connections for the given duration and aggregates the results into the
// same Metrics shape that wrk output parses into. It is the fallback for
// environments without wrk; absolute numbers differ from wrk's but framework
// ordering holds.
func RunBuiltinLoad(ctx context.Context, url string, connections int, duration time.Duration) (Metrics, error) {
	if connections < 1 {
		connections = 1
	}

	log.Info().Int("connections", connections).Dur("duration", duration).Msg("Beginning builtin load loop")

	runCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		latencies []float64 // per-request latency in ms
		total     uint64
		failed    uint64
		bytesRead uint64
	)

	start := time.Now()
	for w := 0; w < connections; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// One client per worker so each holds its own keep-alive connection.
			client := &http.Client{Transport: &http.Transport{MaxIdleConnsPerHost: 1}}
			local := make([]float64, 0, 4096)

			for runCtx.Err() == nil {
				reqStart := time.Now()
				n, err := issueGet(runCtx, client, url)
				elapsed := time.Since(reqStart)

				if err != nil {
					if runCtx.Err() != nil {
						break
					}
					atomic.AddUint64(&failed, 1)
					continue
				}
				atomic.AddUint64(&total, 1)
				atomic.AddUint64(&bytesRead, uint64(n))
				local = append(local, float64(elapsed.Microseconds())/1000.0)
			}

			mu.Lock()
			latencies = append(latencies, local...)
			mu.Unlock()
		}()
	}

	// print progress every second while workers are running
	chDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-chDone:
				return
			case <-ticker.C:
				log.Info().Uint64("total_requests", atomic.LoadUint64(&total)).Msg("Load in progress")
			}
		}
	}()

	wg.Wait()
	close(chDone)
	elapsed := time.Since(start).Seconds()

	if total == 0 {
		return Metrics{}, fmt.Errorf("builtin load produced no successful requests (%d failed)", failed)
	}
	if failed > 0 {
		log.Warn().Uint64("failed_requests", failed).Msg("Some requests failed during load")
	}

	return summarize(latencies, total, bytesRead, elapsed), nil
}

func issueGet(ctx context.Context, client *http.Client, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return n, nil
}

func summarize(latencies []float64, total, bytesRead uint64, elapsedSec float64) Metrics {
	sort.Float64s(latencies)

	var sum float64
	for _, l := range latencies {
		sum += l
	}
	avg := sum / float64(len(latencies))

	var variance float64
	for _, l := range latencies {
		variance += (l - avg) * (l - avg)
	}
	stdev := math.Sqrt(variance / float64(len(latencies)))

	rps := float64(total) / elapsedSec
	rate := float64(bytesRead) / elapsedSec

	return Metrics{
		Latency: Latency{
			Avg:   roundMs(avg),
			Stdev: roundMs(stdev),
			Max:   roundMs(latencies[len(latencies)-1]),
			P50:   roundMs(percentile(latencies, 0.50)),
			P75:   roundMs(percentile(latencies, 0.75)),
			P90:   roundMs(percentile(latencies, 0.90)),
			P99:   roundMs(percentile(latencies, 0.99)),
		},
		Request: Request{
			Total:  strconv.FormatUint(total, 10),
			PerSec: fmt.Sprintf("%.2f", rps),
		},
		Transfer: Transfer{
			Total: humanBytes(float64(bytesRead)),
			Rate:  humanBytes(rate),
		},
	}
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(q*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func roundMs(ms float64) float64 {
	return math.Round(ms*10000) / 10000
}

// humanBytes formats a byte count the way wrk does (1.95GB, 66.26MB).
func humanBytes(n float64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2fGB", n/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2fMB", n/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2fKB", n/(1<<10))
	default:
		return fmt.Sprintf("%.0fB", n)
	}
}
