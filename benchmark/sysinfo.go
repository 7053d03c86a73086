package benchmark

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// CPUModel returns the CPU model name the results document is keyed by,
// or "unknown" when it cannot be determined (non-Linux hosts).
func CPUModel() string {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "unknown"
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "model name") {
			if i := strings.IndexByte(line, ':'); i >= 0 {
				return strings.TrimSpace(line[i+1:])
			}
		}
	}
	return "unknown"
}

// memorySampler tracks peak process RSS while a benchmarked server runs
// in-process. Informational only, like the transfer columns.
type memorySampler struct {
	peakBytes atomic.Uint64
	done      chan struct{}
	stopped   chan struct{}
}

func startMemorySampler(interval time.Duration) *memorySampler {
	s := &memorySampler{
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	s.sample()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.sample()
			}
		}
	}()
	return s
}

func (s *memorySampler) sample() {
	rss := processRSSBytes()
	for {
		peak := s.peakBytes.Load()
		if rss <= peak || s.peakBytes.CompareAndSwap(peak, rss) {
			return
		}
	}
}

// stop ends sampling and returns the peak observed, in MB.
func (s *memorySampler) stop() float64 {
	close(s.done)
	<-s.stopped
	s.sample()
	return float64(s.peakBytes.Load()) / (1 << 20)
}

// processRSSBytes reads VmRSS from /proc/self/status. On hosts without
// procfs it falls back to the runtime's own accounting.
func processRSSBytes() uint64 {
	file, err := os.Open("/proc/self/status")
	if err != nil {
		return runtimeSysBytes()
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "VmRSS:") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				kb, err := strconv.ParseUint(fields[1], 10, 64)
				if err == nil {
					return kb * 1024
				}
			}
		}
	}
	return runtimeSysBytes()
}

func runtimeSysBytes() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys
}
