package benchmark

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer store.Close()

	withDist, err := ParseWrk(wrkOutputWithDistribution)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	noDist, err := ParseWrk(wrkOutputNoDistribution)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	reports := []Report{
		NewReport("fasthttp", 13.7, withDist),
		NewReport("gin", 12.4, noDist),
	}
	if err := store.SaveRun("nightly", "test-cpu", reports); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	records, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first: gin was inserted last.
	first := records[0]
	if first.Framework != "gin" {
		t.Errorf("Framework = %q, want gin", first.Framework)
	}
	if first.BenchmarkID != "nightly" {
		t.Errorf("BenchmarkID = %q, want nightly", first.BenchmarkID)
	}
	if first.CPUModel != "test-cpu" {
		t.Errorf("CPUModel = %q, want test-cpu", first.CPUModel)
	}
	if first.ReqPerSec != "469597.42" {
		t.Errorf("ReqPerSec = %q, want 469597.42", first.ReqPerSec)
	}
	if first.AvgLatencyMs != 0.3923 {
		t.Errorf("AvgLatencyMs = %v, want 0.3923", first.AvgLatencyMs)
	}
	if first.MaxMemory != "12.4MB" {
		t.Errorf("MaxMemory = %q, want 12.4MB", first.MaxMemory)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreListEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer store.Close()

	records, err := store.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from empty store", len(records))
	}
}
