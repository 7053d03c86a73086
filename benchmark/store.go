package benchmark

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	benchmark_id TEXT NOT NULL,
	framework TEXT NOT NULL,
	cpu_model TEXT NOT NULL,
	req_per_sec TEXT NOT NULL,
	avg_latency_ms REAL NOT NULL,
	max_memory TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// Store keeps benchmark run history in a local SQLite database, so numbers
// measured on the same machine at different times can be compared without
// digging through old report files.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results store: %w", err)
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init results store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun appends one row per framework for a completed pass.
func (s *Store) SaveRun(benchmarkID, cpuModel string, reports []Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO runs
		(benchmark_id, framework, cpu_model, req_per_sec, avg_latency_ms, max_memory, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range reports {
		_, err := stmt.Exec(benchmarkID, r.FrameworkName, cpuModel,
			r.Metrics.Request.PerSec, r.Metrics.Latency.Avg, r.MaxMemory, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RunRecord is one stored row.
type RunRecord struct {
	ID           int64
	BenchmarkID  string
	Framework    string
	CPUModel     string
	ReqPerSec    string
	AvgLatencyMs float64
	MaxMemory    string
	CreatedAt    time.Time
}

// ListRuns returns the most recent rows, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT id, benchmark_id, framework, cpu_model,
		req_per_sec, avg_latency_ms, max_memory, created_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		err := rows.Scan(&r.ID, &r.BenchmarkID, &r.Framework, &r.CPUModel,
			&r.ReqPerSec, &r.AvgLatencyMs, &r.MaxMemory, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
