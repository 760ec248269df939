// Package storage keeps a journal of headless balancing runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skyburst/internal/telemetry"
)

// DefaultPath is where the run journal lives unless --db says otherwise.
const DefaultPath = "~/.skyburst/runs.db"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// BatchRecord is one `sim` invocation.
type BatchRecord struct {
	ID        int64
	Label     string
	Runs      int
	Ticks     int64
	AvgScore  float64
	CreatedAt time.Time
}

// RunRecord is one headless run inside a batch.
type RunRecord struct {
	ID          int64
	BatchID     int64
	Seed        int64
	Ticks       int64
	ElapsedMs   int64
	Score       int
	MaxLevel    int
	Outcome     string
	DamageTaken int
	Hits        int
	Kills       string // "formation=12 elite=1"
	BossSpawned bool
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL DEFAULT '',
			runs INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			avg_score REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id INTEGER NOT NULL REFERENCES batches(id),
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			damage_taken INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			kills TEXT NOT NULL DEFAULT '',
			boss_spawned INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_batch ON runs(batch_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBatch records a batch report and all of its runs atomically.
// Returns the ID of the inserted batch.
func (s *Store) SaveBatch(ctx context.Context, label string, report *telemetry.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx,
		"INSERT INTO batches (label, runs, ticks, avg_score) VALUES (?, ?, ?, ?)",
		label, len(report.Runs), report.Ticks, report.AvgScore(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save batch: %w", err)
	}
	batchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO runs
		 (batch_id, seed, ticks, elapsed_ms, score, max_level, outcome, damage_taken, hits, kills, boss_spawned)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare run insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range report.Runs {
		if _, err := stmt.ExecContext(ctx,
			batchID, r.Seed, r.Ticks, r.ElapsedMs, r.Score, r.MaxLevel, string(r.Outcome),
			r.DamageTaken, r.Hits, r.KillsLine(), r.BossSpawned,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save run seed=%d: %w", r.Seed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit batch: %w", err)
	}
	return batchID, nil
}

const runColumns = `id, batch_id, seed, ticks, elapsed_ms, score, max_level, outcome,
		        damage_taken, hits, kills, boss_spawned, created_at`

// TopRuns retrieves the N best scoring runs across all batches.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// BatchRuns retrieves the runs of one batch in seed order.
func (s *Store) BatchRuns(batchID int64) ([]RunRecord, error) {
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE batch_id = ?
		 ORDER BY seed ASC`,
		batchID,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.BatchID, &r.Seed, &r.Ticks, &r.ElapsedMs, &r.Score, &r.MaxLevel, &r.Outcome,
			&r.DamageTaken, &r.Hits, &r.Kills, &r.BossSpawned, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RecentBatches retrieves the most recent batches.
func (s *Store) RecentBatches(limit int) ([]BatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, label, runs, ticks, avg_score, created_at
		 FROM batches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query batches: %w", err)
	}
	defer rows.Close()

	var batches []BatchRecord
	for rows.Next() {
		var b BatchRecord
		var createdAt any
		if err := rows.Scan(&b.ID, &b.Label, &b.Runs, &b.Ticks, &b.AvgScore, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		batches = append(batches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return batches, nil
}

// ClearRuns deletes every batch and run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs; DELETE FROM batches;"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over the whole journal.
type RunStats struct {
	Batches   int
	Runs      int
	HighScore int
	AvgScore  float64
	Victories int
	GameOvers int
	LastRun   time.Time
}

// Stats aggregates the whole journal.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(outcome = 'victory'), 0), COALESCE(SUM(outcome = 'game_over'), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.Victories, &stats.GameOvers)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM batches").Scan(&stats.Batches); err != nil {
		return nil, fmt.Errorf("storage: cannot count batches: %w", err)
	}

	var last any
	err = s.db.QueryRow("SELECT created_at FROM runs ORDER BY id DESC LIMIT 1").Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(last)
	}

	return stats, nil
}

// parseTime handles both time.Time and the driver's string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
