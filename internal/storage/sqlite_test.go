package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skyburst/internal/games/shmup"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(scores ...int) *telemetry.Report {
	report := &telemetry.Report{Ticks: 3600}
	for i, score := range scores {
		outcome := telemetry.OutcomeGameOver
		if score >= 1000 {
			outcome = telemetry.OutcomeVictory
		}
		report.Add(telemetry.RunSummary{
			Seed:        int64(i + 1),
			Ticks:       3600,
			ElapsedMs:   60000,
			Score:       score,
			MaxLevel:    3,
			Outcome:     outcome,
			Kills:       map[shmup.Kind]int{shmup.KindFormation: score / 10},
			DamageTaken: 100,
			Hits:        4,
			BossSpawned: score >= 1000,
		})
	}
	return report
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveBatchAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.SaveBatch(ctx, "baseline", sampleReport(100, 1200, 50))
	if err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	runs, err := store.BatchRuns(id)
	if err != nil {
		t.Fatalf("BatchRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	r := runs[1]
	if r.Seed != 2 || r.Score != 1200 || r.Outcome != "victory" || !r.BossSpawned {
		t.Errorf("Unexpected run record: %+v", r)
	}
	if r.Kills != "formation=120" {
		t.Errorf("Expected kills line formation=120, got %q", r.Kills)
	}
	if r.BatchID != id || r.MaxLevel != 3 || r.DamageTaken != 100 || r.Hits != 4 {
		t.Errorf("Unexpected run details: %+v", r)
	}

	batches, err := store.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 1 || batches[0].Label != "baseline" || batches[0].Runs != 3 {
		t.Errorf("Unexpected batches: %+v", batches)
	}
	if batches[0].AvgScore != 450 {
		t.Errorf("Expected avg score 450, got %v", batches[0].AvgScore)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveBatch(ctx, "a", sampleReport(100, 500, 300)); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}
	if _, err := store.SaveBatch(ctx, "b", sampleReport(400, 200)); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveBatch(ctx, "a", sampleReport(100, 1500))
	store.SaveBatch(ctx, "b", sampleReport(200))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Batches != 2 || stats.Runs != 3 || stats.HighScore != 1500 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Victories != 1 || stats.GameOvers != 2 {
		t.Errorf("Expected 1 victory and 2 game overs, got %+v", stats)
	}
	if stats.AvgScore != 600 {
		t.Errorf("Expected avg 600, got %v", stats.AvgScore)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	stats, _ = store.Stats()
	if stats.Batches != 0 || !stats.LastRun.IsZero() {
		t.Errorf("Expected empty stats after clear, got %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
