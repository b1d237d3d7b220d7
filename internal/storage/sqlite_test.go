package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
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

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "doodle", Score: 100, Bounces: 12, Duration: 30 * time.Second, Seed: 7},
		{GameID: "doodle", Score: 50, Bounces: 4},
		{GameID: "doodle", Score: 200, Bounces: 25, Player: "alice"},
		{GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("doodle", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Player != "alice" || top[0].Bounces != 25 {
		t.Errorf("Best run fields not preserved: %+v", top[0])
	}
	if top[1].Duration != 30*time.Second || top[1].Seed != 7 {
		t.Errorf("Duration/seed not preserved: %+v", top[1])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "doodle", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("doodle", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	// Non-positive limits fall back to ten.
	all, _ := store.TopRuns("doodle", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreTiesKeepOldestFirst(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "doodle", Score: 42, Player: "first"})
	store.SaveRun(Run{GameID: "doodle", Score: 42, Player: "second"})

	top, _ := store.TopRuns("doodle", 10)
	if len(top) != 2 || top[0].ID != first {
		t.Errorf("Expected the older run first, got %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("doodle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "doodle", Score: 100})
	store.SaveRun(Run{GameID: "doodle", Score: 300})
	store.SaveRun(Run{GameID: "doodle", Score: 200})

	high, err = store.HighScore("doodle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "doodle", Score: 100})
	store.SaveRun(Run{GameID: "doodle", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearRuns("doodle"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if top, _ := store.TopRuns("doodle", 10); len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
	if top, _ := store.TopRuns("other", 10); len(top) != 1 {
		t.Error("Other games should not be affected by clearing doodle")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("doodle")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "doodle", Score: 10, Bounces: 3})
	store.SaveRun(Run{GameID: "doodle", Score: 30, Bounces: 5})

	stats, err := store.GameStats("doodle")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.Bounces != 8 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgScore)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{GameID: "doodle", Score: n}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stats, _ := store.GameStats("doodle")
	if stats.Runs != 8 {
		t.Errorf("Expected 8 runs, got %d", stats.Runs)
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
