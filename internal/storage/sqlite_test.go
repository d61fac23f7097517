package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	runs := []RunRecord{
		{Mode: ModePlay, Pattern: "glider", Seed: 1, Width: 120, Height: 90, Generations: 100, PeakPopulation: 5, FinalPopulation: 5, Duration: 10 * time.Second},
		{Mode: ModePlay, Pattern: "acorn", Seed: 2, Width: 120, Height: 90, Generations: 5206, PeakPopulation: 1057, FinalPopulation: 633, Duration: 90 * time.Second},
		{Mode: ModeHeadless, Pattern: "r-pentomino", Seed: 3, Width: 80, Height: 60, Generations: 1103, PeakPopulation: 319, FinalPopulation: 116, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.LongestRuns("", 10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(all))
	}

	// Sorted by generations descending
	wantOrder := []string{"acorn", "r-pentomino", "glider"}
	for i, want := range wantOrder {
		if all[i].Pattern != want {
			t.Errorf("run %d pattern = %q, expected %q", i, all[i].Pattern, want)
		}
	}

	top := all[0]
	if top.Generations != 5206 || top.PeakPopulation != 1057 || top.FinalPopulation != 633 {
		t.Errorf("unexpected top run: %+v", top)
	}
	if top.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 90s", top.Duration)
	}
	if top.Width != 120 || top.Height != 90 || top.Seed != 2 {
		t.Errorf("unexpected grid or seed: %+v", top)
	}

	played, err := store.LongestRuns(ModePlay, 10)
	if err != nil {
		t.Fatalf("LongestRuns(play) failed: %v", err)
	}
	if len(played) != 2 {
		t.Errorf("Expected 2 play runs, got %d", len(played))
	}
}

func TestStoreLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(RunRecord{Mode: ModeHeadless, Pattern: "glider", Generations: uint64(i)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.LongestRuns("", 5)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	// Non-positive limit falls back to 10
	runs, err = store.LongestRuns("", 0)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(runs))
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTemp(t)

	if n, err := store.RunCount(); err != nil || n != 0 {
		t.Fatalf("RunCount() = %d, %v; expected 0", n, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := store.SaveRun(RunRecord{Mode: ModeSSH, Pattern: "lwss"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if n, _ := store.RunCount(); n != 3 {
		t.Errorf("RunCount() = %d, expected 3", n)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("RunCount() after clear = %d, expected 0", n)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Mode: ModePlay, Pattern: "glider", Generations: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	runs, err := store.LongestRuns("", 1)
	if err != nil || len(runs) != 1 || runs[0].Generations != 42 {
		t.Errorf("expected persisted run with 42 generations, got %+v (err %v)", runs, err)
	}
}
