package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some runs
	if _, err = store.SaveRun("bounce", 600, 59.8, 10*time.Second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err = store.SaveRun("bounce", 1200, 60.1, 20*time.Second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different scene
	if _, err = store.SaveRun("cycle", 300, 30.0, 10*time.Second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve runs for bounce
	runs, err := store.RecentRuns("bounce", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 bounce runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.SceneID != "bounce" {
			t.Errorf("Expected scene_id bounce, got %q", r.SceneID)
		}
	}

	// Newest first: the 1200-frame run was inserted last
	if runs[0].Frames != 1200 {
		t.Errorf("Expected newest run first (1200 frames), got %d", runs[0].Frames)
	}
	if runs[0].Duration != 20*time.Second {
		t.Errorf("Expected duration 20s, got %v", runs[0].Duration)
	}

	// All scenes
	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun("bounce", uint64(i*100), 60.0, time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("bounce", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit 3, got %d", len(runs))
	}
}

func TestStoreLongestRun(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	frames, err := store.LongestRun("bounce")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if frames != 0 {
		t.Errorf("Expected 0 frames with no runs, got %d", frames)
	}

	store.SaveRun("bounce", 500, 60.0, time.Second)
	store.SaveRun("bounce", 1500, 60.0, time.Second)
	store.SaveRun("bounce", 900, 60.0, time.Second)

	frames, err = store.LongestRun("bounce")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if frames != 1500 {
		t.Errorf("Expected longest run 1500 frames, got %d", frames)
	}
}
