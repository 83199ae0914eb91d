package legacy

import (
	"path/filepath"
	"testing"

	"wellspring/internal/prefs"
	"wellspring/internal/storage"
)

const legacyHabitsBlob = `[
	{"id":"h1","name":"Drink Water","targetCount":8,"currentCount":3,"lastUpdated":"2025-03-14"},
	{"id":"h2","name":"Stretch","targetCount":2,"currentCount":0,"lastUpdated":"2025-03-13"}
]`

const legacyMoodsBlob = `[
	{"id":"m1","emoji":"😊","note":"good day","timestamp":1741939200000,"dateString":"2025-03-14","timeString":"09:00"}
]`

func setupLegacy(t *testing.T, habitsBlob, moodsBlob string) (*prefs.Store, *storage.SQLiteStore) {
	t.Helper()

	dir := t.TempDir()

	p := prefs.NewStore(filepath.Join(dir, "prefs.json"))
	if err := p.Load(); err != nil {
		t.Fatalf("failed to load prefs: %v", err)
	}
	if habitsBlob != "" {
		if err := p.SetString(prefs.KeyLegacyHabits, habitsBlob); err != nil {
			t.Fatalf("failed to seed legacy habits: %v", err)
		}
	}
	if moodsBlob != "" {
		if err := p.SetString(prefs.KeyLegacyMoodEntries, moodsBlob); err != nil {
			t.Fatalf("failed to seed legacy mood entries: %v", err)
		}
	}

	store := storage.NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return p, store
}

func TestImport(t *testing.T) {
	p, store := setupLegacy(t, legacyHabitsBlob, legacyMoodsBlob)

	if err := Import(p, store); err != nil {
		t.Fatalf("Import() returned unexpected error: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() returned unexpected error: %v", err)
	}
	if len(habits) != 2 {
		t.Errorf("imported %d habits, want 2", len(habits))
	}

	h, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() returned unexpected error: %v", err)
	}
	if h.Name != "Drink Water" || h.TargetCount != 8 || h.CurrentCount != 3 {
		t.Errorf("imported habit = %+v, want legacy values preserved", h)
	}

	entries, err := store.GetAllMoodEntries()
	if err != nil {
		t.Fatalf("GetAllMoodEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("imported %d mood entries, want 1", len(entries))
	}

	if !p.MigrationCompleted() {
		t.Error("MigrationCompleted() = false after successful import, want true")
	}
	if p.Has(prefs.KeyLegacyHabits) || p.Has(prefs.KeyLegacyMoodEntries) {
		t.Error("legacy blobs still present after successful import")
	}
}

func TestImportEmptyLegacyData(t *testing.T) {
	p, store := setupLegacy(t, "", "")

	if err := Import(p, store); err != nil {
		t.Fatalf("Import() returned unexpected error: %v", err)
	}
	if !p.MigrationCompleted() {
		t.Error("MigrationCompleted() = false after import with no legacy data, want true")
	}
}

func TestImportSkippedOnceCompleted(t *testing.T) {
	p, store := setupLegacy(t, legacyHabitsBlob, "")
	if err := p.SetMigrationCompleted(true); err != nil {
		t.Fatalf("SetMigrationCompleted() returned unexpected error: %v", err)
	}

	if err := Import(p, store); err != nil {
		t.Fatalf("Import() returned unexpected error: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() returned unexpected error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("Import() moved %d habits despite completed flag, want 0", len(habits))
	}
}

func TestImportRetryConverges(t *testing.T) {
	p, store := setupLegacy(t, legacyHabitsBlob, legacyMoodsBlob)

	if err := Import(p, store); err != nil {
		t.Fatalf("first Import() returned unexpected error: %v", err)
	}

	// Simulate a run where the flag write was lost: blobs back in place,
	// flag false. Ids are preserved, so the retry re-inserts the same
	// records via replace-on-conflict instead of duplicating them.
	if err := p.SetMigrationCompleted(false); err != nil {
		t.Fatalf("SetMigrationCompleted() returned unexpected error: %v", err)
	}
	if err := p.SetString(prefs.KeyLegacyHabits, legacyHabitsBlob); err != nil {
		t.Fatalf("failed to re-seed legacy habits: %v", err)
	}
	if err := p.SetString(prefs.KeyLegacyMoodEntries, legacyMoodsBlob); err != nil {
		t.Fatalf("failed to re-seed legacy mood entries: %v", err)
	}

	if err := Import(p, store); err != nil {
		t.Fatalf("second Import() returned unexpected error: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() returned unexpected error: %v", err)
	}
	if len(habits) != 2 {
		t.Errorf("store holds %d habits after repeated imports, want 2", len(habits))
	}
	entries, err := store.GetAllMoodEntries()
	if err != nil {
		t.Fatalf("GetAllMoodEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("store holds %d mood entries after repeated imports, want 1", len(entries))
	}
}

func TestImportBadBlobLeavesFlagUnset(t *testing.T) {
	p, store := setupLegacy(t, "{not json", "")

	if err := Import(p, store); err == nil {
		t.Fatal("Import() with corrupt blob returned nil error, want error")
	}
	if p.MigrationCompleted() {
		t.Error("MigrationCompleted() = true after failed import, want false")
	}
	if !p.Has(prefs.KeyLegacyHabits) {
		t.Error("legacy blob removed despite failed import")
	}
}
