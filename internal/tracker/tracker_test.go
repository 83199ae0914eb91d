package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"wellspring/internal/models"
	"wellspring/internal/storage"
)

func setupService(t *testing.T, now *time.Time) *Service {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewWithClock(store, func() time.Time { return *now })
}

func TestAdd(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	t.Run("valid habit", func(t *testing.T) {
		habit, err := svc.Add("  Drink Water  ", 8)
		if err != nil {
			t.Fatalf("Add() returned unexpected error: %v", err)
		}
		if habit.Name != "Drink Water" {
			t.Errorf("Name = %q, want trimmed %q", habit.Name, "Drink Water")
		}
		if habit.CurrentCount != 0 {
			t.Errorf("CurrentCount = %d, want 0", habit.CurrentCount)
		}
		if habit.LastUpdated != "2025-03-14" {
			t.Errorf("LastUpdated = %q, want %q", habit.LastUpdated, "2025-03-14")
		}
		if habit.ID == "" {
			t.Error("ID is empty, want generated id")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := svc.Add("   ", 8); err == nil {
			t.Error("Add() with blank name returned nil error, want error")
		}
	})

	t.Run("non-positive target rejected", func(t *testing.T) {
		if _, err := svc.Add("Stretch", 0); err == nil {
			t.Error("Add() with zero target returned nil error, want error")
		}
	})
}

func TestIncrementToTarget(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	habit, err := svc.Add("Drink Water", 8)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}

	// Seven increments stay below target, none signal completion.
	for i := 1; i <= 7; i++ {
		got, completed, err := svc.Increment(habit.ID)
		if err != nil {
			t.Fatalf("Increment() #%d returned unexpected error: %v", i, err)
		}
		if got.CurrentCount != i {
			t.Errorf("Increment() #%d CurrentCount = %d, want %d", i, got.CurrentCount, i)
		}
		if completed {
			t.Errorf("Increment() #%d signaled completion at %d/8", i, got.CurrentCount)
		}
	}

	// The eighth crosses the threshold, exactly once.
	got, completed, err := svc.Increment(habit.ID)
	if err != nil {
		t.Fatalf("Increment() #8 returned unexpected error: %v", err)
	}
	if got.CurrentCount != 8 {
		t.Errorf("CurrentCount = %d, want 8", got.CurrentCount)
	}
	if !completed {
		t.Error("Increment() #8 did not signal completion")
	}

	// The ninth is a no-op: count stays capped, no repeat signal.
	got, completed, err = svc.Increment(habit.ID)
	if err != nil {
		t.Fatalf("Increment() #9 returned unexpected error: %v", err)
	}
	if got.CurrentCount != 8 {
		t.Errorf("CurrentCount after extra increment = %d, want capped 8", got.CurrentCount)
	}
	if completed {
		t.Error("Increment() #9 signaled completion again")
	}
}

func TestIncrementMissingHabit(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	if _, _, err := svc.Increment("nope"); err == nil {
		t.Error("Increment() on missing habit returned nil error, want error")
	}
}

func TestDayRollover(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	habit, err := svc.Add("Drink Water", 8)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, _, err := svc.Increment(habit.ID); err != nil {
			t.Fatalf("Increment() returned unexpected error: %v", err)
		}
	}

	// Next calendar day: listing resets the count and stamps the new date.
	now = now.Add(2 * time.Hour)
	habits, err := svc.Habits()
	if err != nil {
		t.Fatalf("Habits() returned unexpected error: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("Habits() returned %d habits, want 1", len(habits))
	}
	if habits[0].CurrentCount != 0 {
		t.Errorf("CurrentCount after rollover = %d, want 0", habits[0].CurrentCount)
	}
	if habits[0].LastUpdated != "2025-03-15" {
		t.Errorf("LastUpdated after rollover = %q, want %q", habits[0].LastUpdated, "2025-03-15")
	}

	// The reset is persisted: a second listing does not reset again after an
	// increment on the new day.
	if _, _, err := svc.Increment(habit.ID); err != nil {
		t.Fatalf("Increment() returned unexpected error: %v", err)
	}
	habits, err = svc.Habits()
	if err != nil {
		t.Fatalf("Habits() returned unexpected error: %v", err)
	}
	if habits[0].CurrentCount != 1 {
		t.Errorf("CurrentCount = %d, want 1", habits[0].CurrentCount)
	}
}

func TestIncrementAppliesRollover(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	habit, err := svc.Add("Stretch", 2)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	if _, _, err := svc.Increment(habit.ID); err != nil {
		t.Fatalf("Increment() returned unexpected error: %v", err)
	}

	now = now.Add(2 * time.Hour)
	got, completed, err := svc.Increment(habit.ID)
	if err != nil {
		t.Fatalf("Increment() returned unexpected error: %v", err)
	}
	if got.CurrentCount != 1 {
		t.Errorf("CurrentCount after cross-day increment = %d, want 1", got.CurrentCount)
	}
	if completed {
		t.Error("Increment() signaled completion after rollover at 1/2")
	}
}

func TestEdit(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	habit, err := svc.Add("Drink Water", 8)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, _, err := svc.Increment(habit.ID); err != nil {
			t.Fatalf("Increment() returned unexpected error: %v", err)
		}
	}

	updated, err := svc.Edit(habit.ID, "Hydrate", 10)
	if err != nil {
		t.Fatalf("Edit() returned unexpected error: %v", err)
	}
	if updated.Name != "Hydrate" || updated.TargetCount != 10 {
		t.Errorf("Edit() = %+v, want name and target updated", updated)
	}
	if updated.CurrentCount != 3 {
		t.Errorf("CurrentCount after edit = %d, want progress kept at 3", updated.CurrentCount)
	}
}

func TestDelete(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	habit, err := svc.Add("Walk", 1)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}

	if err := svc.Delete(habit.ID); err != nil {
		t.Fatalf("Delete() returned unexpected error: %v", err)
	}
	if err := svc.Delete(habit.ID); err != nil {
		t.Errorf("Delete() on absent habit returned unexpected error: %v", err)
	}

	habits, err := svc.Habits()
	if err != nil {
		t.Fatalf("Habits() returned unexpected error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("Habits() returned %d habits after delete, want 0", len(habits))
	}
}

func TestSubscribe(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	var snapshots [][]models.Habit
	unsubscribe := svc.Subscribe(func(habits []models.Habit) {
		snapshots = append(snapshots, habits)
	})

	habit, err := svc.Add("Drink Water", 8)
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	if _, _, err := svc.Increment(habit.ID); err != nil {
		t.Fatalf("Increment() returned unexpected error: %v", err)
	}

	if len(snapshots) != 2 {
		t.Fatalf("observer received %d snapshots, want 2", len(snapshots))
	}
	last := snapshots[len(snapshots)-1]
	if len(last) != 1 || last[0].CurrentCount != 1 {
		t.Errorf("last snapshot = %+v, want one habit at 1/8", last)
	}

	unsubscribe()
	if _, _, err := svc.Increment(habit.ID); err != nil {
		t.Fatalf("Increment() returned unexpected error: %v", err)
	}
	if len(snapshots) != 2 {
		t.Errorf("observer received %d snapshots after unsubscribe, want still 2", len(snapshots))
	}
}
