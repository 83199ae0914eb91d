package journal

import (
	"errors"
	"path/filepath"
	"strings"
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

func TestLog(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 0, 0, time.Local)
	svc := setupService(t, &now)

	t.Run("valid entry", func(t *testing.T) {
		entry, err := svc.Log(models.EmojiHappy, "  sunny day  ")
		if err != nil {
			t.Fatalf("Log() returned unexpected error: %v", err)
		}
		if entry.Emoji != models.EmojiHappy {
			t.Errorf("Emoji = %q, want %q", entry.Emoji, models.EmojiHappy)
		}
		if entry.Note != "sunny day" {
			t.Errorf("Note = %q, want trimmed %q", entry.Note, "sunny day")
		}
		if entry.DateString != "2025-03-14" || entry.TimeString != "09:26" {
			t.Errorf("projections = %q %q, want 2025-03-14 09:26", entry.DateString, entry.TimeString)
		}
		if entry.ID == "" {
			t.Error("ID is empty, want generated id")
		}
	})

	t.Run("unknown emoji rejected", func(t *testing.T) {
		if _, err := svc.Log("🎉", ""); err == nil {
			t.Error("Log() with unknown emoji returned nil error, want error")
		}
	})
}

func TestEntriesNewestFirst(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	emojis := []string{models.EmojiSad, models.EmojiNeutral, models.EmojiVeryHappy}
	for _, e := range emojis {
		if _, err := svc.Log(e, ""); err != nil {
			t.Fatalf("Log() returned unexpected error: %v", err)
		}
		now = now.Add(time.Hour)
	}

	entries, err := svc.Entries()
	if err != nil {
		t.Fatalf("Entries() returned unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}
	if entries[0].Emoji != models.EmojiVeryHappy {
		t.Errorf("entries[0].Emoji = %q, want latest %q", entries[0].Emoji, models.EmojiVeryHappy)
	}
	if entries[2].Emoji != models.EmojiSad {
		t.Errorf("entries[2].Emoji = %q, want oldest %q", entries[2].Emoji, models.EmojiSad)
	}
}

func TestDelete(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	entry, err := svc.Log(models.EmojiNeutral, "")
	if err != nil {
		t.Fatalf("Log() returned unexpected error: %v", err)
	}

	if err := svc.Delete(entry.ID); err != nil {
		t.Fatalf("Delete() returned unexpected error: %v", err)
	}
	if err := svc.Delete(entry.ID); err != nil {
		t.Errorf("Delete() on absent entry returned unexpected error: %v", err)
	}
}

func TestSummary(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	// 😢 (1) + 😊 (4) + 😄 (5) averages 3.33, the neutral band.
	for _, e := range []string{models.EmojiVerySad, models.EmojiHappy, models.EmojiVeryHappy} {
		if _, err := svc.Log(e, ""); err != nil {
			t.Fatalf("Log() returned unexpected error: %v", err)
		}
		now = now.Add(time.Minute)
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary() returned unexpected error: %v", err)
	}

	if !strings.HasPrefix(summary, "My Wellness Mood Summary\n\n") {
		t.Errorf("Summary() missing header, got %q", summary)
	}
	if !strings.Contains(summary, "Total entries: 3\n") {
		t.Errorf("Summary() missing entry count, got %q", summary)
	}
	if !strings.Contains(summary, "Average mood: neutral\n") {
		t.Errorf("Summary() average = %q, want neutral band", summary)
	}
	if !strings.Contains(summary, "Latest mood: "+models.EmojiVeryHappy+"\n") {
		t.Errorf("Summary() latest mood wrong, got %q", summary)
	}
}

func TestSummaryNoEntries(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	svc := setupService(t, &now)

	if _, err := svc.Summary(); !errors.Is(err, ErrNoEntries) {
		t.Errorf("Summary() error = %v, want ErrNoEntries", err)
	}
}

func TestMoodBucket(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{5.0, "very positive"},
		{4.5, "very positive"},
		{4.0, "positive"},
		{3.5, "positive"},
		{3.0, "neutral"},
		{2.5, "neutral"},
		{2.0, "somewhat negative"},
		{1.5, "somewhat negative"},
		{1.0, "negative"},
	}

	for _, tt := range tests {
		if got := MoodBucket(tt.avg); got != tt.want {
			t.Errorf("MoodBucket(%.1f) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
