// Package legacy moves records out of the old flat preferences format, where
// each collection was stored as a single serialized JSON blob under a fixed
// key, into the structured store.
package legacy

import (
	"encoding/json"
	"fmt"

	"wellspring/internal/logger"
	"wellspring/internal/models"
	"wellspring/internal/prefs"
	"wellspring/internal/storage"
)

// Import runs the one-time migration from the legacy blobs into the
// structured store. It is a no-op once the migration-completed flag is set.
// Ids are preserved, so a partial run that is retried re-inserts the same
// records via replace-on-conflict and converges to the same state.
//
// The flag is only set after both collections have been inserted; on any
// error the flag stays false and the next session retries.
func Import(p *prefs.Store, store storage.Provider) error {
	if p.MigrationCompleted() {
		return nil
	}

	habits, err := decodeHabits(p.String(prefs.KeyLegacyHabits, ""))
	if err != nil {
		return fmt.Errorf("failed to decode legacy habits: %w", err)
	}
	for _, h := range habits {
		if err := store.AddHabit(h); err != nil {
			return fmt.Errorf("failed to import habit %s: %w", h.ID, err)
		}
	}

	entries, err := decodeMoodEntries(p.String(prefs.KeyLegacyMoodEntries, ""))
	if err != nil {
		return fmt.Errorf("failed to decode legacy mood entries: %w", err)
	}
	for _, e := range entries {
		if err := store.AddMoodEntry(e); err != nil {
			return fmt.Errorf("failed to import mood entry %s: %w", e.ID, err)
		}
	}

	if err := p.SetMigrationCompleted(true); err != nil {
		return fmt.Errorf("failed to record migration completion: %w", err)
	}
	if err := p.Remove(prefs.KeyLegacyHabits, prefs.KeyLegacyMoodEntries); err != nil {
		return fmt.Errorf("failed to remove legacy data: %w", err)
	}

	if len(habits) > 0 || len(entries) > 0 {
		logger.Info("Imported legacy data", "habits", len(habits), "moodEntries", len(entries))
	}
	return nil
}

func decodeHabits(blob string) ([]models.Habit, error) {
	if blob == "" {
		return nil, nil
	}
	var habits []models.Habit
	if err := json.Unmarshal([]byte(blob), &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func decodeMoodEntries(blob string) ([]models.MoodEntry, error) {
	if blob == "" {
		return nil, nil
	}
	var entries []models.MoodEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
