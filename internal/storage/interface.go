package storage

import (
	"wellspring/internal/models"
)

// ErrNotFound is returned by Get* methods when no record with the given id
// exists. Callers are expected to treat it as an explicit absence, not a
// failure.
var ErrNotFound = models.ErrNotFound

// Provider is the storage contract shared by the SQLite and PostgreSQL
// backends. Add* methods upsert: inserting an existing id replaces the stored
// record. Full-collection reads have a fixed order — habits by name ascending,
// mood entries by timestamp descending.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	DeleteAllHabits() error

	// Mood entries
	AddMoodEntry(models.MoodEntry) error
	GetMoodEntry(id string) (models.MoodEntry, error)
	GetAllMoodEntries() ([]models.MoodEntry, error)
	UpdateMoodEntry(models.MoodEntry) error
	DeleteMoodEntry(id string) error
	DeleteAllMoodEntries() error

	// Utils
	GetConfigPath() string
}
