package storage

import (
	"database/sql"

	"wellspring/internal/models"
	"wellspring/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a SQLite-backed store at the given file path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }

func (s *SQLiteStore) AddHabit(habit models.Habit) error      { return s.store.AddHabit(habit) }
func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) { return s.store.GetHabit(id) }
func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error)  { return s.store.GetAllHabits() }
func (s *SQLiteStore) UpdateHabit(habit models.Habit) error   { return s.store.UpdateHabit(habit) }
func (s *SQLiteStore) DeleteHabit(id string) error            { return s.store.DeleteHabit(id) }
func (s *SQLiteStore) DeleteAllHabits() error                 { return s.store.DeleteAllHabits() }

func (s *SQLiteStore) AddMoodEntry(entry models.MoodEntry) error { return s.store.AddMoodEntry(entry) }
func (s *SQLiteStore) GetMoodEntry(id string) (models.MoodEntry, error) {
	return s.store.GetMoodEntry(id)
}
func (s *SQLiteStore) GetAllMoodEntries() ([]models.MoodEntry, error) {
	return s.store.GetAllMoodEntries()
}
func (s *SQLiteStore) UpdateMoodEntry(entry models.MoodEntry) error {
	return s.store.UpdateMoodEntry(entry)
}
func (s *SQLiteStore) DeleteMoodEntry(id string) error { return s.store.DeleteMoodEntry(id) }
func (s *SQLiteStore) DeleteAllMoodEntries() error     { return s.store.DeleteAllMoodEntries() }
