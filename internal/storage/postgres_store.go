package storage

import (
	"database/sql"
	"strings"

	"wellspring/internal/models"
	"wellspring/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a PostgreSQL-backed store for the given
// connection string.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

func (s *PostgresStore) Init() error           { return s.store.Init() }
func (s *PostgresStore) Load() error           { return s.store.Load() }
func (s *PostgresStore) Close() error          { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *PostgresStore) GetDB() *sql.DB        { return s.store.GetDB() }

func (s *PostgresStore) AddHabit(habit models.Habit) error        { return s.store.AddHabit(habit) }
func (s *PostgresStore) GetHabit(id string) (models.Habit, error) { return s.store.GetHabit(id) }
func (s *PostgresStore) GetAllHabits() ([]models.Habit, error)    { return s.store.GetAllHabits() }
func (s *PostgresStore) UpdateHabit(habit models.Habit) error     { return s.store.UpdateHabit(habit) }
func (s *PostgresStore) DeleteHabit(id string) error              { return s.store.DeleteHabit(id) }
func (s *PostgresStore) DeleteAllHabits() error                   { return s.store.DeleteAllHabits() }

func (s *PostgresStore) AddMoodEntry(entry models.MoodEntry) error {
	return s.store.AddMoodEntry(entry)
}
func (s *PostgresStore) GetMoodEntry(id string) (models.MoodEntry, error) {
	return s.store.GetMoodEntry(id)
}
func (s *PostgresStore) GetAllMoodEntries() ([]models.MoodEntry, error) {
	return s.store.GetAllMoodEntries()
}
func (s *PostgresStore) UpdateMoodEntry(entry models.MoodEntry) error {
	return s.store.UpdateMoodEntry(entry)
}
func (s *PostgresStore) DeleteMoodEntry(id string) error { return s.store.DeleteMoodEntry(id) }
func (s *PostgresStore) DeleteAllMoodEntries() error     { return s.store.DeleteAllMoodEntries() }
