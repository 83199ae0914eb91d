package sqlite

import (
	"database/sql"
	"errors"

	"wellspring/internal/models"
)

// AddMoodEntry upserts by id, mirroring AddHabit.
func (s *Store) AddMoodEntry(entry models.MoodEntry) error {
	return s.UpdateMoodEntry(entry)
}

func (s *Store) GetMoodEntry(id string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, emoji, note, timestamp, date_string, time_string
		FROM mood_entries WHERE id = ?`, id)

	var m models.MoodEntry
	err := row.Scan(&m.ID, &m.Emoji, &m.Note, &m.Timestamp, &m.DateString, &m.TimeString)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, models.ErrNotFound
	}
	if err != nil {
		return models.MoodEntry{}, err
	}
	return m, nil
}

// GetAllMoodEntries returns entries newest first.
func (s *Store) GetAllMoodEntries() ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, emoji, note, timestamp, date_string, time_string
		FROM mood_entries ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var m models.MoodEntry
		if err := rows.Scan(&m.ID, &m.Emoji, &m.Note, &m.Timestamp, &m.DateString, &m.TimeString); err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateMoodEntry(entry models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO mood_entries (id, emoji, note, timestamp, date_string, time_string)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			emoji = excluded.emoji,
			note = excluded.note,
			timestamp = excluded.timestamp,
			date_string = excluded.date_string,
			time_string = excluded.time_string`,
		entry.ID, entry.Emoji, entry.Note, entry.Timestamp, entry.DateString, entry.TimeString)
	return err
}

func (s *Store) DeleteMoodEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM mood_entries WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteAllMoodEntries() error {
	_, err := s.db.Exec(`DELETE FROM mood_entries`)
	return err
}
