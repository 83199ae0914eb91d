package postgres

import (
	"database/sql"
	"errors"

	"wellspring/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, target_count, current_count, last_updated
		FROM habits WHERE id = $1`, id)

	var h models.Habit
	err := row.Scan(&h.ID, &h.Name, &h.TargetCount, &h.CurrentCount, &h.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, models.ErrNotFound
	}
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, target_count, current_count, last_updated
		FROM habits ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.TargetCount, &h.CurrentCount, &h.LastUpdated); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, target_count, current_count, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			target_count = excluded.target_count,
			current_count = excluded.current_count,
			last_updated = excluded.last_updated`,
		habit.ID, habit.Name, habit.TargetCount, habit.CurrentCount, habit.LastUpdated)
	return err
}

func (s *Store) DeleteHabit(id string) error {
	_, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	return err
}

func (s *Store) DeleteAllHabits() error {
	_, err := s.db.Exec(`DELETE FROM habits`)
	return err
}
