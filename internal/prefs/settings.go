package prefs

import "wellspring/internal/constants"

// Named accessors for the reminder settings, each carrying its documented
// default.

func (s *Store) ReminderEnabled() bool {
	return s.Bool(KeyReminderEnabled, constants.DefaultReminderEnabled)
}

func (s *Store) SetReminderEnabled(enabled bool) error {
	return s.SetBool(KeyReminderEnabled, enabled)
}

// ReminderInterval returns the reminder interval in minutes (default 60).
func (s *Store) ReminderInterval() int {
	return s.Int(KeyReminderInterval, constants.DefaultReminderIntervalMin)
}

func (s *Store) SetReminderInterval(minutes int) error {
	return s.SetInt(KeyReminderInterval, minutes)
}

// LastReminderTime returns the epoch milliseconds of the last fired reminder,
// 0 when none has fired yet.
func (s *Store) LastReminderTime() int64 {
	return s.Int64(KeyLastReminderTime, 0)
}

func (s *Store) SetLastReminderTime(ms int64) error {
	return s.SetInt64(KeyLastReminderTime, ms)
}

// MigrationCompleted gates the one-time legacy import.
func (s *Store) MigrationCompleted() bool {
	return s.Bool(KeyMigrationCompleted, false)
}

func (s *Store) SetMigrationCompleted(done bool) error {
	return s.SetBool(KeyMigrationCompleted, done)
}
