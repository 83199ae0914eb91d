// Package prefs is the flat key-value preferences store: a single JSON file
// holding the reminder settings, the migration-completed flag, and — until
// migration completes — the legacy whole-collection blobs. No validation
// happens at this layer; range checks belong to the caller.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Preference keys.
const (
	KeyReminderEnabled    = "reminder_enabled"
	KeyReminderInterval   = "reminder_interval"
	KeyLastReminderTime   = "last_reminder_time"
	KeyMigrationCompleted = "migration_completed"

	// Legacy whole-collection blobs, removed once migration completes.
	KeyLegacyHabits      = "habits"
	KeyLegacyMoodEntries = "mood_entries"
)

type Store struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the preferences file. A missing file is not an error; the store
// starts empty and every getter falls back to its default.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	return nil
}

// save writes the whole map back via a temp file and rename, so a crash
// mid-write never corrupts the live file. Before migration completes that
// file holds the only copy of the legacy blobs. Callers hold s.mu.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp preferences file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set preferences file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}

func (s *Store) set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]json.RawMessage)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return s.save()
}

// Bool returns the stored value for key, or def when absent or unreadable.
func (s *Store) Bool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func (s *Store) SetBool(key string, v bool) error {
	return s.set(key, v)
}

func (s *Store) Int(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func (s *Store) SetInt(key string, v int) error {
	return s.set(key, v)
}

func (s *Store) Int64(key string, def int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func (s *Store) SetInt64(key string, v int64) error {
	return s.set(key, v)
}

func (s *Store) String(key string, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func (s *Store) SetString(key string, v string) error {
	return s.set(key, v)
}

// Remove deletes the given keys and persists the file.
func (s *Store) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return s.save()
}

// Has reports whether a value is stored under key.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.values[key]
	return ok
}

func (s *Store) Path() string {
	return s.path
}
