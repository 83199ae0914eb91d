// Package journal holds the mood journal logic. Entries are immutable once
// logged: the service exposes insert, ordered retrieval, delete, and the
// plain-text share summary, but no edit path.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wellspring/internal/models"
	"wellspring/internal/storage"
	"wellspring/internal/validation"
)

// ErrNoEntries is returned by Summary when there is nothing to summarize.
var ErrNoEntries = errors.New("no mood entries to share")

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// NewWithClock is used by tests to control entry timestamps.
func NewWithClock(store storage.Provider, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Log validates the emoji and records a new entry stamped with the current
// local time.
func (s *Service) Log(emoji, note string) (models.MoodEntry, error) {
	if err := validation.MoodEmoji(emoji); err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.NewMoodEntry(uuid.New().String(), emoji, strings.TrimSpace(note), s.now())
	if err := s.store.AddMoodEntry(entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// Entries returns all entries newest first.
func (s *Service) Entries() ([]models.MoodEntry, error) {
	return s.store.GetAllMoodEntries()
}

// Delete removes an entry. Deleting an absent entry is a no-op.
func (s *Service) Delete(id string) error {
	return s.store.DeleteMoodEntry(id)
}

// Summary composes the shareable plain-text mood summary: entry count, the
// qualitative average bucket, and the most recent emoji.
func (s *Service) Summary() (string, error) {
	entries, err := s.store.GetAllMoodEntries()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	sum := 0
	for _, e := range entries {
		sum += e.MoodValue()
	}
	avg := float64(sum) / float64(len(entries))

	var b strings.Builder
	b.WriteString("My Wellness Mood Summary\n\n")
	fmt.Fprintf(&b, "Total entries: %d\n", len(entries))
	fmt.Fprintf(&b, "Average mood: %s\n", MoodBucket(avg))
	fmt.Fprintf(&b, "Latest mood: %s\n", entries[0].Emoji)
	return b.String(), nil
}

// MoodBucket maps an average mood value onto one of five qualitative bands.
func MoodBucket(avg float64) string {
	switch {
	case avg >= 4.5:
		return "very positive"
	case avg >= 3.5:
		return "positive"
	case avg >= 2.5:
		return "neutral"
	case avg >= 1.5:
		return "somewhat negative"
	default:
		return "negative"
	}
}
