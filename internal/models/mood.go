package models

import (
	"time"

	"wellspring/internal/constants"
)

// The fixed set of mood symbols, very sad through very happy.
const (
	EmojiVerySad   = "😢"
	EmojiSad       = "😞"
	EmojiNeutral   = "😐"
	EmojiHappy     = "😊"
	EmojiVeryHappy = "😄"
)

// MoodEmojis lists the selectable moods in ascending order.
var MoodEmojis = []string{EmojiVerySad, EmojiSad, EmojiNeutral, EmojiHappy, EmojiVeryHappy}

// MoodEntry is an immutable timestamped log of a selected mood emoji and an
// optional note. DateString and TimeString are local-timezone projections of
// Timestamp, stored redundantly for display.
type MoodEntry struct {
	ID         string `json:"id"`
	Emoji      string `json:"emoji"`
	Note       string `json:"note"`
	Timestamp  int64  `json:"timestamp"` // milliseconds since epoch
	DateString string `json:"dateString"`
	TimeString string `json:"timeString"`
}

// NewMoodEntry builds an entry for the given moment, deriving the display
// projections in the local timezone. The caller supplies the id.
func NewMoodEntry(id, emoji, note string, at time.Time) MoodEntry {
	return MoodEntry{
		ID:         id,
		Emoji:      emoji,
		Note:       note,
		Timestamp:  at.UnixMilli(),
		DateString: at.Format(constants.DateFormat),
		TimeString: at.Format(constants.TimeFormat),
	}
}

// MoodValue maps the emoji to a 1-5 scale for trend analysis. Unknown emojis
// map to 3 (neutral).
func (m MoodEntry) MoodValue() int {
	switch m.Emoji {
	case EmojiVerySad:
		return 1
	case EmojiSad:
		return 2
	case EmojiNeutral:
		return 3
	case EmojiHappy:
		return 4
	case EmojiVeryHappy:
		return 5
	default:
		return 3
	}
}
