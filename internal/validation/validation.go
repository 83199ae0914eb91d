package validation

import (
	"fmt"
	"strconv"
	"strings"

	"wellspring/internal/constants"
	"wellspring/internal/models"
)

// HabitName checks that a habit name is non-empty after trimming and returns
// the trimmed value.
func HabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("habit name cannot be empty")
	}
	return trimmed, nil
}

// TargetCount parses a raw target string and checks that it is a positive
// integer.
func TargetCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("target count must be a number")
	}
	if n <= 0 {
		return 0, fmt.Errorf("target count must be positive")
	}
	return n, nil
}

// MoodEmoji checks that the emoji belongs to the fixed mood set.
func MoodEmoji(emoji string) error {
	for _, e := range models.MoodEmojis {
		if e == emoji {
			return nil
		}
	}
	return fmt.Errorf("unknown mood %q", emoji)
}

// ReminderInterval checks that the interval is a positive multiple of 15
// minutes, minimum 15.
func ReminderInterval(minutes int) error {
	if minutes < constants.ReminderIntervalStepMin {
		return fmt.Errorf("reminder interval must be at least %d minutes", constants.ReminderIntervalStepMin)
	}
	if minutes%constants.ReminderIntervalStepMin != 0 {
		return fmt.Errorf("reminder interval must be a multiple of %d minutes", constants.ReminderIntervalStepMin)
	}
	return nil
}
