package tui

import (
	"fmt"
	"strings"

	"wellspring/internal/models"
)

// habitItem adapts a habit for the list component.
type habitItem struct {
	habit models.Habit
}

func (i habitItem) Title() string {
	marker := "○"
	if i.habit.IsCompleted() {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.habit.Name)
}

func (i habitItem) Description() string {
	return fmt.Sprintf("%s %d/%d (%d%%)",
		progressBar(i.habit.CompletionPercentage()),
		i.habit.CurrentCount, i.habit.TargetCount, i.habit.CompletionPercentage())
}

func (i habitItem) FilterValue() string { return i.habit.Name }

// progressBar renders a ten-cell bar for the given percentage.
func progressBar(pct int) string {
	filled := pct / 10
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

// moodItem adapts a mood entry for the list component.
type moodItem struct {
	entry models.MoodEntry
}

func (i moodItem) Title() string {
	return fmt.Sprintf("%s  %s %s", i.entry.Emoji, i.entry.DateString, i.entry.TimeString)
}

func (i moodItem) Description() string {
	if i.entry.Note == "" {
		return "no note"
	}
	return i.entry.Note
}

func (i moodItem) FilterValue() string { return i.entry.Note }
