package tui

import (
	"github.com/charmbracelet/huh"

	"wellspring/internal/models"
	"wellspring/internal/validation"
)

func newHabitForm(f *habitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(func(s string) error {
					_, err := validation.HabitName(s)
					return err
				}),
			huh.NewInput().
				Title("Daily target").
				Value(&f.Target).
				Validate(func(s string) error {
					_, err := validation.TargetCount(s)
					return err
				}),
		),
	)
}

func newMoodForm(f *moodFormModel) *huh.Form {
	options := make([]huh.Option[string], len(models.MoodEmojis))
	for i, e := range models.MoodEmojis {
		options[i] = huh.NewOption(e, e)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(&f.Emoji),
			huh.NewInput().
				Title("Note (optional)").
				Value(&f.Note),
		),
	)
}
