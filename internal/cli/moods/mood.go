package moods

import (
	"fmt"

	"wellspring/internal/cli"
	"wellspring/internal/journal"
)

type MoodCmd struct {
	Add    MoodAddCmd    `cmd:"" help:"Log a mood entry."`
	List   MoodListCmd   `cmd:"" help:"List mood entries, newest first."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
	Share  MoodShareCmd  `cmd:"" help:"Print the shareable mood summary."`
}

type MoodAddCmd struct {
	Emoji string `arg:"" help:"Mood emoji (😢 😞 😐 😊 😄)."`
	Note  string `help:"Optional note." default:""`
}

func (c *MoodAddCmd) Run(ctx *cli.Context) error {
	svc := journal.New(ctx.Store)
	entry, err := svc.Log(c.Emoji, c.Note)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s at %s %s\n", entry.Emoji, entry.DateString, entry.TimeString)
	return nil
}

type MoodListCmd struct{}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	svc := journal.New(ctx.Store)
	entries, err := svc.Entries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Log one with 'wellspring mood add'.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s %s  %s", e.DateString, e.TimeString, e.Emoji)
		if e.Note != "" {
			line += "  " + e.Note
		}
		fmt.Printf("%s  %s\n", line, e.ID)
	}
	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *cli.Context) error {
	svc := journal.New(ctx.Store)
	if err := svc.Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Mood entry deleted.")
	return nil
}

type MoodShareCmd struct{}

func (c *MoodShareCmd) Run(ctx *cli.Context) error {
	svc := journal.New(ctx.Store)
	summary, err := svc.Summary()
	if err != nil {
		return err
	}

	// The summary goes to stdout so it can be piped to any share target.
	fmt.Print(summary)
	return nil
}
