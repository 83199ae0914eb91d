package settings

import (
	"fmt"
	"time"

	"wellspring/internal/cli"
	"wellspring/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	ReminderEnabled *bool `help:"Enable or disable the hydration reminder."`
	IntervalMin     *int  `help:"Reminder interval in minutes (multiple of 15, minimum 15)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Reminder Enabled:  %v\n", ctx.Prefs.ReminderEnabled())
		fmt.Printf("  Reminder Interval: %d min\n", ctx.Prefs.ReminderInterval())
		if last := ctx.Prefs.LastReminderTime(); last > 0 {
			fmt.Printf("  Last Reminder:     %s\n", time.UnixMilli(last).Format("2006-01-02 15:04"))
		} else {
			fmt.Printf("  Last Reminder:     never\n")
		}
		return nil
	}

	updated := false
	if c.IntervalMin != nil {
		if err := validation.ReminderInterval(*c.IntervalMin); err != nil {
			return err
		}
		if err := ctx.Prefs.SetReminderInterval(*c.IntervalMin); err != nil {
			return err
		}
		updated = true
	}
	if c.ReminderEnabled != nil {
		if err := ctx.Prefs.SetReminderEnabled(*c.ReminderEnabled); err != nil {
			return err
		}
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	fmt.Println("Settings updated successfully.")
	if ctx.Prefs.ReminderEnabled() {
		fmt.Printf("Reminders fire every %d min while 'wellspring remind' is running.\n", ctx.Prefs.ReminderInterval())
	}
	return nil
}
