package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellspring/internal/cli"
	"wellspring/internal/logger"
	"wellspring/internal/notifier"
	"wellspring/internal/reminder"
	"wellspring/internal/validation"
)

// RemindCmd runs the reminder daemon in the foreground: it registers the
// repeating trigger with the configured interval and fires the hydration
// notification on every tick until interrupted.
type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if !ctx.Prefs.ReminderEnabled() {
		fmt.Println("Reminders are disabled. Enable with 'wellspring settings --reminder-enabled'.")
		return nil
	}

	interval := ctx.Prefs.ReminderInterval()
	if err := validation.ReminderInterval(interval); err != nil {
		return err
	}

	n := notifier.New()
	if err := n.EnsureChannel(); err != nil {
		return fmt.Errorf("notification channel unavailable: %w", err)
	}

	sched := reminder.New(time.Local)
	err := sched.ScheduleRepeating(interval, func() {
		if err := n.EnsureChannel(); err != nil {
			logger.Warn("Notification channel unavailable", "error", err)
			return
		}
		if err := n.Notify(); err != nil {
			logger.Warn("Failed to send reminder", "error", err)
			return
		}
		if err := ctx.Prefs.SetLastReminderTime(time.Now().UnixMilli()); err != nil {
			logger.Warn("Failed to record reminder time", "error", err)
		}
	})
	if err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()
	defer sched.Cancel()

	fmt.Printf("Reminding every %d min. Press Ctrl+C to stop.\n", interval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping reminders.")
	return nil
}
