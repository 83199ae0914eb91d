package system

import (
	"fmt"

	"wellspring/internal/cli"
	"wellspring/internal/constants"
	"wellspring/internal/notifier"
)

// NotifyCmd sends a single hydration notification immediately, mirroring the
// settings screen's test button.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		fmt.Printf("[DryRun] %s — %s\n", constants.HydrationNotificationTitle, constants.HydrationNotificationBody)
		return nil
	}

	n := notifier.New()
	if err := n.EnsureChannel(); err != nil {
		return err
	}
	if err := n.Notify(); err != nil {
		return err
	}

	fmt.Println("Test notification sent!")
	return nil
}
