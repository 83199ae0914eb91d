package system

import (
	"fmt"

	"wellspring/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized wellspring storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
