package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"wellspring/internal/cli"
	"wellspring/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.New(ctx.Store, ctx.Prefs)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
