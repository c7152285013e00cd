package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rprtr258/imflux/internal/tui"
	"github.com/rprtr258/imflux/internal/view"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the counter view in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	header, err := view.HeaderByVariant(cfg.Server.Header)
	if err != nil {
		return err
	}

	binding := view.ConnectCounter(newStore())
	return tui.Run(cmd.Context(), binding, header, logger, tea.WithAltScreen())
}
