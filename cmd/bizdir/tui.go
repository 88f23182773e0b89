package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/bizdir/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen directory page",
		Long: `Open the directory as a full-screen page with category chips, business
cards, and add and delete dialogs.

Keys:
  tab / 1-4   change category
  up / down   move between cards
  a           add a business
  d           delete the selected business
  m           show the map link of the selected business
  q           quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.store, a.logger,
				tea.WithAltScreen(),
				tea.WithInput(a.in),
				tea.WithOutput(a.out),
			)
		},
	}
}
