package main

import (
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var visibleOnly bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the directory as YAML",
		Long: `Print every business in the session as a YAML directory document,
newest first.

The output can be saved and used as seed_file in .bizdirconfig.yaml to start
later sessions from it.

Examples:
  bizdir dump > businesses.yaml
  bizdir dump --visible`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := a.store.All()
			if visibleOnly {
				records = a.store.ListVisible()
			}
			data, err := model.EncodeDirectory(records)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&visibleOnly, "visible", false, "only businesses matching the active filter")
	return cmd
}
