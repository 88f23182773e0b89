package main

import (
	"fmt"

	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a business",
		Long: `Delete a business by ID.

Asks for confirmation first unless --yes is given or confirm_delete is false
in .bizdirconfig.yaml. Deleting an ID that does not exist does nothing.

Examples:
  bizdir delete 3
  bizdir delete '#3' --yes`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeBusinessIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func (a *app) runDelete(cmd *cobra.Command, arg string, yes bool) error {
	out := cmd.OutOrStdout()

	id, err := model.ParseID(arg)
	if err != nil {
		return err
	}

	b, ok := a.store.Get(id)
	if !ok {
		fmt.Fprintf(out, "No business with ID %s; nothing deleted.\n", model.FormatID(id))
		return nil
	}

	if !yes && a.cfg.ConfirmDelete {
		question := fmt.Sprintf("Are you sure you want to delete %s? %s", b.Name, cli.Red("This action cannot be undone."))
		confirmed, err := a.prompter.Confirm(question)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	a.store.DeleteBusiness(id)
	fmt.Fprintf(out, "%s %s deleted.\n", model.FormatID(b.ID), b.Name)
	return nil
}
