package main

import (
	"fmt"
	"io"

	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newFilterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [all|<category>]",
		Short: "Show or set the category filter",
		Long: `Show or set the category filter used by list and find.

Without an argument, prints the active filter and how many businesses are in
each category. With an argument, selects "all" or a category. Unique
prefixes are accepted.

Examples:
  bizdir filter
  bizdir filter restaurant
  bizdir filter ret
  bizdir filter all`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeFilters,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.printFilters(cmd.OutOrStdout())
			}
			return a.runFilter(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runFilter(w io.Writer, arg string) error {
	f, err := cli.MatchFilter(arg)
	if err != nil {
		return err
	}
	if err := a.store.SetFilter(f); err != nil {
		return err
	}
	fmt.Fprintf(w, "Showing %s (%d)\n", f.Label(), len(a.store.ListVisible()))
	return nil
}

func (a *app) printFilters(w io.Writer) error {
	counts := a.store.Counts()
	active := a.store.Filter()

	table := cli.NewTable()
	for _, f := range model.Filters() {
		n := a.store.Len()
		if c, ok := f.Category(); ok {
			n = counts[c]
		}
		marker := " "
		label := f.Label()
		if f == active {
			marker = "*"
			label = cli.Bold(label)
		}
		table.AddRow(marker, label, fmt.Sprintf("%d", n))
	}
	table.Render(w)
	return nil
}
