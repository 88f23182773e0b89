package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		Long: `List the businesses visible under the active category filter,
newest first.

Use "filter" to change which category is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.OutOrStdout())
		},
	}
}

func (a *app) runList(w io.Writer) error {
	visible := a.store.ListVisible()
	if len(visible) == 0 {
		fmt.Fprintln(w, cli.EmptyMessage)
		return nil
	}

	table := cli.NewTable()
	table.SetHeader("ID", "NAME", "CATEGORY", "LOCATION", "PHONE", "WEBSITE")
	table.SetMaxWidth(1, cli.DefaultMaxTextWidth)
	table.SetMaxWidth(3, cli.DefaultMaxTextWidth)
	for i := range visible {
		b := &visible[i]
		table.AddRow(
			model.FormatID(b.ID),
			b.Name,
			cli.CategoryColor(b.Category),
			b.Location,
			cli.OrDash(b.PhoneText()),
			cli.OrDash(b.WebsiteText()),
		)
	}
	table.Render(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, listFooter(table.Len(), a.store.Filter()))
	return nil
}

func listFooter(n int, f model.Filter) string {
	count := english.Plural(n, "business", "businesses")
	if c, ok := f.Category(); ok {
		return fmt.Sprintf("%s in %s", count, c)
	}
	return count
}
