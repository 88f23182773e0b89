package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Search businesses by name",
		Long: `Fuzzy-search the names of the businesses visible under the active filter.

Characters of the query must appear in order, so "scf" finds "Sunrise Cafe".
Best matches are listed first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			query := strings.Join(args, " ")

			results := a.store.Search(query)
			if len(results) == 0 {
				fmt.Fprintf(out, "No results found for %q\n", query)
				return nil
			}

			table := cli.NewTable()
			table.SetMaxWidth(1, cli.DefaultMaxTextWidth)
			table.SetMaxWidth(3, cli.DefaultMaxTextWidth)
			for i := range results {
				b := &results[i]
				table.AddRow(model.FormatID(b.ID), b.Name, cli.CategoryColor(b.Category), b.Location)
			}
			table.Render(out)
			return nil
		},
	}
}
