package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show business details",
		Long: `Show every field of a business, including its map-search link.

The ID may be written with or without a leading #. Any business can be shown,
whatever the active filter.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeBusinessIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			showBusiness(cmd.OutOrStdout(), &b)
			return nil
		},
	}
}

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map <id>",
		Short: "Print the map-search link for a business",
		Long: `Print a map-search URL for a business location, ready to open in a
browser.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeBusinessIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.MapURL())
			return nil
		},
	}
}

// lookup resolves an ID argument to a business.
func (a *app) lookup(arg string) (model.Business, error) {
	id, err := model.ParseID(arg)
	if err != nil {
		return model.Business{}, err
	}
	b, ok := a.store.Get(id)
	if !ok {
		return model.Business{}, &cli.NotFoundError{Type: "business", ID: model.FormatID(id)}
	}
	return b, nil
}

func showBusiness(w io.Writer, b *model.Business) {
	fmt.Fprintf(w, "%s: %s\n", model.FormatID(b.ID), cli.Bold(b.Name))
	fmt.Fprintf(w, "Category:    %s\n", cli.CategoryColor(b.Category))
	fmt.Fprintf(w, "Location:    %s\n", b.Location)
	fmt.Fprintf(w, "Phone:       %s\n", cli.OrDash(b.PhoneText()))
	fmt.Fprintf(w, "Website:     %s\n", cli.OrDash(b.WebsiteText()))
	fmt.Fprintf(w, "Map:         %s\n", b.MapURL())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Description:")
	for _, line := range strings.Split(b.Description, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
