package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/directory"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

type addOptions struct {
	name        string
	category    string
	location    string
	description string
	phone       string
	website     string
	edit        bool
}

func newAddCmd(a *app) *cobra.Command {
	var opts addOptions
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new business",
		Long: `Add a new business to the top of the directory.

Name, location and description are required. Category defaults to
Restaurant and accepts unique prefixes. Phone and website are optional.

In an interactive session, running add without all of --name, --location and
--description prompts for each field not given as a flag. Use -i to fill in a YAML template in
$EDITOR instead.

Examples:
  bizdir add --name "Sunrise Cafe" --category rest --location "12 Main St" \
    --description "Breakfast all day" --phone 555-0100
  bizdir add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "business name")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Restaurant, Retail or Service (prefix ok)")
	cmd.Flags().StringVar(&opts.location, "location", "", "street address")
	cmd.Flags().StringVar(&opts.description, "description", "", "short description")
	cmd.Flags().StringVar(&opts.phone, "phone", "", "phone number (optional)")
	cmd.Flags().StringVar(&opts.website, "website", "", "website URL (optional)")
	cmd.Flags().BoolVarP(&opts.edit, "interactive", "i", false, "fill in the business in $EDITOR")

	cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, opts *addOptions) error {
	in, err := inputFromFlags(opts)
	if err != nil {
		return err
	}

	switch {
	case opts.edit:
		in, err = cli.EditInput(in)
	case a.interactive && !allChanged(cmd, "name", "location", "description"):
		in, err = a.promptInput(cmd, in)
	}
	if err != nil {
		return err
	}

	b, err := a.store.AddBusiness(in)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidInput) {
			return &cli.ValidationError{Message: cli.FormMessage(err)}
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s added.\n", model.FormatID(b.ID), b.Name)
	return nil
}

func inputFromFlags(opts *addOptions) (model.BusinessInput, error) {
	in := model.BusinessInput{
		Name:        opts.name,
		Category:    model.CategoryRestaurant,
		Location:    opts.location,
		Description: opts.description,
		Phone:       model.OptionalString(opts.phone),
		Website:     model.OptionalString(opts.website),
	}
	if opts.category != "" {
		c, err := cli.MatchCategory(opts.category)
		if err != nil {
			return model.BusinessInput{}, err
		}
		in.Category = c
	}
	return in, nil
}

// promptInput asks for every field not given as a flag, in form order.
// A blank category answer keeps the current choice.
func (a *app) promptInput(cmd *cobra.Command, in model.BusinessInput) (model.BusinessInput, error) {
	ask := func(flag, label string, dst *string) error {
		if cmd.Flags().Changed(flag) {
			return nil
		}
		answer, err := a.prompter.Ask(label)
		if err != nil {
			return err
		}
		*dst = answer
		return nil
	}

	if err := ask("name", "Business Name", &in.Name); err != nil {
		return in, err
	}

	if !cmd.Flags().Changed("category") {
		answer, err := a.prompter.Ask(fmt.Sprintf("Category [%s]", in.Category))
		if err != nil {
			return in, err
		}
		if answer != "" {
			c, err := cli.MatchCategory(answer)
			if err != nil {
				return in, err
			}
			in.Category = c
		}
	}

	if err := ask("location", "Location", &in.Location); err != nil {
		return in, err
	}
	if err := ask("description", "Description", &in.Description); err != nil {
		return in, err
	}

	var phone, website string
	if err := ask("phone", "Phone Number (optional)", &phone); err != nil {
		return in, err
	}
	if err := ask("website", "Website URL (optional)", &website); err != nil {
		return in, err
	}
	if !cmd.Flags().Changed("phone") {
		in.Phone = model.OptionalString(phone)
	}
	if !cmd.Flags().Changed("website") {
		in.Website = model.OptionalString(website)
	}
	return in, nil
}

func allChanged(cmd *cobra.Command, flags ...string) bool {
	for _, name := range flags {
		if !cmd.Flags().Changed(name) {
			return false
		}
	}
	return true
}
