package main

import (
	"strings"

	"github.com/jacksmith/bizdir/internal/model"
	"github.com/spf13/cobra"
)

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bizdir.

To load completions:

Bash:
  $ source <(bizdir completion bash)

Zsh:
  $ bizdir completion zsh > "${fpath[1]}/_bizdir"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bizdir completion fish | source
`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "bash",
			Short: "Generate bash completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return root.GenBashCompletion(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "zsh",
			Short: "Generate zsh completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return root.GenZshCompletion(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "fish",
			Short: "Generate fish completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return root.GenFishCompletion(cmd.OutOrStdout(), true)
			},
		},
	)

	// Generating a script needs no directory.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	return cmd
}

// completeBusinessIDs completes IDs of every business in the session, with
// the name as description.
func (a *app) completeBusinessIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// Completion runs without the root pre-run hook.
	if err := a.setup(false); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, b := range a.store.All() {
		id := model.FormatID(b.ID)[1:]
		if strings.HasPrefix(id, strings.TrimPrefix(toComplete, "#")) {
			completions = append(completions, id+"\t"+b.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, c := range model.Categories() {
		if strings.HasPrefix(strings.ToLower(string(c)), strings.ToLower(toComplete)) {
			completions = append(completions, string(c))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func completeFilters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, f := range model.Filters() {
		if strings.HasPrefix(strings.ToLower(string(f)), strings.ToLower(toComplete)) {
			completions = append(completions, string(f)+"\t"+f.Label())
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
