package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shellPrompt = "bizdir> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start an interactive session. Each line is one command run against the
same directory, so businesses added or deleted stay that way until you quit.

Commands accept unique prefixes: "li" runs list, "del 3" runs delete 3.
Arguments with spaces can be quoted: add --name "Sunrise Cafe" ...

Type help for the command list, quit or exit to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell()
		},
	}
}

// runShell reads command lines until quit, exit or end of input.
// A failing command prints its error and the session continues.
func (a *app) runShell() error {
	if a.interactive {
		fmt.Fprintf(a.out, "Business Directory: %s. Type help for commands, quit to leave.\n",
			english.Plural(a.store.Len(), "business", "businesses"))
	}

	for {
		if a.interactive {
			fmt.Fprint(a.out, shellPrompt)
		}
		line, err := a.prompter.ReadLine()
		if err == io.EOF {
			if a.interactive {
				fmt.Fprintln(a.out)
			}
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := a.execLine(line)
		if err != nil {
			fmt.Fprintln(a.errOut, cli.FormatError(err))
		}
		if quit {
			return nil
		}
	}
}

// execLine runs one shell line on a fresh command tree, so flag values
// never leak from one line to the next.
func (a *app) execLine(line string) (quit bool, err error) {
	args, err := cli.SplitArgs(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	tree := newShellTree(a)
	name, err := cli.MatchCommand(args[0], shellCommandNames(tree))
	if err != nil {
		return false, err
	}
	switch name {
	case "quit", "exit":
		return true, nil
	}

	a.logger.Debug("shell command", zap.String("command", name), zap.Int("args", len(args)-1))
	args[0] = name
	tree.SetArgs(args)
	return false, tree.Execute()
}

func newShellTree(a *app) *cobra.Command {
	tree := &cobra.Command{
		Use:           "bizdir",
		Short:         "Business directory shell",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	tree.SetIn(a.in)
	tree.SetOut(a.out)
	tree.SetErr(a.errOut)
	tree.CompletionOptions.DisableDefaultCmd = true
	addDirectoryCommands(tree, a)
	return tree
}

func shellCommandNames(tree *cobra.Command) []string {
	names := []string{"help", "quit", "exit"}
	for _, c := range tree.Commands() {
		names = append(names, c.Name())
		names = append(names, c.Aliases...)
	}
	return names
}
