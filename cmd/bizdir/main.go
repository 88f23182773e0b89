// Package main is the entry point for the bizdir CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/bizdir/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	root := newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
