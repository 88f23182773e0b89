package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/config"
	"github.com/jacksmith/bizdir/internal/directory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state one bizdir process shares between its commands. A
// one-shot invocation runs a single command against it; the shell runs
// many against the same store.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts rootOptions

	cfg         *config.Config
	store       *directory.Store
	logger      *zap.Logger
	prompter    *cli.Prompter
	interactive bool // input is a terminal; add prompts and the shell banner depend on it
}

type rootOptions struct {
	configPath string
	verbose    bool
	color      string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bizdir",
		Short: "bizdir - a local business directory",
		Long: `bizdir keeps a small directory of local businesses for one session.

Businesses are restaurants, retail shops, or services. Each session starts
from the built-in samples (or the seed_file in .bizdirconfig.yaml); changes
live in memory until the process exits.

Run without arguments to start the interactive shell, or use "bizdir tui"
for the full-screen page.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Name() == "tui")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell()
		},
	}

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("bizdir version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default ./"+config.FileName+")")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	flags.StringVar(&a.opts.color, "color", "", "color output: auto, always, never")

	addDirectoryCommands(root, a)
	root.AddCommand(newShellCmd(a), newTUICmd(a), newCompletionCmd(root))
	return root
}

// addDirectoryCommands registers the commands available both as
// subcommands and as shell lines.
func addDirectoryCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(
		newListCmd(a),
		newFilterCmd(a),
		newAddCmd(a),
		newDeleteCmd(a),
		newShowCmd(a),
		newMapCmd(a),
		newFindCmd(a),
		newDumpCmd(a),
	)
}

// setup loads config, builds the logger and seeds the store.
// It runs once per process. A fullScreen session logs nowhere, since stderr
// shares the terminal with the page.
func (a *app) setup(fullScreen bool) error {
	if a.store != nil {
		return nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg, a.opts.verbose, fullScreen)
	if err != nil {
		return err
	}
	a.logger = logger

	seed, err := cfg.LoadSeed()
	if err != nil {
		return err
	}
	store, err := directory.New(seed, directory.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := store.SetFilter(cfg.Filter()); err != nil {
		return err
	}
	a.store = store

	cli.ApplyColorMode(cfg.Color, a.out)
	a.prompter = cli.NewPrompter(a.in, a.out)
	a.interactive = a.interactive || cli.IsInteractive(a.in)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.opts.configPath != "" {
		cfg, err = config.LoadFile(a.opts.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if a.opts.color != "" {
		cfg.Color = a.opts.color
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the stderr logger for a session. Every entry carries a
// session id so interleaved runs can be told apart. With fullScreen set it
// returns a no-op logger.
func newLogger(cfg *config.Config, verbose, fullScreen bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if fullScreen {
		return zap.NewNop(), nil
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = !verbose
	zc.InitialFields = map[string]interface{}{"session": uuid.NewString()}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
