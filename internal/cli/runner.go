// Package cli is the dateboard command line: the root command opens the
// TUI, the subcommands print or script the session store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/dateboard/internal/board"
	"github.com/idilsaglam/dateboard/internal/config"
	"github.com/idilsaglam/dateboard/internal/logging"
	"github.com/idilsaglam/dateboard/internal/store/snapshot"
	"github.com/idilsaglam/dateboard/internal/tui"
	"github.com/idilsaglam/dateboard/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errReported marks an error whose details were already printed.
var errReported = errors.New("reported")

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs marks positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

type tuiRunner func(context.Context, *board.Board, tui.Options) error

// app carries the streams, flags and per-run state shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	runTUI tuiRunner

	// persistent flags
	configPath string
	theme      string
	logLevel   string
	seedPath   string

	cfg     config.Config
	log     *log.Logger
	closers []io.Closer
}

// Execute runs the command line with args (without the program name) and
// returns the process exit code.
func Execute(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr, tui.Run)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, runTUI tuiRunner) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, runTUI: runTUI, log: logging.Discard()}
	ui.SetOutput(stdout, stderr)
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return a.exitCode(root.Execute())
}

func (a *app) exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	reported := errors.Is(err, errReported)
	if !reported {
		ui.Fail(err.Error())
	}
	var ue *usageError
	if !errors.As(err, &ue) {
		return ExitError
	}
	if !reported {
		ui.Hint("Run 'dateboard --help' for usage.")
	}
	return ExitUsage
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dateboard",
		Short: "A checklist of date ideas",
		Long: `dateboard keeps a checklist of date ideas grouped into sections.

Run without arguments to open the interactive board. Edits last for the
session only; nothing is written back to disk.`,
		Args:              usageArgs(cobra.NoArgs),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runBoard,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.Path()+")")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.seedPath, "seed", "", "seed file (.json, .yaml or .yml)")

	root.AddCommand(a.listCmd(), a.applyCmd(), a.configCmd())
	return root
}

// setup loads configuration, applies flag overrides and opens the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.UI.Theme = a.theme
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.seedPath != "" {
		cfg.Seed.Path = a.seedPath
	}
	cfg.UI.Theme = strings.ToLower(cfg.UI.Theme)
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	a.cfg = cfg

	ui.SetColorMode(cfg.UI.Color)
	ui.SetTheme(cfg.UI.Theme)

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.Log.Level)
	opts.Formatter = logging.ParseFormatter(cfg.Log.Format)

	switch {
	case cfg.Log.File != "":
		l, c, err := logging.OpenFile(cfg.Log.File, opts)
		if err != nil {
			return err
		}
		a.log = l
		a.closers = append(a.closers, c)
	case cmd.Root() == cmd:
		// the TUI owns the terminal
		a.log = logging.Discard()
	default:
		a.log = logging.New(a.stderr, opts)
	}
	return nil
}

// newBoard starts a session on the configured seed.
func (a *app) newBoard() (*board.Board, error) {
	s, src, err := snapshot.Resolve(a.cfg.Seed.Path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	b := board.New(s, board.WithLogger(a.log))
	a.log.Debug("seed loaded", "source", src, "sections", s.Len(), "session", b.Session())
	return b, nil
}

func (a *app) runBoard(cmd *cobra.Command, _ []string) error {
	b, err := a.newBoard()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.runTUI(ctx, b, tui.Options{
		SidebarExpanded: a.cfg.UI.SidebarExpanded,
		Mono:            a.cfg.UI.Theme == "mono" || a.cfg.UI.Color == "never",
		Logger:          a.log,
	})
}
