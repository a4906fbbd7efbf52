package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/dateboard/internal/board"
	"github.com/idilsaglam/dateboard/internal/config"
	"github.com/idilsaglam/dateboard/internal/model"
	"github.com/idilsaglam/dateboard/internal/store/snapshot"
	"github.com/idilsaglam/dateboard/internal/ui"
)

type outputFlags struct {
	format string
	group  bool
}

func (o *outputFlags) register(cmd *cobra.Command, group bool) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format: text, json, yaml or markdown")
	if group {
		cmd.Flags().BoolVar(&o.group, "group", false, "group items by pending/done")
	}
}

func (a *app) listCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "ls [section-key]",
		Short: "Print the board, or one section of it",
		Example: `  dateboard ls
  dateboard ls fun-date --group
  dateboard ls --format markdown`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := snapshot.ParseFormat(out.format)
			if err != nil {
				return &usageError{err: err}
			}
			b, err := a.newBoard()
			if err != nil {
				return err
			}
			s := b.Store()
			if len(args) == 1 {
				sec, ok := s.Get(args[0])
				if !ok {
					return a.unknownSection(b, args[0])
				}
				s = model.NewStore(model.Entry{Key: args[0], Section: sec})
			}
			return a.print(s, f, out.group)
		},
	}
	out.register(cmd, true)
	return cmd
}

func (a *app) unknownSection(b *board.Board, key string) error {
	ui.Fail(fmt.Sprintf("unknown section %q", key))
	if s, ok := b.Suggest(key); ok {
		ui.Hint(fmt.Sprintf("Did you mean %q?", s))
	} else {
		ui.Hint("Run 'dateboard ls' to see section keys.")
	}
	return &usageError{err: errReported}
}

func (a *app) applyCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Apply an edit script to the seed and print the result",
		Long: `apply reads one op per line from file, or stdin when file is "-" or
missing, and applies them in order:

  toggle <section-key> <item-id>
  add-section <title...>
  delete-section <section-key>
  add-item <section-key> <text...>
  delete-item <section-key> <item-id>

Blank lines and lines starting with '#' are skipped. Rejected ops are
reported and the rest still apply; a line that does not parse stops the
script.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := snapshot.ParseFormat(out.format)
			if err != nil {
				return &usageError{err: err}
			}
			r := a.stdin
			if len(args) == 1 && args[0] != "-" {
				fh, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer fh.Close()
				r = fh
			}
			b, err := a.newBoard()
			if err != nil {
				return err
			}

			err = b.ApplyScript(r)
			if errors.Is(err, board.ErrBadOp) {
				return &usageError{err: err}
			}
			rejected := err != nil && reportRejections(err)
			if err != nil && !rejected {
				return err
			}
			if perr := a.print(b.Store(), f, false); perr != nil {
				return perr
			}
			if rejected {
				return errReported
			}
			return nil
		},
	}
	out.register(cmd, false)
	return cmd
}

// reportRejections prints each op the board refused. It reports false when
// err is not a set of rejections.
func reportRejections(err error) bool {
	var errs []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		errs = j.Unwrap()
	} else {
		var le *board.LineError
		if !errors.As(err, &le) {
			return false
		}
		errs = []error{err}
	}
	for _, e := range errs {
		ui.Fail("rejected: " + e.Error())
	}
	return true
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(a.stdout, a.cfg)
		},
	}
}

func (a *app) print(s model.Store, f snapshot.Format, group bool) error {
	switch f {
	case snapshot.FormatText:
		ui.Panel(ui.StoreLines(s, group))
		return nil
	case snapshot.FormatMarkdown:
		return renderMarkdown(a.stdout, snapshot.Markdown(s), ui.Colorize())
	default:
		return snapshot.Write(a.stdout, s, f)
	}
}

func renderMarkdown(w io.Writer, md string, color bool) error {
	style := "notty"
	if color {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
