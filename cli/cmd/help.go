package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/help"
	"github.com/ardnew/argot/pkg"
)

// Help renders help text for the manifest root or one of its subcommands.
type Help struct {
	Style  string   `default:"posix" enum:"posix,microsoft"      help:"Help layout (${enum})."`
	Color  string   `default:"never" enum:"auto,always,never"    help:"Style names and parameters (${enum})."`
	Usage  bool     `                                            help:"Print only the usage line."            short:"u"`
	Option string   `                                            help:"Render only the option named NAME."                placeholder:"NAME"`
	Path   []string `arg:"" optional:""                          help:"Subcommand path below the root."`
}

// Run executes the help command.
func (h *Help) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, _, err := loadTemplates(ctx)
	if err != nil {
		return err
	}

	cmd := root.Path(h.Path...)
	if cmd == nil {
		return ErrUnknownCommand.With(slog.String("path", strings.Join(h.Path, " ")))
	}

	return h.render(outputFrom(ctx), cmd)
}

func (h *Help) render(w io.Writer, cmd *argv.Command) error {
	format := h.format()

	if h.Usage {
		if _, err := io.WriteString(w, help.Usage(cmd, format)+"\n"); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	var err error

	if h.Option != "" {
		opt := cmd.FindOption(h.Option)
		if opt == nil {
			return ErrUnknownOption.With(
				slog.String("option", h.Option),
				slog.String("command", cmd.Name),
			)
		}

		err = help.Fprint(w, opt, format)
	} else {
		err = help.Fprint(w, cmd, format)
	}

	if err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// format returns the selected help format with its color styles applied.
func (h *Help) format() help.Format {
	var styles *help.Styles

	switch h.Color {
	case "auto":
		s := help.TerminalStyles()
		styles = &s

	case "always":
		s := help.ColorStyles()
		styles = &s
	}

	if h.Style == "microsoft" {
		f := help.DefaultMicrosoft()
		if styles != nil {
			f = f.Apply(*styles)
		}

		return f
	}

	f := help.DefaultPosix()
	if styles != nil {
		f = f.Apply(*styles)
	}

	return f
}
