package help

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/text"
)

// Node is a template that help can be rendered for. A root [argv.Command],
// one without a name, renders its entire tree.
type Node interface {
	*argv.Option | *argv.Command
}

// Message returns the help text for node in the first non-nil format, or
// [DefaultPosix] if none is given. Lines are joined with newlines and the
// result has no trailing newline.
func Message[N Node](node N, formats ...Format) string {
	return strings.Join(Lines(node, formats...), "\n")
}

// Lines returns the help text for node as individual lines.
func Lines[N Node](node N, formats ...Format) []string {
	r := renderer{format: pick(formats)}
	r.layout = r.format.Layout()

	switch n := any(node).(type) {
	case *argv.Option:
		if n != nil {
			r.group([]entry{r.option(n)}, 0)
		}

	case *argv.Command:
		switch {
		case n == nil:
		case n.Name == "":
			r.block(n, 0)
		default:
			r.group([]entry{r.command(n)}, 0)
		}
	}

	return r.lines
}

// Fprint writes the help text for node to w, one line per newline.
func Fprint[N Node](w io.Writer, node N, formats ...Format) error {
	bw := bufio.NewWriter(w)

	for _, line := range Lines(node, formats...) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Print writes the help text for node to standard output.
func Print[N Node](node N, formats ...Format) error {
	return Fprint(os.Stdout, node, formats...)
}

// Usage returns a one-line synopsis of cmd: its name, an options marker if
// it declares options, a command marker if it has subcommands, then its
// parameters. A nil cmd has no synopsis.
func Usage(cmd *argv.Command, formats ...Format) string {
	if cmd == nil {
		return ""
	}

	f := pick(formats)

	name, params := *cmd, *cmd
	name.Params, name.Defaults, name.Variadic = nil, nil, argv.NotVariadic
	params.Name, params.Aliases = "", nil

	var parts []string

	if label := f.CommandLabel(&name); label.Width() > 0 {
		parts = append(parts, label.String())
	}

	if len(cmd.Options) > 0 {
		parts = append(parts, "[options]")
	}

	if len(cmd.Commands) > 0 {
		parts = append(parts, "<command>")
	}

	if label := f.CommandLabel(&params); label.Width() > 0 {
		parts = append(parts, strings.TrimSpace(label.String()))
	}

	return strings.Join(parts, " ")
}

func pick(formats []Format) Format {
	for _, f := range formats {
		if f != nil {
			return f
		}
	}

	return DefaultPosix()
}

// entry is one row of a sibling group.
type entry struct {
	label text.Measured
	desc  string
	cmd   *argv.Command // subcommand whose block follows the row
}

type renderer struct {
	format Format
	layout Layout
	lines  []string
}

func (r *renderer) option(opt *argv.Option) entry {
	desc := opt.Description

	if opt.Required && r.layout.Required.Value != "" {
		if desc != "" {
			desc += " "
		}

		desc += r.layout.Required.String()
	}

	return entry{label: r.format.OptionLabel(opt), desc: desc}
}

func (r *renderer) command(cmd *argv.Command) entry {
	return entry{label: r.format.CommandLabel(cmd), desc: cmd.Description, cmd: cmd}
}

// block renders the options and subcommands of cmd as one sibling group.
func (r *renderer) block(cmd *argv.Command, depth int) {
	entries := make([]entry, 0, len(cmd.Options)+len(cmd.Commands))

	for i := range cmd.Options {
		entries = append(entries, r.option(&cmd.Options[i]))
	}

	for i := range cmd.Commands {
		entries = append(entries, r.command(&cmd.Commands[i]))
	}

	r.group(entries, depth)
}

// group measures every label first, then renders each entry against the
// shared column.
func (r *renderer) group(entries []entry, depth int) {
	labels := make([]text.Measured, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	col := r.layout.column(labels)

	for _, e := range entries {
		r.row(e, col, depth)

		if e.cmd != nil {
			r.block(e.cmd, depth+1)
		}
	}
}

func (r *renderer) row(e entry, col, depth int) {
	indent := strings.Repeat(" ", depth*r.layout.Indent)

	if e.desc == "" {
		r.lines = append(r.lines, indent+e.label.String())

		return
	}

	var (
		start = col + r.layout.Gap
		desc  = text.Wrap(e.desc, r.layout.DescriptionWidth)
		wrap  = r.layout.PadWrapped.Run(start).String()
	)

	if e.label.Width() > col {
		r.lines = append(r.lines, indent+e.label.String())
	} else {
		lead := r.layout.PadDescription.Run(start - e.label.Width())
		r.lines = append(r.lines, indent+e.label.String()+lead.String()+desc[0])
		desc = desc[1:]
	}

	for _, line := range desc {
		r.lines = append(r.lines, indent+wrap+line)
	}
}
