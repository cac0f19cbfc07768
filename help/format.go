package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/text"
)

// Format renders the labels of options and subcommands and supplies the
// layout used to arrange them with their descriptions.
type Format interface {
	OptionLabel(opt *argv.Option) text.Measured
	CommandLabel(cmd *argv.Command) text.Measured
	Layout() Layout
}

// Layout controls the arrangement of labels and descriptions.
//
// Labels of a sibling group share a column MinColumn to MaxColumn cells
// wide; a label wider than MaxColumn moves its description to the following
// lines. Descriptions begin Gap cells after the column and wrap at
// DescriptionWidth.
type Layout struct {
	PadDescription   text.Padding // between a label and its description
	PadWrapped       text.Padding // before wrapped description lines
	MinColumn        int
	MaxColumn        int // 0 is unbounded
	DescriptionWidth int // 0 disables wrapping
	Indent           int // per nesting level
	Gap              int
	Required         text.Text // appended to required option descriptions
}

// column returns the label column width for labels.
func (l Layout) column(labels []text.Measured) int {
	col := l.MinColumn
	for _, m := range labels {
		col = max(col, m.Width())
	}

	if l.MaxColumn > 0 && col > l.MaxColumn {
		col = l.MaxColumn
	}

	return col
}

// Params renders parameter placeholders.
type Params struct {
	Prefix    text.Text // before the first parameter
	Separator text.Text
	Mandatory text.Enclosure // parameters without a default
	Optional  text.Enclosure // parameters with a default, and zero-or-more
	Variadic  text.Text      // after the last parameter of a variadic list
}

// Render returns the placeholders for params. Parameters covered by
// defaults, which fill from the back, are enclosed as optional.
func (p Params) Render(params, defaults []string, v argv.Variadicity) text.Measured {
	if len(params) == 0 {
		return text.Measured{}
	}

	optional := len(params) - len(defaults)
	last := len(params) - 1
	parts := []text.Measured{p.Prefix.Measured()}

	for i, name := range params {
		if i > 0 {
			parts = append(parts, p.Separator.Measured())
		}

		enc := p.Mandatory
		if i >= optional || (i == last && v == argv.ZeroOrMore) {
			enc = p.Optional
		}

		parts = append(parts, enc.Enclose(strings.TrimSuffix(name, "...")))

		if i == last && v.IsVariadic() {
			parts = append(parts, p.Variadic.Measured())
		}
	}

	return text.Concat(parts...)
}

// Styles colors the parts of a label.
type Styles struct {
	Prefix  text.Style
	Name    text.Style
	Command text.Style
	Param   text.Style
	Leader  text.Style
}

// TerminalStyles returns lipgloss styles that degrade to plain text when
// standard output is not a color terminal.
func TerminalStyles() Styles {
	return Styles{
		Prefix:  text.Lipgloss(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
		Name:    text.Lipgloss(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))),
		Command: text.Lipgloss(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))),
		Param:   text.Lipgloss(lipgloss.NewStyle().Foreground(lipgloss.Color("3"))),
		Leader:  text.Lipgloss(lipgloss.NewStyle().Faint(true)),
	}
}

// ColorStyles returns ANSI color styles that are always emitted.
func ColorStyles() Styles {
	return Styles{
		Prefix:  text.Color(color.FgHiBlack),
		Name:    text.Color(color.Bold, color.FgCyan),
		Command: text.Color(color.Bold, color.FgMagenta),
		Param:   text.Color(color.FgYellow),
		Leader:  text.Color(color.Faint),
	}
}

func joinLabels(parts []text.Measured, sep text.Text) text.Measured {
	var out text.Measured

	for i, p := range parts {
		if i > 0 {
			out = out.Append(sep.Measured())
		}

		out = out.Append(p)
	}

	return out
}
